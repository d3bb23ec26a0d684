// Package cli is the interactive terminal front end over the profilehub
// client: sign in, browse and search profiles, and edit the sections of your
// own page.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/nhattranq/profilehub/internal/client"
)

type App struct {
	client   *client.Client
	searcher *client.ProfileSearcher
	scanner  *bufio.Scanner

	// username of the signed-in account, for the prompt.
	username string
	// state is the most recently viewed profile; edit commands operate
	// on it.
	state *client.ProfileState
}

func NewApp(c *client.Client) *App {
	return &App{
		client:   c,
		searcher: client.NewProfileSearcher(c),
		scanner:  newScanner(),
	}
}

func (a *App) status() string {
	if a.username == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.username)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to profilehub (type 'help' for commands)")

	for {
		fmt.Printf("profilehub %s> ", a.status())
		if !a.scanner.Scan() {
			break
		}
		parts := strings.Fields(a.scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "username":
			a.changeUsername(ctx)
		case "view":
			a.view(ctx, args)
		case "search":
			a.search(ctx, args)
		case "browse":
			a.browse(ctx)
		case "edit":
			a.edit(ctx, args)
		case "forgot":
			a.forgotPassword(ctx)
		case "reset":
			a.resetPassword(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("unknown command %q (type 'help')\n", cmd)
		}
	}
}

func (a *App) help() {
	if a.username != "" {
		fmt.Println("Available commands: view <username>, search <name> [city], browse, edit <section>, username, logout, exit")
		return
	}
	fmt.Println("Available commands: register, login, forgot, reset, view <username>, search <name> [city], browse, exit")
}
