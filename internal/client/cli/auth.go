package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhattranq/profilehub/internal/client"
	"github.com/nhattranq/profilehub/internal/client/form"
)

func (a *App) register(ctx context.Context) {
	username := a.prompt("Username")
	email := a.prompt("Email")
	password, err := a.promptPassword("Password")
	if err != nil {
		fmt.Printf("could not read password: %v\n", err)
		return
	}

	session, err := a.client.SignUp(ctx, username, email, password)
	if err != nil {
		var ve *client.ValidationError
		if errors.As(err, &ve) {
			for field, msg := range ve.Fields {
				fmt.Printf("  %s: %s\n", field, msg)
			}
			return
		}
		fmt.Printf("registration failed: %v\n", err)
		return
	}

	a.username = username
	fmt.Printf("registered, signed in as %s (user %s)\n", username, session.UserID)
}

func (a *App) login(ctx context.Context) {
	email := a.prompt("Email")
	password, err := a.promptPassword("Password")
	if err != nil {
		fmt.Printf("could not read password: %v\n", err)
		return
	}

	session, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrInvalidCredentials) {
			fmt.Println("Email or password is incorrect")
			return
		}
		fmt.Printf("sign-in failed: %v\n", err)
		return
	}

	// The token carries only the user id; the prompt picks the username
	// up once the user views their own page.
	a.username = ""
	fmt.Printf("signed in (user %s); 'view <username>' opens your page\n", session.UserID)
}

func (a *App) logout() {
	if err := a.client.SignOut(); err != nil {
		fmt.Printf("sign-out failed: %v\n", err)
		return
	}
	a.username = ""
	fmt.Println("signed out")
}

func (a *App) changeUsername(ctx context.Context) {
	f := form.NewUsernameForm(a.username)
	f.SetInput(a.prompt("New username"))
	if !f.Validate() {
		fmt.Println(f.Error)
		return
	}

	rec, err := a.client.ChangeUsername(ctx, f.Value())
	if err != nil {
		var ve *client.ValidationError
		if errors.As(err, &ve) {
			for _, msg := range ve.Fields {
				fmt.Println(msg)
			}
			return
		}
		fmt.Printf("could not change username: %v\n", err)
		return
	}

	a.username = rec.Username
	fmt.Printf("username is now %s\n", rec.Username)
}

func (a *App) forgotPassword(ctx context.Context) {
	email := a.prompt("Email")
	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		fmt.Printf("request failed: %v\n", err)
		return
	}
	fmt.Println(msg)
}

func (a *App) resetPassword(ctx context.Context) {
	token := a.prompt("Reset token")
	password, err := a.promptPassword("New password")
	if err != nil {
		fmt.Printf("could not read password: %v\n", err)
		return
	}
	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		fmt.Printf("reset failed: %v\n", err)
		return
	}
	fmt.Println("Password has been reset.")
}
