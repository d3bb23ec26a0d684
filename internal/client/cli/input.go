package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func (a *App) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func (a *App) promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func newScanner() *bufio.Scanner {
	return bufio.NewScanner(os.Stdin)
}
