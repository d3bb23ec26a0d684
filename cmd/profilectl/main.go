package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/nhattranq/profilehub/internal/client"
	"github.com/nhattranq/profilehub/internal/client/cli"
)

func main() {
	serverAddr := flag.String("server", envOr("PROFILEHUB_SERVER", "http://localhost:8080"), "server base URL")
	tokenPath := flag.String("token-file", defaultTokenPath(), "where the session token is stored")
	flag.Parse()

	tokens := client.NewFileTokenStore(*tokenPath)
	app := cli.NewApp(client.New(*serverAddr, tokens))
	app.Run(context.Background())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".profilehub-token"
	}
	return filepath.Join(home, ".profilehub", "token")
}
