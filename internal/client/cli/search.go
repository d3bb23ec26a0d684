package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhattranq/profilehub/internal/client"
)

func (a *App) search(ctx context.Context, args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Println("usage: search <name> [city]  (use '-' to skip the name)")
		return
	}

	name := args[0]
	if name == "-" {
		name = ""
	}
	city := ""
	if len(args) == 2 {
		city = args[1]
	}

	hits, err := a.searcher.Search(ctx, name, city)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrEmptyQuery):
			fmt.Println("Please provide a search query.")
		case errors.Is(err, client.ErrSearchSuperseded):
			// A newer search owns the screen.
		default:
			fmt.Printf("search failed: %v\n", err)
		}
		return
	}

	if len(hits) == 0 {
		fmt.Println("No profiles found matching your search.")
		return
	}
	printHits(hits)
}

func (a *App) browse(ctx context.Context) {
	hits, err := a.client.SampleProfiles(ctx)
	if err != nil {
		fmt.Printf("could not load profiles: %v\n", err)
		return
	}
	if len(hits) == 0 {
		fmt.Println("No public profiles yet.")
		return
	}
	printHits(hits)
}

func printHits(hits []client.ProfileHit) {
	for _, h := range hits {
		line := fmt.Sprintf("  %s (@%s)", h.FullName, h.Username)
		if h.City != "" {
			line += ", " + h.City
		}
		fmt.Println(line)
	}
}
