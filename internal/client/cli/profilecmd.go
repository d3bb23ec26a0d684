package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhattranq/profilehub/internal/client"
	"github.com/nhattranq/profilehub/internal/client/view"
)

func (a *App) view(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: view <username>")
		return
	}

	state, err := a.client.LoadProfile(ctx, args[0])
	if err != nil {
		switch {
		case errors.Is(err, client.ErrProfileNotFound):
			fmt.Println("Profile not found")
		case errors.Is(err, client.ErrProfileDataNotFound):
			fmt.Println("Profile data not found")
		default:
			fmt.Printf("could not load profile: %v\n", err)
		}
		return
	}

	a.state = state
	if state.IsOwner {
		a.username = state.Username
	}
	a.render(state)
}

func (a *App) render(state *client.ProfileState) {
	agg := state.Aggregate
	header := view.NewHeaderView(agg.Profile)

	fmt.Printf("\n%s", header.FullName)
	if state.IsOwner {
		fmt.Print("  [your profile]")
	}
	fmt.Println()
	if header.City != "" {
		fmt.Println(header.City)
	}
	if header.Bio != "" {
		fmt.Println(header.Bio)
	}

	if about := view.NewAboutView(agg.About); !about.Empty() {
		fmt.Println("\nAbout")
		if about.Summary != "" {
			fmt.Println("  " + about.Summary)
		}
		for _, h := range about.Highlights {
			fmt.Println("  * " + h)
		}
	}

	if items := view.NewExperienceItems(agg.Experience); len(items) > 0 {
		fmt.Println("\nExperience")
		for _, item := range items {
			fmt.Printf("  %s, %s (%s)\n", item.Heading, item.Subheading, item.Span)
		}
	}

	if items := view.NewEducationItems(agg.Education); len(items) > 0 {
		fmt.Println("\nEducation")
		for _, item := range items {
			fmt.Printf("  %s, %s (%s)\n", item.Heading, item.Subheading, item.Span)
		}
	}

	if certs := view.NewAchievementViews(agg.Achievements); len(certs) > 0 {
		fmt.Println("\nCertifications")
		for _, cert := range certs {
			fmt.Printf("  %s, %s\n", cert.Name, cert.Organization)
		}
	}

	if contribs := view.NewContributionViews(agg.Contributions); len(contribs) > 0 {
		fmt.Println("\nContributions")
		for _, c := range contribs {
			fmt.Printf("  [%s] %s\n", c.Category, c.Title)
		}
	}

	if len(agg.Skills) > 0 {
		fmt.Println("\nSkills")
		for _, s := range agg.Skills {
			fmt.Println("  - " + s)
		}
	}

	if links := view.NewSocialLinks(agg.SocialLinks); len(links) > 0 {
		fmt.Println("\nLinks")
		for _, l := range links {
			fmt.Printf("  %s: %s\n", l.Platform, l.URL)
		}
	}
	fmt.Println()
}
