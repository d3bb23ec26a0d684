package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhattranq/profilehub/internal/client"
	"github.com/nhattranq/profilehub/internal/client/form"
	"github.com/nhattranq/profilehub/internal/domain/profile"
)

// edit opens one section of the most recently viewed profile for editing.
// Only the owner gets anywhere; for everyone else the toggle is a no-op and
// the command reports as much.
func (a *App) edit(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Printf("usage: edit <%s>\n", "profiles|about|education|experience|achievements|contribution|skills|socialLink")
		return
	}
	if a.state == nil {
		fmt.Println("view a profile first")
		return
	}

	key := profile.SectionKey(args[0])
	a.state.ToggleEdit(key)
	if !a.state.Editing(key) {
		fmt.Println("you can only edit your own profile")
		return
	}

	var err error
	switch key {
	case profile.SectionProfile:
		err = a.editProfile(ctx)
	case profile.SectionAbout:
		err = a.editAbout(ctx)
	case profile.SectionSkills:
		err = a.editSkills(ctx)
	case profile.SectionSocialLinks:
		err = a.editSocialLinks(ctx)
	case profile.SectionEducation:
		err = a.editEducation(ctx)
	case profile.SectionExperience:
		err = a.editExperience(ctx)
	case profile.SectionAchievements:
		err = a.editAchievements(ctx)
	case profile.SectionContributions:
		err = a.editContributions(ctx)
	}

	if err != nil {
		a.reportSaveError(err)
		return
	}
	fmt.Println("saved")
}

func (a *App) reportSaveError(err error) {
	var se *client.SaveError
	switch {
	case errors.Is(err, client.ErrUnauthenticated):
		fmt.Println("you are not signed in")
	case errors.Is(err, client.ErrNotAuthorized):
		fmt.Println("you can only edit your own profile")
	case errors.As(err, &se):
		if len(se.Fields) > 0 {
			for field, msg := range se.Fields {
				fmt.Printf("  %s: %s\n", field, msg)
			}
			return
		}
		fmt.Printf("save failed: %v\n", se)
	default:
		fmt.Printf("save failed: %v\n", err)
	}
}

// promptKeep shows the current value and returns the typed replacement, or
// the current value when the user just presses enter.
func (a *App) promptKeep(label, current string) string {
	entered := a.prompt(fmt.Sprintf("%s [%s]", label, current))
	if entered == "" {
		return current
	}
	return entered
}

func (a *App) editProfile(ctx context.Context) error {
	f := form.NewProfileForm(a.state.Aggregate.Profile)
	f.Change(func(p *profile.Profile) {
		p.FullName = a.promptKeep("Full name", p.FullName)
		p.Email = a.promptKeep("Email", p.Email)
		p.Phone = a.promptKeep("Phone", p.Phone)
		p.City = a.promptKeep("City", p.City)
		p.Bio = a.promptKeep("Bio", p.Bio)
	})
	if !f.Validate() {
		for field, msg := range f.Errors {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionProfile, f.Value())
}

func (a *App) editAbout(ctx context.Context) error {
	f := form.NewAboutForm(a.state.Aggregate.About)
	f.Summary = a.promptKeep("Summary", f.Summary)
	f.PersonalWebsite = a.promptKeep("Personal website", f.PersonalWebsite)
	a.editTagList(f.Highlights, "highlight")
	a.editTagList(f.Hobbies, "hobby")
	if !f.Validate() {
		for field, msg := range f.Errors {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionAbout, f.Value())
}

func (a *App) editSkills(ctx context.Context) error {
	f := form.NewSkillsForm(a.state.Aggregate.Skills)
	a.editTagList(f, "skill")
	return a.client.SaveSection(ctx, a.state, profile.SectionSkills, f.Value())
}

// editTagList runs the staged-input loop for one tag list until the user
// enters a blank line.
func (a *App) editTagList(t *form.TagList, noun string) {
	for i, item := range t.Items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	for {
		entered := a.prompt(fmt.Sprintf("Add %s (blank to finish)", noun))
		if entered == "" {
			return
		}
		t.SetInput(entered)
		if !t.Add() {
			fmt.Println("  " + t.Error)
		}
	}
}

func (a *App) editSocialLinks(ctx context.Context) error {
	f := form.NewSocialLinksForm(a.state.Aggregate.SocialLinks)
	for _, platform := range form.Platforms {
		f.Set(platform, a.promptKeep(platform, f.Links[platform]))
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionSocialLinks, f.Value())
}

func (a *App) editEducation(ctx context.Context) error {
	f := form.NewEducationForm(a.state.Aggregate.Education)

	for {
		for i, e := range f.Entries {
			fmt.Printf("  %d. %s, %s\n", i+1, e.Data.Degree, e.Data.Institution)
		}
		action := a.prompt("add / done")
		if action != "add" {
			break
		}
		f.Add()
		i := len(f.Entries) - 1
		f.Change(i, func(e *profile.Education) {
			e.Degree = a.prompt("Degree")
			e.Institution = a.prompt("Institution")
			e.StartDate = a.prompt("Start date (YYYY-MM-DD)")
			e.EndDate = a.prompt("End date (YYYY-MM-DD, blank if ongoing)")
			e.Grade = a.prompt("Grade")
			e.Description = a.prompt("Description")
		})
	}

	if !f.Validate() {
		for key, msg := range f.Errors() {
			fmt.Printf("  %s: %s\n", key, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionEducation, f.Value())
}

func (a *App) editAchievements(ctx context.Context) error {
	f := form.NewAchievementForm(a.state.Aggregate.Achievements)

	for {
		for i, e := range f.Entries {
			fmt.Printf("  %d. %s, %s\n", i+1, e.Data.CertificateName, e.Data.IssuingOrganization)
		}
		action := a.prompt("add / done")
		if action != "add" {
			break
		}
		f.Add()
		i := len(f.Entries) - 1
		f.Change(i, func(e *profile.Achievement) {
			e.CertificateName = a.prompt("Certificate name")
			e.IssuingOrganization = a.prompt("Issuing organization")
			e.IssueDate = a.prompt("Issue date (YYYY-MM-DD)")
			e.CredentialURL = a.prompt("Credential URL")
		})
	}

	if !f.Validate() {
		for key, msg := range f.Errors() {
			fmt.Printf("  %s: %s\n", key, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionAchievements, f.Value())
}

func (a *App) editContributions(ctx context.Context) error {
	f := form.NewContributionForm(a.state.Aggregate.Contributions)

	for {
		for i, e := range f.Entries {
			fmt.Printf("  %d. [%s] %s\n", i+1, e.Data.Category, e.Data.Title)
		}
		action := a.prompt("add / done")
		if action != "add" {
			break
		}
		f.Add()
		i := len(f.Entries) - 1
		f.Change(i, func(e *profile.Contribution) {
			e.Title = a.prompt("Title")
			e.Category = a.prompt("Category")
			e.Description = a.prompt("Description")
			e.ExternalLink = a.prompt("External link")
		})
	}

	if !f.Validate() {
		for key, msg := range f.Errors() {
			fmt.Printf("  %s: %s\n", key, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionContributions, f.Value())
}

func (a *App) editExperience(ctx context.Context) error {
	f := form.NewExperienceForm(a.state.Aggregate.Experience)

	for {
		for i, e := range f.Entries {
			fmt.Printf("  %d. %s, %s\n", i+1, e.Data.Position, e.Data.Company)
		}
		action := a.prompt("add / done")
		if action != "add" {
			break
		}
		f.Add()
		i := len(f.Entries) - 1
		f.Change(i, func(e *profile.Experience) {
			e.Position = a.prompt("Position")
			e.Company = a.prompt("Company")
			e.Location = a.prompt("Location")
			e.StartDate = a.prompt("Start date (YYYY-MM-DD)")
			e.EndDate = a.prompt("End date (YYYY-MM-DD, blank if current)")
		})
		form.SetCurrentlyWorking(f, i, f.Entries[i].Data.EndDate == "")
	}

	if !f.Validate() {
		for key, msg := range f.Errors() {
			fmt.Printf("  %s: %s\n", key, msg)
		}
		return nil
	}
	return a.client.SaveSection(ctx, a.state, profile.SectionExperience, f.Value())
}
