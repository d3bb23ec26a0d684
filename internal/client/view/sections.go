package view

import (
	"sort"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

// HeaderView is the profile header: the identity block shown above the
// sections.
type HeaderView struct {
	FullName     string
	City         string
	Bio          string
	ProfileImage string
}

func NewHeaderView(p profile.Profile) HeaderView {
	return HeaderView{
		FullName:     p.FullName,
		City:         p.City,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
	}
}

// AboutView hides the section entirely when nothing has been filled in.
type AboutView struct {
	Summary         string
	Highlights      []string
	Hobbies         []string
	PersonalWebsite string
}

func NewAboutView(a profile.About) AboutView {
	return AboutView{
		Summary:         a.Summary,
		Highlights:      a.Highlights,
		Hobbies:         a.Hobbies,
		PersonalWebsite: a.PersonalWebsite,
	}
}

func (v AboutView) Empty() bool {
	return v.Summary == "" && len(v.Highlights) == 0 && len(v.Hobbies) == 0 && v.PersonalWebsite == ""
}

// TimelineItem is one dated entry of the education or experience timeline.
type TimelineItem struct {
	Heading    string
	Subheading string
	Span       string
	Location   string
	Detail     string
}

func NewEducationItems(items []profile.Education) []TimelineItem {
	out := make([]TimelineItem, 0, len(items))
	for _, e := range items {
		out = append(out, TimelineItem{
			Heading:    e.Degree,
			Subheading: e.Institution,
			Span:       DateRange(e.StartDate, e.EndDate),
			Detail:     e.Description,
		})
	}
	return out
}

func NewExperienceItems(items []profile.Experience) []TimelineItem {
	out := make([]TimelineItem, 0, len(items))
	for _, e := range items {
		end := e.EndDate
		if e.CurrentlyWorking {
			end = ""
		}
		out = append(out, TimelineItem{
			Heading:    e.Position,
			Subheading: e.Company,
			Span:       DateRange(e.StartDate, end),
			Location:   e.Location,
			Detail:     e.Description,
		})
	}
	return out
}

// AchievementView is one certification card.
type AchievementView struct {
	Name         string
	Organization string
	Issued       string
	URL          string
	Image        string
}

func NewAchievementViews(items []profile.Achievement) []AchievementView {
	out := make([]AchievementView, 0, len(items))
	for _, a := range items {
		out = append(out, AchievementView{
			Name:         a.CertificateName,
			Organization: a.IssuingOrganization,
			Issued:       FormatMonth(a.IssueDate),
			URL:          a.CredentialURL,
			Image:        a.CertificateImage,
		})
	}
	return out
}

// ContributionView is one contribution card.
type ContributionView struct {
	Title       string
	Description string
	Category    string
	Link        string
}

func NewContributionViews(items []profile.Contribution) []ContributionView {
	out := make([]ContributionView, 0, len(items))
	for _, c := range items {
		out = append(out, ContributionView{
			Title:       c.Title,
			Description: c.Description,
			Category:    c.Category,
			Link:        c.ExternalLink,
		})
	}
	return out
}

// SocialLink is one platform/URL pair. Only platforms with a URL are shown.
type SocialLink struct {
	Platform string
	URL      string
}

func NewSocialLinks(links map[string]string) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for platform, url := range links {
		if url == "" {
			continue
		}
		out = append(out, SocialLink{Platform: platform, URL: url})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out
}
