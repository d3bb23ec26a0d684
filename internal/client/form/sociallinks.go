package form

import "strings"

// Platforms is the fixed set of social link fields, in render order.
var Platforms = []string{"linkedin", "twitter", "github", "facebook", "instagram", "youtube"}

// SocialLinksForm edits the social links section: one optional URL per known
// platform. Blank entries are dropped on save rather than stored as empty
// strings.
type SocialLinksForm struct {
	Links      map[string]string
	Submitting bool
}

func NewSocialLinksForm(links map[string]string) *SocialLinksForm {
	f := &SocialLinksForm{Links: map[string]string{}}
	for k, v := range links {
		f.Links[k] = v
	}
	return f
}

func (f *SocialLinksForm) Set(platform, url string) {
	f.Links[platform] = url
}

// Value returns only the non-blank links.
func (f *SocialLinksForm) Value() map[string]string {
	out := map[string]string{}
	for platform, url := range f.Links {
		if strings.TrimSpace(url) != "" {
			out[platform] = strings.TrimSpace(url)
		}
	}
	return out
}
