package form

import "github.com/nhattranq/profilehub/internal/domain/profile"

// AboutForm edits the about section: a summary, a personal website, and two
// tag lists.
type AboutForm struct {
	Summary         string
	PersonalWebsite string
	Highlights      *TagList
	Hobbies         *TagList
	Errors          map[string]string
	Submitting      bool
}

func NewAboutForm(a profile.About) *AboutForm {
	return &AboutForm{
		Summary:         a.Summary,
		PersonalWebsite: a.PersonalWebsite,
		Highlights:      NewTagList("highlight", a.Highlights),
		Hobbies:         NewTagList("hobby", a.Hobbies),
		Errors:          map[string]string{},
	}
}

func (f *AboutForm) Validate() bool {
	f.Errors = f.Value().Validate()
	return len(f.Errors) == 0
}

func (f *AboutForm) Value() profile.About {
	return profile.About{
		Summary:         f.Summary,
		PersonalWebsite: f.PersonalWebsite,
		Highlights:      f.Highlights.Value(),
		Hobbies:         f.Hobbies.Value(),
	}
}
