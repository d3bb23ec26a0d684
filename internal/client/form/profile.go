package form

import "github.com/nhattranq/profilehub/internal/domain/profile"

// ProfileForm edits the basic-details section.
type ProfileForm struct {
	Data       profile.Profile
	Errors     map[string]string
	Submitting bool
}

func NewProfileForm(p profile.Profile) *ProfileForm {
	return &ProfileForm{Data: p, Errors: map[string]string{}}
}

// Change mutates the draft and clears recorded errors.
func (f *ProfileForm) Change(mutate func(*profile.Profile)) {
	mutate(&f.Data)
	f.Errors = map[string]string{}
}

// SetImage records a freshly uploaded profile image.
func (f *ProfileForm) SetImage(url, key string) {
	f.Data.ProfileImage = url
	f.Data.ImageKey = key
}

// ClearImage removes the image reference from the draft. The caller is
// responsible for deleting the stored asset.
func (f *ProfileForm) ClearImage() {
	f.Data.ProfileImage = ""
	f.Data.ImageKey = ""
}

func (f *ProfileForm) Validate() bool {
	f.Errors = f.Data.Validate()
	return len(f.Errors) == 0
}

func (f *ProfileForm) Value() profile.Profile {
	return f.Data
}
