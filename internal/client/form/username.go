package form

import (
	"strings"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

// UsernameForm edits the account's routing key. Input is lowercased on the
// way in; the rules live in the shared validator.
type UsernameForm struct {
	Current    string
	Input      string
	Error      string
	Submitting bool
}

func NewUsernameForm(current string) *UsernameForm {
	return &UsernameForm{Current: current, Input: current}
}

func (f *UsernameForm) SetInput(v string) {
	f.Input = strings.ToLower(strings.TrimSpace(v))
	f.Error = ""
}

func (f *UsernameForm) Validate() bool {
	f.Error = profile.ValidateUsername(f.Current, f.Input)
	return f.Error == ""
}

func (f *UsernameForm) Value() string {
	return f.Input
}
