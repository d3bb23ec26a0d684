package client

import (
	"errors"
	"fmt"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

var (
	// ErrProfileNotFound means the username resolves to nobody.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileDataNotFound means the user exists but their aggregate
	// could not be fetched.
	ErrProfileDataNotFound = errors.New("profile data not found")
	// ErrUnauthenticated means there is no stored credential.
	ErrUnauthenticated = errors.New("not signed in")
	// ErrNotAuthorized means the caller holds a credential for a
	// different user than the profile being edited.
	ErrNotAuthorized = errors.New("not allowed to edit this profile")
	// ErrInvalidCredentials is the sign-in rejection.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	// ErrEmptyQuery is returned before any network call when a search has
	// neither a name nor a city.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrSearchSuperseded means a newer search was issued while this one
	// was in flight; its result must be discarded.
	ErrSearchSuperseded = errors.New("search superseded by a newer query")
	// ErrUploadFailed wraps any image upload failure.
	ErrUploadFailed = errors.New("upload failed")
)

// SaveError reports a failed section save. When the server rejected the
// payload field by field, Fields carries the per-field messages keyed the way
// the form laid them out ("<index>.<field>" for list sections).
type SaveError struct {
	Section profile.SectionKey
	Message string
	Fields  map[string]string
	Err     error
}

func (e *SaveError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("save %s: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("save %s: %v", e.Section, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// ValidationError reports client-side validation failures found before any
// request is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
