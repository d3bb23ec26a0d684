package profile

import (
	"regexp"
	"strings"
)

// Validation rules shared by the client forms and the server-side save path.
// Messages are the exact inline strings the forms render; both sides must not
// drift apart.

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	websitePattern  = regexp.MustCompile(`^https?://.+`)
	usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)
)

func (p Profile) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(p.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(p.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(p.Email) {
		errs["email"] = "Invalid email format"
	}
	if p.Phone != "" && !phonePattern.MatchString(p.Phone) {
		errs["phone"] = "Invalid phone number format"
	}
	return errs
}

func (a About) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(a.Summary) == "" {
		errs["summary"] = "Summary is required"
	}
	if a.PersonalWebsite != "" && !websitePattern.MatchString(a.PersonalWebsite) {
		errs["personal_website"] = "Invalid URL format"
	}
	return errs
}

func (e Education) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(e.Degree) == "" {
		errs["degree"] = "Degree is required"
	}
	if strings.TrimSpace(e.Institution) == "" {
		errs["institution"] = "Institution is required"
	}
	if e.StartDate == "" {
		errs["startDate"] = "Start date is required"
	}
	if strings.TrimSpace(e.Description) == "" {
		errs["description"] = "Description is required"
	}
	return errs
}

func (e Experience) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(e.Position) == "" {
		errs["position"] = "Position is required"
	}
	if strings.TrimSpace(e.Company) == "" {
		errs["company"] = "Company is required"
	}
	if e.StartDate == "" {
		errs["startDate"] = "Start date is required"
	}
	return errs
}

// Achievements have no client-side required fields; the backend is the sole
// authority for them.
func (a Achievement) Validate() map[string]string {
	return map[string]string{}
}

func (c Contribution) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(c.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(c.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(c.Category) == "" {
		errs["category"] = "Category is required"
	}
	return errs
}

// Clean enforces the currently-working invariant: an open-ended position has
// no end date.
func (e Experience) Clean() Experience {
	if e.CurrentlyWorking {
		e.EndDate = ""
	}
	return e
}

// ValidateUsername checks a proposed routing key against the current one.
// Empty return means valid.
func ValidateUsername(current, proposed string) string {
	if len(proposed) < 3 {
		return "Username must be at least 3 characters"
	}
	if len(proposed) > 30 {
		return "Username must be less than 30 characters"
	}
	if !usernamePattern.MatchString(proposed) {
		return "Username can only contain lowercase letters, numbers, underscores, dots, and hyphens"
	}
	if proposed == current {
		return "Please enter a different username"
	}
	return ""
}
