package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileValidate(t *testing.T) {
	p := Profile{FullName: "Jane Doe", Email: "jane@example.com", City: "Hanoi"}
	assert.Empty(t, p.Validate())

	p = Profile{}
	errs := p.Validate()
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "City is required", errs["city"])

	p = Profile{FullName: "Jane", Email: "not-an-email", City: "Hanoi"}
	assert.Equal(t, "Invalid email format", p.Validate()["email"])

	p = Profile{FullName: "Jane", Email: "jane@example.com", City: "Hanoi", Phone: "12"}
	assert.Equal(t, "Invalid phone number format", p.Validate()["phone"])

	for _, phone := range []string{"(123) 456-7890", "+84 123 456 7890", "123.456.7890"} {
		p.Phone = phone
		assert.Empty(t, p.Validate(), "phone %q should pass", phone)
	}
}

func TestAboutValidate(t *testing.T) {
	a := About{Summary: "Litigation attorney."}
	assert.Empty(t, a.Validate())

	assert.Equal(t, "Summary is required", About{}.Validate()["summary"])

	a = About{Summary: "x", PersonalWebsite: "example.com"}
	assert.Equal(t, "Invalid URL format", a.Validate()["personal_website"])

	a.PersonalWebsite = "https://example.com"
	assert.Empty(t, a.Validate())
}

func TestEducationValidate(t *testing.T) {
	e := Education{Degree: "JD", Institution: "MIT", StartDate: "2015-09-01", Description: "Law"}
	assert.Empty(t, e.Validate())

	errs := Education{}.Validate()
	assert.Equal(t, "Degree is required", errs["degree"])
	assert.Equal(t, "Institution is required", errs["institution"])
	assert.Equal(t, "Start date is required", errs["startDate"])
	assert.Equal(t, "Description is required", errs["description"])
}

func TestExperienceCleanDropsEndDateWhenCurrent(t *testing.T) {
	e := Experience{Position: "Partner", Company: "Firm", StartDate: "2020-01-01",
		EndDate: "2023-01-01", CurrentlyWorking: true}

	cleaned := e.Clean()
	assert.Empty(t, cleaned.EndDate)
	assert.True(t, cleaned.CurrentlyWorking)

	// Not current keeps the end date.
	e.CurrentlyWorking = false
	assert.Equal(t, "2023-01-01", e.Clean().EndDate)
}

func TestContributionValidate(t *testing.T) {
	errs := Contribution{}.Validate()
	assert.Equal(t, "Title is required", errs["title"])
	assert.Equal(t, "Description is required", errs["description"])
	assert.Equal(t, "Category is required", errs["category"])
}

func TestValidateUsername(t *testing.T) {
	assert.Equal(t, "Username must be at least 3 characters", ValidateUsername("jane", "ab"))
	assert.Equal(t,
		"Username can only contain lowercase letters, numbers, underscores, dots, and hyphens",
		ValidateUsername("jane", "AB-CD"))
	assert.Equal(t,
		"Username can only contain lowercase letters, numbers, underscores, dots, and hyphens",
		ValidateUsername("jane", "ab cd"))
	assert.Equal(t, "Please enter a different username", ValidateUsername("jane", "jane"))
	assert.Empty(t, ValidateUsername("jane", "jane.doe-2"))

	long := make([]byte, 31)
	for i := range long {
		long[i] = 'a'
	}
	assert.Equal(t, "Username must be less than 30 characters", ValidateUsername("jane", string(long)))
}

func TestSectionKeyValid(t *testing.T) {
	for _, key := range SectionKeys {
		assert.True(t, key.Valid())
	}
	assert.False(t, SectionKey("posts").Valid())
}

func TestAggregateNormalize(t *testing.T) {
	var agg Aggregate
	agg.Normalize()

	assert.NotNil(t, agg.Education)
	assert.NotNil(t, agg.Experience)
	assert.NotNil(t, agg.Achievements)
	assert.NotNil(t, agg.Contributions)
	assert.NotNil(t, agg.Skills)
	assert.NotNil(t, agg.SocialLinks)
	assert.NotNil(t, agg.About.Highlights)
	assert.NotNil(t, agg.About.Hobbies)
}
