package profile

import (
	"context"

	"github.com/google/uuid"
)

// SectionKey is the wire name of one editable slice of the aggregate. The
// values double as URL path segments for the per-section update endpoints, so
// they keep their historical spellings ("profiles", "contribution",
// "socialLink") even where the aggregate field is named differently.
type SectionKey string

const (
	SectionProfile       SectionKey = "profiles"
	SectionAbout         SectionKey = "about"
	SectionEducation     SectionKey = "education"
	SectionExperience    SectionKey = "experience"
	SectionAchievements  SectionKey = "achievements"
	SectionContributions SectionKey = "contribution"
	SectionSkills        SectionKey = "skills"
	SectionSocialLinks   SectionKey = "socialLink"
)

// SectionKeys lists every section in render order.
var SectionKeys = []SectionKey{
	SectionProfile,
	SectionAbout,
	SectionExperience,
	SectionEducation,
	SectionAchievements,
	SectionContributions,
	SectionSkills,
	SectionSocialLinks,
}

func (k SectionKey) Valid() bool {
	for _, s := range SectionKeys {
		if s == k {
			return true
		}
	}
	return false
}

type Profile struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Gender       string `json:"gender,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	Bio          string `json:"bio,omitempty"`
	City         string `json:"city"`
	ProfileImage string `json:"profileImage,omitempty"`
	ImageKey     string `json:"imageKey,omitempty"`
}

type About struct {
	Summary         string   `json:"summary"`
	Highlights      []string `json:"highlights"`
	Hobbies         []string `json:"hobbies"`
	PersonalWebsite string   `json:"personal_website,omitempty"`
}

// Dates are client-supplied "YYYY-MM-DD" strings throughout; the platform
// stores and echoes them without reinterpreting timezones.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Description string `json:"description"`
}

type Experience struct {
	Position         string `json:"position"`
	Company          string `json:"company"`
	Location         string `json:"location,omitempty"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate,omitempty"`
	Description      string `json:"description,omitempty"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
}

type Achievement struct {
	CertificateName     string `json:"certificate_name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	CredentialURL       string `json:"credential_url,omitempty"`
	CertificateImage    string `json:"certificate_image,omitempty"`
}

type Contribution struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ExternalLink string `json:"external_link,omitempty"`
}

// Aggregate is the whole profile bundle for one user. Every section is always
// populated (possibly empty), never nil, so consumers need no null guards.
type Aggregate struct {
	Profile       Profile           `json:"profile"`
	About         About             `json:"about"`
	Education     []Education       `json:"education"`
	Experience    []Experience      `json:"experience"`
	Achievements  []Achievement     `json:"achievements"`
	Contributions []Contribution    `json:"contributions"`
	Skills        []string          `json:"skills"`
	SocialLinks   map[string]string `json:"socialLinks"`
}

// EmptyAggregate returns an aggregate with every section initialized to its
// empty container.
func EmptyAggregate() *Aggregate {
	return &Aggregate{
		About:         About{Highlights: []string{}, Hobbies: []string{}},
		Education:     []Education{},
		Experience:    []Experience{},
		Achievements:  []Achievement{},
		Contributions: []Contribution{},
		Skills:        []string{},
		SocialLinks:   map[string]string{},
	}
}

// Normalize fills any nil list or map with its empty container.
func (a *Aggregate) Normalize() {
	if a.About.Highlights == nil {
		a.About.Highlights = []string{}
	}
	if a.About.Hobbies == nil {
		a.About.Hobbies = []string{}
	}
	if a.Education == nil {
		a.Education = []Education{}
	}
	if a.Experience == nil {
		a.Experience = []Experience{}
	}
	if a.Achievements == nil {
		a.Achievements = []Achievement{}
	}
	if a.Contributions == nil {
		a.Contributions = []Contribution{}
	}
	if a.Skills == nil {
		a.Skills = []string{}
	}
	if a.SocialLinks == nil {
		a.SocialLinks = map[string]string{}
	}
}

type Repository interface {
	GetAggregate(ctx context.Context, userID uuid.UUID) (*Aggregate, error)
	ReplaceSection(ctx context.Context, userID uuid.UUID, key SectionKey, data any) error
}
