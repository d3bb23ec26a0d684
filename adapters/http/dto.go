package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

// User DTOs

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}

// Aggregate DTOs. The wire shape wraps skills and social links one level
// deeper than the domain aggregate because that is what clients decode.

type skillsEnvelope struct {
	Skills []string `json:"skills"`
}

type socialLinksEnvelope struct {
	Links map[string]string `json:"links"`
}

type aggregateDTO struct {
	Profile       profile.Profile        `json:"profile"`
	About         profile.About          `json:"about"`
	Education     []profile.Education    `json:"education"`
	Experience    []profile.Experience   `json:"experience"`
	Achievements  []profile.Achievement  `json:"achievements"`
	Contributions []profile.Contribution `json:"contributions"`
	Skills        skillsEnvelope         `json:"skills"`
	SocialLinks   socialLinksEnvelope    `json:"socialLinks"`
}

func ToAggregateDTO(agg *profile.Aggregate) gin.H {
	return gin.H{
		"data": aggregateDTO{
			Profile:       agg.Profile,
			About:         agg.About,
			Education:     agg.Education,
			Experience:    agg.Experience,
			Achievements:  agg.Achievements,
			Contributions: agg.Contributions,
			Skills:        skillsEnvelope{Skills: agg.Skills},
			SocialLinks:   socialLinksEnvelope{Links: agg.SocialLinks},
		},
	}
}

// Per-section save bodies and response envelopes. The request body and the
// response field differ per section; both mappings are fixed tables, shared
// with the client SDK's coordinator.

func decodeSectionBody(key profile.SectionKey, body io.Reader) (any, error) {
	dec := json.NewDecoder(body)

	fail := func(err error) (any, error) {
		return nil, apperror.NewInvalidInput("invalid JSON body for section update", err)
	}

	switch key {
	case profile.SectionProfile:
		var p profile.Profile
		if err := dec.Decode(&p); err != nil {
			return fail(err)
		}
		return p, nil
	case profile.SectionAbout:
		var a profile.About
		if err := dec.Decode(&a); err != nil {
			return fail(err)
		}
		return a, nil
	case profile.SectionEducation:
		var list []profile.Education
		if err := dec.Decode(&list); err != nil {
			return fail(err)
		}
		return list, nil
	case profile.SectionExperience:
		var list []profile.Experience
		if err := dec.Decode(&list); err != nil {
			return fail(err)
		}
		return list, nil
	case profile.SectionAchievements:
		var list []profile.Achievement
		if err := dec.Decode(&list); err != nil {
			return fail(err)
		}
		return list, nil
	case profile.SectionContributions:
		var list []profile.Contribution
		if err := dec.Decode(&list); err != nil {
			return fail(err)
		}
		return list, nil
	case profile.SectionSkills:
		var env skillsEnvelope
		if err := dec.Decode(&env); err != nil {
			return fail(err)
		}
		if env.Skills == nil {
			env.Skills = []string{}
		}
		return env.Skills, nil
	case profile.SectionSocialLinks:
		var env socialLinksEnvelope
		if err := dec.Decode(&env); err != nil {
			return fail(err)
		}
		if env.Links == nil {
			env.Links = map[string]string{}
		}
		return env.Links, nil
	}
	return nil, apperror.NewInvalidInput("unknown profile section", nil)
}

func sectionResponseBody(key profile.SectionKey, value any) gin.H {
	switch key {
	case profile.SectionProfile:
		return gin.H{"profile": value}
	case profile.SectionAbout:
		return gin.H{"about": value}
	case profile.SectionEducation:
		return gin.H{"updatedEducation": value}
	case profile.SectionExperience:
		return gin.H{"updatedExperience": value}
	case profile.SectionAchievements:
		return gin.H{"updatedCertifications": value}
	case profile.SectionContributions:
		return gin.H{"updatedContributions": value}
	case profile.SectionSkills:
		return gin.H{"skillRecord": skillsEnvelope{Skills: value.([]string)}}
	case profile.SectionSocialLinks:
		return gin.H{"socialLinkRecord": socialLinksEnvelope{Links: value.(map[string]string)}}
	}
	return gin.H{}
}

// Search DTOs

type SearchHitDTO struct {
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Title        string `json:"title,omitempty"`
	City         string `json:"city,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

func ToSearchHitDTOs(hits []search.ProfileHit) []SearchHitDTO {
	dtos := make([]SearchHitDTO, len(hits))
	for i, h := range hits {
		dtos[i] = SearchHitDTO{
			Username:     h.Username,
			FullName:     h.FullName,
			Title:        h.Title,
			City:         h.City,
			ProfileImage: h.ProfileImage,
		}
	}
	return dtos
}
