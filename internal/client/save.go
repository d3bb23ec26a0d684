package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

// sectionRequestBody applies the per-section save envelope: skills and social
// links travel wrapped, everything else travels bare.
func sectionRequestBody(key profile.SectionKey, value any) any {
	switch key {
	case profile.SectionSkills:
		return map[string]any{"skills": value}
	case profile.SectionSocialLinks:
		return map[string]any{"links": value}
	default:
		return value
	}
}

// sectionResponseField names the key under which the server echoes each
// section's persisted value.
func sectionResponseField(key profile.SectionKey) string {
	switch key {
	case profile.SectionProfile:
		return "profile"
	case profile.SectionAbout:
		return "about"
	case profile.SectionEducation:
		return "updatedEducation"
	case profile.SectionExperience:
		return "updatedExperience"
	case profile.SectionAchievements:
		return "updatedCertifications"
	case profile.SectionContributions:
		return "updatedContributions"
	case profile.SectionSkills:
		return "skillRecord"
	case profile.SectionSocialLinks:
		return "socialLinkRecord"
	}
	return ""
}

// SaveSection replaces one section of the signed-in owner's profile in a
// single round trip and applies the server's echoed value into the state. On
// any failure the local aggregate is left untouched; there are no retries and
// no partial applies. A successful save returns the section to view mode.
func (c *Client) SaveSection(ctx context.Context, state *ProfileState, key profile.SectionKey, value any) error {
	if !key.Valid() {
		return fmt.Errorf("unknown section %q", key)
	}
	if !state.IsOwner {
		return ErrNotAuthorized
	}
	session := c.Session()
	if session == nil {
		return ErrUnauthenticated
	}
	if session.UserID != state.UserID {
		return ErrNotAuthorized
	}

	body := sectionRequestBody(key, value)
	status, data, err := c.do(ctx, http.MethodPut, "/"+string(key)+"/me", body, credRequired)
	if err != nil {
		return &SaveError{Section: key, Err: err}
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthenticated
	}
	if status != http.StatusOK {
		msg := decodeMessage(data)
		return &SaveError{Section: key, Message: msg.Message, Fields: msg.Fields}
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(data, &resp); err != nil {
		return &SaveError{Section: key, Err: fmt.Errorf("decode save response: %w", err)}
	}
	echoed, ok := resp[sectionResponseField(key)]
	if !ok {
		return &SaveError{Section: key, Err: fmt.Errorf("response missing %q", sectionResponseField(key))}
	}

	if err := applySection(&state.Aggregate, key, echoed); err != nil {
		return &SaveError{Section: key, Err: err}
	}
	state.CloseEdit(key)
	return nil
}

// applySection decodes the echoed value fully before touching the aggregate,
// so a malformed response cannot leave a half-applied section.
func applySection(agg *profile.Aggregate, key profile.SectionKey, raw json.RawMessage) error {
	switch key {
	case profile.SectionProfile:
		var v profile.Profile
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Profile = v
	case profile.SectionAbout:
		var v profile.About
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.About = v
	case profile.SectionEducation:
		var v []profile.Education
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Education = v
	case profile.SectionExperience:
		var v []profile.Experience
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Experience = v
	case profile.SectionAchievements:
		var v []profile.Achievement
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Achievements = v
	case profile.SectionContributions:
		var v []profile.Contribution
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Contributions = v
	case profile.SectionSkills:
		var v struct {
			Skills []string `json:"skills"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.Skills = v.Skills
	case profile.SectionSocialLinks:
		var v struct {
			Links map[string]string `json:"links"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		agg.SocialLinks = v.Links
	}
	agg.Normalize()
	return nil
}
