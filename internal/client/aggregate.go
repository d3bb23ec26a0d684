package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

// ProfileState is one loaded profile page: the aggregate, whose page it is,
// and which sections are currently in edit mode. Loading a profile replaces
// the whole state; nothing from a previously viewed profile survives.
type ProfileState struct {
	Username  string
	UserID    uuid.UUID
	IsOwner   bool
	Aggregate profile.Aggregate

	editing map[profile.SectionKey]bool
}

// Editing reports whether a section is in edit mode.
func (s *ProfileState) Editing(key profile.SectionKey) bool {
	return s.editing[key]
}

// ToggleEdit flips a section between view and edit mode. On a profile the
// viewer does not own this is a no-op; view mode is the only mode visitors
// get.
func (s *ProfileState) ToggleEdit(key profile.SectionKey) {
	if !s.IsOwner || !key.Valid() {
		return
	}
	s.editing[key] = !s.editing[key]
}

// CloseEdit returns a section to view mode.
func (s *ProfileState) CloseEdit(key profile.SectionKey) {
	delete(s.editing, key)
}

// aggregatePayload mirrors the server's wire shape, which wraps skills and
// social links one envelope deeper than the domain aggregate.
type aggregatePayload struct {
	Profile       profile.Profile        `json:"profile"`
	About         profile.About          `json:"about"`
	Education     []profile.Education    `json:"education"`
	Experience    []profile.Experience   `json:"experience"`
	Achievements  []profile.Achievement  `json:"achievements"`
	Contributions []profile.Contribution `json:"contributions"`
	Skills        struct {
		Skills []string `json:"skills"`
	} `json:"skills"`
	SocialLinks struct {
		Links map[string]string `json:"links"`
	} `json:"socialLinks"`
}

type aggregateResponse struct {
	Data aggregatePayload `json:"data"`
}

func (p aggregatePayload) toAggregate() profile.Aggregate {
	agg := profile.Aggregate{
		Profile:       p.Profile,
		About:         p.About,
		Education:     p.Education,
		Experience:    p.Experience,
		Achievements:  p.Achievements,
		Contributions: p.Contributions,
		Skills:        p.Skills.Skills,
		SocialLinks:   p.SocialLinks.Links,
	}
	agg.Normalize()
	return agg
}

// LoadProfile fetches the page state for one username. The username lookup
// happens first; when it fails with ErrProfileNotFound the aggregate endpoint
// is never called. Ownership is decided by comparing the stored credential's
// subject with the profile's user id.
func (c *Client) LoadProfile(ctx context.Context, username string) (*ProfileState, error) {
	rec, err := c.LookupUser(ctx, username)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("server returned an invalid user id %q", rec.ID)
	}

	status, data, err := c.do(ctx, http.MethodGet, "/profiledata/"+userID.String(), nil, credOptional)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrProfileDataNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("load profile data: %s", decodeMessage(data).Message)
	}

	var resp aggregateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode profile data: %w", err)
	}

	session := c.Session()

	return &ProfileState{
		Username:  rec.Username,
		UserID:    userID,
		IsOwner:   session != nil && session.UserID == userID,
		Aggregate: resp.Data.toAggregate(),
		editing:   map[profile.SectionKey]bool{},
	}, nil
}
