package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

func ownedState(userID uuid.UUID) *ProfileState {
	state := &ProfileState{
		Username:  "jane",
		UserID:    userID,
		IsOwner:   true,
		Aggregate: *profile.EmptyAggregate(),
	}
	state.editing = map[profile.SectionKey]bool{}
	return state
}

func TestSaveSkillsRoundTrip(t *testing.T) {
	ownerID := uuid.New()
	var gotBody map[string][]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/skills/me", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"skillRecord": map[string]any{"skills": gotBody["skills"]},
		})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, ownerID)))
	c := New(srv.URL, tokens)

	state := ownedState(ownerID)
	state.ToggleEdit(profile.SectionSkills)

	err := c.SaveSection(context.Background(), state, profile.SectionSkills, []string{"Litigation", "Contracts"})
	require.NoError(t, err)

	// The payload travels wrapped, with the credential attached.
	assert.Equal(t, []string{"Litigation", "Contracts"}, gotBody["skills"])
	assert.NotEmpty(t, gotAuth)

	// The echoed value replaces the section and edit mode closes.
	assert.Equal(t, []string{"Litigation", "Contracts"}, state.Aggregate.Skills)
	assert.False(t, state.Editing(profile.SectionSkills))
}

func TestSaveRequiresOwnership(t *testing.T) {
	c := New("http://example.invalid", &MemoryTokenStore{})

	state := ownedState(uuid.New())
	state.IsOwner = false
	err := c.SaveSection(context.Background(), state, profile.SectionSkills, []string{})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	// Owner page but no credential.
	state.IsOwner = true
	err = c.SaveSection(context.Background(), state, profile.SectionSkills, []string{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSaveCredentialMustMatchProfile(t *testing.T) {
	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, uuid.New())))
	c := New("http://example.invalid", tokens)

	state := ownedState(uuid.New())
	err := c.SaveSection(context.Background(), state, profile.SectionSkills, []string{})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSaveServerRejectionKeepsLocalState(t *testing.T) {
	ownerID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Validation failed",
			"fields":  map[string]string{"0.degree": "Degree is required"},
		})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, ownerID)))
	c := New(srv.URL, tokens)

	state := ownedState(ownerID)
	state.ToggleEdit(profile.SectionEducation)

	err := c.SaveSection(context.Background(), state, profile.SectionEducation, []profile.Education{{}})
	require.Error(t, err)

	var se *SaveError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, profile.SectionEducation, se.Section)
	assert.Equal(t, "Degree is required", se.Fields["0.degree"])

	// Nothing applied, section still in edit mode.
	assert.Empty(t, state.Aggregate.Education)
	assert.True(t, state.Editing(profile.SectionEducation))
}

func TestSaveSocialLinksEnvelope(t *testing.T) {
	ownerID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "links")

		json.NewEncoder(w).Encode(map[string]any{
			"socialLinkRecord": map[string]any{"links": body["links"]},
		})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, ownerID)))
	c := New(srv.URL, tokens)

	state := ownedState(ownerID)
	err := c.SaveSection(context.Background(), state, profile.SectionSocialLinks,
		map[string]string{"github": "https://github.com/jane"})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/jane", state.Aggregate.SocialLinks["github"])
}
