package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/pkg/auth"
)

func signedToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := auth.NewJWTService("secret", time.Hour).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

func TestLoadProfileUnknownUsernameSkipsAggregate(t *testing.T) {
	aggregateCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/nobody":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "User not found"})
		default:
			aggregateCalled = true
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	_, err := c.LoadProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.False(t, aggregateCalled, "aggregate endpoint must not be called for unknown usernames")
}

func TestLoadProfileOwnership(t *testing.T) {
	ownerID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/jane":
			json.NewEncoder(w).Encode(map[string]string{
				"id": ownerID.String(), "username": "jane", "email": "jane@example.com",
			})
		case "/profiledata/" + ownerID.String():
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{
					"profile": map[string]any{"fullName": "Jane Doe", "city": "Hanoi"},
					"skills":  map[string]any{"skills": []string{"Litigation"}},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	// Anonymous visitor: not owner, edit toggles are no-ops.
	c := New(srv.URL, &MemoryTokenStore{})
	state, err := c.LoadProfile(context.Background(), "jane")
	require.NoError(t, err)
	assert.False(t, state.IsOwner)
	state.ToggleEdit(profile.SectionAbout)
	assert.False(t, state.Editing(profile.SectionAbout))

	// Missing sections are defaulted, never nil.
	assert.NotNil(t, state.Aggregate.Education)
	assert.NotNil(t, state.Aggregate.SocialLinks)
	assert.Equal(t, []string{"Litigation"}, state.Aggregate.Skills)
	assert.Equal(t, "Jane Doe", state.Aggregate.Profile.FullName)

	// Signed-in owner: edit toggles work.
	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, ownerID)))
	c = New(srv.URL, tokens)

	state, err = c.LoadProfile(context.Background(), "jane")
	require.NoError(t, err)
	assert.True(t, state.IsOwner)
	state.ToggleEdit(profile.SectionAbout)
	assert.True(t, state.Editing(profile.SectionAbout))
	state.ToggleEdit(profile.SectionAbout)
	assert.False(t, state.Editing(profile.SectionAbout))
}

func TestLoadProfileDataNotFound(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/jane" {
			json.NewEncoder(w).Encode(map[string]string{"id": userID.String(), "username": "jane"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Profile data not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	_, err := c.LoadProfile(context.Background(), "jane")
	assert.ErrorIs(t, err, ErrProfileDataNotFound)
}
