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
)

func TestChangeUsernameCallsRenameEndpoint(t *testing.T) {
	userID := uuid.New()
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/auth/username/me", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"id":       userID.String(),
			"username": gotBody["username"],
			"email":    "jane@example.com",
		})
	}))
	defer srv.Close()

	tokens := &MemoryTokenStore{}
	require.NoError(t, tokens.Save(signedToken(t, userID)))
	c := New(srv.URL, tokens)

	rec, err := c.ChangeUsername(context.Background(), "jane.doe-2")
	require.NoError(t, err)

	assert.Equal(t, "jane.doe-2", gotBody["username"])
	assert.Equal(t, "jane.doe-2", rec.Username)
}

func TestChangeUsernameRequiresCredential(t *testing.T) {
	c := New("http://example.invalid", &MemoryTokenStore{})

	_, err := c.ChangeUsername(context.Background(), "jane")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
