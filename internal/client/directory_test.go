package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstitutionsFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/institutions", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"institutions": []map[string]string{
				{"_id": "00000000-0000-0000-0000-000000000001", "name": "Hanoi Law University"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	names := c.Institutions(context.Background())
	assert.Equal(t, []string{"Hanoi Law University"}, names)
}

func TestInstitutionsEmptyDirectoryStaysEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"institutions": []map[string]string{},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	names := c.Institutions(context.Background())
	assert.Empty(t, names, "a deliberately empty directory is not replaced by the fallback")
}

func TestInstitutionsFallBackWhenUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", &MemoryTokenStore{})
	names := c.Institutions(context.Background())
	assert.Contains(t, names, "MIT")
	assert.Len(t, names, 10)
}

func TestCompaniesFallBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	names := c.Companies(context.Background())
	assert.Contains(t, names, "Johnson Legal Group")
	assert.Len(t, names, 10)
}
