package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryNeverHitsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewProfileSearcher(New(srv.URL, &MemoryTokenStore{}))
	_, err := s.Search(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	assert.False(t, called)
}

func TestSearchCarriesOnlyNonEmptyParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{"success": true, "users": []any{}})
	}))
	defer srv.Close()

	s := NewProfileSearcher(New(srv.URL, &MemoryTokenStore{}))

	_, err := s.Search(context.Background(), "jane", "")
	require.NoError(t, err)
	assert.Equal(t, "jane", gotQuery.Get("username"))
	assert.False(t, gotQuery.Has("city"))

	_, err = s.Search(context.Background(), "", "Hanoi")
	require.NoError(t, err)
	assert.False(t, gotQuery.Has("username"))
	assert.Equal(t, "Hanoi", gotQuery.Get("city"))
}

func TestSearchNoMatchesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "users": []any{}})
	}))
	defer srv.Close()

	s := NewProfileSearcher(New(srv.URL, &MemoryTokenStore{}))
	hits, err := s.Search(context.Background(), "nobody", "")
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.NotNil(t, hits)
}

func TestSearchSupersededResultIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool
	first.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if first.CompareAndSwap(true, false) {
			// First search stalls until the second one has finished.
			close(started)
			<-release
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"users": []map[string]string{
				{"username": "jane", "fullName": "Jane Doe"},
			},
		})
	}))
	defer srv.Close()

	s := NewProfileSearcher(New(srv.URL, &MemoryTokenStore{}))

	firstDone := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), "ja", "")
		firstDone <- err
	}()

	// Wait for the first request to reach the server, then issue the
	// newer search.
	<-started
	hits, err := s.Search(context.Background(), "jane", "")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	close(release)
	assert.ErrorIs(t, <-firstDone, ErrSearchSuperseded)
}

func TestSampleProfiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profiles", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"profiles": []map[string]string{
				{"username": "jane", "fullName": "Jane Doe", "city": "Hanoi"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, &MemoryTokenStore{})
	hits, err := c.SampleProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Jane Doe", hits[0].FullName)
}
