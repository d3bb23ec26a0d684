package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// ProfileHit is one row of a search result.
type ProfileHit struct {
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Title        string `json:"title"`
	City         string `json:"city"`
	ProfileImage string `json:"profileImage"`
}

type searchResponse struct {
	Success  bool         `json:"success"`
	Users    []ProfileHit `json:"users"`
	Profiles []ProfileHit `json:"profiles"`
	Message  string       `json:"message"`
}

// ProfileSearcher issues profile searches with last-invocation-wins
// semantics: when several searches overlap, only the most recently issued
// one may deliver results, no matter the order responses arrive in.
type ProfileSearcher struct {
	client *Client

	mu  sync.Mutex
	seq uint64
}

func NewProfileSearcher(c *Client) *ProfileSearcher {
	return &ProfileSearcher{client: c}
}

func (s *ProfileSearcher) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

func (s *ProfileSearcher) current(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq == token
}

// searchQuery builds the query string, carrying only the non-empty
// parameters.
func searchQuery(nameParam, name, city string) string {
	q := url.Values{}
	if name != "" {
		q.Set(nameParam, name)
	}
	if city != "" {
		q.Set("city", city)
	}
	return q.Encode()
}

// Search queries the live profile tables by username and city. An entirely
// empty query fails with ErrEmptyQuery before any request is made. A result
// that arrives after a newer search was issued fails with
// ErrSearchSuperseded; an empty slice with a nil error is the genuine
// no-matches outcome.
func (s *ProfileSearcher) Search(ctx context.Context, name, city string) ([]ProfileHit, error) {
	if name == "" && city == "" {
		return nil, ErrEmptyQuery
	}
	token := s.begin()

	hits, err := s.client.searchProfiles(ctx, "/profiles/search?"+searchQuery("username", name, city))
	if !s.current(token) {
		return nil, ErrSearchSuperseded
	}
	return hits, err
}

// SearchDirectory queries the denormalized directory table by full name and
// city, with the same superseding rules as Search.
func (s *ProfileSearcher) SearchDirectory(ctx context.Context, fullName, city string) ([]ProfileHit, error) {
	if fullName == "" && city == "" {
		return nil, ErrEmptyQuery
	}
	token := s.begin()

	hits, err := s.client.searchProfiles(ctx, "/searchdata/search?"+searchQuery("fullName", fullName, city))
	if !s.current(token) {
		return nil, ErrSearchSuperseded
	}
	return hits, err
}

func (c *Client) searchProfiles(ctx context.Context, pathAndQuery string) ([]ProfileHit, error) {
	status, data, err := c.do(ctx, http.MethodGet, pathAndQuery, nil, credNone)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("search failed: %s", decodeMessage(data).Message)
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if resp.Users == nil {
		resp.Users = []ProfileHit{}
	}
	return resp.Users, nil
}

// SampleProfiles fetches the landing page selection of public profiles.
func (c *Client) SampleProfiles(ctx context.Context) ([]ProfileHit, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/profiles", nil, credNone)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list profiles: %s", decodeMessage(data).Message)
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode profiles response: %w", err)
	}
	if resp.Profiles == nil {
		resp.Profiles = []ProfileHit{}
	}
	return resp.Profiles, nil
}
