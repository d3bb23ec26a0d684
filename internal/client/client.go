package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// credMode says how a request treats the stored credential.
type credMode int

const (
	credNone credMode = iota
	// credOptional attaches the token when one is stored. Servers treat
	// an absent or invalid token on these routes as an anonymous caller.
	credOptional
	// credRequired fails with ErrUnauthenticated before any network call
	// when no token is stored.
	credRequired
)

// TokenStore persists the session token between invocations.
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file, created with owner-only
// permissions.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// MemoryTokenStore holds the token in memory; useful for tests and one-shot
// tooling.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// Client talks to a profilehub server. It carries no timeouts of its own;
// deadlines come from the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// NewWithHTTPClient lets callers inject their own transport.
func NewWithHTTPClient(baseURL string, tokens TokenStore, httpClient *http.Client) *Client {
	c := New(baseURL, tokens)
	c.http = httpClient
	return c
}

// apiMessage is the server's generic {"message": ...} error body.
type apiMessage struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// do issues one request and returns the status code and raw response body.
// There are no retries; every call is a single round trip.
func (c *Client) do(ctx context.Context, method, path string, body any, cred credMode) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if cred != credNone {
		token, err := c.tokens.Token()
		if err != nil {
			return 0, nil, err
		}
		if token == "" && cred == credRequired {
			return 0, nil, ErrUnauthenticated
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

// decodeMessage extracts the server's message body, tolerating non-JSON
// responses.
func decodeMessage(data []byte) apiMessage {
	var m apiMessage
	_ = json.Unmarshal(data, &m)
	return m
}
