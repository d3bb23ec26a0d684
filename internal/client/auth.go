package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// UserRecord is the public shape of one account.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// SignUp registers an account and stores the returned session token.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*Session, error) {
	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, credNone)
	if err != nil {
		return nil, err
	}
	if status != http.StatusCreated {
		msg := decodeMessage(data)
		if len(msg.Fields) > 0 {
			return nil, &ValidationError{Fields: msg.Fields}
		}
		return nil, fmt.Errorf("signup failed: %s", msg.Message)
	}
	return c.adoptToken(data)
}

// SignIn exchanges credentials for a session token and stores it.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	}, credNone)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("signin failed: %s", decodeMessage(data).Message)
	}
	return c.adoptToken(data)
}

func (c *Client) adoptToken(data []byte) (*Session, error) {
	var resp tokenResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	session := ResolveSession(resp.Token)
	if session == nil {
		return nil, fmt.Errorf("server returned an unreadable token")
	}
	if err := c.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut drops the stored token. The server keeps no session state.
func (c *Client) SignOut() error {
	return c.tokens.Clear()
}

// LookupUser resolves a username to its account record.
func (c *Client) LookupUser(ctx context.Context, username string) (*UserRecord, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/api/auth/"+url.PathEscape(username), nil, credNone)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, ErrProfileNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("lookup user: %s", decodeMessage(data).Message)
	}

	var rec UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return &rec, nil
}

// ChangeUsername updates the signed-in user's routing key and returns the
// new record. Validation failures surface the server's message verbatim.
func (c *Client) ChangeUsername(ctx context.Context, username string) (*UserRecord, error) {
	status, data, err := c.do(ctx, http.MethodPut, "/api/auth/username/me", map[string]string{
		"username": username,
	}, credRequired)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if status != http.StatusOK {
		msg := decodeMessage(data)
		if len(msg.Fields) > 0 {
			return nil, &ValidationError{Fields: msg.Fields}
		}
		return nil, fmt.Errorf("change username: %s", msg.Message)
	}

	var rec UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode user record: %w", err)
	}
	return &rec, nil
}

// ForgotPassword requests a reset token for the given email. The returned
// message never reveals whether the email is registered.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": email,
	}, credNone)
	if err != nil {
		return "", err
	}
	msg := decodeMessage(data)
	if status != http.StatusOK {
		return "", fmt.Errorf("forgot password: %s", msg.Message)
	}
	return msg.Message, nil
}

// ResetPassword consumes a one-shot reset token and sets a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	status, data, err := c.do(ctx, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}, credNone)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("reset password: %s", decodeMessage(data).Message)
	}
	return nil
}
