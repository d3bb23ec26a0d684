package client

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is the identity decoded from a stored token. The decode is
// unverified on purpose: the client only needs to know who the token claims
// to be; the server re-verifies the signature on every request.
type Session struct {
	UserID uuid.UUID
	Token  string
}

// ResolveSession decodes a token into a session. A missing, malformed, or
// claim-less token yields nil, which callers treat as an anonymous visitor.
func ResolveSession(token string) *Session {
	if token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}

	for _, key := range []string{"id", "_id", "sub"} {
		raw, ok := claims[key].(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		return &Session{UserID: id, Token: token}
	}
	return nil
}

// Session returns the current session, or nil when no valid token is stored.
func (c *Client) Session() *Session {
	token, err := c.tokens.Token()
	if err != nil {
		return nil
	}
	return ResolveSession(token)
}
