package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Fallback suggestion lists, used when the directory endpoints are
// unreachable so the typeahead fields still offer something.
var fallbackInstitutions = []string{
	"Harvard University",
	"Stanford University",
	"MIT",
	"Oxford University",
	"Cambridge University",
	"Yale University",
	"Princeton University",
	"Columbia University",
	"University of Chicago",
	"University of California, Berkeley",
}

var fallbackCompanies = []string{
	"Smith & Associates Law Firm",
	"Johnson Legal Group",
	"Williams & Partners",
	"Brown Law Offices",
	"Davis & Miller Attorneys",
	"Wilson Legal Services",
	"Taylor & Associates",
	"Anderson Law Group",
	"Thomas Legal Consultants",
	"Jackson & Moore Law Firm",
}

type directoryEntry struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Institutions returns institution names for the education typeahead. A
// failed fetch falls back to a built-in list rather than surfacing an error;
// the field is a convenience, not a gate. A server that answers with an
// empty directory is respected as-is.
func (c *Client) Institutions(ctx context.Context) []string {
	names, err := c.fetchDirectory(ctx, "/institutions", "institutions")
	if err != nil {
		return append([]string(nil), fallbackInstitutions...)
	}
	return names
}

// Companies returns company names for the experience typeahead, with the
// same fallback behavior as Institutions.
func (c *Client) Companies(ctx context.Context) []string {
	names, err := c.fetchDirectory(ctx, "/companies", "companies")
	if err != nil {
		return append([]string(nil), fallbackCompanies...)
	}
	return names
}

func (c *Client) fetchDirectory(ctx context.Context, path, field string) ([]string, error) {
	status, data, err := c.do(ctx, http.MethodGet, path, nil, credNone)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", field, status)
	}

	var resp map[string][]directoryEntry
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}

	entries := resp[field]
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names, nil
}
