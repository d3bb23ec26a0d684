package directory

import (
	"context"

	"github.com/google/uuid"
)

// Entry is one row of a typeahead lookup table (an institution or a company).
type Entry struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
}

type Repository interface {
	ListInstitutions(ctx context.Context) ([]Entry, error)
	ListCompanies(ctx context.Context) ([]Entry, error)
}
