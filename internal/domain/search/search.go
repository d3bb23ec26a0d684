package search

import (
	"context"

	"github.com/google/uuid"
)

// ProfileHit is one row of a directory search result.
type ProfileHit struct {
	UserID       uuid.UUID `json:"-"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Title        string    `json:"title,omitempty"`
	City         string    `json:"city,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

type Query struct {
	Name string
	City string
}

func (q Query) Empty() bool {
	return q.Name == "" && q.City == ""
}

type Repository interface {
	// SearchUsers queries the live users/profiles tables.
	SearchUsers(ctx context.Context, q Query, limit int) ([]ProfileHit, error)
	// SearchDirectory queries the denormalized search_profiles table
	// maintained by the worker.
	SearchDirectory(ctx context.Context, q Query, limit int) ([]ProfileHit, error)
	// SampleProfiles returns recently updated public profiles for the
	// landing page slider.
	SampleProfiles(ctx context.Context, limit int) ([]ProfileHit, error)
	// UpsertDirectoryEntry refreshes one row of search_profiles.
	UpsertDirectoryEntry(ctx context.Context, hit ProfileHit) error
}
