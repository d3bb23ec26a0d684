package search

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/pkg/apperror"
)

var tracer = otel.Tracer("search_usecase")

const defaultLimit = 25

type SearchProfilesUseCase struct {
	repo search.Repository
}

func NewSearchProfilesUseCase(repo search.Repository) *SearchProfilesUseCase {
	return &SearchProfilesUseCase{repo: repo}
}

func (uc *SearchProfilesUseCase) Execute(ctx context.Context, q search.Query) ([]search.ProfileHit, error) {

	ctx, span := tracer.Start(ctx, "SearchProfiles")
	defer span.End()

	if q.Empty() {
		return nil, apperror.NewInvalidInput("at least one of name or city is required", nil)
	}
	return uc.repo.SearchUsers(ctx, q, defaultLimit)
}

// ExecuteDirectory serves the denormalized variant kept in sync by the
// worker; consumers accept eventual consistency in exchange for not touching
// the live tables.
func (uc *SearchProfilesUseCase) ExecuteDirectory(ctx context.Context, q search.Query) ([]search.ProfileHit, error) {

	ctx, span := tracer.Start(ctx, "SearchDirectory")
	defer span.End()

	if q.Empty() {
		return nil, apperror.NewInvalidInput("at least one of fullName or city is required", nil)
	}
	return uc.repo.SearchDirectory(ctx, q, defaultLimit)
}

func (uc *SearchProfilesUseCase) ExecuteSample(ctx context.Context, limit int) ([]search.ProfileHit, error) {
	if limit <= 0 {
		limit = 12
	}
	return uc.repo.SampleProfiles(ctx, limit)
}
