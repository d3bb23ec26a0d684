package profile

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

var tracer = otel.Tracer("profile_usecase")

// AggregateCache is the read-through cache in front of the section store.
// Implementations must treat failures as misses.
type AggregateCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*profile.Aggregate, bool)
	Set(ctx context.Context, userID uuid.UUID, agg *profile.Aggregate)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type GetAggregateUseCase struct {
	profileRepo profile.Repository
	cache       AggregateCache
}

func NewGetAggregateUseCase(repo profile.Repository, cache AggregateCache) *GetAggregateUseCase {
	return &GetAggregateUseCase{profileRepo: repo, cache: cache}
}

type GetAggregateInput struct {
	UserID uuid.UUID
	// Owner requests bypass the cache so an owner always reads their own
	// latest write.
	BypassCache bool
}

func (uc *GetAggregateUseCase) Execute(ctx context.Context, input GetAggregateInput) (*profile.Aggregate, error) {

	ctx, span := tracer.Start(ctx, "GetAggregate")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID.String()))

	if !input.BypassCache && uc.cache != nil {
		if agg, ok := uc.cache.Get(ctx, input.UserID); ok {
			return agg, nil
		}
	}

	agg, err := uc.profileRepo.GetAggregate(ctx, input.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, input.UserID, agg)
	}
	return agg, nil
}
