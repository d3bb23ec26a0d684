package search

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/search"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/logger"
)

// SyncDirectoryUseCase refreshes one row of search_profiles from the live
// user and profile records. The worker runs it for every profile event.
type SyncDirectoryUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	searchRepo  search.Repository
	logger      logger.Logger
}

func NewSyncDirectoryUseCase(users user.Repository, profiles profile.Repository, searches search.Repository, log logger.Logger) *SyncDirectoryUseCase {
	return &SyncDirectoryUseCase{
		userRepo:    users,
		profileRepo: profiles,
		searchRepo:  searches,
		logger:      log,
	}
}

func (uc *SyncDirectoryUseCase) Execute(ctx context.Context, userID uuid.UUID) error {

	ctx, span := tracer.Start(ctx, "SyncDirectory")
	defer span.End()

	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Deleted between event and consumption; nothing to sync.
			uc.logger.Warn("Skipping directory sync for missing user", zap.String("user_id", userID.String()))
			return nil
		}
		span.RecordError(err)
		return err
	}

	agg, err := uc.profileRepo.GetAggregate(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return err
	}

	hit := search.ProfileHit{
		UserID:       u.ID,
		Username:     u.Username,
		FullName:     agg.Profile.FullName,
		Title:        agg.Profile.Bio,
		City:         agg.Profile.City,
		ProfileImage: agg.Profile.ProfileImage,
	}
	return uc.searchRepo.UpsertDirectoryEntry(ctx, hit)
}
