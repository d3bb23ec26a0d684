package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type UpdateUsernameUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewUpdateUsernameUseCase(repo user.Repository, log logger.Logger) *UpdateUsernameUseCase {
	return &UpdateUsernameUseCase{userRepo: repo, logger: log}
}

type UpdateUsernameInput struct {
	UserID   uuid.UUID
	Username string
}

func (uc *UpdateUsernameUseCase) Execute(ctx context.Context, input UpdateUsernameInput) (*user.User, error) {

	ctx, span := tracer.Start(ctx, "UpdateUsername")
	defer span.End()

	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if msg := profile.ValidateUsername(u.Username, username); msg != "" {
		return nil, apperror.NewInvalidInput(msg, nil)
	}

	if err := uc.userRepo.UpdateUsername(ctx, u.ID, username); err != nil {
		span.RecordError(err)
		return nil, err
	}

	u.Username = username
	return u, nil
}
