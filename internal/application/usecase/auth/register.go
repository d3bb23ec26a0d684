package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/domain/profile"
	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/auth"
	"github.com/nhattranq/profilehub/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
	User        *user.User
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {

	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	username := strings.ToLower(strings.TrimSpace(input.Username))
	if msg := profile.ValidateUsername("", username); msg != "" {
		return nil, apperror.NewInvalidInput(msg, nil)
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewInvalidInput("Password must be at least 6 characters long.", nil)
	}

	u := &user.User{
		ID:       uuid.New(),
		Username: username,
		Email:    strings.TrimSpace(input.Email),
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}
	u.PasswordHash = hash

	if err := uc.userRepo.Create(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token for new user", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &RegisterOutput{AccessToken: token, User: u}, nil
}
