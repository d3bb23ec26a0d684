package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/internal/domain/user"
	"github.com/nhattranq/profilehub/pkg/apperror"
	"github.com/nhattranq/profilehub/pkg/auth"
	"github.com/nhattranq/profilehub/pkg/logger"
)

// ResetTokenStore holds one-shot reset tokens. Take must consume the token.
type ResetTokenStore interface {
	Put(ctx context.Context, token string, userID uuid.UUID) error
	Take(ctx context.Context, token string) (uuid.UUID, bool, error)
}

// ResetMailer delivers the reset link. The SMTP implementation lives with the
// deployment; tests use a recorder.
type ResetMailer interface {
	SendResetLink(ctx context.Context, email, token string) error
}

type PasswordResetUseCase struct {
	userRepo user.Repository
	tokens   ResetTokenStore
	mailer   ResetMailer
	logger   logger.Logger
}

func NewPasswordResetUseCase(repo user.Repository, tokens ResetTokenStore, mailer ResetMailer, log logger.Logger) *PasswordResetUseCase {
	return &PasswordResetUseCase{
		userRepo: repo,
		tokens:   tokens,
		mailer:   mailer,
		logger:   log,
	}
}

// ExecuteForgot always reports success to the caller so the endpoint cannot
// be used to enumerate accounts.
func (uc *PasswordResetUseCase) ExecuteForgot(ctx context.Context, email string) error {

	ctx, span := tracer.Start(ctx, "ForgotPassword")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		span.RecordError(err)
		return err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return apperror.NewInternal("failed to generate reset token", err)
	}
	token := hex.EncodeToString(buf)

	if err := uc.tokens.Put(ctx, token, u.ID); err != nil {
		span.RecordError(err)
		return apperror.NewInternal("failed to store reset token", err)
	}

	if err := uc.mailer.SendResetLink(ctx, u.Email, token); err != nil {
		uc.logger.Error("Failed to send reset email", err, zap.String("user_id", u.ID.String()))
		return apperror.NewInternal("failed to send reset email", err)
	}
	return nil
}

func (uc *PasswordResetUseCase) ExecuteReset(ctx context.Context, token, newPassword string) error {

	ctx, span := tracer.Start(ctx, "ResetPassword")
	defer span.End()

	if len(newPassword) < 6 {
		return apperror.NewInvalidInput("Password must be at least 6 characters long.", nil)
	}

	userID, ok, err := uc.tokens.Take(ctx, token)
	if err != nil {
		span.RecordError(err)
		return apperror.NewInternal("failed to look up reset token", err)
	}
	if !ok {
		return apperror.NewUnauthorized("invalid or expired reset token", nil)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
