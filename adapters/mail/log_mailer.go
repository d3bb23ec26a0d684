package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/nhattranq/profilehub/pkg/logger"
)

// LogMailer writes reset links to the log instead of sending mail. It stands
// in for a real delivery channel in development and single-host deployments.
type LogMailer struct {
	logger logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (m *LogMailer) SendResetLink(ctx context.Context, email, token string) error {
	m.logger.Info("password reset link issued",
		zap.String("email", email),
		zap.String("token", token),
	)
	return nil
}
