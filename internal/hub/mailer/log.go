package mailer

import (
	"context"
	"log/slog"
)

// LogMailer writes the reset URL to the log instead of sending anything.
// Used in development where no SMTP relay is configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	m.Logger.Info("password reset requested (dev mailer, not sent)",
		slog.String("to", to),
		slog.String("reset_url", resetURL),
	)
	return nil
}
