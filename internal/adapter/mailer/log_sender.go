package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// ErrDisabled is returned by LogSender for every message.
var ErrDisabled = errors.New("mailer: smtp disabled")

// LogSender writes messages to the log instead of delivering them. It is
// used when no SMTP URL is configured. Send always fails with ErrDisabled so
// callers never record an undelivered message as sent.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "mailer")}
}

// Send logs the envelope and subject of msg and returns ErrDisabled.
func (s *LogSender) Send(ctx context.Context, msg domain.MailMessage) error {
	s.log.WarnContext(ctx, "mail not sent: smtp disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return ErrDisabled
}
