// Package notification sends the status-change emails to applicants in
// idempotent batches.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

type applicationRepo interface {
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationRow, error)
	MarkInvited(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
}

type mailSender interface {
	Send(ctx context.Context, msg domain.MailMessage) error
}

// DefaultConcurrency bounds the number of emails sent at once.
const DefaultConcurrency = 8

// Options holds sender identity and template settings.
type Options struct {
	From              string
	CC                string
	ReplyTo           string
	BaseURL           string
	InterviewSchedule string
	Concurrency       int
}

// Service sends notification batches.
type Service struct {
	apps      applicationRepo
	mailer    mailSender
	opts      Options
	templates map[domain.ApplicationStatus]mailTemplate
	log       *slog.Logger
}

// NewService creates a new Notification service. It fails only when the
// embedded templates cannot be parsed.
func NewService(log *slog.Logger, apps applicationRepo, mailer mailSender, opts Options) (*Service, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("notification.NewService: %w", err)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Service{
		apps:      apps,
		mailer:    mailer,
		opts:      opts,
		templates: templates,
		log:       log.With("service", "notification"),
	}, nil
}
