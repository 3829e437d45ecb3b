package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// SendBatch emails every application currently in status that was not yet
// notified for it, then records the invited flag per application.
//
// A failure on one application is logged and counted; it never stops the
// others. Only a failure to list the applications is returned.
func (s *Service) SendBatch(ctx context.Context, status domain.ApplicationStatus) (domain.BatchResult, error) {
	result := domain.BatchResult{Status: status}

	tmpl, ok := s.templates[status]
	if !ok {
		return result, domain.NewValidationError("status", fmt.Sprintf("no notification exists for status %q", status))
	}

	rows, err := s.apps.ListByStatus(ctx, status)
	if err != nil {
		return result, fmt.Errorf("notification.SendBatch: %w", err)
	}
	result.Total = len(rows)

	var sent, failed atomic.Int64

	// The group context is never cancelled by a send failure because send
	// reports failures through the counters instead of returning them.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for _, row := range rows {
		if row.Application.InvitedStatuses[status] {
			result.Skipped++
			continue
		}
		app := row.Application
		g.Go(func() error {
			if err := s.send(gctx, tmpl, app, status); err != nil {
				failed.Add(1)
				s.log.ErrorContext(gctx, "notification failed",
					slog.String("application_id", app.ID.String()),
					slog.String("status", status.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("notification.SendBatch: %w", err)
	}

	result.Sent = int(sent.Load())
	result.Failed = int(failed.Load())

	s.log.InfoContext(ctx, "notification batch finished",
		slog.String("status", status.String()),
		slog.Int("total", result.Total),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *Service) send(ctx context.Context, tmpl mailTemplate, app domain.Application, status domain.ApplicationStatus) error {
	if strings.TrimSpace(app.Email) == "" {
		return errors.New("application has no email")
	}

	html, text, err := tmpl.render(s.templateData(app))
	if err != nil {
		return err
	}

	msg := domain.MailMessage{
		From:    s.opts.From,
		To:      app.Email,
		CC:      s.opts.CC,
		ReplyTo: s.opts.ReplyTo,
		Subject: tmpl.subject,
		HTML:    html,
		Text:    text,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	if err := s.apps.MarkInvited(ctx, app.ID, status); err != nil {
		return fmt.Errorf("mark invited: %w", err)
	}
	return nil
}

func (s *Service) templateData(app domain.Application) templateData {
	name := strings.TrimSpace(app.FirstName)
	if name == "" {
		name = "Applicant"
	}
	return templateData{
		FirstName:         name,
		FAQURL:            s.opts.BaseURL + "/res/faq",
		InterviewSchedule: s.opts.InterviewSchedule,
	}
}
