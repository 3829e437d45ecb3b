package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// GetDocumentComment returns the reviewer comment of a document, or nil when
// none was recorded or the application is not visible to the caller.
func (s *Service) GetDocumentComment(ctx context.Context, input DocumentRefInput) (*string, error) {
	value, err := s.getDocumentMeta(ctx, input, domain.DocumentMetaComment)
	if err != nil {
		return nil, wrapOp("GetDocumentComment", err)
	}
	return value, nil
}

// GetDocumentStatus returns the review status of a document, or nil when
// none was recorded or the application is not visible to the caller.
func (s *Service) GetDocumentStatus(ctx context.Context, input DocumentRefInput) (*domain.DocumentStatus, error) {
	value, err := s.getDocumentMeta(ctx, input, domain.DocumentMetaStatus)
	if err != nil {
		return nil, wrapOp("GetDocumentStatus", err)
	}
	if value == nil {
		return nil, nil
	}
	status := domain.DocumentStatus(*value)
	return &status, nil
}

// SetDocumentComment records a reviewer comment for a document and copies
// it onto the document rows with the same URL.
func (s *Service) SetDocumentComment(ctx context.Context, input SetDocumentCommentInput) (string, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return "", err
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	comment := strings.TrimSpace(input.Comment)
	err := s.setDocumentMeta(ctx, input.DocumentRefInput, domain.DocumentMetaComment, comment,
		func(txCtx context.Context, ref DocumentRefInput) error {
			return s.apps.MirrorDocumentComment(txCtx, ref.ApplicationID, ref.PublicURL, comment)
		})
	if err != nil {
		return "", wrapOp("SetDocumentComment", err)
	}
	return comment, nil
}

// SetDocumentStatus records a review status for a document and copies it
// onto the document rows with the same URL.
func (s *Service) SetDocumentStatus(ctx context.Context, input SetDocumentStatusInput) (domain.DocumentStatus, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return "", err
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	err := s.setDocumentMeta(ctx, input.DocumentRefInput, domain.DocumentMetaStatus, input.Status.String(),
		func(txCtx context.Context, ref DocumentRefInput) error {
			return s.apps.MirrorDocumentStatus(txCtx, ref.ApplicationID, ref.PublicURL, input.Status)
		})
	if err != nil {
		return "", wrapOp("SetDocumentStatus", err)
	}
	return input.Status, nil
}

func (s *Service) getDocumentMeta(ctx context.Context, input DocumentRefInput, purpose domain.DocumentMetaPurpose) (*string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row, err := s.accessibleRow(ctx, input.ApplicationID)
	if err != nil || row == nil {
		return nil, err
	}

	entry, err := s.apps.GetDocumentMeta(ctx, input.ApplicationID, strings.TrimSpace(input.PublicURL), purpose)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.Value, nil
}

func (s *Service) setDocumentMeta(
	ctx context.Context,
	ref DocumentRefInput,
	purpose domain.DocumentMetaPurpose,
	value string,
	mirror func(ctx context.Context, ref DocumentRefInput) error,
) error {
	ref.PublicURL = strings.TrimSpace(ref.PublicURL)

	if _, err := s.apps.GetByID(ctx, ref.ApplicationID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.apps.UpsertDocumentMeta(txCtx, domain.DocumentMetaEntry{
			ApplicationID: ref.ApplicationID,
			PublicURL:     ref.PublicURL,
			Purpose:       purpose,
			Value:         value,
		}); err != nil {
			return fmt.Errorf("upsert document %s: %w", purpose, err)
		}
		if err := mirror(txCtx, ref); err != nil {
			return fmt.Errorf("mirror document %s: %w", purpose, err)
		}
		if err := s.apps.Touch(txCtx, ref.ApplicationID); err != nil {
			return fmt.Errorf("touch application: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "document review recorded",
		slog.String("application_id", ref.ApplicationID.String()),
		slog.String("purpose", purpose.String()),
		slog.String("public_url", ref.PublicURL),
	)
	return nil
}
