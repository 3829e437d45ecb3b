package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/pkg/ctxutil"
)

// Save creates or updates an application and fully replaces its child rows
// in one transaction. Anonymous callers may only touch applications without
// an owner. Non-admins cannot change applications that left the
// applicant-editable statuses.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.NormalizedApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var owner *uuid.UUID
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		owner = &userID
	}
	isAdmin := ctxutil.IsAdminCtx(ctx)
	now := s.opts.Now()

	cols, err := MapApplicationDataToColumns(input.Data, MapOptions{
		BirthDateFallback: s.opts.BirthDateFallback,
		Now:               now,
	})
	if err != nil {
		return nil, err
	}

	existing, err := s.findForSave(ctx, input.ID, owner, isAdmin)
	if err != nil {
		return nil, wrapOp("Save", err)
	}

	prior := domain.ApplicationStatusDraft
	if existing != nil {
		prior = existing.Application.Status
	} else if !isAdmin && !s.opts.Deadline.IsZero() && now.After(s.opts.Deadline) {
		return nil, domain.ErrApplicationsClosed
	}

	target, err := resolveSaveStatus(prior, input.Status, isAdmin)
	if err != nil {
		return nil, err
	}

	appID := uuid.New()
	switch {
	case existing != nil:
		appID = existing.Application.ID
	case input.ID != nil:
		appID = *input.ID
	}

	reviews := documentReviews{}
	if existing != nil {
		meta, err := s.apps.ListDocumentMeta(ctx, []uuid.UUID{appID})
		if err != nil {
			return nil, wrapOp("Save", err)
		}
		reviews = reviewsFromMeta(meta[appID])
	}
	if !isAdmin {
		input.Documents = withoutReviews(input.Documents)
	}

	children, err := deriveChildren(input, reviews)
	if err != nil {
		return nil, err
	}
	children.AssignApplicationID(appID)

	email := strings.TrimSpace(input.Email)
	if email == "" && existing != nil {
		email = existing.Application.Email
	}

	app := domain.Application{
		ID:                 appID,
		CreatedByID:        owner,
		Email:              email,
		Status:             target,
		ApplicationColumns: cols,
	}
	if existing != nil {
		app.CreatedByID = existing.Application.CreatedByID
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if existing == nil {
			if _, err := s.apps.Create(txCtx, app); err != nil {
				return fmt.Errorf("create application: %w", err)
			}
		} else {
			// An admin may have moved the application since it was read.
			current, err := s.apps.GetStatusForUpdate(txCtx, appID)
			if err != nil {
				return fmt.Errorf("lock application: %w", err)
			}
			if current != prior {
				if target, err = resolveSaveStatus(current, input.Status, isAdmin); err != nil {
					return err
				}
				prior = current
			}

			upd := app
			upd.Status = ""
			if target != prior {
				upd.Status = target
			}
			if _, err := s.apps.Update(txCtx, upd); err != nil {
				return fmt.Errorf("update application: %w", err)
			}
		}

		if err := s.relations.ReplaceAll(txCtx, appID, children); err != nil {
			return fmt.Errorf("replace relations: %w", err)
		}

		if target != prior {
			if _, err := s.relations.AppendStatusHistory(txCtx, domain.StatusHistory{
				ID:            uuid.New(),
				ApplicationID: appID,
				Status:        target,
				ChangedByID:   owner,
			}); err != nil {
				return fmt.Errorf("append status history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapOp("Save", err)
	}

	s.log.InfoContext(ctx, "application saved",
		slog.String("application_id", appID.String()),
		slog.Bool("created", existing == nil),
		slog.String("status", target.String()),
		slog.Bool("admin", isAdmin),
	)

	row, err := s.apps.GetByID(ctx, appID)
	if err != nil {
		return nil, wrapOp("Save", err)
	}
	view, err := s.normalizeOne(ctx, row)
	if err != nil {
		return nil, wrapOp("Save", err)
	}
	return view, nil
}

// findForSave returns the application a save with id would update, or nil
// when the save creates a new one. Admins reach every application, others
// only those they own (or, when anonymous, those without an owner).
func (s *Service) findForSave(ctx context.Context, id *uuid.UUID, owner *uuid.UUID, isAdmin bool) (*domain.ApplicationRow, error) {
	if id == nil {
		return nil, nil
	}

	var (
		row *domain.ApplicationRow
		err error
	)
	if isAdmin {
		row, err = s.apps.GetByID(ctx, *id)
	} else {
		row, err = s.apps.GetOwned(ctx, *id, owner)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// resolveSaveStatus returns the status a save leaves the application in when
// it currently has prior. Non-admins cannot save locked applications and may
// only pick the statuses an applicant controls.
func resolveSaveStatus(prior domain.ApplicationStatus, requested *domain.ApplicationStatus, isAdmin bool) (domain.ApplicationStatus, error) {
	if !isAdmin && !prior.EditableByApplicant() {
		return "", domain.ErrApplicationLocked
	}

	target := prior
	if requested != nil {
		target = *requested
	}
	if target != prior && !isAdmin && !domain.CanApplicantSetStatus(prior, target) {
		return "", fmt.Errorf("%w: status %s cannot be set by the applicant", domain.ErrForbidden, target)
	}
	return target, nil
}

// withoutReviews copies docs without the review fields an applicant must
// not set.
func withoutReviews(docs []DocumentInput) []DocumentInput {
	out := make([]DocumentInput, len(docs))
	for i, d := range docs {
		d.Status = nil
		d.ReviewerComment = nil
		out[i] = d
	}
	return out
}
