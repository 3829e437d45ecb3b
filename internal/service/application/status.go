package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/pkg/ctxutil"
)

// UpdateStatus moves an application to a new status and appends the history
// entry in the same transaction. The current status is re-read under a row
// lock; setting it again changes nothing and writes no history.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.NormalizedApplication, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row, err := s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, wrapOp("UpdateStatus", err)
	}

	prior := row.Application.Status
	if prior == input.Status {
		return s.normalizeOne(ctx, row)
	}

	changed := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.apps.GetStatusForUpdate(txCtx, input.ApplicationID)
		if err != nil {
			return fmt.Errorf("lock application: %w", err)
		}
		if current == input.Status {
			return nil
		}
		prior = current

		if err := s.apps.UpdateStatus(txCtx, input.ApplicationID, input.Status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if _, err := s.relations.AppendStatusHistory(txCtx, domain.StatusHistory{
			ID:            uuid.New(),
			ApplicationID: input.ApplicationID,
			Status:        input.Status,
			ChangedByID:   &adminID,
			Note:          trimOrNil(input.Note),
		}); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, wrapOp("UpdateStatus", err)
	}

	if changed {
		s.log.InfoContext(ctx, "application status changed",
			slog.String("application_id", input.ApplicationID.String()),
			slog.String("from", prior.String()),
			slog.String("to", input.Status.String()),
			slog.String("admin_id", adminID.String()),
		)
	}

	row, err = s.apps.GetByID(ctx, input.ApplicationID)
	if err != nil {
		return nil, wrapOp("UpdateStatus", err)
	}
	return s.normalizeOne(ctx, row)
}

// requireAdmin returns the caller's ID when the caller is an administrator.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
