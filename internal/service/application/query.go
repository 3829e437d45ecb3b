package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/pkg/ctxutil"
)

// Get returns one application visible to the caller: any application for an
// admin, otherwise only the caller's own. Absent applications yield nil.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.NormalizedApplication, error) {
	row, err := s.accessibleRow(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}

	view, err := s.normalizeOne(ctx, row)
	if err != nil {
		return nil, wrapOp("Get", err)
	}
	return view, nil
}

// Mine returns the caller's applications that left DRAFT.
func (s *Service) Mine(ctx context.Context) ([]domain.NormalizedApplication, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.apps.ListSubmittedByOwner(ctx, userID)
	if err != nil {
		return nil, wrapOp("Mine", err)
	}

	out, err := s.normalizeRows(ctx, rows)
	if err != nil {
		return nil, wrapOp("Mine", err)
	}
	return out, nil
}

// Draft returns the caller's application that is still editable by the
// applicant, or nil when there is none.
func (s *Service) Draft(ctx context.Context) (*domain.NormalizedApplication, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	row, err := s.apps.GetActionableByOwner(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapOp("Draft", err)
	}

	view, err := s.normalizeOne(ctx, row)
	if err != nil {
		return nil, wrapOp("Draft", err)
	}
	return view, nil
}

// Search returns one page of applications grouped by input.GroupBy. Groups
// keep the order in which their first application appears on the page.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.ApplicationGroup, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
			return nil, domain.ErrUnauthorized
		}
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	size := input.Size
	if size == 0 {
		size = DefaultPageSize
	}

	rows, err := s.apps.Search(ctx, domain.SearchFilter{
		Query:  input.Query,
		Limit:  size,
		Offset: input.Page * size,
	})
	if err != nil {
		return nil, wrapOp("Search", err)
	}

	apps, err := s.normalizeRows(ctx, rows)
	if err != nil {
		return nil, wrapOp("Search", err)
	}

	return groupApplications(apps, input.GroupBy), nil
}

func groupApplications(apps []domain.NormalizedApplication, groupBy string) []domain.ApplicationGroup {
	groups := []domain.ApplicationGroup{}
	index := map[string]int{}
	for _, app := range apps {
		key := groupKey(app, groupBy)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.ApplicationGroup{Key: key})
		}
		groups[i].Applications = append(groups[i].Applications, app)
	}
	return groups
}

// accessibleRow loads an application the caller may read. Absent or foreign
// applications yield nil without error.
func (s *Service) accessibleRow(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		row *domain.ApplicationRow
		err error
	)
	if ctxutil.IsAdminCtx(ctx) {
		row, err = s.apps.GetByID(ctx, id)
	} else {
		row, err = s.apps.GetOwned(ctx, id, &userID)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapOp("load application", err)
	}
	return row, nil
}
