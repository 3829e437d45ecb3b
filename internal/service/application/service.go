// Package application implements the applicant workflow: saving applications
// with full relation replacement, composing the normalized read view, status
// changes and document reviews.
package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error)
	GetOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*domain.ApplicationRow, error)
	GetActionableByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.ApplicationRow, error)
	ListSubmittedByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ApplicationRow, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.ApplicationRow, error)

	GetStatusForUpdate(ctx context.Context, id uuid.UUID) (domain.ApplicationStatus, error)
	Create(ctx context.Context, app domain.Application) (*domain.Application, error)
	Update(ctx context.Context, app domain.Application) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	Touch(ctx context.Context, id uuid.UUID) error

	ListDocumentMeta(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.DocumentMetaEntry, error)
	GetDocumentMeta(ctx context.Context, applicationID uuid.UUID, publicURL string, purpose domain.DocumentMetaPurpose) (*domain.DocumentMetaEntry, error)
	UpsertDocumentMeta(ctx context.Context, entry domain.DocumentMetaEntry) (*domain.DocumentMetaEntry, error)
	MirrorDocumentStatus(ctx context.Context, applicationID uuid.UUID, publicURL string, status domain.DocumentStatus) error
	MirrorDocumentComment(ctx context.Context, applicationID uuid.UUID, publicURL string, comment string) error
}

type relationRepo interface {
	LoadByApplicationIDs(ctx context.Context, ids []uuid.UUID) (domain.Relations, error)
	ReplaceAll(ctx context.Context, applicationID uuid.UUID, children domain.ApplicationChildren) error
	AppendStatusHistory(ctx context.Context, entry domain.StatusHistory) (domain.StatusHistory, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options holds the admission-cycle settings of the service.
type Options struct {
	BirthDateFallback bool
	// Deadline closes new applications for non-admins. Zero means no deadline.
	Deadline time.Time
	Now      func() time.Time
}

// Service provides application workflow operations.
type Service struct {
	apps      applicationRepo
	relations relationRepo
	tx        txManager
	opts      Options
	log       *slog.Logger
}

// NewService creates a new Application service.
func NewService(
	log *slog.Logger,
	apps applicationRepo,
	relations relationRepo,
	tx txManager,
	opts Options,
) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		apps:      apps,
		relations: relations,
		tx:        tx,
		opts:      opts,
		log:       log.With("service", "application"),
	}
}

// normalizeRows loads relations and document annotations for rows and
// composes their read views in input order.
func (s *Service) normalizeRows(ctx context.Context, rows []domain.ApplicationRow) ([]domain.NormalizedApplication, error) {
	out := make([]domain.NormalizedApplication, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Application.ID)
	}

	var (
		relations domain.Relations
		meta      map[uuid.UUID][]domain.DocumentMetaEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		relations, err = s.relations.LoadByApplicationIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		meta, err = s.apps.ListDocumentMeta(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range rows {
		r.DocumentMeta = meta[r.Application.ID]
		out = append(out, NormalizeApplication(r, &relations))
	}
	return out, nil
}

func (s *Service) normalizeOne(ctx context.Context, row *domain.ApplicationRow) (*domain.NormalizedApplication, error) {
	apps, err := s.normalizeRows(ctx, []domain.ApplicationRow{*row})
	if err != nil {
		return nil, err
	}
	return &apps[0], nil
}
