// Package application implements the Application repository using PostgreSQL.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var applicationColumns = []string{
	"id", "created_at", "updated_at", "created_by_id", "email", "status",
	"first_name", "last_name", "birth_date", "who_are_you", "phone_numbers", "country", "city", "where_are_you",
	"has_id_card_or_passport", "id_card_or_passport_or_receipt",
	"high_school_over", "high_school_gce_ol_probatoire_date", "high_school_gce_ol_probatoire_certificates",
	"high_school_gce_al_bac_date", "high_school_gce_al_bac_certificates",
	"university_student", "university_start_date", "university_end_date", "university_certificates",
	"meta_invited_statuses",
}

var ownerColumns = []string{
	"u.id AS owner_id",
	"u.email AS owner_email",
	"u.name AS owner_name",
	"u.role AS owner_role",
	"u.created_at AS owner_created_at",
	"u.updated_at AS owner_updated_at",
}

var documentMetaColumns = []string{"application_id", "public_url", "purpose", "value", "updated_at"}

// applicationRecord is one applications row joined with its owner.
type applicationRecord struct {
	ID          uuid.UUID                `db:"id"`
	CreatedAt   time.Time                `db:"created_at"`
	UpdatedAt   time.Time                `db:"updated_at"`
	CreatedByID *uuid.UUID               `db:"created_by_id"`
	Email       string                   `db:"email"`
	Status      domain.ApplicationStatus `db:"status"`

	FirstName                             string               `db:"first_name"`
	LastName                              string               `db:"last_name"`
	BirthDate                             *time.Time           `db:"birth_date"`
	WhoAreYou                             *string              `db:"who_are_you"`
	PhoneNumbers                          []domain.PhoneNumber `db:"phone_numbers"`
	Country                               string               `db:"country"`
	City                                  string               `db:"city"`
	WhereAreYou                           *string              `db:"where_are_you"`
	HasIDCardOrPassport                   bool                 `db:"has_id_card_or_passport"`
	IDCardOrPassportOrReceipt             []domain.DocumentRef `db:"id_card_or_passport_or_receipt"`
	HighSchoolOver                        bool                 `db:"high_school_over"`
	HighSchoolGceOLProbatoireDate         *time.Time           `db:"high_school_gce_ol_probatoire_date"`
	HighSchoolGceOLProbatoireCertificates []domain.DocumentRef `db:"high_school_gce_ol_probatoire_certificates"`
	HighSchoolGceALBACDate                *time.Time           `db:"high_school_gce_al_bac_date"`
	HighSchoolGceALBACCertificates        []domain.DocumentRef `db:"high_school_gce_al_bac_certificates"`
	UniversityStudent                     bool                 `db:"university_student"`
	UniversityStartDate                   *time.Time           `db:"university_start_date"`
	UniversityEndDate                     *time.Time           `db:"university_end_date"`
	UniversityCertificates                []domain.DocumentRef `db:"university_certificates"`

	InvitedStatuses map[domain.ApplicationStatus]bool `db:"meta_invited_statuses"`

	OwnerID        *uuid.UUID `db:"owner_id"`
	OwnerEmail     *string    `db:"owner_email"`
	OwnerName      *string    `db:"owner_name"`
	OwnerRole      *string    `db:"owner_role"`
	OwnerCreatedAt *time.Time `db:"owner_created_at"`
	OwnerUpdatedAt *time.Time `db:"owner_updated_at"`
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func selectApplications() sq.SelectBuilder {
	cols := make([]string, 0, len(applicationColumns)+len(ownerColumns))
	for _, c := range applicationColumns {
		cols = append(cols, "a."+c)
	}
	cols = append(cols, ownerColumns...)

	return psql.Select(cols...).
		From("applications a").
		LeftJoin("users u ON u.id = a.created_by_id")
}

// GetByID returns the application with the given ID regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ApplicationRow, error) {
	return r.getOne(ctx, selectApplications().Where(sq.Eq{"a.id": id}), id)
}

// GetOwned returns the application with the given ID only when it belongs to
// ownerID. A nil ownerID matches applications without an owner.
func (r *Repo) GetOwned(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*domain.ApplicationRow, error) {
	q := selectApplications().Where(sq.Eq{"a.id": id})
	if ownerID == nil {
		q = q.Where(sq.Eq{"a.created_by_id": nil})
	} else {
		q = q.Where(sq.Eq{"a.created_by_id": *ownerID})
	}
	return r.getOne(ctx, q, id)
}

// GetActionableByOwner returns the owner's most recently updated application
// that is still editable by the applicant.
func (r *Repo) GetActionableByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.ApplicationRow, error) {
	q := selectApplications().
		Where(sq.Eq{"a.created_by_id": ownerID}).
		Where(sq.Eq{"a.status": domain.EditableStatusesForApplicant}).
		OrderBy("a.updated_at DESC", "a.id")
	return r.getOne(ctx, q, ownerID)
}

// ListSubmittedByOwner returns the owner's applications that left DRAFT,
// newest first.
func (r *Repo) ListSubmittedByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ApplicationRow, error) {
	q := selectApplications().
		Where(sq.Eq{"a.created_by_id": ownerID}).
		Where(sq.NotEq{"a.status": domain.ApplicationStatusDraft}).
		OrderBy("a.created_at DESC", "a.id")
	return r.list(ctx, q, "applications of "+ownerID.String())
}

// ListByStatus returns every application currently in status.
func (r *Repo) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.ApplicationRow, error) {
	q := selectApplications().
		Where(sq.Eq{"a.status": status}).
		OrderBy("a.created_at", "a.id")
	return r.list(ctx, q, "applications in "+status.String())
}

// Search returns one page of applications matching the filter, newest first.
// The query is matched case-insensitively against last name, first name,
// who-are-you and where-are-you.
func (r *Repo) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.ApplicationRow, error) {
	q := selectApplications()

	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"a.last_name": pattern},
			sq.ILike{"a.first_name": pattern},
			sq.ILike{"a.who_are_you": pattern},
			sq.ILike{"a.where_are_you": pattern},
		})
	}

	q = q.OrderBy("a.created_at DESC", "a.id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	return r.list(ctx, q, "search")
}

func (r *Repo) getOne(ctx context.Context, q sq.SelectBuilder, id any) (*domain.ApplicationRow, error) {
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("application: build query: %w", err)
	}

	var rec applicationRecord
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rec, query, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	row := toDomainRow(rec)
	return &row, nil
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder, what string) ([]domain.ApplicationRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("application: build query: %w", err)
	}

	var recs []applicationRecord
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &recs, query, args...); err != nil {
		return nil, postgres.MapError(err, "application", what)
	}

	rows := make([]domain.ApplicationRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, toDomainRow(rec))
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application and returns it with its timestamps.
func (r *Repo) Create(ctx context.Context, app domain.Application) (*domain.Application, error) {
	values, err := columnValues(app.ApplicationColumns)
	if err != nil {
		return nil, fmt.Errorf("application.Create: %w", err)
	}

	status := app.Status
	if status == "" {
		status = domain.ApplicationStatusDraft
	}

	ins := psql.Insert("applications").
		SetMap(mergeMaps(map[string]any{
			"id":            app.ID,
			"created_by_id": app.CreatedByID,
			"email":         app.Email,
			"status":        status,
		}, values)).
		Suffix("RETURNING created_at, updated_at")

	query, args, err := ins.ToSql()
	if err != nil {
		return nil, fmt.Errorf("application.Create: build insert: %w", err)
	}

	out := app
	out.Status = status
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "application", app.ID)
	}
	return &out, nil
}

// GetStatusForUpdate returns the current status of an application and locks
// its row until the surrounding transaction ends.
func (r *Repo) GetStatusForUpdate(ctx context.Context, id uuid.UUID) (domain.ApplicationStatus, error) {
	query, args, err := psql.Select("status").
		From("applications").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("application.GetStatusForUpdate: build query: %w", err)
	}

	var status domain.ApplicationStatus
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&status); err != nil {
		return "", postgres.MapError(err, "application", id)
	}
	return status, nil
}

// Update overwrites email and every profile column of an existing application
// and bumps updated_at. The status column is written only when app.Status is
// set.
func (r *Repo) Update(ctx context.Context, app domain.Application) (*domain.Application, error) {
	values, err := columnValues(app.ApplicationColumns)
	if err != nil {
		return nil, fmt.Errorf("application.Update: %w", err)
	}

	upd := psql.Update("applications").
		SetMap(values).
		Set("email", app.Email).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": app.ID}).
		Suffix("RETURNING created_at, updated_at")
	if app.Status != "" {
		upd = upd.Set("status", app.Status)
	}

	query, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("application.Update: build update: %w", err)
	}

	out := app
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&out.CreatedAt, &out.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "application", app.ID)
	}
	return &out, nil
}

// UpdateStatus sets the current status of an application.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	query, args, err := psql.Update("applications").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("application.UpdateStatus: build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkInvited records that the notification for status was sent.
func (r *Repo) MarkInvited(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	query, args, err := psql.Update("applications").
		Set("meta_invited_statuses",
			sq.Expr("jsonb_set(COALESCE(meta_invited_statuses, '{}'::jsonb), ARRAY[?::text], 'true'::jsonb, true)", string(status))).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("application.MarkInvited: build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Touch bumps updated_at of an application.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update("applications").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("application.Touch: build update: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "application", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Document meta
// ---------------------------------------------------------------------------

// ListDocumentMeta returns the document annotations of the given
// applications, grouped by application ID. An empty id set issues no query.
func (r *Repo) ListDocumentMeta(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.DocumentMetaEntry, error) {
	out := make(map[uuid.UUID][]domain.DocumentMetaEntry)
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := psql.Select(documentMetaColumns...).
		From("application_document_meta").
		Where(sq.Eq{"application_id": ids}).
		OrderBy("application_id", "public_url", "purpose").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("application.ListDocumentMeta: build query: %w", err)
	}

	var entries []domain.DocumentMetaEntry
	if err := pgxscan.Select(ctx, r.db, &entries, query, args...); err != nil {
		return nil, postgres.MapError(err, "document_meta", fmt.Sprintf("%d applications", len(ids)))
	}

	for _, e := range entries {
		out[e.ApplicationID] = append(out[e.ApplicationID], e)
	}
	return out, nil
}

// GetDocumentMeta returns one document annotation.
func (r *Repo) GetDocumentMeta(ctx context.Context, applicationID uuid.UUID, publicURL string, purpose domain.DocumentMetaPurpose) (*domain.DocumentMetaEntry, error) {
	query, args, err := psql.Select(documentMetaColumns...).
		From("application_document_meta").
		Where(sq.Eq{"application_id": applicationID, "public_url": publicURL, "purpose": purpose}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("application.GetDocumentMeta: build query: %w", err)
	}

	var e domain.DocumentMetaEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &e, query, args...); err != nil {
		return nil, postgres.MapError(err, "document_meta", applicationID)
	}
	return &e, nil
}

// UpsertDocumentMeta creates or overwrites one document annotation.
func (r *Repo) UpsertDocumentMeta(ctx context.Context, entry domain.DocumentMetaEntry) (*domain.DocumentMetaEntry, error) {
	query, args, err := psql.Insert("application_document_meta").
		Columns("application_id", "public_url", "purpose", "value").
		Values(entry.ApplicationID, entry.PublicURL, entry.Purpose, entry.Value).
		Suffix(`ON CONFLICT (application_id, public_url, purpose)
			DO UPDATE SET value = EXCLUDED.value, updated_at = now()
			RETURNING ` + strings.Join(documentMetaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("application.UpsertDocumentMeta: build insert: %w", err)
	}

	var out domain.DocumentMetaEntry
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "document_meta", entry.ApplicationID)
	}
	return &out, nil
}

// MirrorDocumentStatus copies a review status onto the document rows of the
// application that carry the same public URL.
func (r *Repo) MirrorDocumentStatus(ctx context.Context, applicationID uuid.UUID, publicURL string, status domain.DocumentStatus) error {
	return r.mirror(ctx, applicationID, publicURL, "status", status)
}

// MirrorDocumentComment copies a reviewer comment onto the document rows of
// the application that carry the same public URL.
func (r *Repo) MirrorDocumentComment(ctx context.Context, applicationID uuid.UUID, publicURL string, comment string) error {
	return r.mirror(ctx, applicationID, publicURL, "reviewer_comment", comment)
}

func (r *Repo) mirror(ctx context.Context, applicationID uuid.UUID, publicURL, column string, value any) error {
	query, args, err := psql.Update("application_documents").
		Set(column, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"application_id": applicationID, "public_url": publicURL}).
		ToSql()
	if err != nil {
		return fmt.Errorf("application.mirror %s: build update: %w", column, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "application_documents", applicationID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDomainRow(rec applicationRecord) domain.ApplicationRow {
	app := domain.Application{
		ID:          rec.ID,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		CreatedByID: rec.CreatedByID,
		Email:       rec.Email,
		Status:      rec.Status,
		ApplicationColumns: domain.ApplicationColumns{
			FirstName:                             rec.FirstName,
			LastName:                              rec.LastName,
			BirthDate:                             rec.BirthDate,
			WhoAreYou:                             rec.WhoAreYou,
			PhoneNumbers:                          rec.PhoneNumbers,
			Country:                               rec.Country,
			City:                                  rec.City,
			WhereAreYou:                           rec.WhereAreYou,
			HasIDCardOrPassport:                   rec.HasIDCardOrPassport,
			IDCardOrPassportOrReceipt:             rec.IDCardOrPassportOrReceipt,
			HighSchoolOver:                        rec.HighSchoolOver,
			HighSchoolGceOLProbatoireDate:         rec.HighSchoolGceOLProbatoireDate,
			HighSchoolGceOLProbatoireCertificates: rec.HighSchoolGceOLProbatoireCertificates,
			HighSchoolGceALBACDate:                rec.HighSchoolGceALBACDate,
			HighSchoolGceALBACCertificates:        rec.HighSchoolGceALBACCertificates,
			UniversityStudent:                     rec.UniversityStudent,
			UniversityStartDate:                   rec.UniversityStartDate,
			UniversityEndDate:                     rec.UniversityEndDate,
			UniversityCertificates:                rec.UniversityCertificates,
		},
		InvitedStatuses: rec.InvitedStatuses,
	}

	row := domain.ApplicationRow{Application: app}
	if rec.OwnerID != nil {
		owner := &domain.User{ID: *rec.OwnerID, Name: rec.OwnerName}
		if rec.OwnerEmail != nil {
			owner.Email = *rec.OwnerEmail
		}
		if rec.OwnerRole != nil {
			owner.Role = domain.UserRole(*rec.OwnerRole)
		}
		if rec.OwnerCreatedAt != nil {
			owner.CreatedAt = *rec.OwnerCreatedAt
		}
		if rec.OwnerUpdatedAt != nil {
			owner.UpdatedAt = *rec.OwnerUpdatedAt
		}
		row.Owner = owner
	}
	return row
}

// columnValues maps profile columns to their SQL values. JSON arrays are
// encoded up front so a nil slice is stored as [] rather than NULL.
func columnValues(c domain.ApplicationColumns) (map[string]any, error) {
	phones, err := jsonArray(c.PhoneNumbers)
	if err != nil {
		return nil, fmt.Errorf("encode phone_numbers: %w", err)
	}
	idDocs, err := jsonArray(c.IDCardOrPassportOrReceipt)
	if err != nil {
		return nil, fmt.Errorf("encode id_card_or_passport_or_receipt: %w", err)
	}
	olCerts, err := jsonArray(c.HighSchoolGceOLProbatoireCertificates)
	if err != nil {
		return nil, fmt.Errorf("encode high_school_gce_ol_probatoire_certificates: %w", err)
	}
	alCerts, err := jsonArray(c.HighSchoolGceALBACCertificates)
	if err != nil {
		return nil, fmt.Errorf("encode high_school_gce_al_bac_certificates: %w", err)
	}
	uniCerts, err := jsonArray(c.UniversityCertificates)
	if err != nil {
		return nil, fmt.Errorf("encode university_certificates: %w", err)
	}

	return map[string]any{
		"first_name":                         c.FirstName,
		"last_name":                          c.LastName,
		"birth_date":                         c.BirthDate,
		"who_are_you":                        c.WhoAreYou,
		"phone_numbers":                      phones,
		"country":                            c.Country,
		"city":                               c.City,
		"where_are_you":                      c.WhereAreYou,
		"has_id_card_or_passport":            c.HasIDCardOrPassport,
		"id_card_or_passport_or_receipt":     idDocs,
		"high_school_over":                   c.HighSchoolOver,
		"high_school_gce_ol_probatoire_date": c.HighSchoolGceOLProbatoireDate,
		"high_school_gce_ol_probatoire_certificates": olCerts,
		"high_school_gce_al_bac_date":                c.HighSchoolGceALBACDate,
		"high_school_gce_al_bac_certificates":        alCerts,
		"university_student":                         c.UniversityStudent,
		"university_start_date":                      c.UniversityStartDate,
		"university_end_date":                        c.UniversityEndDate,
		"university_certificates":                    uniCerts,
	}, nil
}

func jsonArray[T any](items []T) (json.RawMessage, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

func mergeMaps(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
