// Package relation loads and replaces the child rows of applications:
// program choices, educations, documents, phones, consents and status history.
package relation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tableProgramChoices = "application_program_choices"
	tableEducations     = "application_educations"
	tableDocuments      = "application_documents"
	tablePhones         = "application_phones"
	tableConsents       = "application_consents"
	tableStatusHistory  = "application_status_history"
)

var (
	programChoiceColumns = []string{"id", "application_id", "rank", "program_code", "campus", "start_term", "study_mode", "funding_type", "created_at", "updated_at"}
	educationColumns     = []string{"id", "application_id", "type", "school_name", "city", "country", "field_of_study", "start_date", "end_date", "completion_date", "status", "gpa", "candidate_number", "session_year", "created_at", "updated_at"}
	documentColumns      = []string{"id", "application_id", "education_id", "kind", "name", "public_url", "status", "reviewer_comment", "created_at", "updated_at"}
	phoneColumns         = []string{"id", "application_id", "phone_number", "whatsapp_call", "normal_call", "kind", "created_at"}
	consentColumns       = []string{"id", "application_id", "consent_type", "value", "granted_at", "version"}
	statusHistoryColumns = []string{"id", "application_id", "status", "changed_at", "changed_by_id", "note"}
)

// Repo provides relation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new relation repository. db is normally the pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// LoadByApplicationIDs fetches every child kind for the given applications,
// grouped by application ID. The six queries run concurrently on the pool
// and any failure fails the whole load. An empty id set issues no query.
func (r *Repo) LoadByApplicationIDs(ctx context.Context, ids []uuid.UUID) (domain.Relations, error) {
	rel := domain.NewRelations()
	if len(ids) == 0 {
		return rel, nil
	}

	var (
		choices   []domain.ProgramChoice
		educs     []domain.Education
		documents []domain.Document
		phones    []domain.Phone
		consents  []domain.Consent
		history   []domain.StatusHistory
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := r.selectByApplications(gctx, &choices, tableProgramChoices, programChoiceColumns, ids, "rank", "created_at"); err != nil {
			return fmt.Errorf("load program choices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.selectByApplications(gctx, &educs, tableEducations, educationColumns, ids, "created_at", "id"); err != nil {
			return fmt.Errorf("load educations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.selectByApplications(gctx, &documents, tableDocuments, documentColumns, ids, "created_at", "id"); err != nil {
			return fmt.Errorf("load documents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.selectByApplications(gctx, &phones, tablePhones, phoneColumns, ids, "created_at", "id"); err != nil {
			return fmt.Errorf("load phones: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.selectByApplications(gctx, &consents, tableConsents, consentColumns, ids, "granted_at", "id"); err != nil {
			return fmt.Errorf("load consents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := r.selectByApplications(gctx, &history, tableStatusHistory, statusHistoryColumns, ids, "changed_at", "id"); err != nil {
			return fmt.Errorf("load status history: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Relations{}, fmt.Errorf("relation.LoadByApplicationIDs: %w", err)
	}

	for _, c := range choices {
		rel.ProgramChoices[c.ApplicationID] = append(rel.ProgramChoices[c.ApplicationID], c)
	}
	for _, e := range educs {
		rel.Educations[e.ApplicationID] = append(rel.Educations[e.ApplicationID], e)
	}
	for _, d := range documents {
		rel.Documents[d.ApplicationID] = append(rel.Documents[d.ApplicationID], d)
	}
	for _, p := range phones {
		rel.Phones[p.ApplicationID] = append(rel.Phones[p.ApplicationID], p)
	}
	for _, c := range consents {
		rel.Consents[c.ApplicationID] = append(rel.Consents[c.ApplicationID], c)
	}
	for _, h := range history {
		rel.StatusHistory[h.ApplicationID] = append(rel.StatusHistory[h.ApplicationID], h)
	}

	return rel, nil
}

func (r *Repo) selectByApplications(ctx context.Context, dst any, table string, columns []string, ids []uuid.UUID, orderBy ...string) error {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"application_id": ids}).
		OrderBy(append([]string{"application_id"}, orderBy...)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	// The loader runs on r.db directly: a transaction cannot serve
	// concurrent queries.
	if err := pgxscan.Select(ctx, r.db, dst, query, args...); err != nil {
		return postgres.MapError(err, table, fmt.Sprintf("%d applications", len(ids)))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------
//
// Every Replace* call deletes the application's existing rows of one kind and
// inserts the new set. They use the transaction from ctx when present.

// ReplaceAll replaces every child kind of the application.
func (r *Repo) ReplaceAll(ctx context.Context, applicationID uuid.UUID, children domain.ApplicationChildren) error {
	if err := r.ReplaceProgramChoices(ctx, applicationID, children.ProgramChoices); err != nil {
		return err
	}
	if err := r.ReplaceEducations(ctx, applicationID, children.Educations); err != nil {
		return err
	}
	if err := r.ReplacePhones(ctx, applicationID, children.Phones); err != nil {
		return err
	}
	if err := r.ReplaceDocuments(ctx, applicationID, children.Documents); err != nil {
		return err
	}
	return r.ReplaceConsents(ctx, applicationID, children.Consents)
}

// ReplaceProgramChoices replaces the application's program choices.
func (r *Repo) ReplaceProgramChoices(ctx context.Context, applicationID uuid.UUID, rows []domain.ProgramChoice) error {
	ins := psql.Insert(tableProgramChoices).
		Columns("id", "application_id", "rank", "program_code", "campus", "start_term", "study_mode", "funding_type")
	for _, c := range rows {
		ins = ins.Values(c.ID, applicationID, c.Rank, c.ProgramCode, c.Campus, c.StartTerm, c.StudyMode, c.FundingType)
	}
	return r.replace(ctx, tableProgramChoices, applicationID, ins, len(rows))
}

// ReplaceEducations replaces the application's education entries.
func (r *Repo) ReplaceEducations(ctx context.Context, applicationID uuid.UUID, rows []domain.Education) error {
	ins := psql.Insert(tableEducations).
		Columns("id", "application_id", "type", "school_name", "city", "country", "field_of_study",
			"start_date", "end_date", "completion_date", "status", "gpa", "candidate_number", "session_year")
	for _, e := range rows {
		ins = ins.Values(e.ID, applicationID, e.Type, e.SchoolName, e.City, e.Country, e.FieldOfStudy,
			e.StartDate, e.EndDate, e.CompletionDate, e.Status, e.GPA, e.CandidateNumber, e.SessionYear)
	}
	return r.replace(ctx, tableEducations, applicationID, ins, len(rows))
}

// ReplaceDocuments replaces the application's documents. Educations must be
// replaced first so education_id references resolve.
func (r *Repo) ReplaceDocuments(ctx context.Context, applicationID uuid.UUID, rows []domain.Document) error {
	ins := psql.Insert(tableDocuments).
		Columns("id", "application_id", "education_id", "kind", "name", "public_url", "status", "reviewer_comment")
	for _, d := range rows {
		ins = ins.Values(d.ID, applicationID, d.EducationID, d.Kind, d.Name, d.PublicURL, d.Status, d.ReviewerComment)
	}
	return r.replace(ctx, tableDocuments, applicationID, ins, len(rows))
}

// ReplacePhones replaces the application's phone numbers.
func (r *Repo) ReplacePhones(ctx context.Context, applicationID uuid.UUID, rows []domain.Phone) error {
	ins := psql.Insert(tablePhones).
		Columns("id", "application_id", "phone_number", "whatsapp_call", "normal_call", "kind")
	for _, p := range rows {
		ins = ins.Values(p.ID, applicationID, p.PhoneNumber, p.WhatsappCall, p.NormalCall, p.Kind)
	}
	return r.replace(ctx, tablePhones, applicationID, ins, len(rows))
}

// ReplaceConsents replaces the application's consents. A nil GrantedAt is
// stored as the insertion time.
func (r *Repo) ReplaceConsents(ctx context.Context, applicationID uuid.UUID, rows []domain.Consent) error {
	ins := psql.Insert(tableConsents).
		Columns("id", "application_id", "consent_type", "value", "granted_at", "version")
	for _, c := range rows {
		ins = ins.Values(c.ID, applicationID, c.ConsentType, c.Value,
			sq.Expr("COALESCE(?::timestamptz, now())", c.GrantedAt), c.Version)
	}
	return r.replace(ctx, tableConsents, applicationID, ins, len(rows))
}

func (r *Repo) replace(ctx context.Context, table string, applicationID uuid.UUID, ins sq.InsertBuilder, n int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	del, args, err := psql.Delete(table).Where(sq.Eq{"application_id": applicationID}).ToSql()
	if err != nil {
		return fmt.Errorf("relation.replace %s: build delete: %w", table, err)
	}
	if _, err := q.Exec(ctx, del, args...); err != nil {
		return postgres.MapError(err, table, applicationID)
	}

	if n == 0 {
		return nil
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("relation.replace %s: build insert: %w", table, err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, applicationID)
	}

	return nil
}

// AppendStatusHistory inserts one status history entry. The table is
// append-only; there is no update or delete counterpart.
func (r *Repo) AppendStatusHistory(ctx context.Context, entry domain.StatusHistory) (domain.StatusHistory, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Insert(tableStatusHistory).
		Columns("id", "application_id", "status", "changed_by_id", "note").
		Values(entry.ID, entry.ApplicationID, entry.Status, entry.ChangedByID, entry.Note).
		Suffix("RETURNING changed_at").
		ToSql()
	if err != nil {
		return domain.StatusHistory{}, fmt.Errorf("relation.AppendStatusHistory: build insert: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&entry.ChangedAt); err != nil {
		return domain.StatusHistory{}, postgres.MapError(err, "status_history", entry.ApplicationID)
	}

	return entry, nil
}
