// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "email", "name", "role", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.GetByID: build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users").
		Where("lower(email) = lower(?)", email).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.GetByEmail: build query: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// Upsert inserts the user or refreshes email and name of an existing one.
// The role of an existing user is never changed here.
func (r *Repo) Upsert(ctx context.Context, u domain.User) (*domain.User, error) {
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	query, args, err := psql.Insert("users").
		Columns("id", "email", "name", "role").
		Values(u.ID, u.Email, u.Name, role).
		Suffix(`ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name, updated_at = now()
			RETURNING ` + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user.Upsert: build query: %w", err)
	}

	var out domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &out, nil
}

// SetRole changes the role of the user with the given email. It returns
// domain.ErrNotFound when no user matches or the role is already set.
func (r *Repo) SetRole(ctx context.Context, email string, role domain.UserRole) error {
	query, args, err := psql.Update("users").
		Set("role", role).
		Set("updated_at", sq.Expr("now()")).
		Where("lower(email) = lower(?)", email).
		Where(sq.NotEq{"role": role}).
		ToSql()
	if err != nil {
		return fmt.Errorf("user.SetRole: build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}
