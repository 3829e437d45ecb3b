package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      &name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedApplication inserts a bare application owned by ownerID (nil for an
// anonymous draft) in the given status.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, ownerID *uuid.UUID, status domain.ApplicationStatus) domain.Application {
	t.Helper()

	suffix := uniqueSuffix()
	app := domain.Application{
		ID:          uuid.New(),
		CreatedByID: ownerID,
		Email:       "applicant-" + suffix + "@example.com",
		Status:      status,
		ApplicationColumns: domain.ApplicationColumns{
			FirstName: "Ada",
			LastName:  "Applicant " + suffix,
			Country:   "Cameroon",
			City:      "Bangangte",
		},
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO applications (id, created_by_id, email, status, first_name, last_name, country, city)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		app.ID, app.CreatedByID, app.Email, app.Status, app.FirstName, app.LastName, app.Country, app.City,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}

// SeedPhone inserts one relational phone for an application.
func SeedPhone(t *testing.T, pool *pgxpool.Pool, applicationID uuid.UUID, number string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO application_phones (id, application_id, phone_number) VALUES ($1, $2, $3)`,
		id, applicationID, number,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPhone: %v", err)
	}
	return id
}

// CountRows returns the number of rows of table that belong to applicationID.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, applicationID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE application_id = $1`, applicationID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows(%s): %v", table, err)
	}
	return n
}
