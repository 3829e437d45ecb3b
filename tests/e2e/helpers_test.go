//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/gis-admissions-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/gis-admissions-backend/internal/app"
	authpkg "github.com/heartmarshall/gis-admissions-backend/internal/auth"
	"github.com/heartmarshall/gis-admissions-backend/internal/config"
	"github.com/heartmarshall/gis-admissions-backend/internal/domain"
	"github.com/heartmarshall/gis-admissions-backend/internal/transport/rest"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). SMTP and object storage are
// left unconfigured, so notification batches count every email as failed.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		SMTP:   config.SMTPConfig{From: "GIS <no-reply@gis.test>"},
		Notification: config.NotificationConfig{
			Concurrency:       4,
			BaseURL:           "https://apply.gis.test",
			InterviewSchedule: "on the 15th of August",
		},
	}

	svcs, err := app.NewServices(cfg, pool, logger)
	require.NoError(t, err)

	handler := app.NewHTTPHandler(cfg, svcs, rest.HealthCheck{Name: "database", Pinger: pool}, logger)
	t.Cleanup(handler.Close)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// tokenFor seeds a user with role and returns the user and a bearer token.
func (ts *testServer) tokenFor(t *testing.T, role domain.UserRole) (domain.User, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool, role)
	token, err := ts.jwt.GenerateAccessToken(user.ID, role)
	require.NoError(t, err)
	return user, token
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do followed by decoding the body into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, token, body)
	var out map[string]any
	if string(bytes.TrimSpace(raw)) != "null" {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}
