//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/tdt-studio/portfolio-tracker/internal/adapter/postgres/testhelper"
	"github.com/tdt-studio/portfolio-tracker/internal/app"
	"github.com/tdt-studio/portfolio-tracker/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *miniredis.Miniredis
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// allowedEmails may register in every E2E test.
var allowedEmails = []string{
	"ann@example.com",
	"bob@example.com",
	"carol@example.com",
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and an in-memory Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
			AllowedEmails:  allowedEmails,
		},
		Projects: config.ProjectsConfig{CacheTTL: time.Minute, FetchTimeout: time.Second},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	handler, stop := app.NewHandler(cfg, logger, pool, pool, rdb)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Redis:  mr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

// restRequest sends a JSON request. body may be nil; token may be empty.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends a request, asserts the status and decodes the body into out
// (skipped when out is nil).
func doJSON(t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", method, path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

// registerAndLogin creates an account for email and returns its access token.
func registerAndLogin(t *testing.T, ts *testServer, email, name string) string {
	t.Helper()

	exists := false
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	require.NoError(t, err)

	if !exists {
		doJSON(t, ts, http.MethodPost, "/api/auth/register", "", map[string]string{
			"email": email, "password": "secret123", "name": name,
		}, http.StatusCreated, nil)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	doJSON(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "secret123",
	}, http.StatusOK, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

// createDomain creates a uniquely named domain and returns its slug.
func createDomain(t *testing.T, ts *testServer, token, prefix string) string {
	t.Helper()

	name := prefix + " " + strings.ToUpper(uuid.NewString()[:8])
	var d struct {
		Slug string `json:"slug"`
	}
	doJSON(t, ts, http.MethodPost, "/api/domains", token, map[string]string{
		"name": name, "theme": "Theme of " + name,
	}, http.StatusCreated, &d)
	return d.Slug
}
