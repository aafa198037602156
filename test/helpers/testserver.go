package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"careernode_backend/internal/app"
	"careernode_backend/internal/config"
	"careernode_backend/internal/logger"
	"careernode_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer is a fully wired router plus a database handle for opening
// per-test transactions.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer builds the application against the test database.
// Migrations and seeding run once here; tests isolate themselves through
// rolled-back transactions, not through re-migration.
func NewTestServer(t *testing.T, dsn string) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	os.Setenv("DATABASE_URL", dsn)
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test-secret")
	}
	os.Setenv("SERVER_ENV", "test")

	config.LoadConfig()
	logger.Init("test")

	router, err := app.SetupRouter(config.GetConfig())
	require.NoError(t, err, "failed to set up router against test database")

	db, err := app.OpenDatabase(dsn)
	require.NoError(t, err, "failed to open test database")

	return &TestServer{Router: router, DB: db}
}

// BeginTx opens a transaction that rolls back when the test ends.
// SendRequest routes the request's database access through it.
func (s *TestServer) BeginTx(t *testing.T) *gorm.DB {
	t.Helper()

	tx := s.DB.Begin()
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// SendRequest performs an in-process HTTP request. The transaction rides
// in on the request context so DBMiddleware picks it up instead of the pool.
func (s *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest),
		"failed to decode response body: %s", w.Body.String())
}

// RequireStatus asserts the response status with the body in the failure
// message so a mismatch is diagnosable.
func RequireStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, w.Code, "unexpected status, body: %s", w.Body.String())
}
