package integration

import (
	"os"
	"sync"
	"testing"

	"careernode_backend/test/helpers"
)

var (
	testServer *helpers.TestServer
	serverOnce sync.Once
)

// GetTestServer returns the shared wired server. The suite needs a real
// postgres reachable through TEST_DATABASE_URL; without one it skips.
func GetTestServer(t *testing.T) *helpers.TestServer {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		testServer = helpers.NewTestServer(t, dsn)
	})

	return testServer
}
