package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/config"
)

const (
	testImage    = "postgres:15-alpine"
	testDatabase = "vebal_sync_test"
	testUser     = "vebal"
	testPassword = "vebal"
)

// dockerSockets lists the unix sockets a docker daemon may listen on,
// DOCKER_HOST first.
func dockerSockets() []string {
	var socks []string
	if host, ok := strings.CutPrefix(os.Getenv("DOCKER_HOST"), "unix://"); ok {
		socks = append(socks, host)
	}
	return append(socks,
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	)
}

// RequireDockerAccess skips the test when no docker daemon socket can be dialed.
func RequireDockerAccess(t *testing.T) {
	t.Helper()
	if os.Getenv("DOCKER_HOST") != "" && !strings.HasPrefix(os.Getenv("DOCKER_HOST"), "unix://") {
		// Remote daemon; let testcontainers report connection problems.
		return
	}
	for _, sock := range dockerSockets() {
		conn, err := (&net.Dialer{Timeout: time.Second}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}
	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed test")
}

// SetupTestDB starts a throwaway postgres and returns a connection to it.
// The connection and the container are released by t.Cleanup.
func SetupTestDB(t *testing.T) *bun.DB {
	t.Helper()
	RequireDockerAccess(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db := connectWithRetry(t, &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	})
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// connectWithRetry covers the window in which the port is mapped but
// postgres still refuses connections.
func connectWithRetry(t *testing.T, cfg *config.DatabaseConfig) *bun.DB {
	t.Helper()
	var lastErr error
	backoff := 100 * time.Millisecond
	for attempt := 0; attempt < 8; attempt++ {
		db, err := ConnectDB(context.Background(), cfg, zap.NewNop())
		if err == nil {
			return db
		}
		lastErr = err
		time.Sleep(backoff)
		backoff *= 2
	}
	require.NoError(t, lastErr, "connect to test database")
	return nil
}

func catalogHas(t *testing.T, db *bun.DB, query string, args ...any) bool {
	t.Helper()
	var exists bool
	err := db.NewSelect().ColumnExpr("EXISTS ("+query+")", args...).Scan(context.Background(), &exists)
	require.NoError(t, err)
	return exists
}

// AssertTableExists fails the test when table is missing from the public schema.
func AssertTableExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if !catalogHas(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", table) {
		t.Errorf("table %s does not exist", table)
	}
}

// AssertTableNotExists fails the test when table is present in the public schema.
func AssertTableNotExists(t *testing.T, db *bun.DB, table string) {
	t.Helper()
	if catalogHas(t, db, "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?", table) {
		t.Errorf("table %s should not exist", table)
	}
}

// AssertIndexExists fails the test when index is missing from the public schema.
func AssertIndexExists(t *testing.T, db *bun.DB, index string) {
	t.Helper()
	if !catalogHas(t, db, "SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?", index) {
		t.Errorf("index %s does not exist", index)
	}
}

// AssertColumnType fails the test unless table.column has the given data_type,
// as reported by information_schema (e.g. "numeric", "uuid").
func AssertColumnType(t *testing.T, db *bun.DB, table, column, dataType string) {
	t.Helper()
	if !catalogHas(t, db,
		"SELECT 1 FROM information_schema.columns WHERE table_schema = 'public' AND table_name = ? AND column_name = ? AND data_type = ?",
		table, column, dataType) {
		t.Errorf("column %s.%s is not of type %s", table, column, dataType)
	}
}
