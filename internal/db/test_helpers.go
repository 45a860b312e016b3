package db

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fleetcard/authengine/internal/config"
	"github.com/google/uuid"
)

// PostgresTestEnv enables tests against the Postgres server described by the
// DB_* environment variables.
const PostgresTestEnv = "AUTHENGINE_TEST_POSTGRES"

// NewTestDB opens a migrated SQLite database in a temporary directory with a
// no-op logger. It is closed when the test ends.
func NewTestDB(t testing.TB) *DB {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "authengine.db"),
	}

	ctx := context.Background()
	database, err := Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck // test cleanup
	})

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return database
}

// NewPostgresTestDB opens a migrated Postgres database in a fresh schema that
// is dropped when the test ends. The test is skipped unless PostgresTestEnv is
// set.
func NewPostgresTestDB(t testing.TB) *DB {
	t.Helper()

	if os.Getenv(PostgresTestEnv) == "" {
		t.Skipf("%s not set", PostgresTestEnv)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load database config: %v", err)
	}
	dbCfg := cfg.Database
	dbCfg.Driver = config.DriverPostgres
	dbCfg.Schema = ""

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	admin, err := Connect(ctx, &dbCfg, logger)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	schema := "authengine_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := admin.ExecContext(ctx, "CREATE SCHEMA "+schema); err != nil {
		_ = admin.Close() //nolint:errcheck // test cleanup
		t.Fatalf("failed to create schema %s: %v", schema, err)
	}
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), "DROP SCHEMA "+schema+" CASCADE") //nolint:errcheck // test cleanup
		_ = admin.Close()                                                                  //nolint:errcheck // test cleanup
	})

	dbCfg.Schema = schema
	database, err := Connect(ctx, &dbCfg, logger)
	if err != nil {
		t.Fatalf("failed to connect to schema %s: %v", schema, err)
	}
	t.Cleanup(func() {
		_ = database.Close() //nolint:errcheck // test cleanup
	})

	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate schema %s: %v", schema, err)
	}
	return database
}
