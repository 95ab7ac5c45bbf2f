package testdb

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/config"
	"github.com/phrazzld/practice-tracker/internal/platform/database"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// PostgresURLEnv names the variable that switches tests to PostgreSQL.
const PostgresURLEnv = "TRACKER_TEST_DB_URL"

// IsIntegrationTestEnvironment reports whether a PostgreSQL test database is configured.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv(PostgresURLEnv) != ""
}

// Config returns the database settings for the current test environment.
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if url := os.Getenv(PostgresURLEnv); url != "" {
		return config.DatabaseConfig{Driver: database.DriverPostgres, URL: url}
	}
	return config.DatabaseConfig{
		Driver: database.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "tracker_test.db"),
	}
}

// Open returns a migrated database handle that is closed when the test ends.
// On PostgreSQL the problems table is emptied first so tests start clean.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := database.Open(ctx, Config(t), logger)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close test database: %v", err)
		}
	})

	migrator, err := database.NewMigrator(db, logger)
	require.NoError(t, err)
	require.NoError(t, migrator.Up(ctx), "Failed to run migrations")

	if db.DriverName() == database.DriverPostgres {
		_, err := db.ExecContext(ctx, "TRUNCATE problems RESTART IDENTITY")
		require.NoError(t, err, "Failed to reset problems table")
	}

	return db
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes. This ensures test isolation and prevents side effects.
func WithTx(t *testing.T, db *sqlx.DB, fn func(t *testing.T, tx *sqlx.Tx)) {
	t.Helper()

	tx, err := db.Beginx()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CountProblems returns the number of rows in the problems table.
func CountProblems(t *testing.T, db sqlx.QueryerContext) int {
	t.Helper()

	var n int
	err := sqlx.GetContext(context.Background(), db, &n, "SELECT COUNT(*) FROM problems")
	require.NoError(t, err)
	return n
}
