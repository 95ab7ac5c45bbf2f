package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// MigrationTableName is the goose bookkeeping table.
const MigrationTableName = "schema_migrations"

// goose keeps its dialect, filesystem and logger in package globals.
var gooseMu sync.Mutex

// Migrator applies the embedded migrations for one database handle.
type Migrator struct {
	db      *sqlx.DB
	dialect string
	dir     string
	logger  *slog.Logger
}

// NewMigrator selects the migration set matching the handle's driver.
func NewMigrator(db *sqlx.DB, logger *slog.Logger) (*Migrator, error) {
	m := &Migrator{db: db, logger: logger.With(slog.String("component", "migrations"))}

	switch db.DriverName() {
	case DriverSQLite:
		m.dialect, m.dir = "sqlite3", "migrations/sqlite"
	case DriverPostgres:
		m.dialect, m.dir = "postgres", "migrations/postgres"
	default:
		return nil, fmt.Errorf("no migrations for driver %q", db.DriverName())
	}
	return m, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", func() error {
		return goose.UpContext(ctx, m.db.DB, m.dir)
	})
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", func() error {
		return goose.DownContext(ctx, m.db.DB, m.dir)
	})
}

// Status logs the applied state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	return m.run(ctx, "status", func() error {
		return goose.StatusContext(ctx, m.db.DB, m.dir)
	})
}

// Version returns the current schema version (0 for an empty database).
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64
	err := m.run(ctx, "version", func() error {
		var err error
		version, err = goose.GetDBVersionContext(ctx, m.db.DB)
		return err
	})
	return version, err
}

func (m *Migrator) run(ctx context.Context, command string, fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(MigrationTableName)
	goose.SetLogger(&slogGooseLogger{logger: m.logger})
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	m.logger.InfoContext(ctx, "executing migrations",
		slog.String("command", command),
		slog.String("dialect", m.dialect))

	if err := fn(); err != nil {
		m.logger.ErrorContext(ctx, "migration command failed",
			slog.String("command", command),
			slog.String("error", err.Error()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}
	return nil
}

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info
func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(trimNewline(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
// Unlike the standard Fatalf behavior, this does NOT call os.Exit; the
// error is returned to the caller instead.
func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(trimNewline(fmt.Sprintf(format, v...)))
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\n")
}
