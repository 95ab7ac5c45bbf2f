package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/store"
)

const problemEntity = "problem"

// driverPostgres is the sqlx driver name of the pgx stdlib driver.
const driverPostgres = "pgx"

const selectProblems = `
	SELECT id, title, link, difficulty, notes, review_count, last_reviewed, next_review
	FROM problems
`

// ProblemStore implements the store.ProblemStore interface
// on top of any sqlx-supported driver.
type ProblemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProblemStore creates a new SQL implementation of the ProblemStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewProblemStore(db store.DBTX, logger *slog.Logger) *ProblemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProblemStore{
		db:     db,
		logger: logger.With(slog.String("component", "problem_store")),
	}
}

// Ensure ProblemStore implements store.ProblemStore interface
var _ store.ProblemStore = (*ProblemStore)(nil)

// WithTx implements store.ProblemStore.WithTx
func (s *ProblemStore) WithTx(tx *sqlx.Tx) store.ProblemStore {
	return &ProblemStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProblemStore.Create
func (s *ProblemStore) Create(ctx context.Context, p *domain.Problem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`
		INSERT INTO problems (title, link, difficulty, notes, review_count, last_reviewed, next_review)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := sqlx.GetContext(ctx, s.db, &id, query,
		p.Title,
		p.Link,
		p.Difficulty,
		p.Notes,
		p.ReviewCount,
		p.LastReviewed,
		p.NextReview,
	)
	if err != nil {
		log.Error("failed to create problem",
			slog.String("error", err.Error()),
			slog.String("title", p.Title))
		return store.NewStoreError(problemEntity, "create", "failed to insert problem", MapError(err))
	}

	p.ID = id
	log.Info("problem created successfully",
		slog.Int64("problem_id", p.ID),
		slog.String("next_review", p.NextReview.String()))
	return nil
}

// GetByID implements store.ProblemStore.GetByID
func (s *ProblemStore) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	return s.get(ctx, id, "get", "")
}

// GetForUpdate implements store.ProblemStore.GetForUpdate
// PostgreSQL takes a row lock. SQLite has no row locks; its single
// connection already serializes the surrounding transaction.
func (s *ProblemStore) GetForUpdate(ctx context.Context, id int64) (*domain.Problem, error) {
	suffix := ""
	if s.db.DriverName() == driverPostgres {
		suffix = " FOR UPDATE"
	}
	return s.get(ctx, id, "get_for_update", suffix)
}

func (s *ProblemStore) get(ctx context.Context, id int64, op, suffix string) (*domain.Problem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving problem by ID", slog.Int64("problem_id", id))

	var p domain.Problem
	query := s.db.Rebind(selectProblems + " WHERE id = ?" + suffix)
	if err := sqlx.GetContext(ctx, s.db, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("problem not found", slog.Int64("problem_id", id))
			return nil, store.ErrProblemNotFound
		}
		log.Error("failed to get problem by ID",
			slog.String("error", err.Error()),
			slog.Int64("problem_id", id))
		return nil, store.NewStoreError(problemEntity, op, "failed to query problem", MapError(err))
	}

	return &p, nil
}

// List implements store.ProblemStore.List
func (s *ProblemStore) List(ctx context.Context) ([]*domain.Problem, error) {
	return s.selectMany(ctx, "list", selectProblems+" ORDER BY id DESC")
}

// ListByDifficulty implements store.ProblemStore.ListByDifficulty
func (s *ProblemStore) ListByDifficulty(ctx context.Context, difficulty string) ([]*domain.Problem, error) {
	return s.selectMany(ctx, "list_by_difficulty",
		selectProblems+" WHERE difficulty = ? ORDER BY id DESC", difficulty)
}

// ListDue implements store.ProblemStore.ListDue
func (s *ProblemStore) ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error) {
	return s.selectMany(ctx, "list_due",
		selectProblems+" WHERE next_review = ? ORDER BY id DESC", date)
}

func (s *ProblemStore) selectMany(ctx context.Context, op, query string, args ...any) ([]*domain.Problem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	problems := []*domain.Problem{}
	if err := sqlx.SelectContext(ctx, s.db, &problems, s.db.Rebind(query), args...); err != nil {
		log.Error("failed to query problems",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError(problemEntity, op, "failed to query problems", MapError(err))
	}

	log.Debug("problems retrieved",
		slog.String("operation", op),
		slog.Int("count", len(problems)))
	return problems, nil
}

// UpdateDetails implements store.ProblemStore.UpdateDetails
func (s *ProblemStore) UpdateDetails(ctx context.Context, p *domain.Problem) error {
	query := `
		UPDATE problems
		SET title = ?, link = ?, difficulty = ?, notes = ?
		WHERE id = ?
	`
	return s.update(ctx, p.ID, "update_details", query,
		p.Title, p.Link, p.Difficulty, p.Notes, p.ID)
}

// UpdateReview implements store.ProblemStore.UpdateReview
func (s *ProblemStore) UpdateReview(ctx context.Context, p *domain.Problem) error {
	query := `
		UPDATE problems
		SET review_count = ?, last_reviewed = ?, next_review = ?
		WHERE id = ?
	`
	return s.update(ctx, p.ID, "update_review", query,
		p.ReviewCount, p.LastReviewed, p.NextReview, p.ID)
}

func (s *ProblemStore) update(ctx context.Context, id int64, op, query string, args ...any) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		log.Error("failed to update problem",
			slog.String("operation", op),
			slog.String("error", err.Error()),
			slog.Int64("problem_id", id))
		return store.NewStoreError(problemEntity, op, "failed to update problem", MapError(err))
	}

	if err := CheckRowsAffected(result, problemEntity); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("problem not found for update",
				slog.String("operation", op),
				slog.Int64("problem_id", id))
			return store.ErrProblemNotFound
		}
		return store.NewStoreError(problemEntity, op, "failed to read update result", err)
	}

	log.Info("problem updated successfully",
		slog.String("operation", op),
		slog.Int64("problem_id", id))
	return nil
}

// Delete implements store.ProblemStore.Delete
func (s *ProblemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind("DELETE FROM problems WHERE id = ?")
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		log.Error("failed to delete problem",
			slog.String("error", err.Error()),
			slog.Int64("problem_id", id))
		return store.NewStoreError(problemEntity, "delete", "failed to delete problem", MapError(err))
	}

	log.Info("problem deleted", slog.Int64("problem_id", id))
	return nil
}

// Each implements store.ProblemStore.Each
// The row cursor stays open while fn runs, so fn must not issue queries on
// a SQLite handle (it has a single connection).
func (s *ProblemStore) Each(ctx context.Context, fn func(*domain.Problem) error) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryxContext(ctx, selectProblems+" ORDER BY id ASC")
	if err != nil {
		log.Error("failed to open problem cursor", slog.String("error", err.Error()))
		return store.NewStoreError(problemEntity, "each", "failed to query problems", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var p domain.Problem
		if err := rows.StructScan(&p); err != nil {
			return store.NewStoreError(problemEntity, "each", "failed to scan problem", MapError(err))
		}
		if err := fn(&p); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return store.NewStoreError(problemEntity, "each", "failed to iterate problems", MapError(err))
	}
	return nil
}
