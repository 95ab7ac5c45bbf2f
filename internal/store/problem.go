package store

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
)

// ProblemStore defines the interface for problem record persistence.
type ProblemStore interface {
	// Create saves a new problem and writes the assigned ID back into p.
	// Review state (count and both dates) is persisted as given; defaults are
	// the responsibility of domain.NewProblem.
	Create(ctx context.Context, p *domain.Problem) error

	// GetByID retrieves a problem by its ID.
	// Returns ErrProblemNotFound if the problem does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Problem, error)

	// GetForUpdate retrieves a problem with a row-level lock where the
	// database supports it (SELECT ... FOR UPDATE on PostgreSQL).
	// It should be used within a transaction when the row is about to be updated.
	// Returns ErrProblemNotFound if the problem does not exist.
	GetForUpdate(ctx context.Context, id int64) (*domain.Problem, error)

	// List returns every problem, newest first (id descending).
	List(ctx context.Context) ([]*domain.Problem, error)

	// ListByDifficulty returns problems whose difficulty equals the argument
	// exactly, newest first. No match yields an empty slice.
	ListByDifficulty(ctx context.Context, difficulty string) ([]*domain.Problem, error)

	// ListDue returns problems whose next review falls exactly on date.
	ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error)

	// UpdateDetails writes title, link, difficulty and notes of p.
	// Review state is left untouched.
	// Returns ErrProblemNotFound if the problem does not exist.
	UpdateDetails(ctx context.Context, p *domain.Problem) error

	// UpdateReview writes review count, last reviewed and next review of p
	// in a single statement.
	// Returns ErrProblemNotFound if the problem does not exist.
	UpdateReview(ctx context.Context, p *domain.Problem) error

	// Delete removes the problem with the given ID. Deleting an ID that does
	// not exist is not an error.
	Delete(ctx context.Context, id int64) error

	// Each calls fn for every problem in id-ascending order, one row at a
	// time. Iteration stops at the first error returned by fn, which is
	// returned unchanged.
	Each(ctx context.Context, fn func(*domain.Problem) error) error

	// WithTx returns a new ProblemStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	//
	// Example usage:
	//   err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
	//       txStore := problemStore.WithTx(tx)
	//       p, err := txStore.GetForUpdate(ctx, id)
	//       ...
	//       return txStore.UpdateReview(ctx, p)
	//   })
	WithTx(tx *sqlx.Tx) ProblemStore
}
