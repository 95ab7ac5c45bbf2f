package review

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/store"
)

// ProblemRepository defines the interface for repositories that can provide
// problem data and support transactions.
type ProblemRepository interface {
	// GetForUpdate retrieves a problem, locking its row where supported.
	GetForUpdate(ctx context.Context, id int64) (*domain.Problem, error)

	// UpdateReview writes the review state of a problem.
	UpdateReview(ctx context.Context, p *domain.Problem) error

	// WithTx returns a new repository instance that uses the provided transaction.
	WithTx(tx *sqlx.Tx) ProblemRepository

	// DB returns the underlying database connection.
	DB() *sqlx.DB
}

// NewProblemRepositoryAdapter creates a new adapter that allows a store.ProblemStore
// to be used where a ProblemRepository is expected.
func NewProblemRepositoryAdapter(problemStore store.ProblemStore, db *sqlx.DB) ProblemRepository {
	return &problemRepositoryAdapter{
		problemStore: problemStore,
		db:           db,
	}
}

// problemRepositoryAdapter adapts a store.ProblemStore to the ProblemRepository interface
type problemRepositoryAdapter struct {
	problemStore store.ProblemStore
	db           *sqlx.DB
}

// GetForUpdate implements ProblemRepository.GetForUpdate
func (a *problemRepositoryAdapter) GetForUpdate(ctx context.Context, id int64) (*domain.Problem, error) {
	return a.problemStore.GetForUpdate(ctx, id)
}

// UpdateReview implements ProblemRepository.UpdateReview
func (a *problemRepositoryAdapter) UpdateReview(ctx context.Context, p *domain.Problem) error {
	return a.problemStore.UpdateReview(ctx, p)
}

// WithTx implements ProblemRepository.WithTx
func (a *problemRepositoryAdapter) WithTx(tx *sqlx.Tx) ProblemRepository {
	return &problemRepositoryAdapter{
		problemStore: a.problemStore.WithTx(tx),
		db:           a.db,
	}
}

// DB implements ProblemRepository.DB
func (a *problemRepositoryAdapter) DB() *sqlx.DB {
	return a.db
}
