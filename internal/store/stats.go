package store

import (
	"context"

	"github.com/phrazzld/practice-tracker/internal/domain"
)

// StatsStore defines the aggregate queries behind the reporting views.
type StatsStore interface {
	// CountByDifficulty returns one bucket per distinct difficulty,
	// ordered by difficulty.
	CountByDifficulty(ctx context.Context) ([]domain.DifficultyCount, error)

	// CountByLastReviewed returns one bucket per distinct last-reviewed day,
	// ordered by date ascending.
	CountByLastReviewed(ctx context.Context) ([]domain.DateCount, error)
}
