package sqlstore

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/store"
)

// StatsStore implements the store.StatsStore interface.
type StatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStatsStore creates a new SQL implementation of the StatsStore interface.
// If logger is nil, a default logger will be used.
func NewStatsStore(db store.DBTX, logger *slog.Logger) *StatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure StatsStore implements store.StatsStore interface
var _ store.StatsStore = (*StatsStore)(nil)

// CountByDifficulty implements store.StatsStore.CountByDifficulty
func (s *StatsStore) CountByDifficulty(ctx context.Context) ([]domain.DifficultyCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT difficulty, COUNT(*) AS count
		FROM problems
		GROUP BY difficulty
		ORDER BY difficulty
	`

	counts := []domain.DifficultyCount{}
	if err := sqlx.SelectContext(ctx, s.db, &counts, query); err != nil {
		log.Error("failed to count problems by difficulty", slog.String("error", err.Error()))
		return nil, store.NewStoreError("stats", "count_by_difficulty", "failed to aggregate problems", MapError(err))
	}
	return counts, nil
}

// CountByLastReviewed implements store.StatsStore.CountByLastReviewed
func (s *StatsStore) CountByLastReviewed(ctx context.Context) ([]domain.DateCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT last_reviewed, COUNT(*) AS count
		FROM problems
		GROUP BY last_reviewed
		ORDER BY last_reviewed
	`

	counts := []domain.DateCount{}
	if err := sqlx.SelectContext(ctx, s.db, &counts, query); err != nil {
		log.Error("failed to count problems by last review", slog.String("error", err.Error()))
		return nil, store.NewStoreError("stats", "count_by_last_reviewed", "failed to aggregate problems", MapError(err))
	}
	return counts, nil
}
