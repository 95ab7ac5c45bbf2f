package review

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/domain/srs"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*reviewServiceImpl)(nil)

// reviewServiceImpl implements the Service interface.
type reviewServiceImpl struct {
	problemRepo ProblemRepository
	srsService  srs.Service
	now         func() time.Time
	logger      *slog.Logger
}

// NewService creates a new review Service implementation.
// now supplies the current time; nil means time.Now.
func NewService(
	problemRepo ProblemRepository,
	srsService srs.Service,
	now func() time.Time,
	logger *slog.Logger,
) Service {
	if problemRepo == nil {
		panic("problemRepo cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		problemRepo: problemRepo,
		srsService:  srsService,
		now:         now,
		logger:      logger.With(slog.String("component", "review_service")),
	}
}

// MarkReviewed implements Service.MarkReviewed.
func (s *reviewServiceImpl) MarkReviewed(ctx context.Context, id int64) (*domain.Problem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	today := domain.DateOf(s.now())

	log.Debug("processing review",
		slog.Int64("problem_id", id),
		slog.String("today", today.String()))

	var reviewed *domain.Problem
	err := store.RunInTransaction(ctx, s.problemRepo.DB(), func(ctx context.Context, tx *sqlx.Tx) error {
		txRepo := s.problemRepo.WithTx(tx)

		current, err := txRepo.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("problem not found for review", slog.Int64("problem_id", id))
				return ErrProblemNotFound
			}
			return NewMarkReviewedError("failed to get problem", err)
		}

		next, err := s.srsService.CalculateReview(current, today)
		if err != nil {
			return NewMarkReviewedError("failed to calculate next review", err)
		}

		if err := txRepo.UpdateReview(ctx, next); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProblemNotFound
			}
			return NewMarkReviewedError("failed to update review state", err)
		}

		reviewed = next
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrProblemNotFound) {
			log.Error("failed to mark problem reviewed",
				slog.String("error", err.Error()),
				slog.Int64("problem_id", id))
		}
		return nil, err
	}

	log.Info("problem reviewed",
		slog.Int64("problem_id", id),
		slog.Int("review_count", reviewed.ReviewCount),
		slog.String("next_review", reviewed.NextReview.String()))
	return reviewed, nil
}
