// Package report provides the read-only views over the problem collection:
// aggregate counts for charts, the due-today list and the full export.
package report

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/phrazzld/practice-tracker/internal/store"
	"github.com/samber/lo"
)

// ExportHeader is the first row of every export.
var ExportHeader = []string{
	"ID", "Title", "Link", "Difficulty", "Notes", "Review_Count", "Last_Reviewed", "Next_Review",
}

// ProblemSource is the subset of store.ProblemStore the reports read from.
type ProblemSource interface {
	ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error)
	Each(ctx context.Context, fn func(*domain.Problem) error) error
}

// Chart is a count series shaped for charting: Labels[i] has Counts[i].
type Chart struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// Service exposes the reporting views.
type Service interface {
	// CountsByDifficulty returns the number of problems per difficulty.
	CountsByDifficulty(ctx context.Context) ([]domain.DifficultyCount, error)

	// CountsByLastReviewed returns the number of problems per last-reviewed
	// day, oldest day first.
	CountsByLastReviewed(ctx context.Context) ([]domain.DateCount, error)

	// DueToday returns today's date and the problems due on it.
	DueToday(ctx context.Context) (domain.Date, []*domain.Problem, error)

	// ExportRows yields the header row and then one row per problem in ID
	// order. Rows are produced lazily while the caller ranges over them.
	// A failure is yielded once as a nil row with a non-nil error.
	ExportRows(ctx context.Context) iter.Seq2[[]string, error]
}

type reportServiceImpl struct {
	problems ProblemSource
	stats    store.StatsStore
	now      func() time.Time
	logger   *slog.Logger
}

// NewService creates a report Service.
// now supplies the current time; nil means time.Now.
func NewService(problems ProblemSource, stats store.StatsStore, now func() time.Time, logger *slog.Logger) Service {
	if problems == nil {
		panic("problems cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reportServiceImpl{
		problems: problems,
		stats:    stats,
		now:      now,
		logger:   logger.With(slog.String("component", "report_service")),
	}
}

// CountsByDifficulty implements Service.CountsByDifficulty
func (s *reportServiceImpl) CountsByDifficulty(ctx context.Context) ([]domain.DifficultyCount, error) {
	return s.stats.CountByDifficulty(ctx)
}

// CountsByLastReviewed implements Service.CountsByLastReviewed
func (s *reportServiceImpl) CountsByLastReviewed(ctx context.Context) ([]domain.DateCount, error) {
	return s.stats.CountByLastReviewed(ctx)
}

// DueToday implements Service.DueToday
func (s *reportServiceImpl) DueToday(ctx context.Context) (domain.Date, []*domain.Problem, error) {
	today := domain.DateOf(s.now())
	problems, err := s.problems.ListDue(ctx, today)
	if err != nil {
		return today, nil, err
	}
	return today, problems, nil
}

// errStopExport aborts the underlying cursor when the consumer stops ranging.
var errStopExport = errors.New("export stopped by consumer")

// ExportRows implements Service.ExportRows
func (s *reportServiceImpl) ExportRows(ctx context.Context) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		log := logger.FromContextOrDefault(ctx, s.logger)

		if !yield(ExportHeader, nil) {
			return
		}

		rows := 0
		err := s.problems.Each(ctx, func(p *domain.Problem) error {
			rows++
			if !yield(ExportRow(p), nil) {
				return errStopExport
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopExport) {
			log.Error("export failed",
				slog.String("error", err.Error()),
				slog.Int("rows_written", rows))
			yield(nil, err)
			return
		}

		log.Debug("export finished", slog.Int("rows", rows))
	}
}

// ExportRow renders one problem as export fields. Commas are replaced with
// spaces in every field, so a field never contains the separator.
func ExportRow(p *domain.Problem) []string {
	return lo.Map([]string{
		strconv.FormatInt(p.ID, 10),
		p.Title,
		p.Link,
		p.Difficulty,
		p.Notes,
		strconv.Itoa(p.ReviewCount),
		p.LastReviewed.String(),
		p.NextReview.String(),
	}, func(field string, _ int) string {
		return strings.ReplaceAll(field, ",", " ")
	})
}

// DifficultyChart reshapes difficulty counts into parallel label/count slices.
func DifficultyChart(counts []domain.DifficultyCount) Chart {
	return Chart{
		Labels: lo.Map(counts, func(c domain.DifficultyCount, _ int) string { return c.Difficulty }),
		Counts: lo.Map(counts, func(c domain.DifficultyCount, _ int) int { return c.Count }),
	}
}

// TrendChart reshapes last-reviewed counts into parallel label/count slices.
func TrendChart(counts []domain.DateCount) Chart {
	return Chart{
		Labels: lo.Map(counts, func(c domain.DateCount, _ int) string { return c.Date.String() }),
		Counts: lo.Map(counts, func(c domain.DateCount, _ int) int { return c.Count }),
	}
}
