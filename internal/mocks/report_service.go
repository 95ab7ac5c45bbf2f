package mocks

import (
	"context"
	"iter"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/service/report"
)

var _ report.Service = (*MockReportService)(nil)

// MockReportService implements report.Service for testing.
// ExportRows yields Rows in order and then ExportErr, if set.
type MockReportService struct {
	DifficultyCounts []domain.DifficultyCount
	DateCounts       []domain.DateCount
	Today            domain.Date
	Due              []*domain.Problem
	Rows             [][]string

	// Err is returned by every method except ExportRows.
	Err       error
	ExportErr error
}

// CountsByDifficulty implements report.Service
func (m *MockReportService) CountsByDifficulty(context.Context) ([]domain.DifficultyCount, error) {
	return m.DifficultyCounts, m.Err
}

// CountsByLastReviewed implements report.Service
func (m *MockReportService) CountsByLastReviewed(context.Context) ([]domain.DateCount, error) {
	return m.DateCounts, m.Err
}

// DueToday implements report.Service
func (m *MockReportService) DueToday(context.Context) (domain.Date, []*domain.Problem, error) {
	return m.Today, m.Due, m.Err
}

// ExportRows implements report.Service
func (m *MockReportService) ExportRows(context.Context) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for _, row := range m.Rows {
			if !yield(row, nil) {
				return
			}
		}
		if m.ExportErr != nil {
			yield(nil, m.ExportErr)
		}
	}
}
