package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/service/review"
)

var _ review.Service = (*MockReviewService)(nil)

// MockReviewService implements review.Service for testing
type MockReviewService struct {
	MarkReviewedFn func(ctx context.Context, id int64) (*domain.Problem, error)

	// Default response values
	Problem *domain.Problem
	Err     error

	mu    sync.Mutex
	calls []int64
}

// MarkReviewed implements review.Service
func (m *MockReviewService) MarkReviewed(ctx context.Context, id int64) (*domain.Problem, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()

	if m.MarkReviewedFn != nil {
		return m.MarkReviewedFn(ctx, id)
	}
	return m.Problem, m.Err
}

// MarkReviewedCalls returns the IDs passed to MarkReviewed so far.
func (m *MockReviewService) MarkReviewedCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.calls...)
}
