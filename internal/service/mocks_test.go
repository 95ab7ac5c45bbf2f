package service

import (
	"context"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockProblemRepository mocks the ProblemRepository interface
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Create(ctx context.Context, p *domain.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) GetByID(ctx context.Context, id int64) (*domain.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *MockProblemRepository) List(ctx context.Context) ([]*domain.Problem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Problem), args.Error(1)
}

func (m *MockProblemRepository) ListByDifficulty(
	ctx context.Context,
	difficulty string,
) ([]*domain.Problem, error) {
	args := m.Called(ctx, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Problem), args.Error(1)
}

func (m *MockProblemRepository) ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Problem), args.Error(1)
}

func (m *MockProblemRepository) UpdateDetails(ctx context.Context, p *domain.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProblemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
