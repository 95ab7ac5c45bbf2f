package review_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/domain/srs"
	"github.com/phrazzld/practice-tracker/internal/service/review"
	"github.com/phrazzld/practice-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProblemRepository is a mock implementation of the ProblemRepository interface
type MockProblemRepository struct {
	mock.Mock
	db *sqlx.DB
}

func (m *MockProblemRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Problem), args.Error(1)
}

func (m *MockProblemRepository) UpdateReview(ctx context.Context, p *domain.Problem) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations apply inside the transaction.
func (m *MockProblemRepository) WithTx(tx *sqlx.Tx) review.ProblemRepository {
	return m
}

func (m *MockProblemRepository) DB() *sqlx.DB {
	return m.db
}

var reviewDay = time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC)

func setupMocks(t *testing.T) (review.Service, *MockProblemRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { _ = db.Close() })

	repo := &MockProblemRepository{db: db}
	svc := review.NewService(repo, srs.NewDefaultService(), func() time.Time { return reviewDay }, nil)
	return svc, repo, sqlMock
}

func TestMarkReviewed_FirstReview(t *testing.T) {
	svc, repo, sqlMock := setupMocks(t)

	created := domain.NewDate(2024, time.March, 1)
	current := &domain.Problem{
		ID:           1,
		Title:        "Two Sum",
		Link:         "http://x",
		Difficulty:   "Easy",
		LastReviewed: created,
		NextReview:   created.AddDays(1),
	}

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()
	repo.On("GetForUpdate", mock.Anything, int64(1)).Return(current, nil)
	repo.On("UpdateReview", mock.Anything, mock.MatchedBy(func(p *domain.Problem) bool {
		return p.ID == 1 && p.ReviewCount == 1
	})).Return(nil)

	got, err := svc.MarkReviewed(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, got.ReviewCount)
	assert.Equal(t, domain.NewDate(2024, time.March, 2), got.LastReviewed)
	assert.Equal(t, domain.NewDate(2024, time.March, 5), got.NextReview)
	assert.Equal(t, "Two Sum", got.Title)
	repo.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMarkReviewed_IntervalsFollowCount(t *testing.T) {
	testCases := []struct {
		count        int
		expectedDays int
	}{
		{count: 0, expectedDays: 3},
		{count: 1, expectedDays: 7},
		{count: 2, expectedDays: 14},
		{count: 3, expectedDays: 30},
		{count: 4, expectedDays: 30},
		{count: 12, expectedDays: 30},
	}

	for _, tc := range testCases {
		svc, repo, sqlMock := setupMocks(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.On("GetForUpdate", mock.Anything, int64(7)).
			Return(&domain.Problem{ID: 7, ReviewCount: tc.count}, nil)
		repo.On("UpdateReview", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.MarkReviewed(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, tc.count+1, got.ReviewCount)
		assert.Equal(t, tc.expectedDays, got.NextReview.DaysSince(got.LastReviewed),
			"count %d", tc.count)
	}
}

func TestMarkReviewed_NotFound(t *testing.T) {
	svc, repo, sqlMock := setupMocks(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()
	repo.On("GetForUpdate", mock.Anything, int64(42)).Return(nil, store.ErrProblemNotFound)

	got, err := svc.MarkReviewed(context.Background(), 42)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, review.ErrProblemNotFound)
	assert.ErrorIs(t, err, store.ErrProblemNotFound)
	repo.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMarkReviewed_UpdateFailureRollsBack(t *testing.T) {
	svc, repo, sqlMock := setupMocks(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()
	dbErr := store.NewStoreError("problem", "update_review", "failed to update problem", store.ErrInternal)
	repo.On("GetForUpdate", mock.Anything, int64(3)).Return(&domain.Problem{ID: 3}, nil)
	repo.On("UpdateReview", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.MarkReviewed(context.Background(), 3)

	var svcErr *review.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "mark_reviewed", svcErr.Operation)
	assert.True(t, store.IsStorageError(err))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMarkReviewed_BeginFailure(t *testing.T) {
	svc, repo, sqlMock := setupMocks(t)

	sqlMock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	_, err := svc.MarkReviewed(context.Background(), 3)

	assert.ErrorIs(t, err, store.ErrTransactionFailed)
	repo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
}

func TestServiceError(t *testing.T) {
	inner := errors.New("boom")
	err := review.NewMarkReviewedError("failed to get problem", inner)

	assert.Equal(t, "mark_reviewed operation failed: failed to get problem: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := &review.ServiceError{Operation: "mark_reviewed", Message: "no problem"}
	assert.Equal(t, "mark_reviewed operation failed: no problem", bare.Error())
}
