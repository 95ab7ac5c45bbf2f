package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 1, 21, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (ProblemService, *MockProblemRepository) {
	t.Helper()

	repo := &MockProblemRepository{}
	svc, err := NewProblemService(repo, func() time.Time { return fixedNow }, nil)
	require.NoError(t, err)
	return svc, repo
}

func TestNewProblemService_NilRepository(t *testing.T) {
	svc, err := NewProblemService(nil, nil, nil)

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateProblem(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Problem) bool {
		return p.Title == "Two Sum" && p.ReviewCount == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Problem).ID = 1
	}).Return(nil)

	p, err := svc.CreateProblem(ctx, domain.ProblemDetails{
		Title:      "Two Sum",
		Link:       "http://x",
		Difficulty: "Easy",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, 0, p.ReviewCount)
	assert.Equal(t, domain.NewDate(2024, time.March, 1), p.LastReviewed)
	assert.Equal(t, domain.NewDate(2024, time.March, 2), p.NextReview)
	repo.AssertExpectations(t)
}

func TestCreateProblem_MissingTitleWritesNothing(t *testing.T) {
	svc, repo := newTestService(t)

	p, err := svc.CreateProblem(context.Background(), domain.ProblemDetails{Title: "  ", Link: "http://x"})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProblem_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	storeErr := store.NewStoreError("problem", "create", "failed to insert problem", store.ErrInternal)
	repo.On("Create", ctx, mock.Anything).Return(storeErr)

	_, err := svc.CreateProblem(ctx, domain.ProblemDetails{Title: "a", Link: "b"})

	var svcErr *ProblemServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_problem", svcErr.Operation)
	assert.True(t, store.IsStorageError(err))
}

func TestGetProblem_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.On("GetByID", ctx, int64(5)).Return(nil, store.ErrProblemNotFound)

	_, err := svc.GetProblem(ctx, 5)

	assert.ErrorIs(t, err, store.ErrProblemNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProblems(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	all := []*domain.Problem{{ID: 2}, {ID: 1}}
	hard := []*domain.Problem{{ID: 2, Difficulty: "Hard"}}
	repo.On("List", ctx).Return(all, nil)
	repo.On("ListByDifficulty", ctx, "Hard").Return(hard, nil)

	got, err := svc.ListProblems(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	got, err = svc.ListProblems(ctx, "Hard")
	require.NoError(t, err)
	assert.Equal(t, hard, got)

	repo.AssertExpectations(t)
}

func TestListProblemsMatchesDifficultyVerbatim(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	padded := []*domain.Problem{{ID: 4, Difficulty: "Easy "}}
	repo.On("ListByDifficulty", ctx, "Easy ").Return(padded, nil)

	got, err := svc.ListProblems(ctx, "Easy ")
	require.NoError(t, err)
	assert.Equal(t, padded, got)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "List", ctx)
}

func TestListDue(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	date := domain.NewDate(2024, time.March, 2)
	repo.On("ListDue", ctx, date).Return([]*domain.Problem{{ID: 3}}, nil)

	got, err := svc.ListDue(ctx, date)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestEditProblem(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	existing := &domain.Problem{
		ID:           4,
		Title:        "old",
		Link:         "http://old",
		ReviewCount:  3,
		LastReviewed: domain.NewDate(2024, time.February, 1),
		NextReview:   domain.NewDate(2024, time.March, 2),
	}
	repo.On("GetByID", ctx, int64(4)).Return(existing, nil)
	repo.On("UpdateDetails", ctx, mock.AnythingOfType("*domain.Problem")).Return(nil)

	got, err := svc.EditProblem(ctx, 4, domain.ProblemDetails{
		Title: "new", Link: "http://new", Difficulty: "Medium", Notes: "n",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "Medium", got.Difficulty)
	assert.Equal(t, 3, got.ReviewCount)
	assert.Equal(t, domain.NewDate(2024, time.March, 2), got.NextReview)
	repo.AssertExpectations(t)
}

func TestEditProblem_Invalid(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.EditProblem(context.Background(), 4, domain.ProblemDetails{Title: "x"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEditProblem_Missing(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.On("GetByID", ctx, int64(9)).Return(nil, store.ErrProblemNotFound)

	_, err := svc.EditProblem(ctx, 9, domain.ProblemDetails{Title: "x", Link: "y"})

	assert.ErrorIs(t, err, store.ErrProblemNotFound)
	repo.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything)
}

func TestDeleteProblem(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	repo.On("Delete", ctx, int64(1)).Return(nil).Once()
	repo.On("Delete", ctx, int64(2)).Return(errors.New("disk full")).Once()

	assert.NoError(t, svc.DeleteProblem(ctx, 1))

	err := svc.DeleteProblem(ctx, 2)
	var svcErr *ProblemServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "delete_problem", svcErr.Operation)
}

func TestToday(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, domain.NewDate(2024, time.March, 1), svc.Today())
}
