package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
)

// ProblemServiceError is a custom error type for problem service errors.
type ProblemServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ProblemServiceError.
func (e *ProblemServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("problem service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("problem service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProblemServiceError) Unwrap() error {
	return e.Err
}

// NewProblemServiceError creates a new ProblemServiceError.
func NewProblemServiceError(operation, message string, err error) *ProblemServiceError {
	return &ProblemServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ProblemRepository defines the repository interface for the service layer.
// store.ProblemStore satisfies it.
type ProblemRepository interface {
	Create(ctx context.Context, p *domain.Problem) error
	GetByID(ctx context.Context, id int64) (*domain.Problem, error)
	List(ctx context.Context) ([]*domain.Problem, error)
	ListByDifficulty(ctx context.Context, difficulty string) ([]*domain.Problem, error)
	ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error)
	UpdateDetails(ctx context.Context, p *domain.Problem) error
	Delete(ctx context.Context, id int64) error
}

// ProblemService provides the problem lifecycle operations other than review.
type ProblemService interface {
	// CreateProblem validates details and stores a new problem created today.
	// Returns a *domain.ValidationError when title or link is missing.
	CreateProblem(ctx context.Context, details domain.ProblemDetails) (*domain.Problem, error)

	// GetProblem retrieves a problem by its ID.
	GetProblem(ctx context.Context, id int64) (*domain.Problem, error)

	// ListProblems returns every problem newest first, or only those with the
	// given difficulty when it is non-empty.
	ListProblems(ctx context.Context, difficulty string) ([]*domain.Problem, error)

	// ListDue returns the problems whose next review is exactly on date.
	ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error)

	// EditProblem replaces the descriptive fields of a problem. Review state
	// is never changed.
	EditProblem(ctx context.Context, id int64, details domain.ProblemDetails) (*domain.Problem, error)

	// DeleteProblem removes a problem. Deleting a missing ID succeeds.
	DeleteProblem(ctx context.Context, id int64) error

	// Today returns the current calendar day according to the service clock.
	Today() domain.Date
}

// problemServiceImpl implements the ProblemService interface
type problemServiceImpl struct {
	problemRepo ProblemRepository
	now         func() time.Time
	logger      *slog.Logger
}

// NewProblemService creates a new ProblemService.
// now supplies the current time; nil means time.Now.
// It returns an error if the repository is nil.
func NewProblemService(
	problemRepo ProblemRepository,
	now func() time.Time,
	logger *slog.Logger,
) (ProblemService, error) {
	if problemRepo == nil {
		return nil, domain.NewValidationError("problemRepo", "cannot be nil")
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &problemServiceImpl{
		problemRepo: problemRepo,
		now:         now,
		logger:      logger.With(slog.String("component", "problem_service")),
	}, nil
}

// Today implements ProblemService.Today
func (s *problemServiceImpl) Today() domain.Date {
	return domain.DateOf(s.now())
}

// CreateProblem implements ProblemService.CreateProblem
func (s *problemServiceImpl) CreateProblem(
	ctx context.Context,
	details domain.ProblemDetails,
) (*domain.Problem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	p, err := domain.NewProblem(details, s.Today())
	if err != nil {
		log.Warn("problem validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.problemRepo.Create(ctx, p); err != nil {
		return nil, NewProblemServiceError("create_problem", "failed to save problem", err)
	}

	log.Debug("problem created",
		slog.Int64("problem_id", p.ID),
		slog.String("next_review", p.NextReview.String()))
	return p, nil
}

// GetProblem implements ProblemService.GetProblem
func (s *problemServiceImpl) GetProblem(ctx context.Context, id int64) (*domain.Problem, error) {
	p, err := s.problemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewProblemServiceError("get_problem", "failed to retrieve problem", err)
	}
	return p, nil
}

// ListProblems implements ProblemService.ListProblems
func (s *problemServiceImpl) ListProblems(ctx context.Context, difficulty string) ([]*domain.Problem, error) {
	var (
		problems []*domain.Problem
		err      error
	)
	if difficulty == "" {
		problems, err = s.problemRepo.List(ctx)
	} else {
		problems, err = s.problemRepo.ListByDifficulty(ctx, difficulty)
	}
	if err != nil {
		return nil, NewProblemServiceError("list_problems", "failed to list problems", err)
	}
	return problems, nil
}

// ListDue implements ProblemService.ListDue
func (s *problemServiceImpl) ListDue(ctx context.Context, date domain.Date) ([]*domain.Problem, error) {
	problems, err := s.problemRepo.ListDue(ctx, date)
	if err != nil {
		return nil, NewProblemServiceError("list_due", "failed to list due problems", err)
	}
	return problems, nil
}

// EditProblem implements ProblemService.EditProblem
func (s *problemServiceImpl) EditProblem(
	ctx context.Context,
	id int64,
	details domain.ProblemDetails,
) (*domain.Problem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := details.Validate(); err != nil {
		log.Warn("problem validation failed during edit",
			slog.String("error", err.Error()),
			slog.Int64("problem_id", id))
		return nil, err
	}

	p, err := s.problemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewProblemServiceError("edit_problem", "failed to retrieve problem", err)
	}

	p.ApplyDetails(details)
	if err := s.problemRepo.UpdateDetails(ctx, p); err != nil {
		return nil, NewProblemServiceError("edit_problem", "failed to update problem", err)
	}

	log.Debug("problem edited", slog.Int64("problem_id", id))
	return p, nil
}

// DeleteProblem implements ProblemService.DeleteProblem
func (s *problemServiceImpl) DeleteProblem(ctx context.Context, id int64) error {
	if err := s.problemRepo.Delete(ctx, id); err != nil {
		return NewProblemServiceError("delete_problem", "failed to delete problem", err)
	}
	return nil
}
