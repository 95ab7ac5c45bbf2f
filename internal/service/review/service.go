// Package review implements the "mark reviewed" use case: it reads a
// problem's review count, asks the interval policy for the next gap and
// writes the new schedule back in one transaction.
package review

import (
	"context"
	"fmt"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/store"
)

// Service records review events.
type Service interface {
	// MarkReviewed records a review of the problem on the current day.
	//
	// Within a single transaction it:
	// 1. Reads the problem (with a row lock where supported)
	// 2. Increments the review count and sets last reviewed to today
	// 3. Sets next review to today plus the interval for the previous count
	//
	// Returns:
	//   - (*domain.Problem, nil): the problem as stored after the review
	//   - (nil, ErrProblemNotFound): no problem has that ID; nothing is written
	//   - (nil, error): any other failure, typically from the database
	MarkReviewed(ctx context.Context, id int64) (*domain.Problem, error)
}

// ErrProblemNotFound indicates that the problem to review does not exist.
// It wraps store.ErrProblemNotFound so callers may check either.
var ErrProblemNotFound = fmt.Errorf("cannot review: %w", store.ErrProblemNotFound)

// ServiceError wraps errors from the review service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "mark_reviewed")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewMarkReviewedError returns a new ServiceError for the mark_reviewed operation.
func NewMarkReviewedError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "mark_reviewed",
		Message:   message,
		Err:       err,
	}
}
