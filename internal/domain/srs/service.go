package srs

import (
	"errors"

	"github.com/phrazzld/practice-tracker/internal/domain"
)

// ErrNilProblem is returned when a review is calculated for a nil problem.
var ErrNilProblem = errors.New("problem cannot be nil")

// Service defines the interface for review scheduling operations.
type Service interface {
	// NextIntervalDays returns the number of days until the next review for a
	// problem currently reviewed reviewCount times.
	NextIntervalDays(reviewCount int) int

	// CalculateReview returns the problem as it is after being reviewed on
	// today: count incremented, last reviewed set to today and next review
	// set to today plus the looked-up interval.
	CalculateReview(p *domain.Problem, today domain.Date) (*domain.Problem, error)
}

// defaultService is the fixed-table implementation of Service.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a Service with the default interval table.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a Service with custom parameters.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return NewDefaultService(), nil
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{params: params}, nil
}

// NextIntervalDays implements Service.
func (s *defaultService) NextIntervalDays(reviewCount int) int {
	return nextIntervalDays(reviewCount, s.params)
}

// CalculateReview implements Service.
func (s *defaultService) CalculateReview(p *domain.Problem, today domain.Date) (*domain.Problem, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	return calculateReviewed(p, today, s.params), nil
}
