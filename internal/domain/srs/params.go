package srs

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultIntervals is the review interval table in days, indexed by the
// review count after the current review has been recorded.
var DefaultIntervals = []int{1, 3, 7, 14, 30}

// Parameter validation errors
var (
	ErrEmptyIntervals     = errors.New("interval table cannot be empty")
	ErrNonPositiveDays    = errors.New("intervals must be at least 1 day")
	ErrDecreasingInterval = errors.New("intervals must not decrease")
)

// Params defines all configurable parameters for the review schedule.
type Params struct {
	// Intervals is the ordered table of review intervals in days.
	Intervals []int
}

// NewDefaultParams creates a new Params instance with the default table.
func NewDefaultParams() *Params {
	return &Params{Intervals: slices.Clone(DefaultIntervals)}
}

// NewParams creates Params from a custom interval table. An empty table
// falls back to the defaults; an invalid one is rejected.
func NewParams(intervals []int) (*Params, error) {
	if len(intervals) == 0 {
		return NewDefaultParams(), nil
	}

	params := &Params{Intervals: slices.Clone(intervals)}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks that the table is non-empty, positive and non-decreasing.
func (p *Params) Validate() error {
	if len(p.Intervals) == 0 {
		return ErrEmptyIntervals
	}
	for i, days := range p.Intervals {
		if days < 1 {
			return fmt.Errorf("%w: index %d is %d", ErrNonPositiveDays, i, days)
		}
		if i > 0 && days < p.Intervals[i-1] {
			return fmt.Errorf("%w: index %d (%d) < index %d (%d)",
				ErrDecreasingInterval, i, days, i-1, p.Intervals[i-1])
		}
	}
	return nil
}
