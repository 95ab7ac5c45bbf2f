package domain

import (
	"strings"
)

// InitialIntervalDays is the offset between creation and the first review.
// It is fixed and does not come from the review interval table.
const InitialIntervalDays = 1

// Problem is one tracked practice problem together with its review schedule.
type Problem struct {
	ID           int64  `json:"id"            db:"id"`
	Title        string `json:"title"         db:"title"`
	Link         string `json:"link"          db:"link"`
	Difficulty   string `json:"difficulty"    db:"difficulty"`
	Notes        string `json:"notes"         db:"notes"`
	ReviewCount  int    `json:"review_count"  db:"review_count"`
	LastReviewed Date   `json:"last_reviewed" db:"last_reviewed"`
	NextReview   Date   `json:"next_review"   db:"next_review"`
}

// ProblemDetails holds the descriptive fields a user supplies or edits.
// Review state is never part of it.
type ProblemDetails struct {
	Title      string
	Link       string
	Difficulty string
	Notes      string
}

// Validate checks that the required descriptive fields are present.
func (d ProblemDetails) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return NewValidationError("title", "is required")
	}
	if strings.TrimSpace(d.Link) == "" {
		return NewValidationError("link", "is required")
	}
	return nil
}

// NewProblem creates an unsaved problem reviewed "today" with its first
// review due the next day. The ID is assigned by the store.
func NewProblem(details ProblemDetails, today Date) (*Problem, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	p := &Problem{
		ReviewCount:  0,
		LastReviewed: today,
		NextReview:   today.AddDays(InitialIntervalDays),
	}
	p.ApplyDetails(details)
	return p, nil
}

// Details returns the descriptive fields of p.
func (p *Problem) Details() ProblemDetails {
	return ProblemDetails{
		Title:      p.Title,
		Link:       p.Link,
		Difficulty: p.Difficulty,
		Notes:      p.Notes,
	}
}

// ApplyDetails overwrites the descriptive fields, leaving review state alone.
func (p *Problem) ApplyDetails(d ProblemDetails) {
	p.Title = d.Title
	p.Link = d.Link
	p.Difficulty = d.Difficulty
	p.Notes = d.Notes
}

// IsDue reports whether p is due on the given day. Only an exact match on
// NextReview counts; a problem whose date has passed is no longer due.
func (p *Problem) IsDue(on Date) bool {
	return p.NextReview == on
}

// DifficultyCount is one bucket of the problems-per-difficulty report.
type DifficultyCount struct {
	Difficulty string `json:"difficulty" db:"difficulty"`
	Count      int    `json:"count"      db:"count"`
}

// DateCount is one bucket of the problems-per-last-reviewed-day report.
type DateCount struct {
	Date  Date `json:"date"  db:"last_reviewed"`
	Count int  `json:"count" db:"count"`
}
