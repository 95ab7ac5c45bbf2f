package srs

import (
	"github.com/phrazzld/practice-tracker/internal/domain"
)

// nextIntervalDays looks up the interval for a review of a problem that has
// been reviewed reviewCount times so far.
//
// The table index is the count after this review (reviewCount+1), clamped to
// the last entry. A never-reviewed problem therefore gets the second entry,
// not the first: with the default table the first review schedules the next
// one 3 days out, while creation already used a fixed 1-day offset.
func nextIntervalDays(reviewCount int, params *Params) int {
	if reviewCount < 0 {
		reviewCount = 0
	}

	index := min(reviewCount+1, len(params.Intervals)-1)
	return params.Intervals[index]
}

// calculateReviewed returns a copy of p with the review event applied on
// the given day. The input is not modified.
func calculateReviewed(p *domain.Problem, today domain.Date, params *Params) *domain.Problem {
	days := nextIntervalDays(p.ReviewCount, params)

	reviewed := *p
	reviewed.ReviewCount = p.ReviewCount + 1
	reviewed.LastReviewed = today
	reviewed.NextReview = today.AddDays(days)
	return &reviewed
}
