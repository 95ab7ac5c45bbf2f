package api

import (
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/samber/lo"
)

// ProblemRequest is the payload for creating or editing a problem.
type ProblemRequest struct {
	Title      string `json:"title"      validate:"required"`
	Link       string `json:"link"       validate:"required"`
	Difficulty string `json:"difficulty"`
	Notes      string `json:"notes"`
}

// Details converts the request into domain details.
func (r ProblemRequest) Details() domain.ProblemDetails {
	return domain.ProblemDetails{
		Title:      r.Title,
		Link:       r.Link,
		Difficulty: r.Difficulty,
		Notes:      r.Notes,
	}
}

// CreateProblemResponse is returned after a problem is created.
type CreateProblemResponse struct {
	ID int64 `json:"id"`
}

// ProblemResponse is the response body for a single problem.
type ProblemResponse struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Link         string `json:"link"`
	Difficulty   string `json:"difficulty"`
	Notes        string `json:"notes"`
	ReviewCount  int    `json:"review_count"`
	LastReviewed string `json:"last_reviewed"`
	NextReview   string `json:"next_review"`
}

// DueResponse lists the problems due on Date.
type DueResponse struct {
	Date     string            `json:"date"`
	Problems []ProblemResponse `json:"problems"`
}

// problemToResponse converts a domain.Problem to a ProblemResponse
func problemToResponse(p *domain.Problem) ProblemResponse {
	return ProblemResponse{
		ID:           p.ID,
		Title:        p.Title,
		Link:         p.Link,
		Difficulty:   p.Difficulty,
		Notes:        p.Notes,
		ReviewCount:  p.ReviewCount,
		LastReviewed: p.LastReviewed.String(),
		NextReview:   p.NextReview.String(),
	}
}

// problemsToResponse never returns nil, so empty lists encode as [].
func problemsToResponse(problems []*domain.Problem) []ProblemResponse {
	return lo.Map(problems, func(p *domain.Problem, _ int) ProblemResponse {
		return problemToResponse(p)
	})
}
