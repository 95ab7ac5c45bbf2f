package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblem(t *testing.T) {
	t.Parallel()

	today := NewDate(2024, time.March, 10)
	p, err := NewProblem(ProblemDetails{
		Title:      "Two Sum",
		Link:       "http://x",
		Difficulty: "Easy",
		Notes:      "",
	}, today)

	require.NoError(t, err)
	assert.Zero(t, p.ID, "ID is assigned by the store")
	assert.Equal(t, "Two Sum", p.Title)
	assert.Equal(t, "http://x", p.Link)
	assert.Equal(t, "Easy", p.Difficulty)
	assert.Equal(t, 0, p.ReviewCount)
	assert.Equal(t, today, p.LastReviewed)
	assert.Equal(t, today.AddDays(1), p.NextReview)
}

func TestNewProblemValidation(t *testing.T) {
	t.Parallel()

	today := NewDate(2024, time.March, 10)
	testCases := []struct {
		name    string
		details ProblemDetails
		field   string
	}{
		{"missing title", ProblemDetails{Link: "http://x"}, "title"},
		{"blank title", ProblemDetails{Title: "   ", Link: "http://x"}, "title"},
		{"missing link", ProblemDetails{Title: "Two Sum"}, "link"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProblem(tc.details, today)
			assert.Nil(t, p)
			require.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestProblemDifficultyIsFreeText(t *testing.T) {
	t.Parallel()

	p, err := NewProblem(ProblemDetails{
		Title:      "LRU Cache",
		Link:       "https://leetcode.com/problems/lru-cache/",
		Difficulty: "Nightmare",
	}, NewDate(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, "Nightmare", p.Difficulty)
}

func TestApplyDetailsKeepsReviewState(t *testing.T) {
	t.Parallel()

	p := &Problem{
		ID:           7,
		Title:        "old",
		Link:         "old-link",
		ReviewCount:  3,
		LastReviewed: NewDate(2024, time.April, 1),
		NextReview:   NewDate(2024, time.May, 1),
	}
	before := *p

	p.ApplyDetails(ProblemDetails{Title: "new", Link: "new-link", Difficulty: "Hard", Notes: "dp"})

	assert.Equal(t, "new", p.Title)
	assert.Equal(t, "new-link", p.Link)
	assert.Equal(t, "Hard", p.Difficulty)
	assert.Equal(t, "dp", p.Notes)
	assert.Equal(t, before.ID, p.ID)
	assert.Equal(t, before.ReviewCount, p.ReviewCount)
	assert.Equal(t, before.LastReviewed, p.LastReviewed)
	assert.Equal(t, before.NextReview, p.NextReview)
	assert.Equal(t, p.Details(), ProblemDetails{Title: "new", Link: "new-link", Difficulty: "Hard", Notes: "dp"})
}

func TestIsDueExactMatch(t *testing.T) {
	t.Parallel()

	today := NewDate(2024, time.March, 10)
	p := &Problem{NextReview: today}

	assert.True(t, p.IsDue(today))
	assert.False(t, p.IsDue(today.AddDays(1)), "overdue problems are not due")
	assert.False(t, p.IsDue(today.AddDays(-1)))
}
