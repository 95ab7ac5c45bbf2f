package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/sqlstore"
	"github.com/phrazzld/practice-tracker/internal/service/report"
	"github.com/phrazzld/practice-tracker/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var day = domain.NewDate(2024, time.March, 1)

type fixture struct {
	svc      report.Service
	problems *sqlstore.ProblemStore
}

func setup(t *testing.T) fixture {
	t.Helper()

	db := testdb.Open(t)
	problems := sqlstore.NewProblemStore(db, nil)
	stats := sqlstore.NewStatsStore(db, nil)
	now := func() time.Time { return time.Date(2024, time.March, 2, 9, 30, 0, 0, time.Local) }

	return fixture{
		svc:      report.NewService(problems, stats, now, nil),
		problems: problems,
	}
}

func (f fixture) add(t *testing.T, details domain.ProblemDetails, today domain.Date) *domain.Problem {
	t.Helper()

	p, err := domain.NewProblem(details, today)
	require.NoError(t, err)
	require.NoError(t, f.problems.Create(context.Background(), p))
	return p
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.add(t, domain.ProblemDetails{Title: "a", Link: "l", Difficulty: "Easy"}, day)
	f.add(t, domain.ProblemDetails{Title: "b", Link: "l", Difficulty: "Hard"}, day.AddDays(1))
	f.add(t, domain.ProblemDetails{Title: "c", Link: "l", Difficulty: "Easy"}, day)

	byDifficulty, err := f.svc.CountsByDifficulty(ctx)
	require.NoError(t, err)
	chart := report.DifficultyChart(byDifficulty)
	assert.Equal(t, []string{"Easy", "Hard"}, chart.Labels)
	assert.Equal(t, []int{2, 1}, chart.Counts)

	byDate, err := f.svc.CountsByLastReviewed(ctx)
	require.NoError(t, err)
	trend := report.TrendChart(byDate)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, trend.Labels)
	assert.Equal(t, []int{2, 1}, trend.Counts)
}

func TestDueToday(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	due := f.add(t, domain.ProblemDetails{Title: "due", Link: "l"}, day)
	f.add(t, domain.ProblemDetails{Title: "later", Link: "l"}, day.AddDays(1))

	today, problems, err := f.svc.DueToday(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2024, time.March, 2), today)
	require.Len(t, problems, 1)
	assert.Equal(t, due.ID, problems[0].ID)
}

func TestExportRows(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	f.add(t, domain.ProblemDetails{Title: "Two Sum", Link: "https://x/two-sum", Difficulty: "Easy", Notes: "hash map, one pass"}, day)
	f.add(t, domain.ProblemDetails{Title: "LRU, Cache", Link: "https://x/lru", Difficulty: "Medium"}, day)

	var rows [][]string
	for row, err := range f.svc.ExportRows(ctx) {
		require.NoError(t, err)
		rows = append(rows, row)
	}

	require.Len(t, rows, 3)
	assert.Equal(t, report.ExportHeader, rows[0])
	assert.Equal(t, "hash map  one pass", rows[1][4])
	assert.Equal(t, "LRU  Cache", rows[2][1])
	assert.Equal(t, []string{"1", "0", "2024-03-01", "2024-03-02"},
		[]string{rows[1][0], rows[1][5], rows[1][6], rows[1][7]})
	for _, row := range rows {
		for _, field := range row {
			assert.NotContains(t, field, ",")
		}
	}
}

func TestExportRowsEmpty(t *testing.T) {
	f := setup(t)

	var rows [][]string
	for row, err := range f.svc.ExportRows(context.Background()) {
		require.NoError(t, err)
		rows = append(rows, row)
	}
	assert.Equal(t, [][]string{report.ExportHeader}, rows)
}

func TestExportRowsEarlyStop(t *testing.T) {
	f := setup(t)
	for range 3 {
		f.add(t, domain.ProblemDetails{Title: "p", Link: "l"}, day)
	}

	seen := 0
	for _, err := range f.svc.ExportRows(context.Background()) {
		require.NoError(t, err)
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

type failingSource struct{ err error }

func (s failingSource) ListDue(context.Context, domain.Date) ([]*domain.Problem, error) {
	return nil, s.err
}

func (s failingSource) Each(context.Context, func(*domain.Problem) error) error {
	return s.err
}

func TestExportRowsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	db := testdb.Open(t)
	svc := report.NewService(failingSource{err: boom}, sqlstore.NewStatsStore(db, nil), nil, nil)

	var gotErr error
	rows := 0
	for row, err := range svc.ExportRows(context.Background()) {
		if err != nil {
			gotErr = err
			continue
		}
		require.NotNil(t, row)
		rows++
	}
	assert.Equal(t, 1, rows)
	assert.ErrorIs(t, gotErr, boom)

	var buf bytes.Buffer
	assert.ErrorIs(t, report.WriteCSV(context.Background(), svc, &buf), boom)
}

func TestWriteCSV(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.add(t, domain.ProblemDetails{Title: "Two Sum", Link: "l", Difficulty: "Easy", Notes: "a,b"}, day)

	var buf bytes.Buffer
	require.NoError(t, report.Write(ctx, f.svc, report.FormatCSV, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, report.ExportHeader, records[0])
	assert.Equal(t, "a b", records[1][4])
}

func TestWriteXLSX(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.add(t, domain.ProblemDetails{Title: "Two Sum", Link: "l", Difficulty: "Easy"}, day)
	f.add(t, domain.ProblemDetails{Title: "3Sum", Link: "l", Difficulty: "Medium"}, day)

	var buf bytes.Buffer
	require.NoError(t, report.Write(ctx, f.svc, report.FormatXLSX, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = book.Close() }()

	rows, err := book.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, report.ExportHeader, rows[0])
	assert.Equal(t, "3Sum", rows[2][1])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	f := setup(t)
	var buf bytes.Buffer
	assert.Error(t, report.Write(context.Background(), f.svc, "pdf", &buf))
	assert.False(t, report.IsSupportedFormat("pdf"))
	assert.True(t, report.IsSupportedFormat(report.FormatXLSX))
}
