package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/practice-tracker/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "nothing sensitive",
			input:    "problem not found",
			expected: "problem not found",
		},
		{
			name:     "postgres url with credentials",
			input:    "failed to connect to postgres://tracker:s3cret@db:5432/tracker",
			expected: "failed to connect to [REDACTED_CREDENTIAL]db:5432/tracker",
		},
		{
			name:     "password parameter",
			input:    "dsn host=db password=hunter2 sslmode=disable",
			expected: "dsn host=db [REDACTED_CREDENTIAL] sslmode=disable",
		},
		{
			name:     "sqlite file dsn",
			input:    "unable to open file:leetcode.db?_busy_timeout=5000",
			expected: "unable to open [REDACTED_PATH]?_busy_timeout=5000",
		},
		{
			name:     "unix path",
			input:    "open /home/me/.tracker/leetcode.db: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "sql fragment",
			input:    "near \"FORM\": syntax error in SELECT id FROM problems",
			expected: "near \"FORM\": syntax error in [REDACTED_SQL]",
		},
		{
			name:     "host and port",
			input:    "dial tcp db.internal.example.com:5432: connection refused",
			expected: "dial tcp [REDACTED_HOST]: connection refused",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("query failed: %w", errors.New("open /var/lib/tracker/leetcode.db: no such file"))
	got := redact.Error(err)
	assert.NotContains(t, got, "/var/lib")
	assert.Contains(t, got, redact.PathPlaceholder)
}
