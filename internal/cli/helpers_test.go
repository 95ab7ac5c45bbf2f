package cli

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/practice-tracker/internal/config"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
