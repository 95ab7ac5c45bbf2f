// Package cli implements the tracker command line: the HTTP server, schema
// migrations and direct access to every problem operation.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/phrazzld/practice-tracker/internal/config"
	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions carries state shared by every subcommand.
type rootOptions struct {
	configPath string
	now        func() time.Time
}

// NewRootCommand builds the tracker command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(time.Now)
}

func newRootCommand(now func() time.Time) *cobra.Command {
	opts := &rootOptions{now: now}

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Track practice problems and when to review them",
		Long: `tracker records solved practice problems and schedules reviews on a
fixed spaced-repetition ladder. It runs as an HTTP API (tracker serve)
or directly from the command line.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default: tracker.yaml in . or $HOME/.tracker)")

	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newAddCommand(opts),
		newReviewCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newListCommand(opts),
		newDueCommand(opts),
		newStatsCommand(opts),
		newTrendCommand(opts),
		newExportCommand(opts),
	)

	return cmd
}

// loadConfig reads the configuration and installs the default logger writing
// to logOut.
func (o *rootOptions) loadConfig(logOut io.Writer) (*config.Config, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.SetupWithWriter(cfg.Server, logOut); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return cfg, nil
}

// openApp loads the configuration and wires the application. Logs go to
// stderr so command output on stdout stays clean.
func (o *rootOptions) openApp(cmd *cobra.Command) (*application, error) {
	cfg, err := o.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return newApplication(cmd.Context(), cfg, logger.Component(nil, "cli"), o.now)
}

// parseID parses a positional problem ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, arg)
	}
	return id, nil
}
