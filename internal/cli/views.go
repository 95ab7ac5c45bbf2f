package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/phrazzld/practice-tracker/internal/service/report"
	"github.com/spf13/cobra"
)

// printProblems writes problems as an aligned table.
func printProblems(w io.Writer, problems []*domain.Problem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tREVIEWS\tLAST REVIEWED\tNEXT REVIEW")
	for _, p := range problems {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Title, p.Difficulty, p.ReviewCount, p.LastReviewed, p.NextReview)
	}
	return tw.Flush()
}

// printChart writes a label/count series as two aligned columns.
func printChart(w io.Writer, header string, chart report.Chart) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tCOUNT\n", header)
	for i, label := range chart.Labels {
		fmt.Fprintf(tw, "%s\t%d\n", label, chart.Counts[i])
	}
	return tw.Flush()
}

func newListCommand(opts *rootOptions) *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List problems, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			problems, err := app.problemService.ListProblems(cmd.Context(), difficulty)
			if err != nil {
				return err
			}
			return printProblems(cmd.OutOrStdout(), problems)
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "only list problems with this difficulty")
	return cmd
}

func newDueCommand(opts *rootOptions) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List problems due for review on a day (default today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var date domain.Date
			if dateFlag != "" {
				d, err := domain.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				date = d
			}

			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			if date.IsZero() {
				date = app.problemService.Today()
			}

			problems, err := app.problemService.ListDue(cmd.Context(), date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				_, err := fmt.Fprintf(out, "No problems due on %s\n", date)
				return err
			}
			fmt.Fprintf(out, "%d due on %s\n", len(problems), date)
			return printProblems(out, problems)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "day to check, YYYY-MM-DD")
	return cmd
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count problems per difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			counts, err := app.reportService.CountsByDifficulty(cmd.Context())
			if err != nil {
				return err
			}
			return printChart(cmd.OutOrStdout(), "DIFFICULTY", report.DifficultyChart(counts))
		},
	}
}

func newTrendCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Count problems per last-reviewed day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			counts, err := app.reportService.CountsByLastReviewed(cmd.Context())
			if err != nil {
				return err
			}
			return printChart(cmd.OutOrStdout(), "LAST REVIEWED", report.TrendChart(counts))
		},
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every problem as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if !report.IsSupportedFormat(format) {
				return fmt.Errorf("unsupported export format %q (want %s or %s)",
					format, report.FormatCSV, report.FormatXLSX)
			}
			if output == "" {
				output = report.ExportFileBase + "." + format
			}

			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			if output == "-" {
				return report.Write(cmd.Context(), app.reportService, format, cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("failed to close export file: %w", closeErr)
				}
			}()

			if err := report.Write(cmd.Context(), app.reportService, format, f); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", report.FormatCSV, "csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, "-" for stdout (default leetcode_export.<format>)`)
	return cmd
}
