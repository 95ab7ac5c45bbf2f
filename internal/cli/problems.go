package cli

import (
	"fmt"

	"github.com/phrazzld/practice-tracker/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var details domain.ProblemDetails

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a newly solved problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			p, err := app.problemService.CreateProblem(cmd.Context(), details)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added problem %d: %s (next review %s)\n",
				p.ID, p.Title, p.NextReview)
			return err
		},
	}

	cmd.Flags().StringVar(&details.Title, "title", "", "problem title (required)")
	cmd.Flags().StringVar(&details.Link, "link", "", "problem URL (required)")
	cmd.Flags().StringVar(&details.Difficulty, "difficulty", "", "difficulty label, e.g. Easy")
	cmd.Flags().StringVar(&details.Notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}

func newReviewCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "review <id>",
		Short: "Mark a problem as reviewed today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			p, err := app.reviewService.MarkReviewed(cmd.Context(), id)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Reviewed problem %d (%d reviews, next review %s)\n",
				p.ID, p.ReviewCount, p.NextReview)
			return err
		},
	}
}

func newEditCommand(opts *rootOptions) *cobra.Command {
	var flags domain.ProblemDetails

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a problem's title, link, difficulty or notes",
		Long:  "Only the fields passed as flags change; the review schedule is never touched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			current, err := app.problemService.GetProblem(cmd.Context(), id)
			if err != nil {
				return err
			}

			details := current.Details()
			if cmd.Flags().Changed("title") {
				details.Title = flags.Title
			}
			if cmd.Flags().Changed("link") {
				details.Link = flags.Link
			}
			if cmd.Flags().Changed("difficulty") {
				details.Difficulty = flags.Difficulty
			}
			if cmd.Flags().Changed("notes") {
				details.Notes = flags.Notes
			}

			p, err := app.problemService.EditProblem(cmd.Context(), id, details)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated problem %d: %s\n", p.ID, p.Title)
			return err
		},
	}

	cmd.Flags().StringVar(&flags.Title, "title", "", "new title")
	cmd.Flags().StringVar(&flags.Link, "link", "", "new URL")
	cmd.Flags().StringVar(&flags.Difficulty, "difficulty", "", "new difficulty label")
	cmd.Flags().StringVar(&flags.Notes, "notes", "", "new notes")

	return cmd
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := opts.openApp(cmd)
			if err != nil {
				return err
			}
			defer app.cleanup()

			if err := app.problemService.DeleteProblem(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted problem %d\n", id)
			return err
		},
	}
}
