package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/app"
	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/wire"
)

// TitlesCmd returns the titles command
func TitlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "titles [database-id]",
		Short: "Strip redundant suffixes from topic titles",
		Long: `List the rows whose topic titles carry hyphen-suffixed content that
duplicates the details column, then apply after confirmation.

Examples:
  waypoint titles 1f2e3d4c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.TitleService(os.Stdout)
			if err != nil {
				return err
			}
			changes, err := svc.PlanTitleCleanup(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to plan title cleanup: %w", err)
			}
			if len(changes) == 0 {
				fmt.Println("All titles already clean.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "WEEK\tCURRENT\tCLEANED")
			fmt.Fprintln(w, "----\t-------\t-------")
			for _, c := range changes {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.Week, c.OldTitle, c.NewTitle)
			}
			w.Flush()

			if !confirmPrompt(fmt.Sprintf("Rewrite %d title(s)?", len(changes))) {
				fmt.Println("Skipped.")
				return nil
			}
			summary, err := svc.ApplyTitleCleanup(ctx, changes)
			if err != nil {
				return fmt.Errorf("failed to apply title cleanup: %w", err)
			}
			fmt.Printf("%d updated, %d failed\n", summary.Updated, summary.Failed)
			return nil
		},
	}
}

// SubtasksCmd returns the subtasks command
func SubtasksCmd() *cobra.Command {
	var csvPath string
	var preview bool

	cmd := &cobra.Command{
		Use:   "subtasks [database-id]",
		Short: "Import a day-level plan from CSV",
		Long: `Parse a CSV plan with Week, Day, Learning, Deliverable and Task
columns, ensure the subtasks column exists, and patch each matching
week's row with its formatted day entries.

Examples:
  waypoint subtasks 1f2e3d4c... --csv plan.csv
  waypoint subtasks 1f2e3d4c... --csv plan.csv --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.SubtaskService(os.Stdout)
			if err != nil {
				return err
			}

			if preview {
				plan, err := svc.PreviewSubtasks(csvPath)
				if err != nil {
					return fmt.Errorf("failed to parse plan: %w", err)
				}
				weeks := make([]int, 0, len(plan))
				for week := range plan {
					weeks = append(weeks, week)
				}
				sort.Ints(weeks)
				for _, week := range weeks {
					fmt.Printf("Week %d (%d days):\n%s\n", week, len(plan[week]), app.FormatSubtasks(plan[week]))
				}
				return nil
			}

			summary, err := svc.ImportSubtasks(ctx, primary.ImportSubtasksRequest{
				DatabaseID: args[0],
				CSVPath:    csvPath,
			})
			if err != nil {
				return fmt.Errorf("failed to import subtasks: %w", err)
			}
			fmt.Printf("%d week(s) updated, %d without a remote row, %d failed\n", summary.Updated, summary.Skipped, summary.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the day-level plan CSV (required)")
	cmd.Flags().BoolVar(&preview, "preview", false, "print the parsed plan without writing")
	cmd.MarkFlagRequired("csv")
	return cmd
}

// CompareCmd returns the compare command
func CompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [first-id] [second-id]",
		Short: "Compare two databases side by side",
		Long: `Fetch both databases fully and report their relative completeness:
row count, property coverage, weeks covered, and detail-text volume.

Examples:
  waypoint compare 1f2e3d4c... 9a8b7c6d...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.CompareService()
			if err != nil {
				return err
			}
			comparison, err := svc.CompareDatabases(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to compare databases: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "\tFIRST\tSECOND")
			fmt.Fprintf(w, "Title\t%s\t%s\n", comparison.First.Title, comparison.Second.Title)
			fmt.Fprintf(w, "Rows\t%d\t%d\n", comparison.First.PageCount, comparison.Second.PageCount)
			fmt.Fprintf(w, "Properties\t%d\t%d\n", comparison.First.PropertyCount, comparison.Second.PropertyCount)
			fmt.Fprintf(w, "Weeks covered\t%d\t%d\n", comparison.First.WeeksCovered, comparison.Second.WeeksCovered)
			fmt.Fprintf(w, "Detail chars\t%d\t%d\n", comparison.First.DetailChars, comparison.Second.DetailChars)
			w.Flush()

			if comparison.Verdict == "" {
				fmt.Println("\nVerdict: tie")
			} else {
				fmt.Printf("\nVerdict: %s\n", color.New(color.FgGreen).Sprint(comparison.Verdict))
			}
			return nil
		},
	}
}

// ReorderCmd returns the reorder command
func ReorderCmd() *cobra.Command {
	var destructive bool

	cmd := &cobra.Command{
		Use:   "reorder [database-id]",
		Short: "Recreate every row in ascending week order (destructive)",
		Long: `Recreate every row in ascending week order and archive the originals.

This is destructive: any remote-only edits on the original rows are
lost. Row order is the remote system's view concern; sorting the view
by the week column is almost always the better answer. The command
refuses to run without --destructive and asks for confirmation.

Examples:
  waypoint reorder 1f2e3d4c... --destructive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !destructive {
				fmt.Println("Reordering recreates and archives every row; remote-only edits are lost.")
				fmt.Println("Prefer sorting the view by the week column. Pass --destructive to proceed anyway.")
				return nil
			}
			if !confirmPrompt("Recreate every row and archive the originals?") {
				fmt.Println("Aborted.")
				return nil
			}

			svc, err := wire.ReorderService(os.Stdout)
			if err != nil {
				return err
			}
			summary, err := svc.ReorderByWeek(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to reorder rows: %w", err)
			}
			fmt.Printf("%d reordered, %d without a week number, %d failed\n", summary.Updated, summary.Skipped, summary.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&destructive, "destructive", false, "acknowledge that original rows are archived")
	return cmd
}
