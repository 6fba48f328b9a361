package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/wire"
)

// EnhanceCmd returns the enhance command
func EnhanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enhance [database-id]",
		Short: "Enrich an existing roadmap database in place",
		Long: `Ensure the details column exists, then update existing rows with the
full roadmap content: topic, details, project phase and dataset link.
Rows already carrying the target content are left untouched; operator
progress columns are never written.

Examples:
  waypoint enhance 1f2e3d4c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.EnhanceService(os.Stdout)
			if err != nil {
				return err
			}
			summary, err := svc.EnhanceDatabase(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to enhance database: %w", err)
			}
			fmt.Printf("%d updated, %d already current, %d failed\n", summary.Updated, summary.Unchanged, summary.Failed)
			return nil
		},
	}
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var applyDefault bool

	cmd := &cobra.Command{
		Use:   "status [database-id]",
		Short: "Add the progress column to a roadmap database",
		Long: `Add a tri-state progress column (Not started / In progress / Done)
to the database when it is absent. Optionally stamp every row with the
not-started default; confirmation is asked first because it overwrites
any progress already set.

Examples:
  waypoint status 1f2e3d4c...
  waypoint status 1f2e3d4c... --apply-default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			databaseID := args[0]

			svc, err := wire.EnhanceService(os.Stdout)
			if err != nil {
				return err
			}
			added, err := svc.EnsureStatusColumn(ctx, databaseID)
			if err != nil {
				return fmt.Errorf("failed to ensure progress column: %w", err)
			}
			if added {
				fmt.Println("Progress column added")
			} else {
				fmt.Println("Progress column already present")
			}

			if !applyDefault {
				return nil
			}
			if !confirmPrompt("Stamp every row with the not-started default? Existing progress is overwritten") {
				fmt.Println("Skipped.")
				return nil
			}
			summary, err := svc.ApplyDefaultStatus(ctx, databaseID)
			if err != nil {
				return fmt.Errorf("failed to apply default status: %w", err)
			}
			fmt.Printf("%d row(s) stamped, %d failed\n", summary.Updated, summary.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyDefault, "apply-default", false, "stamp every row with the not-started default (asks first)")
	return cmd
}
