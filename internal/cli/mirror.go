package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/wire"
)

// MirrorCmd returns the mirror command
func MirrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror",
		Short: "Write the project templates to the local mirror root",
		Long: `Write every project's README and starter files under the configured
mirror root, one directory per project. Needs no credentials.

Examples:
  waypoint mirror
  WAYPOINT_MIRROR_ROOT=~/projects waypoint mirror`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			summary, err := wire.MirrorService(os.Stdout).MirrorProjects(ctx)
			if err != nil {
				return fmt.Errorf("failed to mirror projects: %w", err)
			}
			fmt.Printf("%d project(s), %d file(s) written under %s\n", summary.Projects, summary.Files, wire.Config().MirrorRoot)
			return nil
		},
	}
}

// BudgetCmd returns the budget command
func BudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Create the monthly learning spend cap",
		Long: `Create the monthly cost budget with its spend-threshold email alert.
An already-existing budget of the same name counts as success, so the
command is safe to re-run. Requires billing credentials and
WAYPOINT_CREATE_BUDGET=true.

Examples:
  waypoint budget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.BudgetService()
			if err != nil {
				return err
			}
			result, err := svc.EnsureBudget(ctx)
			if err != nil {
				return fmt.Errorf("failed to ensure budget: %w", err)
			}
			if result.Skipped {
				fmt.Printf("Skipped: %s\n", result.Reason)
				return nil
			}
			fmt.Printf("Ensured %s\n", result.Name)
			return nil
		},
	}
}
