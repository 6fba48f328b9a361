package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/wire"
)

// BootstrapCmd returns the bootstrap command
func BootstrapCmd() *cobra.Command {
	var databaseID string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Provision the full learning workspace",
		Long: `Provision the full learning workspace in one linear pass:

1. Ensure the six project repositories exist with their template files
2. Ensure the roadmap database and its column set
3. Upsert one row per roadmap week
4. Mirror the project templates locally (when enabled)
5. Create the monthly spend cap (when enabled)

Every step is idempotent; re-running after a partial failure finishes
the remaining work without duplicating anything. One step's failure
does not stop the steps that do not depend on it.

Examples:
  waypoint bootstrap
  waypoint bootstrap --database 1f2e3d4c...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			failures := 0

			repoURLs := runRepoStep(ctx, &failures)
			ensuredID := runDatabaseStep(ctx, databaseID, &failures)
			if ensuredID != "" {
				runSyncStep(ctx, ensuredID, repoURLs, &failures)
			}
			if wire.Config().LocalMirror {
				runMirrorStep(ctx, &failures)
			}
			runBudgetStep(ctx, &failures)

			if failures > 0 {
				return fmt.Errorf("%d step(s) failed; re-run bootstrap to finish the remaining work", failures)
			}
			fmt.Printf("\n%s Workspace ready\n", color.New(color.FgGreen).Sprint("✓"))
			return nil
		},
	}

	cmd.Flags().StringVar(&databaseID, "database", "", "existing roadmap database ID (created under the parent page when omitted)")
	return cmd
}

func stepFailed(name string, err error, failures *int) {
	fmt.Printf("%s %s: %v\n", color.New(color.FgRed).Sprint("✗"), name, err)
	*failures++
}

func runRepoStep(ctx context.Context, failures *int) map[string]string {
	fmt.Println("==> Repositories")
	svc, err := wire.ScaffoldService(os.Stdout)
	if err != nil {
		stepFailed("repositories", err, failures)
		return nil
	}
	summary, err := svc.EnsureRepositories(ctx)
	if err != nil {
		stepFailed("repositories", err, failures)
		return nil
	}
	fmt.Printf("  %d created, %d existing, %d failed\n", len(summary.Created), len(summary.Existing), len(summary.Failed))
	if len(summary.Failed) > 0 {
		*failures++
	}
	return summary.RepoURLs
}

func runDatabaseStep(ctx context.Context, databaseID string, failures *int) string {
	fmt.Println("==> Database")
	svc, err := wire.SchemaService(os.Stdout)
	if err != nil {
		stepFailed("database", err, failures)
		return ""
	}
	ensured, err := svc.EnsureDatabase(ctx, databaseID)
	if err != nil {
		stepFailed("database", err, failures)
		return ""
	}
	if ensured.Created {
		fmt.Printf("  Created %q (%s)\n", ensured.Title, ensured.DatabaseID)
	} else {
		fmt.Printf("  Found %q (%s)\n", ensured.Title, ensured.DatabaseID)
	}

	schema, err := svc.EnsureSchema(ctx, primary.EnsureSchemaRequest{DatabaseID: ensured.DatabaseID})
	if err != nil {
		stepFailed("schema", err, failures)
		return ensured.DatabaseID
	}
	if len(schema.Added) == 0 {
		fmt.Printf("  Schema complete (%d columns)\n", schema.Skipped)
	} else {
		fmt.Printf("  Added %d column(s), %d already present\n", len(schema.Added), schema.Skipped)
	}
	return ensured.DatabaseID
}

func runSyncStep(ctx context.Context, databaseID string, repoURLs map[string]string, failures *int) {
	fmt.Println("==> Roadmap rows")
	svc, err := wire.SyncService(os.Stdout)
	if err != nil {
		stepFailed("sync", err, failures)
		return
	}
	summary, err := svc.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: databaseID, RepoURLs: repoURLs})
	if err != nil {
		stepFailed("sync", err, failures)
		return
	}
	fmt.Printf("  %d created, %d updated, %d failed\n", summary.Created, summary.Updated, summary.Failed)
	if summary.Failed > 0 {
		*failures++
	}
}

func runMirrorStep(ctx context.Context, failures *int) {
	fmt.Println("==> Local mirror")
	summary, err := wire.MirrorService(os.Stdout).MirrorProjects(ctx)
	if err != nil {
		stepFailed("mirror", err, failures)
		return
	}
	fmt.Printf("  %d project(s), %d file(s) written under %s\n", summary.Projects, summary.Files, wire.Config().MirrorRoot)
}

func runBudgetStep(ctx context.Context, failures *int) {
	fmt.Println("==> Budget")
	svc, err := wire.BudgetService()
	if err != nil {
		stepFailed("budget", err, failures)
		return
	}
	result, err := svc.EnsureBudget(ctx)
	if err != nil {
		stepFailed("budget", err, failures)
		return
	}
	if result.Skipped {
		fmt.Printf("  Skipped: %s\n", result.Reason)
	} else {
		fmt.Printf("  Ensured %s\n", result.Name)
	}
}
