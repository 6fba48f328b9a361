package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/wire"
)

// ScanCmd returns the scan command
func ScanCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover databases in the remote workspace",
		Long: `Search the remote workspace for databases the integration can see,
score each one for roadmap likelihood, and record the results in the
local catalog.

Examples:
  waypoint scan
  waypoint scan --verbose     # include sample rows per database`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.ScanService(os.Stdout)
			if err != nil {
				return err
			}
			analyses, err := svc.ScanWorkspace(ctx)
			if err != nil {
				return fmt.Errorf("failed to scan workspace: %w", err)
			}
			if len(analyses) == 0 {
				fmt.Println("No databases visible to this integration.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tROWS\tSCORE\tROADMAP")
			fmt.Fprintln(w, "--\t-----\t----\t-----\t-------")
			for _, a := range analyses {
				marker := ""
				if a.LooksLikeRoadmap {
					marker = color.New(color.FgGreen).Sprint("✓")
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", a.DatabaseID, a.Title, a.PageCount, a.Score, marker)
			}
			w.Flush()

			if verbose {
				for _, a := range analyses {
					fmt.Printf("\n%s (%s)\n", a.Title, a.DatabaseID)
					fmt.Printf("  Properties: %s\n", strings.Join(a.Properties, ", "))
					for i, row := range a.SampleRows {
						fmt.Printf("  Row %d:\n", i+1)
						for name, text := range row {
							fmt.Printf("    %s: %s\n", name, text)
						}
					}
				}
			}

			// Analyses are ranked by score; the first roadmap candidate
			// is the best one.
			var top *primary.DatabaseAnalysis
			for _, a := range analyses {
				if a.LooksLikeRoadmap {
					top = a
					break
				}
			}
			if top == nil {
				fmt.Println("\nNo roadmap candidate found.")
				return nil
			}

			fmt.Printf("\nBest candidate: %s (%s), score %d\n", top.Title, top.DatabaseID, top.Score)
			if !confirmPrompt("Update this database with enhanced content?") {
				fmt.Println("Skipped.")
				return nil
			}

			enhancer, err := wire.EnhanceService(os.Stdout)
			if err != nil {
				return err
			}
			summary, err := enhancer.EnhanceDatabase(ctx, top.DatabaseID)
			if err != nil {
				return fmt.Errorf("failed to enhance database: %w", err)
			}
			fmt.Printf("%d updated, %d already current, %d failed\n", summary.Updated, summary.Unchanged, summary.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print properties and sample rows per database")
	return cmd
}

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the local scan catalog",
	}
	cmd.AddCommand(catalogListCmd())
	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded scan results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			svc, err := wire.ScanService(os.Stdout)
			if err != nil {
				return err
			}
			entries, err := svc.ListCatalog(ctx)
			if err != nil {
				return fmt.Errorf("failed to list catalog: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("Catalog is empty. Run a scan first:")
				fmt.Println("  waypoint scan")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tROWS\tSCORE\tROADMAP\tSCANNED")
			fmt.Fprintln(w, "--\t-----\t----\t-----\t-------\t-------")
			for _, e := range entries {
				marker := ""
				if e.Roadmap {
					marker = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\n", e.DatabaseID, e.Title, e.PageCount, e.Score, marker, e.ScannedAt)
			}
			w.Flush()
			return nil
		},
	}
}
