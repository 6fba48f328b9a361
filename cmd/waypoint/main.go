package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/cli"
	"github.com/example/waypoint/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "waypoint",
		Short:   "Waypoint - learning workspace bootstrapper",
		Version: version.String(),
		Long: `Waypoint provisions a 24-week data engineering learning workspace:
a roadmap database, one hosted repository per project with template
files, an optional local mirror, and an optional monthly spend cap.
Every command is idempotent and safe to re-run after a partial failure.`,
	}

	rootCmd.AddCommand(cli.BootstrapCmd())
	rootCmd.AddCommand(cli.ScanCmd())
	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.EnhanceCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.TitlesCmd())
	rootCmd.AddCommand(cli.SubtasksCmd())
	rootCmd.AddCommand(cli.CompareCmd())
	rootCmd.AddCommand(cli.ReorderCmd())
	rootCmd.AddCommand(cli.MirrorCmd())
	rootCmd.AddCommand(cli.BudgetCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
