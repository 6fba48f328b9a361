package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/waypoint/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate waypoint credentials and remote access",
		Long: `Check which external services the current configuration can reach.

Validates:
- Structured-database credentials and parent-page access
- Code-hosting credentials
- Billing credentials (only when the budget feature is enabled)
- Local mirror root

Examples:
  waypoint doctor           # Run full check
  waypoint doctor --quiet   # Exit code only (0=ready, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			results := []CheckResult{
				checkNotion(ctx),
				checkGitHub(),
				checkBilling(),
				checkMirrorRoot(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				for _, r := range results {
					status := r.Status
					switch status {
					case "✓":
						status = color.New(color.FgGreen).Sprint(status)
					case "⚠":
						status = color.New(color.FgYellow).Sprint(status)
					case "✗":
						status = color.New(color.FgRed).Sprint(status)
					}
					fmt.Printf("%-16s %s\n", r.Name, status)
					if r.Status != "✓" && r.Details != "" {
						fmt.Printf("  %s\n", r.Details)
					}
				}
				fmt.Println()
			}

			if hasErrors {
				return fmt.Errorf("environment is not ready")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "exit code only, no output")
	return cmd
}

// checkNotion verifies the credentials by fetching the parent page.
// A token that exists but cannot see the page is the common failure
// mode: the page was never shared with the integration.
func checkNotion(ctx context.Context) CheckResult {
	result := CheckResult{Name: "Notion"}
	cfg := wire.Config()

	if !cfg.Validate().Notion {
		result.Status = "✗"
		result.Details = "Set NOTION_TOKEN and NOTION_PARENT_PAGE_ID"
		return result
	}

	store, err := wire.DatabaseStore()
	if err != nil {
		result.Status = "✗"
		result.Details = err.Error()
		return result
	}
	if _, err := store.GetPage(ctx, cfg.NotionParentPageID); err != nil {
		result.Status = "✗"
		result.Details = fmt.Sprintf("Parent page unreachable (is it shared with the integration?): %v", err)
		return result
	}

	result.Status = "✓"
	return result
}

func checkGitHub() CheckResult {
	result := CheckResult{Name: "GitHub"}
	if !wire.Config().Validate().GitHub {
		result.Status = "✗"
		result.Details = "Set GITHUB_TOKEN and GITHUB_USERNAME"
		return result
	}
	result.Status = "✓"
	return result
}

func checkBilling() CheckResult {
	result := CheckResult{Name: "Billing"}
	cfg := wire.Config()
	if !cfg.CreateBudget {
		result.Status = "⚠"
		result.Details = "Budget feature disabled (WAYPOINT_CREATE_BUDGET=true to enable)"
		return result
	}
	if !cfg.Validate().Billing {
		result.Status = "✗"
		result.Details = "Set BILLING_TOKEN, BILLING_ENDPOINT and BUDGET_EMAIL"
		return result
	}
	result.Status = "✓"
	return result
}

func checkMirrorRoot() CheckResult {
	result := CheckResult{Name: "Mirror root"}
	cfg := wire.Config()
	if !cfg.LocalMirror {
		result.Status = "⚠"
		result.Details = "Local mirror disabled"
		return result
	}
	if cfg.MirrorRoot == "" {
		result.Status = "✗"
		result.Details = "Set WAYPOINT_MIRROR_ROOT or run from the target directory"
		return result
	}
	result.Status = "✓"
	return result
}
