// Package wire provides dependency injection for the waypoint
// application. The configuration snapshot, logger and local catalog
// are singletons with lazy initialization; API clients are built on
// demand because their credentials may be absent for some commands.
package wire

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/example/waypoint/internal/adapters/billing"
	"github.com/example/waypoint/internal/adapters/github"
	"github.com/example/waypoint/internal/adapters/localfs"
	"github.com/example/waypoint/internal/adapters/notion"
	"github.com/example/waypoint/internal/adapters/sqlite"
	"github.com/example/waypoint/internal/app"
	"github.com/example/waypoint/internal/config"
	"github.com/example/waypoint/internal/db"
	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

var (
	cfg    *config.Config
	logger *slog.Logger
	once   sync.Once
)

// Config returns the singleton configuration snapshot.
func Config() *config.Config {
	once.Do(initCore)
	return cfg
}

// Logger returns the singleton structured logger.
func Logger() *slog.Logger {
	once.Do(initCore)
	return logger
}

// initCore loads the configuration snapshot and sets up logging.
// This is called once via sync.Once.
func initCore() {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to resolve working directory: %v", err)
	}
	cfg, err = config.Load(wd)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// DatabaseStore builds the structured-database client from the
// configured credentials.
func DatabaseStore() (secondary.DatabaseStore, error) {
	c := Config()
	if !c.Validate().Notion {
		return nil, app.NewConfigurationError("notion", "NOTION_TOKEN and NOTION_PARENT_PAGE_ID must be set")
	}
	client, err := notion.NewClient(notion.ClientConfig{
		BaseURL:    c.NotionBaseURL,
		Token:      c.NotionToken,
		Logger:     Logger(),
		WriteDelay: c.WriteDelay.Std(),
	})
	if err != nil {
		return nil, err
	}
	return notion.NewStore(client), nil
}

// RepoHost builds the code-hosting client from the configured
// credentials.
func RepoHost() (secondary.RepoHost, error) {
	c := Config()
	if !c.Validate().GitHub {
		return nil, app.NewConfigurationError("github", "GITHUB_TOKEN and GITHUB_USERNAME must be set")
	}
	return github.NewClient(github.ClientConfig{
		BaseURL:    c.GitHubBaseURL,
		Token:      c.GitHubToken,
		Owner:      c.GitHubUsername,
		Logger:     Logger(),
		WriteDelay: c.WriteDelay.Std(),
	})
}

// BudgetCreator builds the billing client, or returns nil when the
// billing credentials are absent. The budget service treats a nil
// creator as a skip, not a failure.
func BudgetCreator() (secondary.BudgetCreator, error) {
	c := Config()
	if c.BillingToken == "" || c.BillingEndpoint == "" {
		return nil, nil
	}
	return billing.NewClient(billing.ClientConfig{
		Endpoint:   c.BillingEndpoint,
		Token:      c.BillingToken,
		Region:     c.BillingRegion,
		Logger:     Logger(),
		WriteDelay: c.WriteDelay.Std(),
	})
}

// CatalogRepository opens the local scan catalog.
func CatalogRepository() (secondary.CatalogRepository, error) {
	database, err := db.GetDB()
	if err != nil {
		return nil, err
	}
	return sqlite.NewCatalogRepository(database), nil
}

// SchemaService returns a SchemaService writing progress to out.
func SchemaService(out io.Writer) (primary.SchemaService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewSchemaService(store, Config().NotionParentPageID, out), nil
}

// SyncService returns a SyncService writing progress to out.
func SyncService(out io.Writer) (primary.SyncService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewSyncService(store, out), nil
}

// ScaffoldService returns a ScaffoldService writing progress to out.
func ScaffoldService(out io.Writer) (primary.ScaffoldService, error) {
	host, err := RepoHost()
	if err != nil {
		return nil, err
	}
	return app.NewScaffoldService(host, Config().PrivateRepos, out), nil
}

// MirrorService returns a MirrorService writing progress to out.
func MirrorService(out io.Writer) primary.MirrorService {
	return app.NewMirrorService(localfs.NewWriter(), Config().MirrorRoot, out)
}

// BudgetService returns a BudgetService. Missing billing credentials
// surface as a skipped result, not an error.
func BudgetService() (primary.BudgetService, error) {
	creator, err := BudgetCreator()
	if err != nil {
		return nil, err
	}
	c := Config()
	return app.NewBudgetService(creator, c.CreateBudget, c.BudgetEmail), nil
}

// ScanService returns a ScanService writing progress to out.
func ScanService(out io.Writer) (primary.ScanService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	catalog, err := CatalogRepository()
	if err != nil {
		return nil, err
	}
	return app.NewScanService(store, catalog, out), nil
}

// EnhanceService returns an EnhanceService writing progress to out.
func EnhanceService(out io.Writer) (primary.EnhanceService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewEnhanceService(store, out), nil
}

// TitleService returns a TitleService writing progress to out.
// The returned instance carries plan state; callers must use the same
// instance for the plan and apply halves of a run.
func TitleService(out io.Writer) (primary.TitleService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewTitleService(store, out), nil
}

// SubtaskService returns a SubtaskService writing progress to out.
func SubtaskService(out io.Writer) (primary.SubtaskService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewSubtaskService(store, out), nil
}

// CompareService returns a CompareService.
func CompareService() (primary.CompareService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewCompareService(store), nil
}

// ReorderService returns a ReorderService writing progress to out.
func ReorderService(out io.Writer) (primary.ReorderService, error) {
	store, err := DatabaseStore()
	if err != nil {
		return nil, err
	}
	return app.NewReorderService(store, out), nil
}
