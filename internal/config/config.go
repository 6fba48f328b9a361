// Package config loads the process-wide configuration snapshot.
// The snapshot is constructed once at startup and passed by reference
// to every component; nothing reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default API endpoints. Overridable for tests and self-hosted targets.
const (
	DefaultNotionBaseURL  = "https://api.notion.com/v1"
	DefaultGitHubBaseURL  = "https://api.github.com"
	DefaultBillingRegion  = "us-east-1"
	DefaultWriteDelay     = Duration(250 * time.Millisecond)
	DefaultConfigFileName = "waypoint.yaml"
)

// Config is the immutable configuration snapshot for a run.
type Config struct {
	// Structured-database API (Notion).
	NotionToken        string `yaml:"notion_token"`
	NotionParentPageID string `yaml:"notion_parent_page_id"`
	NotionBaseURL      string `yaml:"notion_base_url"`

	// Code-hosting API (GitHub).
	GitHubToken    string `yaml:"github_token"`
	GitHubUsername string `yaml:"github_username"`
	GitHubBaseURL  string `yaml:"github_base_url"`

	// Billing guard (optional).
	BillingToken    string `yaml:"billing_token"`
	BillingEndpoint string `yaml:"billing_endpoint"`
	BillingRegion   string `yaml:"billing_region"`
	BudgetEmail     string `yaml:"budget_email"`

	// Feature toggles.
	LocalMirror  bool `yaml:"local_mirror"`
	CreateBudget bool `yaml:"create_budget"`
	PrivateRepos bool `yaml:"private_repos"`

	// MirrorRoot is where local project scaffolds are written.
	// Defaults to the current working directory.
	MirrorRoot string `yaml:"mirror_root"`

	// WriteDelay is the fixed pause after every mutating remote call,
	// respecting the external APIs' request-rate ceiling.
	WriteDelay Duration `yaml:"write_delay"`
}

// Duration wraps time.Duration so config files can use "250ms" syntax.
type Duration time.Duration

// UnmarshalYAML parses Go duration strings.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Readiness reports which external services have complete credentials.
// A missing credential skips the affected step; it is not fatal to the
// run, since later independent steps may still be attempted.
type Readiness struct {
	Notion  bool
	GitHub  bool
	Billing bool
}

// Load builds the configuration snapshot: defaults, then the optional
// waypoint.yaml in dir, then environment variables on top.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		NotionBaseURL: DefaultNotionBaseURL,
		GitHubBaseURL: DefaultGitHubBaseURL,
		BillingRegion: DefaultBillingRegion,
		LocalMirror:   true,
		PrivateRepos:  true,
		WriteDelay:    DefaultWriteDelay,
	}

	if dir != "" {
		if err := cfg.applyFile(filepath.Join(dir, DefaultConfigFileName)); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if cfg.MirrorRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.MirrorRoot = wd
	}

	return cfg, nil
}

// applyFile overlays values from a yaml config file. A missing file is
// not an error; the environment alone is a complete configuration.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.NotionToken, "NOTION_TOKEN")
	setString(&c.NotionParentPageID, "NOTION_PARENT_PAGE_ID")
	setString(&c.NotionBaseURL, "NOTION_BASE_URL")
	setString(&c.GitHubToken, "GITHUB_TOKEN")
	setString(&c.GitHubUsername, "GITHUB_USERNAME")
	setString(&c.GitHubBaseURL, "GITHUB_BASE_URL")
	setString(&c.BillingToken, "BILLING_TOKEN")
	setString(&c.BillingEndpoint, "BILLING_ENDPOINT")
	setString(&c.BillingRegion, "BILLING_REGION")
	setString(&c.BudgetEmail, "BUDGET_EMAIL")
	setString(&c.MirrorRoot, "WAYPOINT_MIRROR_ROOT")
	setBool(&c.LocalMirror, "WAYPOINT_LOCAL_MIRROR")
	setBool(&c.CreateBudget, "WAYPOINT_CREATE_BUDGET")
	setBool(&c.PrivateRepos, "WAYPOINT_PRIVATE_REPOS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// Validate reports per-service readiness.
func (c *Config) Validate() Readiness {
	return Readiness{
		Notion:  c.NotionToken != "" && c.NotionParentPageID != "",
		GitHub:  c.GitHubToken != "" && c.GitHubUsername != "",
		Billing: !c.CreateBudget || (c.BillingToken != "" && c.BillingEndpoint != "" && c.BudgetEmail != ""),
	}
}
