package primary

import "context"

// ScaffoldService defines the primary port for hosted-repository
// scaffolding.
type ScaffoldService interface {
	// EnsureRepositories creates-or-fetches every project repository
	// and materializes its template files. One repository's failure
	// does not stop the others. Returns repo key → canonical URL for
	// every repository that exists after the pass.
	EnsureRepositories(ctx context.Context) (*ScaffoldSummary, error)
}

// ScaffoldSummary reports the repository ensure pass.
type ScaffoldSummary struct {
	RepoURLs map[string]string
	Created  []string // repositories created this run
	Existing []string // repositories found already present
	Failed   []string
}

// MirrorService defines the primary port for the local template mirror.
type MirrorService interface {
	// MirrorProjects writes every project's template tree under the
	// configured mirror root.
	MirrorProjects(ctx context.Context) (*MirrorSummary, error)
}

// MirrorSummary reports the local mirror pass.
type MirrorSummary struct {
	Projects int
	Files    int
}
