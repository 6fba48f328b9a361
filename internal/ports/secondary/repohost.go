package secondary

import "context"

// RepoHost defines the secondary port for the code-hosting API.
type RepoHost interface {
	// RepoExists checks existence by direct owner/name lookup.
	RepoExists(ctx context.Context, name string) (bool, error)

	// CreateRepo creates a repository under the configured account.
	CreateRepo(ctx context.Context, req CreateHostedRepoRequest) error

	// GetFileSHA returns the version identifier of an existing file,
	// or "" when the path does not exist.
	GetFileSHA(ctx context.Context, repo, path string) (string, error)

	// PutFile creates or overwrites a file. Overwrites must carry the
	// current SHA or the host rejects the write as a conflicting update.
	PutFile(ctx context.Context, req PutFileRequest) error

	// RepoURL returns the canonical browse URL for a repository name.
	RepoURL(name string) string
}

// CreateHostedRepoRequest contains parameters for creating a hosted repository.
type CreateHostedRepoRequest struct {
	Name        string
	Description string
	Private     bool
	AutoInit    bool
}

// PutFileRequest contains parameters for a file create-or-update call.
type PutFileRequest struct {
	Repo    string
	Path    string
	Content []byte
	Message string
	SHA     string // required when the path already exists
}
