package app

import (
	"context"
	"fmt"
	"io"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
	"github.com/example/waypoint/internal/templates"
)

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	host    secondary.RepoHost
	private bool
	out     io.Writer
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(host secondary.RepoHost, private bool, out io.Writer) *ScaffoldServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &ScaffoldServiceImpl{host: host, private: private, out: out}
}

// EnsureRepositories creates-or-fetches every project repository and
// materializes its template files. One repository's failure is
// reported and the loop continues to the next (best-effort-all).
func (s *ScaffoldServiceImpl) EnsureRepositories(ctx context.Context) (*primary.ScaffoldSummary, error) {
	projects, err := templates.Projects()
	if err != nil {
		return nil, fmt.Errorf("failed to load project templates: %w", err)
	}

	summary := &primary.ScaffoldSummary{RepoURLs: make(map[string]string, len(projects))}
	for _, project := range projects {
		created, err := s.ensureRepository(ctx, project)
		if err != nil {
			fmt.Fprintf(s.out, "%s: %v\n", project.Key, err)
			summary.Failed = append(summary.Failed, project.Key)
			continue
		}
		if created {
			summary.Created = append(summary.Created, project.Key)
		} else {
			summary.Existing = append(summary.Existing, project.Key)
		}
		summary.RepoURLs[project.Key] = s.host.RepoURL(project.Key)

		if err := s.materialize(ctx, project); err != nil {
			fmt.Fprintf(s.out, "%s: %v\n", project.Key, err)
			summary.Failed = append(summary.Failed, project.Key)
		}
	}

	return summary, nil
}

// ensureRepository checks existence by direct lookup and creates the
// repository only when absent. Create-or-fetch: an existing repository
// is never modified here.
func (s *ScaffoldServiceImpl) ensureRepository(ctx context.Context, project templates.Project) (created bool, err error) {
	exists, err := s.host.RepoExists(ctx, project.Key)
	if err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	if exists {
		fmt.Fprintf(s.out, "%s: repository exists\n", project.Key)
		return false, nil
	}

	err = s.host.CreateRepo(ctx, secondary.CreateHostedRepoRequest{
		Name:        project.Key,
		Description: project.Description,
		Private:     s.private,
		AutoInit:    true,
	})
	if err != nil {
		return false, fmt.Errorf("creation failed: %w", err)
	}
	fmt.Fprintf(s.out, "%s: repository created\n", project.Key)
	return true, nil
}

// materialize writes the README and scaffold files. A path that
// already exists remotely (the auto-initialized README in particular)
// is overwritten only with its current version identifier attached.
func (s *ScaffoldServiceImpl) materialize(ctx context.Context, project templates.Project) error {
	if err := s.putFile(ctx, project.Key, "README.md", []byte(project.Readme), "chore: add README"); err != nil {
		return err
	}

	for _, path := range project.Scaffold {
		content, err := templates.StarterContent(path)
		if err != nil {
			return err
		}
		message := fmt.Sprintf("chore: scaffold %s", path)
		if err := s.putFile(ctx, project.Key, path, content, message); err != nil {
			return err
		}
	}
	return nil
}

func (s *ScaffoldServiceImpl) putFile(ctx context.Context, repo, path string, content []byte, message string) error {
	sha, err := s.host.GetFileSHA(ctx, repo, path)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	err = s.host.PutFile(ctx, secondary.PutFileRequest{
		Repo:    repo,
		Path:    path,
		Content: content,
		Message: message,
		SHA:     sha,
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
