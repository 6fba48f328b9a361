package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
	"github.com/example/waypoint/internal/templates"
)

// MirrorServiceImpl implements the MirrorService interface.
type MirrorServiceImpl struct {
	writer secondary.FileWriter
	root   string
	out    io.Writer
}

// NewMirrorService creates a new MirrorService with injected dependencies.
func NewMirrorService(writer secondary.FileWriter, root string, out io.Writer) *MirrorServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &MirrorServiceImpl{writer: writer, root: root, out: out}
}

// MirrorProjects replicates every project's template tree under the
// mirror root. A project's failure is reported and the loop continues.
func (s *MirrorServiceImpl) MirrorProjects(ctx context.Context) (*primary.MirrorSummary, error) {
	if s.root == "" {
		return nil, NewConfigurationError("mirror root", "no mirror root configured")
	}

	projects, err := templates.Projects()
	if err != nil {
		return nil, fmt.Errorf("failed to load project templates: %w", err)
	}

	summary := &primary.MirrorSummary{}
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		files, err := s.mirrorProject(project)
		if err != nil {
			fmt.Fprintf(s.out, "%s: %v\n", project.Key, err)
			continue
		}
		summary.Projects++
		summary.Files += files
		fmt.Fprintf(s.out, "%s: %d files\n", project.Key, files)
	}

	return summary, nil
}

func (s *MirrorServiceImpl) mirrorProject(project templates.Project) (int, error) {
	root := filepath.Join(s.root, project.Key)

	if err := s.writer.WriteFile(root, "README.md", []byte(project.Readme)); err != nil {
		return 0, err
	}
	files := 1

	for _, path := range project.Scaffold {
		content, err := templates.StarterContent(path)
		if err != nil {
			return files, err
		}
		if err := s.writer.WriteFile(root, path, content); err != nil {
			return files, err
		}
		files++
	}

	return files, nil
}

var _ primary.MirrorService = (*MirrorServiceImpl)(nil)
