// Package templates holds the embedded project manifest: the six
// portfolio repositories with their scaffold paths, README content, and
// starter file bodies.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var manifestFS embed.FS

// Project describes one portfolio repository.
type Project struct {
	Key         string   `yaml:"key"`
	Description string   `yaml:"description"`
	Scaffold    []string `yaml:"scaffold"`
	Readme      string   `yaml:"readme"`
}

type manifest struct {
	Projects []Project         `yaml:"projects"`
	Starters map[string]string `yaml:"starters"`
}

var (
	loadOnce sync.Once
	loaded   *manifest
	loadErr  error
)

func load() (*manifest, error) {
	loadOnce.Do(func() {
		content, err := manifestFS.ReadFile("projects.yaml")
		if err != nil {
			loadErr = fmt.Errorf("failed to read project manifest: %w", err)
			return
		}
		var m manifest
		if err := yaml.Unmarshal(content, &m); err != nil {
			loadErr = fmt.Errorf("failed to parse project manifest: %w", err)
			return
		}
		loaded = &m
	})
	return loaded, loadErr
}

// Projects returns all portfolio projects in manifest order.
func Projects() ([]Project, error) {
	m, err := load()
	if err != nil {
		return nil, err
	}
	return m.Projects, nil
}

// Get returns the project with the given key, or an error when the key
// is unknown.
func Get(key string) (*Project, error) {
	m, err := load()
	if err != nil {
		return nil, err
	}
	for i := range m.Projects {
		if m.Projects[i].Key == key {
			return &m.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("unknown project %q", key)
}

// StarterContent returns the body for a scaffold path. Paths without
// declared content get a minimal placeholder; binary placeholder paths
// get empty content.
func StarterContent(path string) ([]byte, error) {
	m, err := load()
	if err != nil {
		return nil, err
	}
	if IsBinaryPlaceholder(path) {
		return []byte{}, nil
	}
	if content, ok := m.Starters[path]; ok {
		return []byte(content), nil
	}
	return []byte("# TODO\n"), nil
}

// IsBinaryPlaceholder reports whether a scaffold path stands in for a
// binary artifact the learner will produce later.
func IsBinaryPlaceholder(path string) bool {
	return strings.HasSuffix(path, ".png")
}
