package app

import (
	"context"
	"strings"
	"testing"
)

func TestMirrorProjectsWritesAllTemplates(t *testing.T) {
	writer := newMockFileWriter()
	service := NewMirrorService(writer, "/tmp/mirror", nil)

	summary, err := service.MirrorProjects(context.Background())
	if err != nil {
		t.Fatalf("MirrorProjects failed: %v", err)
	}
	if summary.Projects != 6 {
		t.Errorf("projects = %d, want 6", summary.Projects)
	}
	if summary.Files != len(writer.written) {
		t.Errorf("files = %d, writer saw %d", summary.Files, len(writer.written))
	}

	readme, ok := writer.written["/tmp/mirror/retail-sales-etl/README.md"]
	if !ok {
		t.Fatal("retail-sales-etl README was not mirrored")
	}
	if !strings.Contains(string(readme), "Retail Sales ETL") {
		t.Errorf("README content = %q", readme)
	}

	if content, ok := writer.written["/tmp/mirror/retail-sales-etl/architecture/diagram.png"]; !ok {
		t.Error("binary placeholder was not mirrored")
	} else if len(content) != 0 {
		t.Error("binary placeholder should be empty")
	}
}

func TestMirrorProjectsWithoutRootFails(t *testing.T) {
	service := NewMirrorService(newMockFileWriter(), "", nil)

	_, err := service.MirrorProjects(context.Background())
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
