package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/waypoint/internal/ports/secondary"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"spaced separator", "SQL Basics - SELECT, WHERE, ORDER BY", "SQL Basics"},
		{"trailing hyphen", "Joins & Aggregations -", "Joins & Aggregations"},
		{"leading-space hyphen", "Window Functions- ranking", "Window Functions"},
		{"no separator", "Capstone Planning", "Capstone Planning"},
		{"hyphenated word kept", "CI-CD Foundations", "CI-CD Foundations"},
		{"surrounding whitespace", "  Streaming Basics  ", "Streaming Basics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.title); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestPlanTitleCleanup(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(1),
		ColTopic: secondary.TitleValue("SQL Basics - SELECT, WHERE"),
	})
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(2),
		ColTopic: secondary.TitleValue("Joins & Aggregations"),
	})
	service := NewTitleService(store, nil)

	changes, err := service.PlanTitleCleanup(context.Background(), id)
	if err != nil {
		t.Fatalf("PlanTitleCleanup failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	change := changes[0]
	if change.Week != 1 || change.NewTitle != "SQL Basics" {
		t.Errorf("change = %+v", change)
	}
	if store.updatePageCalls != 0 {
		t.Errorf("planning wrote %d updates, want 0", store.updatePageCalls)
	}
}

func TestApplyTitleCleanup(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	pageID := store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(1),
		ColTopic: secondary.TitleValue("SQL Basics - SELECT, WHERE"),
	})
	service := NewTitleService(store, nil)
	ctx := context.Background()

	changes, err := service.PlanTitleCleanup(ctx, id)
	if err != nil {
		t.Fatalf("PlanTitleCleanup failed: %v", err)
	}
	summary, err := service.ApplyTitleCleanup(ctx, changes)
	if err != nil {
		t.Fatalf("ApplyTitleCleanup failed: %v", err)
	}
	if summary.Updated != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 1 updated", summary)
	}

	page, err := store.GetPage(ctx, pageID)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if got := page.Properties[ColTopic].Text; got != "SQL Basics" {
		t.Errorf("title = %q, want %q", got, "SQL Basics")
	}
}

func TestApplyTitleCleanupRequiresPlan(t *testing.T) {
	service := NewTitleService(newMockDatabaseStore(), nil)

	_, err := service.ApplyTitleCleanup(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error when applying before planning")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("error type = %T, want *ConfigurationError", err)
	}
}

func TestApplyTitleCleanupIsolatesFailures(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(1),
		ColTopic: secondary.TitleValue("SQL Basics - SELECT"),
	})
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(2),
		ColTopic: secondary.TitleValue("Joins - INNER, OUTER"),
	})
	service := NewTitleService(store, nil)
	ctx := context.Background()

	changes, err := service.PlanTitleCleanup(ctx, id)
	if err != nil {
		t.Fatalf("PlanTitleCleanup failed: %v", err)
	}

	store.updatePageErr = errors.New("update refused")
	summary, err := service.ApplyTitleCleanup(ctx, changes)
	if err != nil {
		t.Fatalf("ApplyTitleCleanup failed: %v", err)
	}
	if summary.Failed != 2 || summary.Updated != 0 {
		t.Errorf("summary = %+v, want every row reported failed", summary)
	}
	if store.updatePageCalls != 2 {
		t.Errorf("update attempts = %d, want 2", store.updatePageCalls)
	}
}
