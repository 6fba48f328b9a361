package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/waypoint/internal/ports/secondary"
)

func reorderFixture(store *mockDatabaseStore) string {
	id := roadmapDatabase(store, "db-1")
	for _, week := range []int{3, 1, 2} {
		store.addPage(id, map[string]secondary.PropertyValue{
			ColWeek:  secondary.NumberValue(float64(week)),
			ColTopic: secondary.TitleValue("topic"),
		})
	}
	return id
}

func TestReorderByWeekRecreatesAscending(t *testing.T) {
	store := newMockDatabaseStore()
	id := reorderFixture(store)
	service := NewReorderService(store, nil)

	summary, err := service.ReorderByWeek(context.Background(), id)
	if err != nil {
		t.Fatalf("ReorderByWeek failed: %v", err)
	}
	if summary.Updated != 3 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 3 reordered", summary)
	}
	if store.createPageCalls != 3 || store.archiveCalls != 3 {
		t.Errorf("create/archive = %d/%d, want 3/3", store.createPageCalls, store.archiveCalls)
	}

	rows := store.pages[id]
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 after reorder", len(rows))
	}
	for i, row := range rows {
		want := float64(i + 1)
		if got := row.Properties[ColWeek].Number; got == nil || *got != want {
			t.Errorf("row %d week = %v, want %v", i, got, want)
		}
	}
}

func TestReorderByWeekSkipsRowsWithoutWeek(t *testing.T) {
	store := newMockDatabaseStore()
	id := reorderFixture(store)
	strayID := store.addPage(id, map[string]secondary.PropertyValue{
		ColTopic: secondary.TitleValue("no week"),
	})
	service := NewReorderService(store, nil)

	summary, err := service.ReorderByWeek(context.Background(), id)
	if err != nil {
		t.Fatalf("ReorderByWeek failed: %v", err)
	}
	if summary.Skipped != 1 {
		t.Errorf("summary = %+v, want 1 skipped", summary)
	}
	if _, err := store.GetPage(context.Background(), strayID); err != nil {
		t.Error("row without a week number was archived")
	}
}

func TestReorderByWeekKeepsOriginalOnRecreateFailure(t *testing.T) {
	store := newMockDatabaseStore()
	id := reorderFixture(store)
	store.createPageErr = errors.New("create refused")
	service := NewReorderService(store, nil)

	summary, err := service.ReorderByWeek(context.Background(), id)
	if err != nil {
		t.Fatalf("ReorderByWeek failed: %v", err)
	}
	if summary.Failed != 3 || summary.Updated != 0 {
		t.Errorf("summary = %+v, want every row failed", summary)
	}
	if store.archiveCalls != 0 {
		t.Errorf("archive calls = %d, want 0 when no recreate succeeded", store.archiveCalls)
	}
	if len(store.pages[id]) != 3 {
		t.Errorf("rows = %d, want all 3 originals kept", len(store.pages[id]))
	}
}

func TestReorderByWeekRequiresWeekColumn(t *testing.T) {
	store := newMockDatabaseStore()
	store.addDatabase("db-1", "Groceries", map[string]secondary.PropertySpec{
		"Item": {Type: secondary.PropertyTitle},
	})
	service := NewReorderService(store, nil)

	_, err := service.ReorderByWeek(context.Background(), "db-1")
	if err == nil {
		t.Fatal("expected an error for a database without a week column")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("error type = %T, want *ConfigurationError", err)
	}
}
