package app

import (
	"context"
	"testing"

	"github.com/example/waypoint/internal/models"
	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

func TestSyncRoadmapCreatesAllWeeks(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	service := NewSyncService(store, nil)

	summary, err := service.SyncRoadmap(context.Background(), primary.SyncRequest{
		DatabaseID: id,
		RepoURLs:   map[string]string{"retail-sales-etl": "https://github.com/octocat/retail-sales-etl"},
	})
	if err != nil {
		t.Fatalf("SyncRoadmap failed: %v", err)
	}
	if summary.Created != models.WeeksTotal || summary.Updated != 0 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 24 created", summary)
	}
	if len(store.pages[id]) != models.WeeksTotal {
		t.Errorf("remote rows = %d, want 24", len(store.pages[id]))
	}

	// Week 1 carries the repo link and the default status.
	first := store.pages[id][0]
	if got := first.Properties[ColGitHub].URL; got != "https://github.com/octocat/retail-sales-etl" {
		t.Errorf("github url = %q", got)
	}
	if got := first.Properties[ColStatus].Select; got != StatusToDo {
		t.Errorf("status = %q, want %q", got, StatusToDo)
	}
	if got := first.Properties[ColPriority].Select; got != models.PriorityHigh {
		t.Errorf("priority = %q, want high for week 1", got)
	}
}

func TestSyncRoadmapIsIdempotent(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	service := NewSyncService(store, nil)
	ctx := context.Background()

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	summary, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id})
	if err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	if summary.Created != 0 || summary.Updated != models.WeeksTotal {
		t.Errorf("second run summary = %+v, want 24 updated, 0 created", summary)
	}
	// Exactly one row per natural key, not two.
	if len(store.pages[id]) != models.WeeksTotal {
		t.Errorf("remote rows = %d after double sync, want 24", len(store.pages[id]))
	}
}

func TestSyncRoadmapPreservesOperatorProgress(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	service := NewSyncService(store, nil)
	ctx := context.Background()

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	// Operator marks week 1 done.
	week1 := store.pages[id][0]
	week1.Properties[ColStatus] = secondary.SelectValue(StatusDone)

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if got := week1.Properties[ColStatus].Select; got != StatusDone {
		t.Errorf("status = %q after resync, operator progress was clobbered", got)
	}
}

func TestSyncRoadmapUpdatesInPlaceNeverArchives(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	service := NewSyncService(store, nil)
	ctx := context.Background()

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	originalID := store.pages[id][0].ID

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if store.archiveCalls != 0 {
		t.Errorf("archive calls = %d, sync must never delete-and-recreate", store.archiveCalls)
	}
	if store.pages[id][0].ID != originalID {
		t.Error("row identity changed across syncs")
	}
}

func TestSyncRoadmapFollowsPagination(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	store.batchSize = 10
	service := NewSyncService(store, nil)
	ctx := context.Background()

	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	// 24 rows in batches of 10 means three query calls on the resync.
	store.queryCalls = 0
	if _, err := service.SyncRoadmap(ctx, primary.SyncRequest{DatabaseID: id}); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}
	if store.queryCalls != 3 {
		t.Errorf("query calls = %d, want 3 for 24 rows in batches of 10", store.queryCalls)
	}
	if len(store.pages[id]) != models.WeeksTotal {
		t.Errorf("remote rows = %d, want 24", len(store.pages[id]))
	}
}

func TestSyncRoadmapIsolatesRowFailures(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	store.createPageErr = context.DeadlineExceeded
	service := NewSyncService(store, nil)

	summary, err := service.SyncRoadmap(context.Background(), primary.SyncRequest{DatabaseID: id})
	if err != nil {
		t.Fatalf("SyncRoadmap returned hard error: %v", err)
	}
	if summary.Failed != models.WeeksTotal {
		t.Errorf("failed = %d, want every row counted, not an aborted loop", summary.Failed)
	}
	if store.createPageCalls != models.WeeksTotal {
		t.Errorf("create calls = %d, want all 24 attempted", store.createPageCalls)
	}
}

func TestSyncRoadmapMissingWeekColumn(t *testing.T) {
	store := newMockDatabaseStore()
	store.addDatabase("db-1", "Plan", map[string]secondary.PropertySpec{
		"Name": {Type: secondary.PropertyTitle},
	})
	service := NewSyncService(store, nil)

	_, err := service.SyncRoadmap(context.Background(), primary.SyncRequest{DatabaseID: "db-1"})
	if _, ok := err.(*ConfigurationError); !ok {
		t.Fatalf("expected ConfigurationError for unresolvable week column, got %v", err)
	}
}
