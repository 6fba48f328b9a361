package app

import (
	"context"
	"testing"

	"github.com/example/waypoint/internal/ports/secondary"
)

func TestCompareDatabasesPicksRicherSide(t *testing.T) {
	store := newMockDatabaseStore()
	rich := roadmapDatabase(store, "db-rich")
	for week := 1; week <= 5; week++ {
		store.addPage(rich, map[string]secondary.PropertyValue{
			ColWeek:    secondary.NumberValue(float64(week)),
			ColTopic:   secondary.TitleValue("topic"),
			ColDetails: secondary.TextValue("a long elaboration of the week"),
		})
	}
	sparse := roadmapDatabase(store, "db-sparse")
	for week := 1; week <= 2; week++ {
		store.addPage(sparse, map[string]secondary.PropertyValue{
			ColWeek:  secondary.NumberValue(float64(week)),
			ColTopic: secondary.TitleValue("topic"),
		})
	}
	service := NewCompareService(store)

	comparison, err := service.CompareDatabases(context.Background(), sparse, rich)
	if err != nil {
		t.Fatalf("CompareDatabases failed: %v", err)
	}
	if comparison.Verdict != rich {
		t.Errorf("verdict = %q, want %q", comparison.Verdict, rich)
	}
	if comparison.First.WeeksCovered != 2 || comparison.Second.WeeksCovered != 5 {
		t.Errorf("weeks = %d vs %d", comparison.First.WeeksCovered, comparison.Second.WeeksCovered)
	}
	if comparison.Second.DetailChars == 0 {
		t.Error("rich side reported no detail text")
	}
	if comparison.First.PageCount != 2 || comparison.Second.PageCount != 5 {
		t.Errorf("page counts = %d vs %d", comparison.First.PageCount, comparison.Second.PageCount)
	}
}

func TestCompareDatabasesDetailTextBreaksTies(t *testing.T) {
	store := newMockDatabaseStore()
	plain := roadmapDatabase(store, "db-plain")
	detailed := roadmapDatabase(store, "db-detailed")
	for _, id := range []string{plain, detailed} {
		properties := map[string]secondary.PropertyValue{
			ColWeek:  secondary.NumberValue(1),
			ColTopic: secondary.TitleValue("topic"),
		}
		if id == detailed {
			properties[ColDetails] = secondary.TextValue("practice joins daily")
		}
		store.addPage(id, properties)
	}
	service := NewCompareService(store)

	comparison, err := service.CompareDatabases(context.Background(), plain, detailed)
	if err != nil {
		t.Fatalf("CompareDatabases failed: %v", err)
	}
	if comparison.Verdict != detailed {
		t.Errorf("verdict = %q, want %q", comparison.Verdict, detailed)
	}
}

func TestCompareDatabasesTie(t *testing.T) {
	store := newMockDatabaseStore()
	roadmapDatabase(store, "db-a")
	roadmapDatabase(store, "db-b")
	service := NewCompareService(store)

	comparison, err := service.CompareDatabases(context.Background(), "db-a", "db-b")
	if err != nil {
		t.Fatalf("CompareDatabases failed: %v", err)
	}
	if comparison.Verdict != "" {
		t.Errorf("verdict = %q, want empty on a tie", comparison.Verdict)
	}
}

func TestCompareDatabasesUnresolvableSchemaStillProfiled(t *testing.T) {
	store := newMockDatabaseStore()
	roadmapDatabase(store, "db-roadmap")
	store.addPage("db-roadmap", map[string]secondary.PropertyValue{
		ColWeek:  secondary.NumberValue(1),
		ColTopic: secondary.TitleValue("topic"),
	})
	store.addDatabase("db-grocery", "Groceries", map[string]secondary.PropertySpec{
		"Item":  {Type: secondary.PropertyTitle},
		"Aisle": {Type: secondary.PropertyNumber},
	})
	service := NewCompareService(store)

	comparison, err := service.CompareDatabases(context.Background(), "db-roadmap", "db-grocery")
	if err != nil {
		t.Fatalf("CompareDatabases failed: %v", err)
	}
	if comparison.Second.PropertyCount != 2 {
		t.Errorf("unresolvable side property count = %d, want 2", comparison.Second.PropertyCount)
	}
	if comparison.Second.WeeksCovered != 0 {
		t.Errorf("unresolvable side weeks = %d, want 0", comparison.Second.WeeksCovered)
	}
	if comparison.Verdict != "db-roadmap" {
		t.Errorf("verdict = %q, want db-roadmap", comparison.Verdict)
	}
}
