package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

const subtaskPlanCSV = `Week,Day,Topic,Learning,Deliverable,Task
1,2,SQL Basics,Filtering with WHERE,Three filter queries,Practice WHERE clauses
1,1,SQL Basics,SELECT fundamentals,Five SELECT queries,Write basic SELECTs
2,1,Joins,INNER JOIN semantics,Join two tables,Practice INNER JOIN
3,1,Window Functions,Ranking functions,Top-N per group query,Practice RANK and ROW_NUMBER
`

// writePlan drops the CSV into a temp dir and returns its path.
func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write plan: %v", err)
	}
	return path
}

func TestPreviewSubtasksGroupsByWeek(t *testing.T) {
	service := NewSubtaskService(newMockDatabaseStore(), nil)

	plan, err := service.PreviewSubtasks(writePlan(t, subtaskPlanCSV))
	if err != nil {
		t.Fatalf("PreviewSubtasks failed: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("weeks = %d, want 3", len(plan))
	}
	if len(plan[1]) != 2 || len(plan[2]) != 1 {
		t.Errorf("grouping = week1:%d week2:%d", len(plan[1]), len(plan[2]))
	}
	first := plan[2][0]
	if first.Day != 1 || first.Learning != "INNER JOIN semantics" || first.Task != "Practice INNER JOIN" {
		t.Errorf("subtask = %+v", first)
	}
}

func TestPreviewSubtasksMissingColumn(t *testing.T) {
	service := NewSubtaskService(newMockDatabaseStore(), nil)
	path := writePlan(t, "Week,Day,Learning,Deliverable\n1,1,a,b\n")

	_, err := service.PreviewSubtasks(path)
	if err == nil {
		t.Fatal("expected an error for a plan without a task column")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("error type = %T, want *ConfigurationError", err)
	}
}

func TestPreviewSubtasksBadWeekNumber(t *testing.T) {
	service := NewSubtaskService(newMockDatabaseStore(), nil)
	path := writePlan(t, "Week,Day,Learning,Deliverable,Task\nsoon,1,a,b,c\n")

	_, err := service.PreviewSubtasks(path)
	if err == nil || !strings.Contains(err.Error(), "bad week number") {
		t.Errorf("err = %v, want a line-numbered week parse error", err)
	}
}

func TestFormatSubtasksOrdersByDay(t *testing.T) {
	formatted := FormatSubtasks([]primary.Subtask{
		{Day: 3, Learning: "c", Deliverable: "cc", Task: "third"},
		{Day: 1, Learning: "a", Deliverable: "aa", Task: "first"},
		{Day: 2, Learning: "b", Deliverable: "bb", Task: "second"},
	})

	firstIdx := strings.Index(formatted, "Day 1: first")
	secondIdx := strings.Index(formatted, "Day 2: second")
	thirdIdx := strings.Index(formatted, "Day 3: third")
	if firstIdx < 0 || secondIdx < 0 || thirdIdx < 0 {
		t.Fatalf("formatted output missing day lines:\n%s", formatted)
	}
	if !(firstIdx < secondIdx && secondIdx < thirdIdx) {
		t.Errorf("days out of order:\n%s", formatted)
	}
	if !strings.Contains(formatted, "   Learning: a\n   Deliverable: aa\n") {
		t.Errorf("day body malformed:\n%s", formatted)
	}
}

func TestImportSubtasks(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	week1 := store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek: secondary.NumberValue(1),
	})
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek: secondary.NumberValue(2),
	})
	service := NewSubtaskService(store, nil)
	ctx := context.Background()

	summary, err := service.ImportSubtasks(ctx, primary.ImportSubtasksRequest{
		DatabaseID: id,
		CSVPath:    writePlan(t, subtaskPlanCSV),
	})
	if err != nil {
		t.Fatalf("ImportSubtasks failed: %v", err)
	}
	// Week 3 has no remote row.
	if summary.Updated != 2 || summary.Skipped != 1 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want 2 updated, 1 skipped", summary)
	}

	if _, ok := store.databases[id].Properties[ColSubtasks]; !ok {
		t.Error("subtasks column was not added")
	}

	page, err := store.GetPage(ctx, week1)
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	cell := page.Properties[ColSubtasks].PlainText()
	if !strings.Contains(cell, "Day 1: Write basic SELECTs") {
		t.Errorf("week 1 cell missing day 1:\n%s", cell)
	}
	day1 := strings.Index(cell, "Day 1:")
	day2 := strings.Index(cell, "Day 2:")
	if day2 < day1 {
		t.Errorf("days out of order within the cell:\n%s", cell)
	}
}

func TestImportSubtasksColumnAddedOnce(t *testing.T) {
	store := newMockDatabaseStore()
	id := roadmapDatabase(store, "db-1")
	store.addPage(id, map[string]secondary.PropertyValue{
		ColWeek: secondary.NumberValue(1),
	})
	service := NewSubtaskService(store, nil)
	ctx := context.Background()
	req := primary.ImportSubtasksRequest{DatabaseID: id, CSVPath: writePlan(t, subtaskPlanCSV)}

	if _, err := service.ImportSubtasks(ctx, req); err != nil {
		t.Fatalf("first import failed: %v", err)
	}
	if _, err := service.ImportSubtasks(ctx, req); err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if store.updatePropsCalls != 1 {
		t.Errorf("schema updates = %d, want 1", store.updatePropsCalls)
	}
}
