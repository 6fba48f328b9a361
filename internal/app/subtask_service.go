package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// SubtaskServiceImpl implements the SubtaskService interface.
type SubtaskServiceImpl struct {
	store secondary.DatabaseStore
	out   io.Writer
}

// NewSubtaskService creates a new SubtaskService with injected dependencies.
func NewSubtaskService(store secondary.DatabaseStore, out io.Writer) *SubtaskServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &SubtaskServiceImpl{store: store, out: out}
}

// PreviewSubtasks parses the CSV plan without touching the remote.
func (s *SubtaskServiceImpl) PreviewSubtasks(csvPath string) (map[int][]primary.Subtask, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}
	defer file.Close()

	return parseSubtaskPlan(file)
}

// parseSubtaskPlan reads the day-level plan and groups rows by week.
// The Week, Day, Learning, Deliverable and Task columns are used;
// anything else (Topic, Resources) is ignored.
func parseSubtaskPlan(r io.Reader) (map[int][]primary.Subtask, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read plan header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"week", "day", "learning", "deliverable", "task"} {
		if _, ok := columns[required]; !ok {
			return nil, NewConfigurationError(required, "column missing from plan")
		}
	}

	plan := make(map[int][]primary.Subtask)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read plan row: %w", err)
		}
		line++

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		week, err := strconv.Atoi(field("week"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad week number %q", line, field("week"))
		}
		day, err := strconv.Atoi(field("day"))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad day number %q", line, field("day"))
		}

		plan[week] = append(plan[week], primary.Subtask{
			Day:         day,
			Learning:    field("learning"),
			Deliverable: field("deliverable"),
			Task:        field("task"),
		})
	}

	return plan, nil
}

// FormatSubtasks renders a week's day entries as the text block stored
// in the subtasks cell, days in ascending order.
func FormatSubtasks(subtasks []primary.Subtask) string {
	ordered := make([]primary.Subtask, len(subtasks))
	copy(ordered, subtasks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Day < ordered[j].Day })

	var lines []string
	for _, subtask := range ordered {
		lines = append(lines, fmt.Sprintf("Day %d: %s\n   Learning: %s\n   Deliverable: %s\n",
			subtask.Day, subtask.Task, subtask.Learning, subtask.Deliverable))
	}
	return strings.Join(lines, "\n")
}

// ImportSubtasks parses the CSV plan, ensures the subtasks column, and
// patches each matching week's row with formatted day entries. Weeks
// in the plan with no remote row are reported and skipped.
func (s *SubtaskServiceImpl) ImportSubtasks(ctx context.Context, req primary.ImportSubtasksRequest) (*primary.MaintenanceSummary, error) {
	plan, err := s.PreviewSubtasks(req.CSVPath)
	if err != nil {
		return nil, err
	}

	added, err := ensureColumn(ctx, s.store, req.DatabaseID, ColSubtasks, secondary.PropertySpec{Type: secondary.PropertyRichText})
	if err != nil {
		return nil, err
	}
	if added {
		fmt.Fprintf(s.out, "Added column %s\n", ColSubtasks)
	}

	database, err := s.store.GetDatabase(ctx, req.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch database %s: %w", req.DatabaseID, err)
	}
	fields, err := ResolveFields(database.Properties)
	if err != nil {
		return nil, err
	}
	subtasksColumn, ok := fields.Name(FieldSubtasks)
	if !ok {
		subtasksColumn = ColSubtasks
	}

	pages, err := fetchAllPages(ctx, s.store, req.DatabaseID)
	if err != nil {
		return nil, err
	}
	pageByWeek := make(map[int]*secondary.Page, len(pages))
	for _, page := range pages {
		if week := weekOf(page, fields); week > 0 {
			pageByWeek[week] = page
		}
	}

	weeks := make([]int, 0, len(plan))
	for week := range plan {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	summary := &primary.MaintenanceSummary{}
	for _, week := range weeks {
		page, ok := pageByWeek[week]
		if !ok {
			fmt.Fprintf(s.out, "Week %d: no remote row, skipping\n", week)
			summary.Skipped++
			continue
		}

		updates := map[string]secondary.PropertyValue{
			subtasksColumn: secondary.TextValue(FormatSubtasks(plan[week])),
		}
		if err := s.store.UpdatePage(ctx, page.ID, updates); err != nil {
			fmt.Fprintf(s.out, "Week %d: subtask update failed: %v\n", week, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(s.out, "Week %d: %d days imported\n", week, len(plan[week]))
		summary.Updated++
	}

	return summary, nil
}

var _ primary.SubtaskService = (*SubtaskServiceImpl)(nil)
