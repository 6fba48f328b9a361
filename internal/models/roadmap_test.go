package models

import (
	"fmt"
	"testing"
)

func TestBuildRoadmapCoversAllWeeks(t *testing.T) {
	entries := BuildRoadmap()

	if len(entries) != WeeksTotal {
		t.Fatalf("expected %d entries, got %d", WeeksTotal, len(entries))
	}

	seen := make(map[int]bool)
	for _, e := range entries {
		if e.Week < 1 || e.Week > WeeksTotal {
			t.Errorf("week %d out of range", e.Week)
		}
		if seen[e.Week] {
			t.Errorf("duplicate week %d", e.Week)
		}
		seen[e.Week] = true
	}
	for w := 1; w <= WeeksTotal; w++ {
		if !seen[w] {
			t.Errorf("missing week %d", w)
		}
	}
}

func TestBuildRoadmapPhaseDerivation(t *testing.T) {
	for _, e := range BuildRoadmap() {
		want := ((e.Week - 1) / WeeksPerPhase) + 1
		if e.Phase != want {
			t.Errorf("week %d: phase %d, want %d", e.Week, e.Phase, want)
		}
	}
}

func TestPhaseForBoundaries(t *testing.T) {
	tests := []struct {
		week, phase int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 3}, // first entry of phase 3
		{24, 6},
	}
	for _, tt := range tests {
		if got := PhaseFor(tt.week); got != tt.phase {
			t.Errorf("PhaseFor(%d) = %d, want %d", tt.week, got, tt.phase)
		}
	}
}

func TestPriorityTiers(t *testing.T) {
	tests := []struct {
		week int
		want string
	}{
		{1, PriorityHigh},
		{8, PriorityHigh},
		{9, PriorityMedium},
		{16, PriorityMedium},
		{17, PriorityLow},
		{24, PriorityLow},
	}
	for _, tt := range tests {
		if got := PriorityFor(tt.week); got != tt.want {
			t.Errorf("PriorityFor(%d) = %s, want %s", tt.week, got, tt.want)
		}
	}
}

func TestRepoKeysBelongToProjectSet(t *testing.T) {
	known := map[string]bool{
		"retail-sales-etl":               true,
		"sales-data-warehouse":           true,
		"covid-dataops-pipeline":         true,
		"log-analytics-spark":            true,
		"clickstream-realtime-analytics": true,
		"ecommerce-data-platform":        true,
	}
	for _, e := range BuildRoadmap() {
		if e.RepoKey != "" && !known[e.RepoKey] {
			t.Errorf("week %d references unknown repo %q", e.Week, e.RepoKey)
		}
	}
}

func TestTimelineLabels(t *testing.T) {
	for _, e := range BuildRoadmap() {
		want := fmt.Sprintf("Week %d", e.Week)
		if e.TimelineLabel != want {
			t.Errorf("week %d: timeline %q, want %q", e.Week, e.TimelineLabel, want)
		}
	}
}

func TestPhaseSelectNames(t *testing.T) {
	if PhaseSelectName(1) != "Month 1: SQL & ETL Basics" {
		t.Errorf("unexpected name for phase 1: %q", PhaseSelectName(1))
	}
	if PhaseSelectName(6) != "Month 6: Capstone Projects" {
		t.Errorf("unexpected name for phase 6: %q", PhaseSelectName(6))
	}
	if PhaseSelectName(0) != "" || PhaseSelectName(7) != "" {
		t.Error("out-of-range phases should return empty names")
	}
}
