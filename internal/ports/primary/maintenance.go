package primary

import "context"

// TitleService defines the primary port for topic-title cleanup.
type TitleService interface {
	// PlanTitleCleanup lists the rows whose titles carry redundant
	// hyphen-suffixed content, without writing anything.
	PlanTitleCleanup(ctx context.Context, databaseID string) ([]*TitleChange, error)

	// ApplyTitleCleanup patches the given changes in place.
	ApplyTitleCleanup(ctx context.Context, changes []*TitleChange) (*MaintenanceSummary, error)
}

// TitleChange is one pending title rewrite.
type TitleChange struct {
	PageID   string
	Week     int
	OldTitle string
	NewTitle string
}

// SubtaskService defines the primary port for the day-level CSV import.
type SubtaskService interface {
	// ImportSubtasks parses the CSV plan, ensures the subtasks column,
	// and patches each matching week's row with formatted day entries.
	ImportSubtasks(ctx context.Context, req ImportSubtasksRequest) (*MaintenanceSummary, error)

	// PreviewSubtasks parses the CSV plan without touching the remote.
	PreviewSubtasks(csvPath string) (map[int][]Subtask, error)
}

// ImportSubtasksRequest targets a database with a CSV plan file.
type ImportSubtasksRequest struct {
	DatabaseID string
	CSVPath    string
}

// Subtask is one day of a week's plan.
type Subtask struct {
	Day         int
	Learning    string
	Deliverable string
	Task        string
}

// CompareService defines the primary port for side-by-side database
// comparison.
type CompareService interface {
	// CompareDatabases fetches both databases fully and reports their
	// relative completeness.
	CompareDatabases(ctx context.Context, firstID, secondID string) (*Comparison, error)
}

// Comparison is the verdict of a two-database comparison.
type Comparison struct {
	First   DatabaseProfile
	Second  DatabaseProfile
	Verdict string // identifier of the richer database, or "" on a tie
}

// DatabaseProfile describes one side of a comparison.
type DatabaseProfile struct {
	DatabaseID    string
	Title         string
	PageCount     int
	PropertyCount int
	WeeksCovered  int
	DetailChars   int // total characters of detail text across rows
}

// ReorderService defines the primary port for the destructive
// recreate-in-order operation. It exists for operator opt-in only;
// nothing else calls it.
type ReorderService interface {
	// ReorderByWeek recreates every row in ascending week order and
	// archives the originals. Destructive: remote-only edits on the
	// original rows are lost.
	ReorderByWeek(ctx context.Context, databaseID string) (*MaintenanceSummary, error)
}

// MaintenanceSummary is the shared success-count accounting for
// row-maintenance passes.
type MaintenanceSummary struct {
	Updated int
	Skipped int
	Failed  int
}
