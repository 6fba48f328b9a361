package app

import (
	"strings"

	"github.com/example/waypoint/internal/models"
	"github.com/example/waypoint/internal/ports/secondary"
)

// DatabaseTitle is the title given to a freshly created roadmap database.
const DatabaseTitle = "6-Month Data Engineering Career Plan"

// Canonical column names used when the database is created from scratch.
const (
	ColWeek     = "Week"
	ColMonth    = "Month"
	ColTopic    = "Learning Topic"
	ColProject  = "Project Phase"
	ColDetails  = "Details"
	ColStatus   = "Status"
	ColGitHub   = "GitHub Repo"
	ColDataset  = "Dataset/Resource"
	ColPriority = "Priority"
	ColTimeline = "Week Timeline"
	ColProgress = "Progress"
	ColSubtasks = "Subtasks"
)

// Select option names for the task status column.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Status option names for the tri-state progress column.
const (
	ProgressNotStarted = "Not started"
	ProgressInProgress = "In progress"
	ProgressDone       = "Done"
)

// TargetSchema returns the full column set a roadmap database is
// expected to carry. The ensurer adds whatever subset is missing; it
// never alters a column that already exists.
func TargetSchema() map[string]secondary.PropertySpec {
	monthOptions := make([]secondary.SelectOption, 0, 6)
	for phase := 1; phase <= 6; phase++ {
		monthOptions = append(monthOptions, secondary.SelectOption{
			Name:  models.PhaseSelectName(phase),
			Color: models.PhaseSelectColor(phase),
		})
	}

	return map[string]secondary.PropertySpec{
		ColWeek:    {Type: secondary.PropertyNumber},
		ColMonth:   {Type: secondary.PropertySelect, Options: monthOptions},
		ColTopic:   {Type: secondary.PropertyTitle},
		ColProject: {Type: secondary.PropertyRichText},
		ColDetails: {Type: secondary.PropertyRichText},
		ColStatus: {Type: secondary.PropertySelect, Options: []secondary.SelectOption{
			{Name: StatusToDo, Color: "red"},
			{Name: StatusInProgress, Color: "yellow"},
			{Name: StatusDone, Color: "green"},
		}},
		ColGitHub:  {Type: secondary.PropertyURL},
		ColDataset: {Type: secondary.PropertyURL},
		ColPriority: {Type: secondary.PropertySelect, Options: []secondary.SelectOption{
			{Name: models.PriorityHigh, Color: "red"},
			{Name: models.PriorityMedium, Color: "yellow"},
			{Name: models.PriorityLow, Color: "gray"},
		}},
		ColTimeline: {Type: secondary.PropertyRichText},
	}
}

// Logical field identifiers. The remote schema's column names are
// operator-chosen strings; everything row-level goes through a FieldMap
// resolving this closed set to the actual names once per run.
const (
	FieldWeek     = "week"
	FieldTopic    = "topic"
	FieldDetails  = "details"
	FieldProject  = "project"
	FieldMonth    = "month"
	FieldStatus   = "status"
	FieldPriority = "priority"
	FieldGitHub   = "github"
	FieldDataset  = "dataset"
	FieldTimeline = "timeline"
	FieldSubtasks = "subtasks"
)

// fieldCandidates lists the remote column names each logical field may
// appear under, in preference order. Matching is case-insensitive.
var fieldCandidates = map[string][]string{
	FieldWeek:     {ColWeek, "Week Number", "Week #"},
	FieldTopic:    {ColTopic, "Topic", "Task"},
	FieldDetails:  {ColDetails, "Notes", "Description"},
	FieldProject:  {ColProject, "Project", "Phase"},
	FieldMonth:    {ColMonth},
	FieldStatus:   {ColStatus},
	FieldPriority: {ColPriority},
	FieldGitHub:   {ColGitHub, "GitHub", "Repo", "Repository"},
	FieldDataset:  {ColDataset, "Dataset", "Resource", "Resources"},
	FieldTimeline: {ColTimeline, "Timeline", "Due"},
	FieldSubtasks: {ColSubtasks, "Daily Tasks"},
}

// requiredFields must resolve or the run cannot address rows at all.
var requiredFields = []string{FieldWeek, FieldTopic}

// FieldMap is the per-run resolution of logical fields to the remote
// database's actual column names.
type FieldMap struct {
	names map[string]string
}

// ResolveFields matches the logical field set against a database's
// property names. A required field with no match is a
// ConfigurationError; optional fields simply stay unmapped.
func ResolveFields(properties map[string]secondary.PropertySpec) (*FieldMap, error) {
	byLower := make(map[string]string, len(properties))
	for name := range properties {
		byLower[strings.ToLower(name)] = name
	}

	fm := &FieldMap{names: make(map[string]string)}
	for field, candidates := range fieldCandidates {
		for _, candidate := range candidates {
			if actual, ok := byLower[strings.ToLower(candidate)]; ok {
				fm.names[field] = actual
				break
			}
		}
	}

	// The topic field can still resolve through the database's sole
	// title column whatever it is named.
	if _, ok := fm.names[FieldTopic]; !ok {
		for name, spec := range properties {
			if spec.Type == secondary.PropertyTitle {
				fm.names[FieldTopic] = name
				break
			}
		}
	}

	for _, field := range requiredFields {
		if _, ok := fm.names[field]; !ok {
			return nil, NewConfigurationError(field, "required field not found in remote schema")
		}
	}

	return fm, nil
}

// Name returns the remote column name for a logical field and whether
// it resolved.
func (fm *FieldMap) Name(field string) (string, bool) {
	name, ok := fm.names[field]
	return name, ok
}

// MustName returns the remote column name for a field known to have
// resolved. Only valid for required fields after a successful resolve.
func (fm *FieldMap) MustName(field string) string {
	return fm.names[field]
}
