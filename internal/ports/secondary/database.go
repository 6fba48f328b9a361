// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"strconv"
)

// DatabaseStore defines the secondary port for the remote structured
// database (one hosted database of typed columns and rows). Property
// encodings are adapter concerns; the port speaks neutral descriptors.
type DatabaseStore interface {
	// GetDatabase fetches a database with its current schema.
	GetDatabase(ctx context.Context, id string) (*Database, error)

	// CreateDatabase creates a database under the configured parent page.
	CreateDatabase(ctx context.Context, req CreateDatabaseRequest) (*Database, error)

	// UpdateProperties replaces the database's full property set.
	// The remote treats this as a wholesale swap: callers must merge
	// additions into a copy of the fetched set, never send a partial map.
	UpdateProperties(ctx context.Context, id string, properties map[string]PropertySpec) error

	// QueryPages fetches one page of rows. An empty cursor starts from
	// the beginning; the returned batch carries the continuation cursor.
	QueryPages(ctx context.Context, databaseID string, cursor string, pageSize int) (*PageBatch, error)

	// GetPage fetches a single row by its identifier.
	GetPage(ctx context.Context, pageID string) (*Page, error)

	// CreatePage creates a row in the database.
	CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue) (*Page, error)

	// UpdatePage patches properties of an existing row in place.
	UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) error

	// ArchivePage soft-deletes a row.
	ArchivePage(ctx context.Context, pageID string) error

	// SearchDatabases lists every database the credential can see.
	SearchDatabases(ctx context.Context) ([]*Database, error)
}

// Property type descriptors understood by the remote database.
const (
	PropertyTitle    = "title"
	PropertyRichText = "rich_text"
	PropertySelect   = "select"
	PropertyStatus   = "status"
	PropertyNumber   = "number"
	PropertyURL      = "url"
)

// PropertySpec describes a column: its type and, for select/status
// columns, the named and colored options.
type PropertySpec struct {
	Type    string
	Options []SelectOption
}

// SelectOption is a named, colored choice on a select or status column.
type SelectOption struct {
	Name  string
	Color string
}

// PropertyValue is a typed cell value. Exactly one payload field is
// meaningful, selected by Type.
type PropertyValue struct {
	Type   string
	Text   string   // title, rich_text
	Select string   // select, status (option name)
	Number *float64 // number; nil means empty
	URL    string   // url; empty means cleared
}

// Database represents a remote database and its schema.
type Database struct {
	ID             string
	Title          string
	Properties     map[string]PropertySpec
	CreatedTime    string
	LastEditedTime string
}

// CreateDatabaseRequest contains parameters for creating a database.
type CreateDatabaseRequest struct {
	ParentPageID string
	Title        string
	Properties   map[string]PropertySpec
}

// Page represents a single database row.
type Page struct {
	ID         string
	Properties map[string]PropertyValue
}

// PageBatch is one page of a cursor-paginated row query.
type PageBatch struct {
	Pages      []*Page
	HasMore    bool
	NextCursor string
}

// NumberValue builds a number cell.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{Type: PropertyNumber, Number: &n}
}

// TitleValue builds a title cell.
func TitleValue(text string) PropertyValue {
	return PropertyValue{Type: PropertyTitle, Text: text}
}

// TextValue builds a rich_text cell.
func TextValue(text string) PropertyValue {
	return PropertyValue{Type: PropertyRichText, Text: text}
}

// SelectValue builds a select cell.
func SelectValue(name string) PropertyValue {
	return PropertyValue{Type: PropertySelect, Select: name}
}

// StatusValue builds a status cell.
func StatusValue(name string) PropertyValue {
	return PropertyValue{Type: PropertyStatus, Select: name}
}

// URLValue builds a url cell.
func URLValue(url string) PropertyValue {
	return PropertyValue{Type: PropertyURL, URL: url}
}

// PlainText flattens any cell to its display string. Mirrors the
// reading side of every property type the store round-trips.
func (v PropertyValue) PlainText() string {
	switch v.Type {
	case PropertyTitle, PropertyRichText:
		return v.Text
	case PropertySelect, PropertyStatus:
		return v.Select
	case PropertyNumber:
		if v.Number == nil {
			return ""
		}
		return trimFloat(*v.Number)
	case PropertyURL:
		return v.URL
	default:
		return "[" + v.Type + "]"
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
