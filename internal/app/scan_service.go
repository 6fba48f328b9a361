package app

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/example/waypoint/internal/ports/primary"
	"github.com/example/waypoint/internal/ports/secondary"
)

// Keyword heuristics for spotting a roadmap database among whatever
// else the credential can see.
var (
	roadmapTitleKeywords = []string{"roadmap", "learning", "data engineering", "career", "plan", "week"}
	roadmapPropKeywords  = []string{"week", "topic", "learning", "project", "month"}
)

// sampleRowLimit caps how many rows a scan keeps as sample content.
const sampleRowLimit = 3

// ScanServiceImpl implements the ScanService interface.
type ScanServiceImpl struct {
	store   secondary.DatabaseStore
	catalog secondary.CatalogRepository
	out     io.Writer
}

// NewScanService creates a new ScanService with injected dependencies.
func NewScanService(store secondary.DatabaseStore, catalog secondary.CatalogRepository, out io.Writer) *ScanServiceImpl {
	if out == nil {
		out = io.Discard
	}
	return &ScanServiceImpl{store: store, catalog: catalog, out: out}
}

// ScanWorkspace searches the workspace for databases, analyzes each,
// and records the results in the local catalog. One database's failure
// is reported and the scan continues.
func (s *ScanServiceImpl) ScanWorkspace(ctx context.Context) ([]*primary.DatabaseAnalysis, error) {
	databases, err := s.store.SearchDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("workspace search failed: %w", err)
	}

	var analyses []*primary.DatabaseAnalysis
	for _, database := range databases {
		analysis, err := s.analyze(ctx, database)
		if err != nil {
			fmt.Fprintf(s.out, "%s: %v\n", database.ID, err)
			continue
		}
		analyses = append(analyses, analysis)

		record := &secondary.ScanRecord{
			DatabaseID: analysis.DatabaseID,
			Title:      analysis.Title,
			Properties: analysis.Properties,
			PageCount:  analysis.PageCount,
			Score:      analysis.Score,
			Roadmap:    analysis.LooksLikeRoadmap,
		}
		if err := s.catalog.Save(ctx, record); err != nil {
			fmt.Fprintf(s.out, "%s: catalog save failed: %v\n", database.ID, err)
		}
	}

	// Most roadmap-like first.
	sort.SliceStable(analyses, func(i, j int) bool {
		return analyses[i].Score > analyses[j].Score
	})

	return analyses, nil
}

// ListCatalog returns previously recorded scan results.
func (s *ScanServiceImpl) ListCatalog(ctx context.Context) ([]*primary.CatalogEntry, error) {
	records, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}

	entries := make([]*primary.CatalogEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, &primary.CatalogEntry{
			DatabaseID: record.DatabaseID,
			Title:      record.Title,
			Properties: record.Properties,
			PageCount:  record.PageCount,
			Score:      record.Score,
			Roadmap:    record.Roadmap,
			ScannedAt:  record.ScannedAt,
		})
	}
	return entries, nil
}

func (s *ScanServiceImpl) analyze(ctx context.Context, database *secondary.Database) (*primary.DatabaseAnalysis, error) {
	pages, err := fetchAllPages(ctx, s.store, database.ID)
	if err != nil {
		return nil, err
	}

	properties := make([]string, 0, len(database.Properties))
	for name := range database.Properties {
		properties = append(properties, name)
	}
	sort.Strings(properties)

	analysis := &primary.DatabaseAnalysis{
		DatabaseID:     database.ID,
		Title:          database.Title,
		Properties:     properties,
		PageCount:      len(pages),
		CreatedTime:    database.CreatedTime,
		LastEditedTime: database.LastEditedTime,
	}

	for i, page := range pages {
		if i >= sampleRowLimit {
			break
		}
		row := make(map[string]string, len(page.Properties))
		for name, value := range page.Properties {
			if text := value.PlainText(); text != "" {
				row[name] = text
			}
		}
		analysis.SampleRows = append(analysis.SampleRows, row)
	}

	analysis.Score, analysis.LooksLikeRoadmap = scoreRoadmap(database.Title, properties)
	return analysis, nil
}

// scoreRoadmap weighs title keywords double and column-name keywords
// single. Any hit at all marks the database as a roadmap candidate.
func scoreRoadmap(title string, properties []string) (score int, roadmap bool) {
	lowerTitle := strings.ToLower(title)
	for _, keyword := range roadmapTitleKeywords {
		if strings.Contains(lowerTitle, keyword) {
			score += 2
		}
	}

	for _, property := range properties {
		lowerProp := strings.ToLower(property)
		for _, keyword := range roadmapPropKeywords {
			if strings.Contains(lowerProp, keyword) {
				score++
				break
			}
		}
	}

	return score, score > 0
}

var _ primary.ScanService = (*ScanServiceImpl)(nil)
