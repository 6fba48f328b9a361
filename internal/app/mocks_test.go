package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/example/waypoint/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockDatabaseStore implements secondary.DatabaseStore for testing.
// Rows are kept per database; QueryPages serves them in batches of
// batchSize to exercise cursor pagination.
type mockDatabaseStore struct {
	databases map[string]*secondary.Database
	pages     map[string][]*secondary.Page
	batchSize int
	nextID    int

	// dropNextCursor makes QueryPages answer HasMore without a
	// continuation cursor, a malformed remote response.
	dropNextCursor bool

	getDatabaseCalls int
	updatePropsCalls int
	queryCalls       int
	createPageCalls  int
	updatePageCalls  int
	archiveCalls     int

	lastUpdatedProps map[string]secondary.PropertySpec
	createPageErr    error
	updatePageErr    error
}

func newMockDatabaseStore() *mockDatabaseStore {
	return &mockDatabaseStore{
		databases: make(map[string]*secondary.Database),
		pages:     make(map[string][]*secondary.Page),
		batchSize: 100,
	}
}

// addDatabase registers a database with the given schema.
func (m *mockDatabaseStore) addDatabase(id, title string, properties map[string]secondary.PropertySpec) {
	copied := make(map[string]secondary.PropertySpec, len(properties))
	for name, spec := range properties {
		copied[name] = spec
	}
	m.databases[id] = &secondary.Database{ID: id, Title: title, Properties: copied}
}

// addPage appends a row to a database and returns its ID.
func (m *mockDatabaseStore) addPage(databaseID string, properties map[string]secondary.PropertyValue) string {
	m.nextID++
	page := &secondary.Page{ID: fmt.Sprintf("page-%d", m.nextID), Properties: properties}
	m.pages[databaseID] = append(m.pages[databaseID], page)
	return page.ID
}

func (m *mockDatabaseStore) GetDatabase(ctx context.Context, id string) (*secondary.Database, error) {
	m.getDatabaseCalls++
	if database, ok := m.databases[id]; ok {
		return database, nil
	}
	return nil, errors.New("database not found")
}

func (m *mockDatabaseStore) CreateDatabase(ctx context.Context, req secondary.CreateDatabaseRequest) (*secondary.Database, error) {
	m.nextID++
	id := fmt.Sprintf("db-%d", m.nextID)
	m.addDatabase(id, req.Title, req.Properties)
	return m.databases[id], nil
}

func (m *mockDatabaseStore) UpdateProperties(ctx context.Context, id string, properties map[string]secondary.PropertySpec) error {
	m.updatePropsCalls++
	database, ok := m.databases[id]
	if !ok {
		return errors.New("database not found")
	}
	copied := make(map[string]secondary.PropertySpec, len(properties))
	for name, spec := range properties {
		copied[name] = spec
	}
	database.Properties = copied
	m.lastUpdatedProps = copied
	return nil
}

func (m *mockDatabaseStore) QueryPages(ctx context.Context, databaseID string, cursor string, pageSize int) (*secondary.PageBatch, error) {
	m.queryCalls++
	all := m.pages[databaseID]

	start := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, fmt.Errorf("bad cursor %q", cursor)
		}
		start = parsed
	}

	end := start + m.batchSize
	if end > len(all) {
		end = len(all)
	}

	batch := &secondary.PageBatch{Pages: all[start:end]}
	if end < len(all) {
		batch.HasMore = true
		if !m.dropNextCursor {
			batch.NextCursor = strconv.Itoa(end)
		}
	}
	return batch, nil
}

func (m *mockDatabaseStore) GetPage(ctx context.Context, pageID string) (*secondary.Page, error) {
	for _, pages := range m.pages {
		for _, page := range pages {
			if page.ID == pageID {
				return page, nil
			}
		}
	}
	return nil, errors.New("page not found")
}

func (m *mockDatabaseStore) CreatePage(ctx context.Context, databaseID string, properties map[string]secondary.PropertyValue) (*secondary.Page, error) {
	m.createPageCalls++
	if m.createPageErr != nil {
		return nil, m.createPageErr
	}
	id := m.addPage(databaseID, properties)
	return &secondary.Page{ID: id, Properties: properties}, nil
}

func (m *mockDatabaseStore) UpdatePage(ctx context.Context, pageID string, properties map[string]secondary.PropertyValue) error {
	m.updatePageCalls++
	if m.updatePageErr != nil {
		return m.updatePageErr
	}
	page, err := m.GetPage(context.Background(), pageID)
	if err != nil {
		return err
	}
	for name, value := range properties {
		page.Properties[name] = value
	}
	return nil
}

func (m *mockDatabaseStore) ArchivePage(ctx context.Context, pageID string) error {
	m.archiveCalls++
	for databaseID, pages := range m.pages {
		for i, page := range pages {
			if page.ID == pageID {
				m.pages[databaseID] = append(pages[:i:i], pages[i+1:]...)
				return nil
			}
		}
	}
	return errors.New("page not found")
}

func (m *mockDatabaseStore) SearchDatabases(ctx context.Context) ([]*secondary.Database, error) {
	var databases []*secondary.Database
	for _, database := range m.databases {
		databases = append(databases, database)
	}
	return databases, nil
}

// mockRepoHost implements secondary.RepoHost for testing.
type mockRepoHost struct {
	existing map[string]bool
	files    map[string]string // "repo/path" → sha

	createCalls  int
	putCalls     int
	lastPut      secondary.PutFileRequest
	putRequests  []secondary.PutFileRequest
	createErr    error
	existsErr    error
	missingShaOK bool
}

func newMockRepoHost() *mockRepoHost {
	return &mockRepoHost{
		existing: make(map[string]bool),
		files:    make(map[string]string),
	}
}

func (m *mockRepoHost) RepoExists(ctx context.Context, name string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[name], nil
}

func (m *mockRepoHost) CreateRepo(ctx context.Context, req secondary.CreateHostedRepoRequest) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.existing[req.Name] = true
	if req.AutoInit {
		// Auto-init seeds a README the scaffolder must overwrite with
		// its sha attached.
		m.files[req.Name+"/README.md"] = "init-sha"
	}
	return nil
}

func (m *mockRepoHost) GetFileSHA(ctx context.Context, repo, path string) (string, error) {
	return m.files[repo+"/"+path], nil
}

func (m *mockRepoHost) PutFile(ctx context.Context, req secondary.PutFileRequest) error {
	m.putCalls++
	m.lastPut = req
	m.putRequests = append(m.putRequests, req)

	key := req.Repo + "/" + req.Path
	if current := m.files[key]; current != "" && req.SHA != current && !m.missingShaOK {
		return errors.New("conflict: sha required for existing file")
	}
	m.files[key] = fmt.Sprintf("sha-%d", m.putCalls)
	return nil
}

func (m *mockRepoHost) RepoURL(name string) string {
	return "https://github.com/octocat/" + name
}

// mockCatalog implements secondary.CatalogRepository for testing.
type mockCatalog struct {
	records map[string]*secondary.ScanRecord
	saveErr error
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{records: make(map[string]*secondary.ScanRecord)}
}

func (m *mockCatalog) Save(ctx context.Context, record *secondary.ScanRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records[record.DatabaseID] = record
	return nil
}

func (m *mockCatalog) List(ctx context.Context) ([]*secondary.ScanRecord, error) {
	var records []*secondary.ScanRecord
	for _, record := range m.records {
		records = append(records, record)
	}
	return records, nil
}

func (m *mockCatalog) GetByDatabaseID(ctx context.Context, databaseID string) (*secondary.ScanRecord, error) {
	return m.records[databaseID], nil
}

// mockFileWriter implements secondary.FileWriter for testing.
type mockFileWriter struct {
	written  map[string][]byte // "root/relPath" → content
	writeErr error
}

func newMockFileWriter() *mockFileWriter {
	return &mockFileWriter{written: make(map[string][]byte)}
}

func (m *mockFileWriter) WriteFile(root, relPath string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written[root+"/"+relPath] = content
	return nil
}

// mockBudgetCreator implements secondary.BudgetCreator for testing.
type mockBudgetCreator struct {
	createCalls int
	lastRequest secondary.BudgetRequest
	createErr   error
}

func (m *mockBudgetCreator) CreateBudget(ctx context.Context, req secondary.BudgetRequest) error {
	m.createCalls++
	m.lastRequest = req
	return m.createErr
}

// roadmapDatabase registers a database carrying the full target schema
// and returns its ID.
func roadmapDatabase(store *mockDatabaseStore, id string) string {
	store.addDatabase(id, DatabaseTitle, TargetSchema())
	return id
}
