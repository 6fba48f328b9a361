package secondary

// FileWriter defines the secondary port for local scaffold writes.
type FileWriter interface {
	// WriteFile writes content at relPath under root, creating parent
	// directories as needed.
	WriteFile(root, relPath string, content []byte) error
}
