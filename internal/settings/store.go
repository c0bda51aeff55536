package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/pretty"
)

// FileName is the settings file name inside the per-user config directory.
const FileName = "config.json"

// Store reads and writes the settings document.
type Store interface {
	// Read returns the current document. A missing document is not an error.
	Read() (Document, error)
	// Write replaces the stored document.
	Write(doc Document) error
}

// ErrNoLocation is returned by NoLocationStore writes.
var ErrNoLocation = errors.New("no per-user settings location")

// NoLocationStore stands in for a FileStore when no per-user directory can
// be resolved. It reads as empty and refuses every write.
type NoLocationStore struct{}

// Read returns an empty document.
func (NoLocationStore) Read() (Document, error) {
	return Empty(), nil
}

// Write always fails with ErrNoLocation.
func (NoLocationStore) Write(Document) error {
	return ErrNoLocation
}

// FileStore keeps the document in a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Read loads the file. A file that does not exist yields an empty document.
func (s *FileStore) Read() (Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("read settings %s: %w", s.Path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return Empty(), fmt.Errorf("parse settings %s: %w", s.Path, err)
	}
	return doc, nil
}

// Write overwrites the file, creating its directory when needed.
func (s *FileStore) Write(doc Document) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(s.Path, pretty.Pretty(doc.Bytes()), 0o600); err != nil {
		return fmt.Errorf("write settings %s: %w", s.Path, err)
	}
	return nil
}
