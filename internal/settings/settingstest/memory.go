// Package settingstest provides an in-memory settings.Store for tests.
package settingstest

import "github.com/dkoosis/cliengine/internal/settings"

// MemoryStore holds the document in memory and records every write.
// Setting ReadErr or WriteErr makes the corresponding call fail.
type MemoryStore struct {
	Doc      settings.Document
	ReadErr  error
	WriteErr error

	Reads  int
	Writes []settings.Document
}

// NewMemoryStore returns a store seeded with doc.
func NewMemoryStore(doc settings.Document) *MemoryStore {
	return &MemoryStore{Doc: doc}
}

// Read returns the held document or ReadErr.
func (m *MemoryStore) Read() (settings.Document, error) {
	m.Reads++
	if m.ReadErr != nil {
		return settings.Empty(), m.ReadErr
	}
	return m.Doc, nil
}

// Write records doc and, unless WriteErr is set, replaces the held document.
func (m *MemoryStore) Write(doc settings.Document) error {
	m.Writes = append(m.Writes, doc)
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Doc = doc
	return nil
}
