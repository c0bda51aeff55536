// Package install decides which anonymous installation identifier, if any,
// a run reports to usage analytics.
//
// An identifier is only returned when it is durable: a freshly generated
// one that cannot be written to the settings store is discarded, since it
// would change on the next run.
package install

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dkoosis/cliengine/internal/settings"
)

// Source records how the identifier was resolved.
type Source string

const (
	SourceOption      Source = "option"      // caller supplied the identifier
	SourceSkipped     Source = "skipped"     // analytics disabled
	SourceSettings    Source = "settings"    // reused from the settings document
	SourceGenerated   Source = "generated"   // new identifier, persisted
	SourceUnpersisted Source = "unpersisted" // new identifier could not be persisted
)

// Generator produces new identifiers.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator produces random (version 4) UUIDs in lowercase.
type UUIDGenerator struct{}

// NewID implements Generator.
func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate install id: %w", err)
	}
	return id.String(), nil
}

// Result is the outcome of Resolve. ID is empty when no identifier is available.
type Result struct {
	ID     string
	Source Source
}

// Manager resolves the identifier against a settings store.
type Manager struct {
	store  settings.Store
	gen    Generator
	logger *slog.Logger
}

// NewManager creates a Manager. A nil generator defaults to UUIDGenerator
// and a nil logger discards output.
func NewManager(store settings.Store, gen Generator, logger *slog.Logger) *Manager {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{store: store, gen: gen, logger: logger}
}

// Resolve picks the identifier for this run. doc is the settings document
// already read from the store; Resolve writes to the store at most once and
// only when it generates a new identifier.
func (m *Manager) Resolve(explicit *string, skipAnalytics bool, doc settings.Document) Result {
	if explicit != nil {
		// An explicit empty string withholds the identifier.
		return Result{ID: *explicit, Source: SourceOption}
	}

	if skipAnalytics {
		return Result{Source: SourceSkipped}
	}

	if id, ok := doc.Install(); ok {
		return Result{ID: id, Source: SourceSettings}
	}

	id, err := m.gen.NewID()
	if err != nil {
		m.logger.Warn("install id not generated", "error", err)
		return Result{Source: SourceUnpersisted}
	}

	next, err := doc.WithInstall(id)
	if err != nil {
		m.logger.Warn("install id not recorded", "error", err)
		return Result{Source: SourceUnpersisted}
	}

	if err := m.store.Write(next); err != nil {
		m.logger.Debug("install id not persisted, discarding", "error", err)
		return Result{Source: SourceUnpersisted}
	}

	m.logger.Debug("generated install id", "install", id)
	return Result{ID: id, Source: SourceGenerated}
}
