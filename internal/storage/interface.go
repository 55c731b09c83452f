/*
Package storage implements the persistence substrate for preferences and
history.

The primary implementation is SQLite-based (modernc.org/sqlite, pure Go,
CGo-free) with graceful degradation: if the database cannot be opened or is
corrupted, the store disables itself and every operation becomes a no-op over
empty state rather than an error. The database lives at
~/.promptcraft/history.db.
*/
package storage

import "time"

// Selection-history bounds: the log is capped at maxSelectionEntries; when an
// append exceeds the cap, only the most recent keepSelectionEntries survive.
const (
	maxSelectionEntries  = 100
	keepSelectionEntries = 50
)

// maxPromptRecords bounds the generated-prompt history.
const maxPromptRecords = 25

// Store defines the interface for persistent storage operations.
type Store interface {
	// Init initializes the substrate and runs migrations.
	Init() error

	// SavePreference inserts or replaces the preference record for its task type.
	SavePreference(rec PreferenceRecord) error

	// GetPreference retrieves the preference record for a task type.
	GetPreference(taskType string) (PreferenceRecord, bool, error)

	// AppendSelection appends a selection-history entry, enforcing the
	// 100-entry cap (truncating to the most recent 50 on overflow).
	AppendSelection(entry SelectionEntry) error

	// Selections returns the selection history, oldest first.
	Selections() ([]SelectionEntry, error)

	// CountSelections counts history entries for an exact (taskType, toolID) pair.
	CountSelections(taskType, toolID string) (int, error)

	// SavePrompt appends a generated prompt, keeping the most recent 25.
	SavePrompt(rec PromptRecord) error

	// Prompts returns up to limit prompt records, newest first.
	Prompts(limit int) ([]PromptRecord, error)

	// Close closes the substrate.
	Close() error
}

// timeFormat is the canonical timestamp encoding used in SQLite columns.
const timeFormat = time.RFC3339Nano
