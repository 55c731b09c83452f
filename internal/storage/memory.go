package storage

import "sync"

// MemoryStore is an in-memory Store implementation.
//
// It backs tests and serves as the empty-state substrate when persistence is
// unavailable; semantics (caps, truncation) match the SQLite implementation.
type MemoryStore struct {
	mu         sync.Mutex
	prefs      map[string]PreferenceRecord
	selections []SelectionEntry
	prompts    []PromptRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]PreferenceRecord)}
}

// Init is a no-op for the in-memory store.
func (m *MemoryStore) Init() error { return nil }

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }

// SavePreference inserts or replaces the preference record for its task type.
func (m *MemoryStore) SavePreference(rec PreferenceRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[rec.TaskType] = rec
	return nil
}

// GetPreference retrieves the preference record for a task type.
func (m *MemoryStore) GetPreference(taskType string) (PreferenceRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.prefs[taskType]
	return rec, ok, nil
}

// AppendSelection appends a selection-history entry and enforces the cap.
func (m *MemoryStore) AppendSelection(entry SelectionEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selections = append(m.selections, entry)
	if len(m.selections) > maxSelectionEntries {
		m.selections = append([]SelectionEntry(nil), m.selections[len(m.selections)-keepSelectionEntries:]...)
	}
	return nil
}

// Selections returns the selection history, oldest first.
func (m *MemoryStore) Selections() ([]SelectionEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SelectionEntry(nil), m.selections...), nil
}

// CountSelections counts history entries for an exact (taskType, toolID) pair.
func (m *MemoryStore) CountSelections(taskType, toolID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, e := range m.selections {
		if e.TaskType == taskType && e.ToolID == toolID {
			count++
		}
	}
	return count, nil
}

// SavePrompt appends a generated prompt, keeping the most recent records.
func (m *MemoryStore) SavePrompt(rec PromptRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, rec)
	if len(m.prompts) > maxPromptRecords {
		m.prompts = append([]PromptRecord(nil), m.prompts[len(m.prompts)-maxPromptRecords:]...)
	}
	return nil
}

// Prompts returns up to limit prompt records, newest first.
func (m *MemoryStore) Prompts(limit int) ([]PromptRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.prompts) {
		limit = len(m.prompts)
	}
	out := make([]PromptRecord, 0, limit)
	for i := len(m.prompts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.prompts[i])
	}
	return out, nil
}
