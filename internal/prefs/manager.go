/*
Package prefs implements the user preference system: per-task-type tool
choices and a rolling selection history, layered over the storage substrate.

A stored preference only switches to a different tool once that exact
(taskType, toolID) pair has accumulated at least three history entries, so
one-off choices do not thrash the recommendation.
*/
package prefs

import (
	"log"
	"math"
	"time"

	"github.com/vshagun/promptcraft/internal/storage"
)

const (
	// switchThreshold is the number of history entries for a (taskType, toolID)
	// pair required before the stored preferred tool is overwritten.
	switchThreshold = 3

	// confidenceSaturation is the selection count at which preference
	// confidence reaches 1.0.
	confidenceSaturation = 5

	// recentWindow is how many history entries Stats reports as recent.
	recentWindow = 10
)

// Manager provides preference semantics over a storage.Store.
type Manager struct {
	store         storage.Store
	lastPromptLen int
}

// NewManager creates a preference manager over the given store.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// SetLastPromptLength records the length of the most recently generated
// prompt; it is attached to subsequent selection-history entries.
func (m *Manager) SetLastPromptLength(n int) {
	m.lastPromptLen = n
}

// SavePreference records a tool selection for a task type.
//
// The first call for a task type creates the record with count=1. Later calls
// increment count and refresh lastUsed unconditionally; the stored tool (and
// explanation) only switch once the history holds at least three entries for
// the new (taskType, toolID) pair.
func (m *Manager) SavePreference(taskType, toolID, explanation string) error {
	rec, ok, err := m.store.GetPreference(taskType)
	if err != nil {
		log.Printf("Warning: failed to load preference: %v", err)
	}

	now := time.Now()
	if !ok {
		rec = storage.PreferenceRecord{
			TaskType:    taskType,
			Tool:        toolID,
			Count:       1,
			LastUsed:    now,
			Explanation: explanation,
		}
		return m.store.SavePreference(rec)
	}

	rec.Count++
	rec.LastUsed = now
	if rec.Tool != toolID {
		sameToolCount, err := m.store.CountSelections(taskType, toolID)
		if err != nil {
			log.Printf("Warning: failed to count selections: %v", err)
		}
		if sameToolCount >= switchThreshold {
			rec.Tool = toolID
			rec.Explanation = explanation
		}
	}

	return m.store.SavePreference(rec)
}

// LogSelection appends a selection-history entry. The history cap (100
// entries, truncated to the most recent 50) is enforced by the store.
func (m *Manager) LogSelection(taskType, toolID string, wasRecommended bool, explanation string) error {
	return m.store.AppendSelection(storage.SelectionEntry{
		Timestamp:      time.Now(),
		TaskType:       taskType,
		ToolID:         toolID,
		WasRecommended: wasRecommended,
		Explanation:    explanation,
		PromptLength:   m.lastPromptLen,
	})
}

// Preference returns the stored preferred tool for a task type, if any.
func (m *Manager) Preference(taskType string) (string, bool) {
	rec, ok, err := m.store.GetPreference(taskType)
	if err != nil {
		log.Printf("Warning: failed to load preference: %v", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	return rec.Tool, true
}

// Explanation returns the stored explanation for a task type's preference.
func (m *Manager) Explanation(taskType string) string {
	rec, ok, err := m.store.GetPreference(taskType)
	if err != nil || !ok {
		return ""
	}
	return rec.Explanation
}

// Confidence returns preference confidence in [0,1]: min(count/5, 1).
// Confidence saturates after five observed uses.
func (m *Manager) Confidence(taskType string) float64 {
	rec, ok, err := m.store.GetPreference(taskType)
	if err != nil || !ok {
		return 0
	}
	return math.Min(float64(rec.Count)/confidenceSaturation, 1)
}

// Stats summarizes the selection history.
type Stats struct {
	// TotalSelections is the current history length.
	TotalSelections int `json:"totalSelections"`

	// RecommendationAccuracy is the fraction of history entries where the
	// recommended tool was selected (0 when the history is empty).
	RecommendationAccuracy float64 `json:"recommendationAccuracy"`

	// TaskTypeDistribution counts history entries per task type.
	TaskTypeDistribution map[string]int `json:"taskTypeDistribution"`

	// RecentRecommendations holds the last 10 history entries, oldest first.
	RecentRecommendations []storage.SelectionEntry `json:"recentRecommendations"`
}

// Stats computes selection-history statistics.
func (m *Manager) Stats() (Stats, error) {
	history, err := m.store.Selections()
	if err != nil {
		log.Printf("Warning: failed to load selection history: %v", err)
		history = nil
	}

	stats := Stats{
		TotalSelections:      len(history),
		TaskTypeDistribution: make(map[string]int),
	}

	recentStart := len(history) - recentWindow
	if recentStart < 0 {
		recentStart = 0
	}
	stats.RecentRecommendations = append(stats.RecentRecommendations, history[recentStart:]...)

	if len(history) > 0 {
		recommended := 0
		for _, entry := range history {
			if entry.WasRecommended {
				recommended++
			}
			stats.TaskTypeDistribution[entry.TaskType]++
		}
		stats.RecommendationAccuracy = float64(recommended) / float64(len(history))
	}

	return stats, nil
}
