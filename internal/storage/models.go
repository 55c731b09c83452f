/*
Package storage provides data models for preference and history persistence.

These models represent stored tool preferences, the selection-history log, and
the generated-prompt history used by the preference system and the CLI.
*/
package storage

import "time"

// PreferenceRecord is the stored per-task-type tool choice.
type PreferenceRecord struct {
	// TaskType is the classified task label this preference applies to.
	TaskType string `json:"taskType"`

	// Tool is the preferred tool identifier.
	Tool string `json:"tool"`

	// Count is the number of observed selections for this task type.
	// It increases monotonically.
	Count int `json:"count"`

	// LastUsed is when the preference was last touched.
	LastUsed time.Time `json:"lastUsed"`

	// Explanation is the recommendation text stored with the preference.
	Explanation string `json:"explanation"`
}

// SelectionEntry is one logged tool selection, manual or auto-recommended.
type SelectionEntry struct {
	// Timestamp is when the selection happened.
	Timestamp time.Time `json:"timestamp"`

	// TaskType is the classified task label at selection time.
	TaskType string `json:"taskType"`

	// ToolID is the selected tool.
	ToolID string `json:"toolId"`

	// WasRecommended indicates the selected tool was the ranked recommendation.
	WasRecommended bool `json:"wasRecommended"`

	// Explanation is the recommendation text at selection time.
	Explanation string `json:"explanation"`

	// PromptLength is the length of the last generated prompt, 0 if none.
	PromptLength int `json:"promptLength"`
}

// PromptRecord is one generated prompt kept in the local history.
type PromptRecord struct {
	// Timestamp is when the prompt was generated.
	Timestamp time.Time `json:"timestamp"`

	// Input is the original task description.
	Input string `json:"input"`

	// Output is the generated prompt text.
	Output string `json:"output"`

	// Model is the model that produced the output ("local-fallback" when the
	// local template was used).
	Model string `json:"model"`
}
