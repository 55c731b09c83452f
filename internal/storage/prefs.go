package storage

import (
	"database/sql"
	"log"
	"time"
)

// SavePreference inserts or replaces the preference record for its task type.
func (s *SQLiteStore) SavePreference(rec PreferenceRecord) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO tool_prefs (task_type, tool, count, last_used, explanation)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(task_type) DO UPDATE SET
			tool = excluded.tool,
			count = excluded.count,
			last_used = excluded.last_used,
			explanation = excluded.explanation
	`

	_, err := s.db.Exec(query,
		rec.TaskType,
		rec.Tool,
		rec.Count,
		rec.LastUsed.Format(timeFormat),
		rec.Explanation,
	)
	if err != nil {
		log.Printf("Warning: failed to save preference: %v", err)
	}

	return nil
}

// GetPreference retrieves the preference record for a task type.
func (s *SQLiteStore) GetPreference(taskType string) (PreferenceRecord, bool, error) {
	if !s.enabled || s.db == nil {
		return PreferenceRecord{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT task_type, tool, count, last_used, explanation
		FROM tool_prefs WHERE task_type = ?
	`, taskType)

	var rec PreferenceRecord
	var lastUsed string
	err := row.Scan(&rec.TaskType, &rec.Tool, &rec.Count, &lastUsed, &rec.Explanation)
	if err == sql.ErrNoRows {
		return PreferenceRecord{}, false, nil
	}
	if err != nil {
		log.Printf("Warning: failed to read preference: %v", err)
		return PreferenceRecord{}, false, nil
	}

	rec.LastUsed, err = time.Parse(timeFormat, lastUsed)
	if err != nil {
		log.Printf("Warning: failed to parse preference timestamp: %v", err)
	}

	return rec, true, nil
}

// AppendSelection appends a selection-history entry and enforces the cap.
func (s *SQLiteStore) AppendSelection(entry SelectionEntry) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wasRecommended := 0
	if entry.WasRecommended {
		wasRecommended = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO selection_history (timestamp, task_type, tool_id, was_recommended, explanation, prompt_length)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		entry.Timestamp.Format(timeFormat),
		entry.TaskType,
		entry.ToolID,
		wasRecommended,
		entry.Explanation,
		entry.PromptLength,
	)
	if err != nil {
		log.Printf("Warning: failed to append selection: %v", err)
		return nil
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM selection_history").Scan(&count); err != nil {
		log.Printf("Warning: failed to count selections: %v", err)
		return nil
	}

	if count > maxSelectionEntries {
		_, err := s.db.Exec(`
			DELETE FROM selection_history
			WHERE id NOT IN (
				SELECT id FROM selection_history ORDER BY id DESC LIMIT ?
			)
		`, keepSelectionEntries)
		if err != nil {
			log.Printf("Warning: failed to truncate selection history: %v", err)
		}
	}

	return nil
}

// Selections returns the selection history, oldest first.
func (s *SQLiteStore) Selections() ([]SelectionEntry, error) {
	if !s.enabled || s.db == nil {
		return []SelectionEntry{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT timestamp, task_type, tool_id, was_recommended, explanation, prompt_length
		FROM selection_history ORDER BY id ASC
	`)
	if err != nil {
		log.Printf("Warning: failed to query selection history: %v", err)
		return []SelectionEntry{}, nil
	}
	defer rows.Close()

	var entries []SelectionEntry
	for rows.Next() {
		var entry SelectionEntry
		var timestampStr string
		var wasRecommended int

		if err := rows.Scan(
			&timestampStr,
			&entry.TaskType,
			&entry.ToolID,
			&wasRecommended,
			&entry.Explanation,
			&entry.PromptLength,
		); err != nil {
			log.Printf("Warning: failed to scan selection row: %v", err)
			continue
		}

		entry.WasRecommended = wasRecommended == 1
		entry.Timestamp, err = time.Parse(timeFormat, timestampStr)
		if err != nil {
			log.Printf("Warning: failed to parse selection timestamp: %v", err)
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// CountSelections counts history entries for an exact (taskType, toolID) pair.
func (s *SQLiteStore) CountSelections(taskType, toolID string) (int, error) {
	if !s.enabled || s.db == nil {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM selection_history WHERE task_type = ? AND tool_id = ?
	`, taskType, toolID).Scan(&count)
	if err != nil {
		log.Printf("Warning: failed to count selection pair: %v", err)
		return 0, nil
	}

	return count, nil
}

// SavePrompt appends a generated prompt, keeping the most recent records.
func (s *SQLiteStore) SavePrompt(rec PromptRecord) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO prompt_history (timestamp, input, output, model)
		VALUES (?, ?, ?, ?)
	`,
		rec.Timestamp.Format(timeFormat),
		rec.Input,
		rec.Output,
		rec.Model,
	)
	if err != nil {
		log.Printf("Warning: failed to save prompt: %v", err)
		return nil
	}

	_, err = s.db.Exec(`
		DELETE FROM prompt_history
		WHERE id NOT IN (
			SELECT id FROM prompt_history ORDER BY id DESC LIMIT ?
		)
	`, maxPromptRecords)
	if err != nil {
		log.Printf("Warning: failed to truncate prompt history: %v", err)
	}

	return nil
}

// Prompts returns up to limit prompt records, newest first.
func (s *SQLiteStore) Prompts(limit int) ([]PromptRecord, error) {
	if !s.enabled || s.db == nil {
		return []PromptRecord{}, nil
	}

	if limit <= 0 || limit > maxPromptRecords {
		limit = maxPromptRecords
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT timestamp, input, output, model
		FROM prompt_history ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		log.Printf("Warning: failed to query prompt history: %v", err)
		return []PromptRecord{}, nil
	}
	defer rows.Close()

	var records []PromptRecord
	for rows.Next() {
		var rec PromptRecord
		var timestampStr string

		if err := rows.Scan(&timestampStr, &rec.Input, &rec.Output, &rec.Model); err != nil {
			log.Printf("Warning: failed to scan prompt row: %v", err)
			continue
		}

		rec.Timestamp, err = time.Parse(timeFormat, timestampStr)
		if err != nil {
			log.Printf("Warning: failed to parse prompt timestamp: %v", err)
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}
