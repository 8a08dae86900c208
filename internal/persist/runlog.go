package persist

import (
	"encoding/json"
	"fmt"
)

// RunLog records a single finished run.
type RunLog struct {
	Timestamp      string         `json:"timestamp"`
	Level          int            `json:"level"`
	Seed           int64          `json:"seed"`
	Rows           int            `json:"rows"`
	Cols           int            `json:"cols"`
	Steps          int            `json:"steps"`
	Moods          map[string]int `json:"moods"`
	Traps          int            `json:"traps"`
	Puzzles        int            `json:"puzzles"`
	Bonuses        int            `json:"bonuses"`
	PhilosophyUses int            `json:"philosophy_uses"`
	XP             int            `json:"xp"`
	Medal          string         `json:"medal"`
	Achievements   []string       `json:"achievements"`
	LevelBefore    int            `json:"level_before"`
	LevelAfter     int            `json:"level_after"`
	ExitSealed     bool           `json:"exit_sealed,omitempty"`
}

// AppendRun adds the run as a single JSON line to runs.jsonl.
func (s *Store) AppendRun(log RunLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	return s.appendFile(RunLogFile, append(data, '\n'))
}
