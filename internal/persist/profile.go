package persist

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Level bounds for the saved profile.
const (
	minLevel = 1
	maxLevel = 50
)

func clampLevel(l int) int {
	if l < minLevel {
		return minLevel
	}
	if l > maxLevel {
		return maxLevel
	}
	return l
}

// LoadLevel reads the saved player level. A missing or unreadable profile
// yields level 1; saved values are clamped to 1..50.
func (s *Store) LoadLevel() int {
	raw, err := os.ReadFile(s.Path(ProfileFile))
	if err != nil {
		return minLevel
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return minLevel
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return minLevel
	}
	return clampLevel(n)
}

// SaveLevel overwrites the profile with level.
func (s *Store) SaveLevel(level int) error {
	if err := os.WriteFile(s.Path(ProfileFile), []byte(fmt.Sprintf("%d\n", level)), 0o644); err != nil {
		return fmt.Errorf("save level: %w", err)
	}
	return nil
}

// XP thresholds for level progression.
const (
	oneLevelXP  = 30
	twoLevelsXP = 60
)

// NextLevel returns the saved level after a run worth xp.
func NextLevel(base, xp int) int {
	next := base
	switch {
	case xp >= twoLevelsXP:
		next += 2
	case xp >= oneLevelXP:
		next++
	}
	if next > maxLevel {
		next = maxLevel
	}
	return next
}
