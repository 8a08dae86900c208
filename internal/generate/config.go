package generate

import (
	"errors"
	"math/rand"

	"psymaze/internal/entity"
)

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 50
)

// MinDimension is the smallest rows/cols value a maze can be carved in.
const MinDimension = 3

var (
	// ErrGridTooSmall is returned when rows or cols are below MinDimension.
	ErrGridTooSmall = errors.New("generate: grid must be at least 3x3")
	// ErrNoFreeCell is returned when no open non-origin cell exists for an NPC.
	ErrNoFreeCell = errors.New("generate: no open cell available for placement")
)

// Config drives generation for one session.
type Config struct {
	Level    int
	Rows     int // 0 = derive from Level
	Cols     int // 0 = derive from Level
	NPCCount int
	Dialogue map[entity.Archetype]entity.Dialogue
	Rand     *rand.Rand
}

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// LevelToSize returns the square maze side for a difficulty level.
func LevelToSize(level int) int {
	return 9 + 2*ClampLevel(level)
}

// dimensions resolves the configured rows/cols, deriving them from the level when unset.
func (c *Config) dimensions() (int, int) {
	rows, cols := c.Rows, c.Cols
	size := LevelToSize(c.Level)
	if rows == 0 {
		rows = size
	}
	if cols == 0 {
		cols = size
	}
	return rows, cols
}
