package persist

import (
	"fmt"
	"strings"
)

// Summary is one session block in session_stats.txt.
type Summary struct {
	Steps          int
	Sad            int
	Neutral        int
	Happy          int
	Traps          int
	Puzzles        int
	Bonuses        int
	PhilosophyUses int
}

// Format renders the block exactly as it is appended, trailing blank line
// included.
func (s Summary) Format() string {
	var b strings.Builder
	b.WriteString("=== New Session ===\n")
	fmt.Fprintf(&b, "Steps: %d\n", s.Steps)
	fmt.Fprintf(&b, "Moods: Sad=%d Neutral=%d Happy=%d\n", s.Sad, s.Neutral, s.Happy)
	fmt.Fprintf(&b, "Obstacles: Traps=%d Puzzles=%d Bonuses=%d\n", s.Traps, s.Puzzles, s.Bonuses)
	fmt.Fprintf(&b, "Philosophy uses: %d\n\n", s.PhilosophyUses)
	return b.String()
}

// AppendSummary adds one block to session_stats.txt.
func (s *Store) AppendSummary(sum Summary) error {
	return s.appendFile(SummaryFile, []byte(sum.Format()))
}
