package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"psymaze/internal/entity"
	"psymaze/internal/system"
)

// Status is the per-turn data shown on the HUD status line.
type Status struct {
	Level          int
	Mood           entity.Mood
	Steps          int
	Counters       system.Counters
	PhilosophyUses int
	JumpDir        system.Direction
	Sealed         bool
}

// StatusLine formats st for the HUD.
func StatusLine(st Status) string {
	line := fmt.Sprintf("Lv %d  Mood %s  Steps %d  T:%d Q:%d B:%d  Phil %d  Jump[%c]",
		st.Level, st.Mood.Face(), st.Steps,
		st.Counters.Traps, st.Counters.Puzzles, st.Counters.Bonuses,
		st.PhilosophyUses, st.JumpDir.Key())
	if st.Sealed {
		line += "  (exit sealed)"
	}
	return line
}

// KeyHelp is the key reference printed under the status line.
const KeyHelp = "wasd/arrows move  j jump  h philosophy  l journal  x snapshot  q quit"

// DrawHUD renders the status bar, key help, support line and message log.
func (r *Renderer) DrawHUD(st Status, support string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDHeight

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, StatusLine(st), tcell.StyleDefault.Foreground(MoodColor(st.Mood)), 0)
	r.drawText(0, hudY+2, KeyHelp, tcell.StyleDefault.Foreground(tcell.ColorGray), 0)
	r.drawText(0, hudY+3, support, tcell.StyleDefault.Foreground(tcell.ColorLightCyan).Italic(true), 0)

	// Message log (last 2 messages).
	start := len(messages) - 2
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+4+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow), 0)
	}

	r.screen.Show()
}
