package render

import (
	"github.com/gdamore/tcell/v2"

	"psymaze/internal/entity"
)

// Palette maps each map glyph to its style.
var Palette = map[rune]tcell.Style{
	'#': tcell.StyleDefault.Foreground(tcell.ColorGray),
	'.': tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
	'*': tcell.StyleDefault.Foreground(tcell.ColorSteelBlue),
	'E': tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	'N': tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
	'T': tcell.StyleDefault.Foreground(tcell.ColorRed),
	'Q': tcell.StyleDefault.Foreground(tcell.ColorAqua),
	'B': tcell.StyleDefault.Foreground(tcell.ColorGold),
	'K': tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

// MoodColor tints the player glyph and the HUD face.
func MoodColor(m entity.Mood) tcell.Color {
	switch m {
	case entity.Sad:
		return tcell.ColorCornflowerBlue
	case entity.Happy:
		return tcell.ColorYellow
	}
	return tcell.ColorWhite
}

func glyphStyle(g rune) tcell.Style {
	if s, ok := Palette[g]; ok {
		return s
	}
	return tcell.StyleDefault
}
