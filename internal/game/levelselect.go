package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"psymaze/internal/generate"
)

// runLevelSelect lets the player pick a level, starting from saved. Returns
// false if the player quits without selecting.
func (g *Game) runLevelSelect(saved int) (int, bool) {
	selected := generate.ClampLevel(saved)
	var typed []rune
	for {
		g.drawLevelSelect(saved, selected, typed)
		ev := g.poll()
		switch ev := ev.(type) {
		case nil:
			return 0, false
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp, tcell.KeyRight:
				selected = generate.ClampLevel(selected + 1)
				typed = nil
			case tcell.KeyDown, tcell.KeyLeft:
				selected = generate.ClampLevel(selected - 1)
				typed = nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(typed) > 0 {
					typed = typed[:len(typed)-1]
				}
			case tcell.KeyEnter:
				return selected, true
			case tcell.KeyEscape:
				if g.confirmQuit(func() { g.drawLevelSelect(saved, selected, typed) }) {
					return 0, false
				}
			case tcell.KeyRune:
				r := ev.Rune()
				switch {
				case r == '+' || r == '=':
					selected = generate.ClampLevel(selected + 1)
					typed = nil
				case r == '-':
					selected = generate.ClampLevel(selected - 1)
					typed = nil
				case r >= '0' && r <= '9':
					if len(typed) == 2 {
						typed = nil
					}
					typed = append(typed, r)
					n := 0
					for _, d := range typed {
						n = n*10 + int(d-'0')
					}
					selected = generate.ClampLevel(n)
				case r == 'q' || r == 'Q':
					if g.confirmQuit(func() { g.drawLevelSelect(saved, selected, typed) }) {
						return 0, false
					}
				}
			}
		}
	}
}

// drawLevelSelect renders the level selection UI.
func (g *Game) drawLevelSelect(saved, selected int, typed []rune) {
	g.screen.Clear()
	w, _ := g.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	normalStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))

	centerText := func(y int, text string, style tcell.Style) {
		x := (w - runewidth.StringWidth(text)) / 2
		if x < 0 {
			x = 0
		}
		drawScreenText(g.screen, x, y, text, style)
	}

	size := generate.LevelToSize(selected)
	centerText(1, "PSYMAZE", titleStyle)
	centerText(2, "A maze that listens to your mood", dimStyle)
	centerText(4, fmt.Sprintf("Saved level: %d", saved), normalStyle)
	centerText(6, fmt.Sprintf(" Level %d -> maze size %d x %d ", selected, size, size), highlightStyle)
	if len(typed) > 0 {
		centerText(8, "Typed: "+string(typed), dimStyle)
	}
	centerText(10, fmt.Sprintf("[←/→ or +/-] Change   [%d-%d] Type   [Enter] Start   [q] Quit",
		generate.MinLevel, generate.MaxLevel), dimStyle)

	g.screen.Show()
}

// drawScreenText writes a string to the screen at (x, y), advancing by each
// rune's display width.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
