package game

import (
	"github.com/gdamore/tcell/v2"

	"psymaze/internal/persist"
)

// readLine collects a line of free text on the bottom row. redraw paints the
// screen behind the prompt. It returns false when the player cancels with Esc
// or the screen goes away; an empty Enter returns "" and true.
func (g *Game) readLine(label string, redraw func()) (string, bool) {
	var buf []rune
	for {
		redraw()
		g.renderer.DrawPrompt(label, buf)
		ev := g.poll()
		switch ev := ev.(type) {
		case nil:
			return "", false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return string(buf), true
			case tcell.KeyEscape:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				if len(buf) < persist.MaxJournalLine {
					buf = append(buf, ev.Rune())
				}
			}
		}
	}
}

// confirm asks a y/n question on the bottom row. Anything but y is a no.
func (g *Game) confirm(question string, redraw func()) bool {
	for {
		redraw()
		g.renderer.DrawPrompt(question+" (y/n) ", nil)
		ev := g.poll()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			return ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y')
		}
	}
}

// waitKey blocks until any key is pressed. It returns false if the screen
// goes away first.
func (g *Game) waitKey(redraw func()) bool {
	for {
		redraw()
		ev := g.poll()
		switch ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			return true
		}
	}
}

// confirmQuit asks "Really quit?" in a dialog over redraw. Returns true if
// confirmed or if the screen goes away.
func (g *Game) confirmQuit(redraw func()) bool {
	for {
		redraw()
		g.renderer.DrawDialog("Really quit? (y/n)")
		ev := g.poll()
		switch ev := ev.(type) {
		case nil:
			return true
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			return ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y')
		}
	}
}
