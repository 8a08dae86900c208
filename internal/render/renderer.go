package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// HUDHeight is the number of rows reserved at the bottom of the screen.
const HUDHeight = 6

// View is the read-only maze state a frame is drawn from.
type View interface {
	Grid() *gamemap.Grid
	Player() entity.Player
	Exit() gamemap.Pos
	NPCAt(p gamemap.Pos) bool
}

// Renderer draws the maze onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(gamemap.Origin, w, h-HUDHeight),
	}
}

// Screen returns the underlying screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

// Resize recomputes the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - HUDHeight
}

// WorldToScreen converts a grid position to screen coordinates.
func (r *Renderer) WorldToScreen(p gamemap.Pos) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(p)
}

// CellGlyph returns the character drawn for p. Precedence is player, exit,
// active NPC, obstacle, then visited floor, floor and wall.
func CellGlyph(v View, p gamemap.Pos) rune {
	g := v.Grid()
	switch {
	case p == v.Player().Pos:
		return 'P'
	case p == v.Exit():
		return 'E'
	case v.NPCAt(p):
		return 'N'
	}
	if o := g.ObstacleAt(p); o != gamemap.None {
		return o.Glyph()
	}
	if g.IsWalkable(p) {
		if g.Visited(p) {
			return '*'
		}
		return '.'
	}
	return '#'
}

// DrawMap clears the screen and renders the visible part of the maze.
func (r *Renderer) DrawMap(v View) {
	r.screen.Clear()
	g := v.Grid()
	player := v.Player()
	r.camera.Fit(g.Rows, g.Cols, player.Pos)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			p := gamemap.Pos{Row: row, Col: col}
			sx, sy, ok := r.camera.WorldToScreen(p)
			if !ok {
				continue
			}
			glyph := CellGlyph(v, p)
			style := glyphStyle(glyph)
			if glyph == 'P' {
				style = tcell.StyleDefault.Foreground(MoodColor(player.Mood)).Bold(true)
			}
			r.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

// drawText writes text starting at (x, y), advancing by each rune's display
// width. Text past maxW columns is dropped; maxW <= 0 means the screen edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style, maxW int) int {
	sw, _ := r.screen.Size()
	limit := sw
	if maxW > 0 && x+maxW < sw {
		limit = x + maxW
	}
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
	return col
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
