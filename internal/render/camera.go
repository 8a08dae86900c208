package render

import "psymaze/internal/gamemap"

// CellWidth is the number of terminal columns one maze cell occupies.
const CellWidth = 2

// Camera translates between grid positions and screen coordinates.
// Columns are multiplied by CellWidth so the maze keeps a square-ish aspect.
type Camera struct {
	OffsetRow  int
	OffsetCol  int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on p.
func NewCamera(p gamemap.Pos, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(p)
	return c
}

// Center repositions the camera so that p is in the middle of the view.
func (c *Camera) Center(p gamemap.Pos) {
	c.OffsetCol = p.Col - (c.ViewWidth/CellWidth)/2
	c.OffsetRow = p.Row - c.ViewHeight/2
}

// Fit pins the camera to the top-left when the whole grid fits on screen
// and centers on focus otherwise.
func (c *Camera) Fit(rows, cols int, focus gamemap.Pos) {
	c.Center(focus)
	if cols*CellWidth <= c.ViewWidth {
		c.OffsetCol = 0
	}
	if rows <= c.ViewHeight {
		c.OffsetRow = 0
	}
}

// WorldToScreen converts p to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p gamemap.Pos) (sx, sy int, visible bool) {
	sx = (p.Col - c.OffsetCol) * CellWidth
	sy = p.Row - c.OffsetRow
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a grid position.
func (c *Camera) ScreenToWorld(sx, sy int) gamemap.Pos {
	return gamemap.Pos{Row: sy + c.OffsetRow, Col: sx/CellWidth + c.OffsetCol}
}
