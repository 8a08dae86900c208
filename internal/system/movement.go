package system

import "psymaze/internal/gamemap"

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) offset of one step in d.
func (d Direction) Delta() gamemap.Pos {
	switch d {
	case DirUp:
		return gamemap.Pos{Row: -1}
	case DirDown:
		return gamemap.Pos{Row: 1}
	case DirLeft:
		return gamemap.Pos{Col: -1}
	}
	return gamemap.Pos{Col: 1}
}

// Key returns the wasd key bound to d.
func (d Direction) Key() rune {
	switch d {
	case DirUp:
		return 'w'
	case DirDown:
		return 's'
	case DirLeft:
		return 'a'
	}
	return 'd'
}

func (d Direction) step(from gamemap.Pos, n int) gamemap.Pos {
	dd := d.Delta()
	return gamemap.Pos{Row: from.Row + n*dd.Row, Col: from.Col + n*dd.Col}
}

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveInvalid                   // wall or out-of-bounds
)

// TryMove returns the cell one step from `from` in dir, or MoveInvalid with
// `from` unchanged.
func TryMove(grid *gamemap.Grid, from gamemap.Pos, dir Direction) (gamemap.Pos, MoveResult) {
	to := dir.step(from, 1)
	if !grid.IsWalkable(to) {
		return from, MoveInvalid
	}
	return to, MoveOK
}

// JumpResult describes the outcome of a TryJump call.
type JumpResult uint8

const (
	JumpOK      JumpResult = iota // cleared a wall
	JumpInvalid                   // out of bounds, nothing to clear, or landing on a wall
	JumpBlocked                   // the midpoint carries an obstacle
)

func (r JumpResult) String() string {
	switch r {
	case JumpOK:
		return "ok"
	case JumpBlocked:
		return "blocked"
	}
	return "invalid"
}

// TryJump leaps two cells in dir. The midpoint must be a bare wall and the
// landing cell open. A midpoint obstacle reports JumpBlocked rather than
// JumpInvalid so callers can offer a challenge instead.
func TryJump(grid *gamemap.Grid, from gamemap.Pos, dir Direction) (gamemap.Pos, JumpResult) {
	mid := dir.step(from, 1)
	to := dir.step(from, 2)
	if !grid.InBounds(to) {
		return from, JumpInvalid
	}
	obstacle := grid.ObstacleAt(mid)
	if !grid.IsWalkable(mid) && grid.IsWalkable(to) && obstacle == gamemap.None {
		return to, JumpOK
	}
	if obstacle != gamemap.None {
		return from, JumpBlocked
	}
	return from, JumpInvalid
}
