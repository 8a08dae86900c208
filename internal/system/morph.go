package system

import (
	"math/rand"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// DefaultMorphAmount is the number of toggle attempts per morph.
const DefaultMorphAmount = 3

// Toggle records one cell whose walkability changed.
type Toggle struct {
	Pos  gamemap.Pos
	Open bool // state after the change
}

// Relocation records the obstacle reassigned by a morph.
type Relocation struct {
	Pos      gamemap.Pos
	Obstacle gamemap.Obstacle
}

// MorphReport lists everything a single Morph call changed.
type MorphReport struct {
	Mood       entity.Mood
	Toggles    []Toggle
	Relocation *Relocation
}

// Changed reports whether the morph altered the grid at all.
func (r MorphReport) Changed() bool {
	return len(r.Toggles) > 0 || r.Relocation != nil
}

// Morph mutates the grid according to the player's current mood.
//
// Each of amount iterations picks a random cell and, unless it is protected or
// under the player, applies the mood rule: Sad opens walls, Happy walls open
// cells, Neutral flips. Afterwards exactly one cell is drawn for obstacle
// relocation and, if eligible, gets a random Trap, Puzzle or Bonus.
// Changes are permanent; the maze may end up disconnected from the exit.
func Morph(grid *gamemap.Grid, p entity.Player, amount int, rng *rand.Rand) MorphReport {
	rep := MorphReport{Mood: p.Mood}
	for i := 0; i < amount; i++ {
		at := randomCell(grid, rng)
		if grid.Protected(at) || at == p.Pos {
			continue
		}
		open := grid.IsWalkable(at)
		next := open
		switch p.Mood {
		case entity.Sad:
			next = true
		case entity.Happy:
			next = false
		default:
			next = !open
		}
		if next != open {
			grid.SetWalkable(at, next)
			rep.Toggles = append(rep.Toggles, Toggle{Pos: at, Open: next})
		}
	}

	at := randomCell(grid, rng)
	if !grid.Protected(at) && grid.IsWalkable(at) && at != p.Pos {
		obs := gamemap.Trap + gamemap.Obstacle(rng.Intn(3))
		grid.SetObstacle(at, obs)
		rep.Relocation = &Relocation{Pos: at, Obstacle: obs}
	}
	return rep
}

func randomCell(grid *gamemap.Grid, rng *rand.Rand) gamemap.Pos {
	r := rng.Intn(grid.Rows)
	c := rng.Intn(grid.Cols)
	return gamemap.Pos{Row: r, Col: c}
}
