package generate

import (
	"math/rand"

	"psymaze/internal/gamemap"
)

// Direction offsets in carve order: up, down, left, right.
var carveDirs = [4]gamemap.Pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// shuffleDirections is a Fisher–Yates shuffle over the four direction indices.
func shuffleDirections(dirs *[4]int, rng *rand.Rand) {
	for i := 3; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// carveFrame is one node on the explicit DFS stack.
type carveFrame struct {
	at   gamemap.Pos
	dirs [4]int
	next int
}

func newFrame(at gamemap.Pos, rng *rand.Rand) carveFrame {
	f := carveFrame{at: at, dirs: [4]int{0, 1, 2, 3}}
	shuffleDirections(&f.dirs, rng)
	return f
}

// Carve resets grid and carves a maze over the step-2 lattice rooted at the origin,
// then forces exit open. Directions are shuffled when a node is first entered and
// tried in that order, so the visiting order and RNG consumption match a
// recursive backtracker.
func Carve(grid *gamemap.Grid, exit gamemap.Pos, rng *rand.Rand) error {
	if grid.Rows < MinDimension || grid.Cols < MinDimension {
		return ErrGridTooSmall
	}
	grid.Reset()

	visited := make([]bool, grid.Rows*grid.Cols)
	mark := func(p gamemap.Pos) { visited[p.Row*grid.Cols+p.Col] = true }
	seen := func(p gamemap.Pos) bool { return visited[p.Row*grid.Cols+p.Col] }

	grid.SetWalkable(gamemap.Origin, true)
	mark(gamemap.Origin)
	stack := []carveFrame{newFrame(gamemap.Origin, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := carveDirs[top.dirs[top.next]]
		top.next++

		n := gamemap.Pos{Row: top.at.Row + 2*d.Row, Col: top.at.Col + 2*d.Col}
		if !grid.InBounds(n) || seen(n) {
			continue
		}
		grid.SetWalkable(gamemap.Pos{Row: top.at.Row + d.Row, Col: top.at.Col + d.Col}, true)
		grid.SetWalkable(n, true)
		mark(n)
		// top is invalidated by the append below.
		stack = append(stack, newFrame(n, rng))
	}

	grid.SetWalkable(exit, true)
	return nil
}
