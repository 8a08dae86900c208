package system

import (
	"github.com/zyedidia/generic/mapset"

	"psymaze/internal/gamemap"
)

// Reachable returns every open cell connected to start by orthogonal steps.
// An empty set is returned when start itself is a wall.
func Reachable(grid *gamemap.Grid, start gamemap.Pos) mapset.Set[gamemap.Pos] {
	seen := mapset.New[gamemap.Pos]()
	if !grid.IsWalkable(start) {
		return seen
	}
	queue := []gamemap.Pos{start}
	seen.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for d := DirUp; d <= DirRight; d++ {
			n := d.step(cur, 1)
			if grid.IsWalkable(n) && !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// ExitReachable reports whether the exit can still be walked to from start.
// Jumps are ignored, so a false result is a conservative "sealed" signal.
func ExitReachable(grid *gamemap.Grid, start gamemap.Pos) bool {
	return Reachable(grid, start).Has(grid.Exit())
}
