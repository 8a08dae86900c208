package generate

import (
	"math/rand"

	"psymaze/internal/gamemap"
)

const (
	baseTrapDivisor = 18
	minTrapDivisor  = 6
	// cells per scattered power-up
	powerUpDensity = 60
	// maxPowerUpAttempts bounds the rejection sampling per power-up slot.
	maxPowerUpAttempts = 20
)

// TrapDivisor is the modulus drawn per open cell. Higher levels lower it,
// so more cells roll one of the three obstacle classes.
func TrapDivisor(level int) int {
	div := baseTrapDivisor - ClampLevel(level)/5
	if div < minTrapDivisor {
		div = minTrapDivisor
	}
	return div
}

// PlaceObstacles classifies every open cell except origin and exit, then scatters
// power-ups. It returns the number of power-ups actually placed, which may fall
// short of rows*cols/60 on crowded grids.
func PlaceObstacles(grid *gamemap.Grid, level int, exit gamemap.Pos, rng *rand.Rand) int {
	div := TrapDivisor(level)
	reserved := func(p gamemap.Pos) bool { return p == gamemap.Origin || p == exit }

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := gamemap.Pos{Row: row, Col: col}
			if !grid.IsWalkable(p) || reserved(p) {
				grid.SetObstacle(p, gamemap.None)
				continue
			}
			switch rng.Intn(div) {
			case 0:
				grid.SetObstacle(p, gamemap.Trap)
			case 1:
				grid.SetObstacle(p, gamemap.Puzzle)
			case 2:
				grid.SetObstacle(p, gamemap.Bonus)
			default:
				grid.SetObstacle(p, gamemap.None)
			}
		}
	}

	placed := 0
	slots := grid.Rows * grid.Cols / powerUpDensity
	for range slots {
		for range maxPowerUpAttempts {
			p := gamemap.Pos{Row: rng.Intn(grid.Rows), Col: rng.Intn(grid.Cols)}
			if grid.IsWalkable(p) && grid.ObstacleAt(p) == gamemap.None && !reserved(p) {
				grid.SetObstacle(p, gamemap.PowerUp)
				placed++
				break
			}
		}
	}
	return placed
}
