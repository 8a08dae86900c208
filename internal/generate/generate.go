package generate

import (
	"fmt"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// Result is a freshly generated maze with its roster.
type Result struct {
	Grid     *gamemap.Grid
	Exit     gamemap.Pos
	NPCs     []entity.NPC
	PowerUps int
}

// Generate carves the maze, places obstacles and then NPCs, in that order, all
// drawing from cfg.Rand.
func Generate(cfg *Config) (Result, error) {
	rows, cols := cfg.dimensions()
	if rows < MinDimension || cols < MinDimension {
		return Result{}, fmt.Errorf("%dx%d: %w", rows, cols, ErrGridTooSmall)
	}
	grid := gamemap.New(rows, cols)
	exit := grid.Exit()

	if err := Carve(grid, exit, cfg.Rand); err != nil {
		return Result{}, err
	}
	powerUps := PlaceObstacles(grid, cfg.Level, exit, cfg.Rand)

	npcs, err := PlaceNPCs(grid, cfg.NPCCount, cfg.Dialogue, cfg.Rand)
	if err != nil {
		return Result{}, fmt.Errorf("place npcs: %w", err)
	}
	return Result{Grid: grid, Exit: exit, NPCs: npcs, PowerUps: powerUps}, nil
}
