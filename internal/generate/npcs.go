package generate

import (
	"math/rand"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// PlaceNPCs builds the archetype roster on random open, non-origin cells.
// NPCs are not checked against each other, so two may share a cell.
func PlaceNPCs(grid *gamemap.Grid, count int, dialogue map[entity.Archetype]entity.Dialogue, rng *rand.Rand) ([]entity.NPC, error) {
	if count <= 0 {
		return nil, nil
	}
	if !hasNPCCell(grid) {
		return nil, ErrNoFreeCell
	}

	npcs := make([]entity.NPC, 0, count)
	for i := range count {
		arch := entity.ArchetypeFor(i)
		var at gamemap.Pos
		for {
			at = gamemap.Pos{Row: rng.Intn(grid.Rows), Col: rng.Intn(grid.Cols)}
			if grid.IsWalkable(at) && at != gamemap.Origin {
				break
			}
		}
		npcs = append(npcs, entity.NPC{
			Pos:       at,
			Archetype: arch,
			Lines:     dialogue[arch],
			Active:    true,
		})
	}
	return npcs, nil
}

func hasNPCCell(grid *gamemap.Grid) bool {
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := gamemap.Pos{Row: row, Col: col}
			if p != gamemap.Origin && grid.IsWalkable(p) {
				return true
			}
		}
	}
	return false
}
