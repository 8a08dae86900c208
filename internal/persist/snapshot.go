package persist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

// snapshotGlyph picks the character for one cell. Power-ups and NPCs are
// not shown; they read as open floor.
func snapshotGlyph(g *gamemap.Grid, p gamemap.Pos, player, exit gamemap.Pos) byte {
	switch {
	case p == player:
		return 'P'
	case p == exit:
		return 'E'
	}
	switch g.ObstacleAt(p) {
	case gamemap.Trap:
		return 'T'
	case gamemap.Puzzle:
		return 'Q'
	case gamemap.Bonus:
		return 'B'
	}
	if g.IsWalkable(p) {
		return '.'
	}
	return '#'
}

// WriteSnapshot renders the grid in the run_snapshot.txt format.
func WriteSnapshot(w io.Writer, g *gamemap.Grid, player entity.Player, exit gamemap.Pos) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("PsyMaze Snapshot\n")
	fmt.Fprintf(bw, "Size: %d x %d\n", g.Rows, g.Cols)
	fmt.Fprintf(bw, "Player: (%d,%d) Mood: %s\n", player.Pos.Row, player.Pos.Col, player.Mood.Face())
	fmt.Fprintf(bw, "Exit: (%d,%d)\n", exit.Row, exit.Col)
	bw.WriteString("Maze:\n")
	line := make([]byte, g.Cols+1)
	line[g.Cols] = '\n'
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			line[c] = snapshotGlyph(g, gamemap.Pos{Row: r, Col: c}, player.Pos, exit)
		}
		bw.Write(line)
	}
	return bw.Flush()
}

// SaveSnapshot overwrites run_snapshot.txt and returns its path.
func (s *Store) SaveSnapshot(g *gamemap.Grid, player entity.Player, exit gamemap.Pos) (string, error) {
	path := s.Path(SnapshotFile)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot: %w", err)
	}
	if err := WriteSnapshot(f, g, player, exit); err != nil {
		f.Close()
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close snapshot: %w", err)
	}
	return path, nil
}
