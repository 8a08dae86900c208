// mazegen generates a psymaze level without the terminal UI and prints it in
// the run snapshot format. Build:
//
//	go build -o mazegen ./cmd/mazegen
//
// Usage:
//
//	./mazegen [-level 5] [-seed 42] [-rows R -cols C] [-morphs N]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
	"psymaze/internal/persist"
	"psymaze/internal/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.Int("level", 1, "difficulty level 1-50")
	seed := fs.Int64("seed", 1, "maze seed")
	rows := fs.Int("rows", 0, "override row count (0 = from level)")
	cols := fs.Int("cols", 0, "override column count (0 = from level)")
	npcs := fs.Int("npcs", session.DefaultNPCCount, "NPCs to place")
	morphs := fs.Int("morphs", 0, "mood changes to apply before printing")
	verbose := fs.Bool("v", false, "log generation details to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck
	}

	n := *npcs
	if n == 0 {
		n = -1
	}
	sess, err := session.New(session.Config{
		Level:    *level,
		Rows:     *rows,
		Cols:     *cols,
		NPCCount: n,
		Seed:     *seed,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	for i := 0; i < *morphs; i++ {
		sess.ShiftMood(sess.Player().Mood.Next())
	}

	grid := sess.Grid()
	player := sess.Player()
	if err := persist.WriteSnapshot(stdout, grid, player, sess.Exit()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Open cells: %d\n", grid.CountWalkable())
	fmt.Fprintf(stdout, "Obstacles: Traps=%d Puzzles=%d Bonuses=%d PowerUps=%d\n",
		grid.CountObstacles(gamemap.Trap), grid.CountObstacles(gamemap.Puzzle),
		grid.CountObstacles(gamemap.Bonus), grid.CountObstacles(gamemap.PowerUp))
	fmt.Fprintf(stdout, "NPCs: %s\n", describeNPCs(sess.NPCs()))
	fmt.Fprintf(stdout, "Exit reachable: %t\n", sess.ExitReachable())
	return nil
}

func describeNPCs(npcs []entity.NPC) string {
	if len(npcs) == 0 {
		return "none"
	}
	out := ""
	for i, n := range npcs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s(%d,%d)", n.Archetype, n.Pos.Row, n.Pos.Col)
	}
	return out
}
