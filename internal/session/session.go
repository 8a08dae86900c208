// Package session owns the state of one maze run and applies player turns.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
	"psymaze/internal/generate"
	"psymaze/internal/system"
)

// DefaultNPCCount is the roster size when Config.NPCCount is zero.
const DefaultNPCCount = 3

// Config describes one session.
type Config struct {
	Level int
	// Rows and Cols override the level-derived size when non-zero.
	Rows, Cols  int
	NPCCount    int // 0 means DefaultNPCCount, negative means none
	MorphAmount int // 0 means system.DefaultMorphAmount, negative means no toggles
	Dialogue    map[entity.Archetype]entity.Dialogue
	// Seed is reported back through Session.Seed. Ignored when Rand is set.
	Seed   int64
	Rand   *rand.Rand
	Logger *zap.Logger
}

// Stats are the per-session tallies the end screen and NPCs read.
type Stats struct {
	Steps          int
	Moods          [entity.MoodCount]int
	PhilosophyUses int
}

// Session is a single run from origin to exit. It is not safe for
// concurrent use.
type Session struct {
	level       int
	seed        int64
	grid        *gamemap.Grid
	exit        gamemap.Pos
	player      entity.Player
	npcs        []entity.NPC
	powerUps    int
	counters    system.Counters
	stats       Stats
	lastDir     system.Direction
	morphAmount int
	reachable   bool
	rng         *rand.Rand
	log         *zap.Logger
}

// New generates the maze and places the player at the origin.
func New(cfg Config) (*Session, error) {
	rng := cfg.Rand
	seed := cfg.Seed
	if rng == nil {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	npcCount := cfg.NPCCount
	if npcCount == 0 {
		npcCount = DefaultNPCCount
	}
	morph := cfg.MorphAmount
	switch {
	case morph == 0:
		morph = system.DefaultMorphAmount
	case morph < 0:
		morph = 0
	}

	level := generate.ClampLevel(cfg.Level)
	res, err := generate.Generate(&generate.Config{
		Level:    level,
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		NPCCount: npcCount,
		Dialogue: cfg.Dialogue,
		Rand:     rng,
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	res.Grid.Protect(gamemap.Origin)
	res.Grid.Protect(res.Exit)
	res.Grid.MarkVisited(gamemap.Origin)

	s := &Session{
		level:       level,
		seed:        seed,
		grid:        res.Grid,
		exit:        res.Exit,
		player:      entity.NewPlayer(),
		npcs:        res.NPCs,
		powerUps:    res.PowerUps,
		lastDir:     system.DirRight,
		morphAmount: morph,
		reachable:   true,
		rng:         rng,
		log:         log,
	}
	log.Info("session started",
		zap.Int("level", level),
		zap.Int64("seed", seed),
		zap.Int("rows", res.Grid.Rows),
		zap.Int("cols", res.Grid.Cols),
		zap.Int("npcs", len(res.NPCs)),
		zap.Int("power_ups", res.PowerUps),
	)
	return s, nil
}

// Turn holds what happened after the player landed on a new cell.
type Turn struct {
	Position      gamemap.Pos
	Effect        system.Effect
	Encounter     *system.Encounter
	MoodBefore    entity.Mood
	MoodAfter     entity.Mood
	MoodChanged   bool
	Morph         *system.MorphReport
	ExitReachable bool
}

// MoveOutcome is the result of ApplyMove. Only Position is set when
// Success is false.
type MoveOutcome struct {
	Success bool
	Turn
}

// JumpOutcome is the result of ApplyJump. Only Position is set unless
// Result is system.JumpOK.
type JumpOutcome struct {
	Result system.JumpResult
	Turn
}

// ApplyMove steps one cell in dir and records dir as the last direction,
// whether or not the step succeeds.
func (s *Session) ApplyMove(dir system.Direction) MoveOutcome {
	s.lastDir = dir
	to, res := system.TryMove(s.grid, s.player.Pos, dir)
	if res != system.MoveOK {
		return MoveOutcome{Turn: s.idle()}
	}
	return MoveOutcome{Success: true, Turn: s.land(to, true)}
}

// ApplyJump leaps two cells along dir over a wall. A jump resolves the
// landing obstacle and rerolls the mood, but meets no NPC and is not
// counted in the mood tally.
func (s *Session) ApplyJump(dir system.Direction) JumpOutcome {
	to, res := system.TryJump(s.grid, s.player.Pos, dir)
	if res != system.JumpOK {
		s.log.Debug("jump rejected", zap.Stringer("result", res))
		return JumpOutcome{Result: res, Turn: s.idle()}
	}
	return JumpOutcome{Result: system.JumpOK, Turn: s.land(to, false)}
}

func (s *Session) idle() Turn {
	return Turn{Position: s.player.Pos, MoodBefore: s.player.Mood, MoodAfter: s.player.Mood, ExitReachable: s.reachable}
}

// land runs the per-turn pipeline: obstacle, NPC, reroll, morph, probe.
// The NPC check and the mood tally only run for a walked step.
func (s *Session) land(to gamemap.Pos, step bool) Turn {
	before := s.player.Mood
	s.player.Pos = to
	s.grid.MarkVisited(to)
	s.stats.Steps++

	t := Turn{Position: to, MoodBefore: before}
	t.Effect = system.ResolveObstacle(&s.player, s.grid.ObstacleAt(to), &s.counters)

	if step {
		t.Encounter = s.encounter()
	}

	s.player.Mood = entity.RandomMood(s.rng)
	if step {
		s.stats.Moods[s.player.Mood]++
	}
	t.MoodAfter = s.player.Mood
	t.MoodChanged = t.MoodAfter != before

	if t.MoodChanged {
		t.Morph = s.morph()
	}
	t.ExitReachable = s.reachable
	return t
}

// morph reshapes the maze for the current mood and re-probes the exit.
func (s *Session) morph() *system.MorphReport {
	rep := system.Morph(s.grid, s.player, s.morphAmount, s.rng)
	s.reachable = system.ExitReachable(s.grid, s.player.Pos)
	s.log.Debug("maze morphed",
		zap.Stringer("mood", rep.Mood),
		zap.Int("toggles", len(rep.Toggles)),
		zap.Bool("relocated", rep.Relocation != nil),
	)
	if !s.reachable {
		s.log.Warn("exit sealed off by morph", zap.Int("row", s.player.Pos.Row), zap.Int("col", s.player.Pos.Col))
	}
	return &rep
}

// ShiftMood sets the player's mood without moving and morphs the maze if it
// changed. Steps and the mood tally are untouched. Returns nil when the mood
// is unchanged.
func (s *Session) ShiftMood(m entity.Mood) *system.MorphReport {
	if m == s.player.Mood {
		return nil
	}
	s.player.Mood = m
	return s.morph()
}

// ExitReachable reports the result of the latest reachability probe.
func (s *Session) ExitReachable() bool { return s.reachable }

// encounter lets the first active NPC on the player's cell speak.
func (s *Session) encounter() *system.Encounter {
	enc, ok := system.CheckEncounter(s.player, s.npcs, system.EncounterStats{
		Steps:          s.stats.Steps,
		Traps:          s.counters.Traps,
		PhilosophyUses: s.stats.PhilosophyUses,
	})
	if !ok {
		return nil
	}
	s.log.Info("npc encounter", zap.Stringer("archetype", enc.NPC.Archetype), zap.Int("step", s.stats.Steps))
	return &enc
}

// LastDirection is the direction a jump will take.
func (s *Session) LastDirection() system.Direction { return s.lastDir }

// RecordPhilosophyUse counts one opening of the philosophy panel.
func (s *Session) RecordPhilosophyUse() { s.stats.PhilosophyUses++ }

// Finished reports whether the player stands on the exit.
func (s *Session) Finished() bool { return s.player.Pos == s.exit }

// Grid returns the session's live maze. Callers must treat it as read-only;
// the maze changes only through ApplyMove, ApplyJump and ShiftMood.
func (s *Session) Grid() *gamemap.Grid { return s.grid }

func (s *Session) Player() entity.Player { return s.player }
func (s *Session) Stats() Stats { return s.stats }
func (s *Session) Counters() system.Counters { return s.counters }
func (s *Session) Exit() gamemap.Pos { return s.exit }
func (s *Session) Level() int { return s.level }
func (s *Session) Seed() int64 { return s.seed }
func (s *Session) PowerUps() int { return s.powerUps }
func (s *Session) Rand() *rand.Rand { return s.rng }

// NPCs returns a copy of the roster.
func (s *Session) NPCs() []entity.NPC {
	out := make([]entity.NPC, len(s.npcs))
	copy(out, s.npcs)
	return out
}

// NPCAt reports whether an active NPC stands on p.
func (s *Session) NPCAt(p gamemap.Pos) bool {
	for _, n := range s.npcs {
		if n.Active && n.Pos == p {
			return true
		}
	}
	return false
}
