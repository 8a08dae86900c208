package session

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
	"psymaze/internal/generate"
	"psymaze/internal/system"
)

// handBuilt returns a session over a hand-carved grid. Morphing is limited
// to obstacle relocation so walls stay where the test put them.
func handBuilt(rows, cols int, open ...gamemap.Pos) *Session {
	g := gamemap.New(rows, cols)
	for _, p := range open {
		g.SetWalkable(p, true)
	}
	g.Protect(gamemap.Origin)
	g.Protect(g.Exit())
	g.MarkVisited(gamemap.Origin)
	return &Session{
		level:     1,
		grid:      g,
		exit:      g.Exit(),
		player:    entity.NewPlayer(),
		lastDir:   system.DirRight,
		reachable: true,
		rng:       rand.New(rand.NewSource(1)),
		log:       zap.NewNop(),
	}
}

func TestNewSession(t *testing.T) {
	s, err := New(Config{Level: 3, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Level())
	assert.Equal(t, int64(42), s.Seed())
	assert.Equal(t, 15, s.Grid().Rows)
	assert.Equal(t, gamemap.Pos{Row: 14, Col: 14}, s.Exit())
	assert.Equal(t, entity.NewPlayer(), s.Player())
	assert.Equal(t, system.DirRight, s.LastDirection())
	assert.Len(t, s.NPCs(), DefaultNPCCount)
	assert.True(t, s.Grid().Visited(gamemap.Origin))
	assert.True(t, s.Grid().Protected(gamemap.Origin))
	assert.True(t, s.Grid().Protected(s.Exit()))
	assert.False(t, s.Finished())
}

func TestNewClampsLevel(t *testing.T) {
	s, err := New(Config{Level: 99, Seed: 1, NPCCount: -1})
	require.NoError(t, err)
	assert.Equal(t, generate.MaxLevel, s.Level())
	assert.Equal(t, 109, s.Grid().Rows)
	assert.Empty(t, s.NPCs())
}

func TestNewMorphAmount(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"zero uses default", 0, system.DefaultMorphAmount},
		{"explicit", 5, 5},
		{"negative disables toggles", -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := New(Config{Level: 1, Seed: 1, MorphAmount: c.in})
			require.NoError(t, err)
			assert.Equal(t, c.want, s.morphAmount)
		})
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	_, err := New(Config{Rows: 2, Cols: 9, Seed: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generate.ErrGridTooSmall))
}

func TestSameSeedSameRun(t *testing.T) {
	play := func() (Stats, entity.Player, system.Counters) {
		s, err := New(Config{Level: 2, Seed: 7})
		require.NoError(t, err)
		for i := 0; i < 40; i++ {
			s.ApplyMove(system.Direction(i % 4))
			s.ApplyJump(s.LastDirection())
		}
		return s.Stats(), s.Player(), s.Counters()
	}
	st1, p1, c1 := play()
	st2, p2, c2 := play()
	assert.Equal(t, st1, st2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}

func TestApplyMoveIntoWall(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin)
	out := s.ApplyMove(system.DirDown)

	assert.False(t, out.Success)
	assert.Equal(t, gamemap.Origin, out.Position)
	assert.Nil(t, out.Morph)
	assert.Zero(t, s.Stats().Steps)
	assert.Equal(t, system.DirDown, s.LastDirection(), "failed moves still set the jump direction")
}

func TestApplyMoveTalliesMood(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 0, Col: 1})
	for i := 0; i < 20; i++ {
		dir := system.DirRight
		if i%2 == 1 {
			dir = system.DirLeft
		}
		out := s.ApplyMove(dir)
		require.True(t, out.Success)
		assert.Equal(t, out.MoodAfter, s.Player().Mood)
		assert.Equal(t, out.MoodChanged, out.Morph != nil, "morph runs exactly when the mood changed")
		assert.Equal(t, out.MoodBefore != out.MoodAfter, out.MoodChanged)
	}
	st := s.Stats()
	assert.Equal(t, 20, st.Steps)
	assert.Equal(t, st.Steps, st.Moods[0]+st.Moods[1]+st.Moods[2])
	assert.True(t, s.Grid().Visited(gamemap.Pos{Row: 0, Col: 1}))
}

func TestObstacleResolvesBeforeReroll(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 0, Col: 1})
	s.grid.SetObstacle(gamemap.Pos{Row: 0, Col: 1}, gamemap.Bonus)

	out := s.ApplyMove(system.DirRight)
	require.True(t, out.Success)
	assert.Equal(t, system.OutcomeBonus, out.Effect.Outcome)
	assert.Equal(t, entity.Neutral, out.Effect.Before)
	assert.Equal(t, entity.Happy, out.Effect.After)
	assert.Equal(t, entity.Neutral, out.MoodBefore, "morph trigger compares against the pre-move mood")
	assert.Equal(t, 1, s.Counters().Bonuses)
}

func TestJumpOverWall(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 2, Col: 2}, gamemap.Pos{Row: 2, Col: 4})
	s.player.Pos = gamemap.Pos{Row: 2, Col: 2}

	out := s.ApplyJump(s.LastDirection())
	require.Equal(t, system.JumpOK, out.Result)
	assert.Equal(t, gamemap.Pos{Row: 2, Col: 4}, out.Position)
	assert.Equal(t, gamemap.Pos{Row: 2, Col: 4}, s.Player().Pos)
	assert.Equal(t, 1, s.Stats().Steps)
	assert.True(t, s.Grid().Visited(gamemap.Pos{Row: 2, Col: 4}))
	assert.False(t, s.Grid().Visited(gamemap.Pos{Row: 2, Col: 3}))
}

func TestJumpBlockedByObstacle(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 2, Col: 2}, gamemap.Pos{Row: 2, Col: 4})
	s.player.Pos = gamemap.Pos{Row: 2, Col: 2}
	s.grid.SetObstacle(gamemap.Pos{Row: 2, Col: 3}, gamemap.Puzzle)

	out := s.ApplyJump(system.DirRight)
	assert.Equal(t, system.JumpBlocked, out.Result)
	assert.Equal(t, "blocked", out.Result.String())
	assert.Equal(t, gamemap.Pos{Row: 2, Col: 2}, s.Player().Pos)
	assert.Zero(t, s.Stats().Steps)
	assert.Zero(t, s.Counters().Puzzles)
}

func TestJumpSkipsEncounterAndMoodTally(t *testing.T) {
	landing := gamemap.Pos{Row: 0, Col: 2}
	s := handBuilt(5, 5, gamemap.Origin, landing)
	s.grid.SetObstacle(landing, gamemap.Trap)
	s.npcs = []entity.NPC{{Pos: landing, Archetype: entity.Mentor, Active: true,
		Lines: entity.Dialogue{Happy: "h", Neutral: "n", Sad: "s"}}}

	out := s.ApplyJump(system.DirRight)
	require.Equal(t, system.JumpOK, out.Result)
	assert.Equal(t, landing, s.Player().Pos)
	assert.Equal(t, system.OutcomeTrapFailed, out.Effect.Outcome, "landing obstacle still resolves")
	assert.Equal(t, 1, s.Counters().Traps)
	assert.Equal(t, 1, s.Stats().Steps)
	assert.Equal(t, out.MoodAfter, s.Player().Mood, "mood is still rerolled")

	assert.Nil(t, out.Encounter)
	assert.True(t, s.NPCAt(landing), "NPC stays active for a later step")
	assert.Equal(t, [entity.MoodCount]int{}, s.Stats().Moods)

	// Walking off and back onto the cell meets the NPC and tallies both steps.
	s.grid.SetWalkable(gamemap.Pos{Row: 0, Col: 1}, true)
	require.True(t, s.ApplyMove(system.DirLeft).Success)
	back := s.ApplyMove(system.DirRight)
	require.NotNil(t, back.Encounter)
	assert.Equal(t, entity.Mentor, back.Encounter.NPC.Archetype)
	moods := s.Stats().Moods
	assert.Equal(t, 2, moods[entity.Sad]+moods[entity.Neutral]+moods[entity.Happy])
}

func TestNPCSpeaksOnce(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 0, Col: 1})
	s.npcs = []entity.NPC{{Pos: gamemap.Pos{Row: 0, Col: 1}, Archetype: entity.Mentor, Active: true}}
	assert.True(t, s.NPCAt(gamemap.Pos{Row: 0, Col: 1}))

	first := s.ApplyMove(system.DirRight)
	require.NotNil(t, first.Encounter)
	assert.Equal(t, entity.Mentor, first.Encounter.NPC.Archetype)

	s.ApplyMove(system.DirLeft)
	again := s.ApplyMove(system.DirRight)
	assert.Nil(t, again.Encounter)
	assert.False(t, s.NPCAt(gamemap.Pos{Row: 0, Col: 1}))
	assert.False(t, s.NPCs()[0].Active)
}

func TestPhilosophyFeedsSeekerHint(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 0, Col: 1})
	s.npcs = []entity.NPC{{Pos: gamemap.Pos{Row: 0, Col: 1}, Active: true}}
	for i := 0; i < 3; i++ {
		s.RecordPhilosophyUse()
	}
	assert.Equal(t, 3, s.Stats().PhilosophyUses)
	out := s.ApplyMove(system.DirRight)
	require.NotNil(t, out.Encounter)
	assert.Contains(t, out.Encounter.Hints, system.HintSeeker)
}

func TestFinishedAtExit(t *testing.T) {
	s := handBuilt(3, 3, gamemap.Origin, gamemap.Pos{Row: 1, Col: 0}, gamemap.Pos{Row: 2, Col: 0},
		gamemap.Pos{Row: 2, Col: 1}, gamemap.Pos{Row: 2, Col: 2})
	for _, d := range []system.Direction{system.DirDown, system.DirDown, system.DirRight, system.DirRight} {
		require.True(t, s.ApplyMove(d).Success)
	}
	assert.True(t, s.Finished())
}

func TestMorphKeepsOriginAndExit(t *testing.T) {
	s, err := New(Config{Level: 1, Seed: 3, MorphAmount: 20})
	require.NoError(t, err)
	for i := 0; i < 300; i++ {
		s.ApplyMove(system.Direction(i % 4))
	}
	assert.True(t, s.Grid().IsWalkable(gamemap.Origin))
	assert.True(t, s.Grid().IsWalkable(s.Exit()))
	assert.Equal(t, gamemap.None, s.Grid().ObstacleAt(gamemap.Origin))
	assert.Equal(t, gamemap.None, s.Grid().ObstacleAt(s.Exit()))
}

func TestShiftMoodMorphsWithoutAStep(t *testing.T) {
	s := handBuilt(5, 5, gamemap.Origin, gamemap.Pos{Row: 0, Col: 1}, gamemap.Pos{Row: 0, Col: 2})
	s.morphAmount = 40

	assert.Nil(t, s.ShiftMood(entity.Neutral), "same mood does not morph")

	rep := s.ShiftMood(entity.Happy)
	require.NotNil(t, rep)
	assert.Equal(t, entity.Happy, rep.Mood)
	assert.Equal(t, entity.Happy, s.Player().Mood)
	for _, tg := range rep.Toggles {
		assert.False(t, tg.Open, "happy only walls cells")
		assert.False(t, s.Grid().IsWalkable(tg.Pos))
	}
	assert.Zero(t, s.Stats().Steps)
	assert.Equal(t, [entity.MoodCount]int{}, s.Stats().Moods)
	assert.Equal(t, system.ExitReachable(s.Grid(), gamemap.Origin), s.ExitReachable())
}
