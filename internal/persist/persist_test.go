package persist

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psymaze/internal/entity"
	"psymaze/internal/gamemap"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestDataDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := DataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "psymaze"), dir)
}

func TestDataDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := DataDir("")
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "share", "psymaze")), dir)
}

func TestDataDirExplicit(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/nowhere")
	dir, err := DataDir("/tmp/custom")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom", dir)
}

func TestLoadLevel(t *testing.T) {
	cases := []struct {
		name    string
		content *string
		want    int
	}{
		{"missing", nil, 1},
		{"plain", ptr("7\n"), 7},
		{"garbage", ptr("seven"), 1},
		{"empty", ptr(""), 1},
		{"too low", ptr("-4"), 1},
		{"too high", ptr("99"), 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := openTemp(t)
			if c.content != nil {
				require.NoError(t, os.WriteFile(s.Path(ProfileFile), []byte(*c.content), 0o644))
			}
			assert.Equal(t, c.want, s.LoadLevel())
		})
	}
}

func ptr(s string) *string { return &s }

func TestSaveLevelRoundTrip(t *testing.T) {
	s := openTemp(t)
	require.NoError(t, s.SaveLevel(12))
	raw, err := os.ReadFile(s.Path(ProfileFile))
	require.NoError(t, err)
	assert.Equal(t, "12\n", string(raw))
	assert.Equal(t, 12, s.LoadLevel())
}

func TestNextLevel(t *testing.T) {
	cases := []struct{ base, xp, want int }{
		{1, 0, 1},
		{1, 29, 1},
		{1, 30, 2},
		{1, 59, 2},
		{1, 60, 3},
		{49, 60, 50},
		{50, 30, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NextLevel(c.base, c.xp), "base=%d xp=%d", c.base, c.xp)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  hello  ", "hello"},
		{"line\nbreak", "linebreak"},
		{"tab\there\x07", "tabhere"},
		{"café", "café"},
		{"\n\t ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sanitize(c.in), "%q", c.in)
	}
	long := strings.Repeat("ж", MaxJournalLine+20)
	assert.Len(t, []rune(Sanitize(long)), MaxJournalLine)
}

func TestJournalAppendAndRead(t *testing.T) {
	s := openTemp(t)

	entries, err := s.ReadJournal()
	require.NoError(t, err)
	assert.Empty(t, entries, "missing journal reads as empty")

	require.NoError(t, s.AppendJournal("first lesson", "  \n", "second\nlesson"))
	require.NoError(t, s.AppendJournal("third"))

	entries, err = s.ReadJournal()
	require.NoError(t, err)
	assert.Equal(t, []string{"first lesson", "secondlesson", "third"}, entries)
}

func TestAppendSummaryFormat(t *testing.T) {
	s := openTemp(t)
	sum := Summary{Steps: 42, Sad: 1, Neutral: 2, Happy: 3, Traps: 4, Puzzles: 5, Bonuses: 6, PhilosophyUses: 7}
	require.NoError(t, s.AppendSummary(sum))
	require.NoError(t, s.AppendSummary(Summary{}))

	raw, err := os.ReadFile(s.Path(SummaryFile))
	require.NoError(t, err)
	want := "=== New Session ===\n" +
		"Steps: 42\n" +
		"Moods: Sad=1 Neutral=2 Happy=3\n" +
		"Obstacles: Traps=4 Puzzles=5 Bonuses=6\n" +
		"Philosophy uses: 7\n\n"
	assert.True(t, strings.HasPrefix(string(raw), want))
	assert.Equal(t, 2, strings.Count(string(raw), "=== New Session ==="))
}

func TestWriteSnapshot(t *testing.T) {
	g := gamemap.New(3, 4)
	for _, p := range []gamemap.Pos{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 3}, {1, 0}} {
		g.SetWalkable(p, true)
	}
	g.SetObstacle(gamemap.Pos{Row: 0, Col: 2}, gamemap.Trap)
	g.SetObstacle(gamemap.Pos{Row: 1, Col: 2}, gamemap.Puzzle)
	g.SetObstacle(gamemap.Pos{Row: 2, Col: 2}, gamemap.Bonus)
	g.SetObstacle(gamemap.Pos{Row: 1, Col: 0}, gamemap.PowerUp)

	var buf bytes.Buffer
	player := entity.Player{Pos: gamemap.Pos{Row: 0, Col: 1}, Mood: entity.Happy}
	require.NoError(t, WriteSnapshot(&buf, g, player, g.Exit()))

	want := "PsyMaze Snapshot\n" +
		"Size: 3 x 4\n" +
		"Player: (0,1) Mood: :)\n" +
		"Exit: (2,3)\n" +
		"Maze:\n" +
		".PT#\n" +
		".#Q#\n" +
		"##BE\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	s := openTemp(t)
	g := gamemap.New(3, 3)
	g.SetWalkable(gamemap.Origin, true)
	p := entity.NewPlayer()

	path, err := s.SaveSnapshot(g, p, g.Exit())
	require.NoError(t, err)
	_, err = s.SaveSnapshot(g, p, g.Exit())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(raw), "PsyMaze Snapshot"))
	assert.Contains(t, string(raw), "Mood: :|")
}

func TestAppendRun(t *testing.T) {
	s := openTemp(t)
	for i := range 3 {
		require.NoError(t, s.AppendRun(RunLog{
			Level:        i + 1,
			Steps:        10 * i,
			Moods:        map[string]int{"sad": i},
			Medal:        "GOLD",
			Achievements: []string{"Untouched by Traps"},
		}))
	}

	raw, err := os.ReadFile(s.Path(RunLogFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, line := range lines {
		var got RunLog
		require.NoError(t, json.Unmarshal([]byte(line), &got), "line %d", i)
		assert.Equal(t, i+1, got.Level)
	}
}
