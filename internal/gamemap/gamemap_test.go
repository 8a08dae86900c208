package gamemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInBounds(t *testing.T) {
	g := New(8, 10)
	cases := []struct {
		p    Pos
		want bool
	}{
		{Pos{0, 0}, true},
		{Pos{7, 9}, true},
		{Pos{-1, 0}, false},
		{Pos{0, 10}, false},
		{Pos{8, 0}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, g.InBounds(c.p), "InBounds(%v)", c.p)
	}
}

func TestIsWalkable(t *testing.T) {
	g := New(5, 5)
	// all walls initially
	assert.False(t, g.IsWalkable(Pos{2, 2}), "wall cell should not be walkable")
	g.SetWalkable(Pos{2, 2}, true)
	assert.True(t, g.IsWalkable(Pos{2, 2}), "open cell should be walkable")
	assert.False(t, g.IsWalkable(Pos{-1, 0}), "out-of-bounds should not be walkable")

	// out-of-bounds writes are dropped
	g.SetWalkable(Pos{5, 5}, true)
	assert.Equal(t, 1, g.CountWalkable())
}

func TestFlatLayoutIsRowMajor(t *testing.T) {
	g := New(3, 4)
	g.SetWalkable(Pos{1, 3}, true)
	require.True(t, g.walkable[1*4+3])
	assert.False(t, g.IsWalkable(Pos{3, 1}))
}

func TestObstacleLayer(t *testing.T) {
	g := New(4, 4)
	assert.Equal(t, None, g.ObstacleAt(Pos{1, 1}))
	g.SetObstacle(Pos{1, 1}, Trap)
	g.SetObstacle(Pos{2, 2}, Trap)
	g.SetObstacle(Pos{3, 3}, PowerUp)
	assert.Equal(t, Trap, g.ObstacleAt(Pos{1, 1}))
	assert.Equal(t, 2, g.CountObstacles(Trap))
	assert.Equal(t, 1, g.CountObstacles(PowerUp))
	assert.Equal(t, None, g.ObstacleAt(Pos{9, 9}))
}

func TestVisitedAndProtected(t *testing.T) {
	g := New(3, 3)
	g.MarkVisited(Pos{0, 1})
	g.Protect(Pos{2, 2})
	assert.True(t, g.Visited(Pos{0, 1}))
	assert.False(t, g.Visited(Pos{1, 1}))
	assert.True(t, g.Protected(Pos{2, 2}))
	assert.False(t, g.Protected(Pos{-1, 2}))
}

func TestResetKeepsProtection(t *testing.T) {
	g := New(3, 3)
	g.SetWalkable(Pos{1, 1}, true)
	g.SetObstacle(Pos{1, 1}, Bonus)
	g.MarkVisited(Pos{1, 1})
	g.Protect(Pos{0, 0})

	g.Reset()

	assert.Zero(t, g.CountWalkable())
	assert.Equal(t, None, g.ObstacleAt(Pos{1, 1}))
	assert.False(t, g.Visited(Pos{1, 1}))
	assert.True(t, g.Protected(Pos{0, 0}))
}

func TestExit(t *testing.T) {
	g := New(11, 13)
	assert.Equal(t, Pos{10, 12}, g.Exit())
}

func TestObstacleGlyph(t *testing.T) {
	cases := []struct {
		o    Obstacle
		want rune
		name string
	}{
		{Trap, 'T', "Trap"},
		{Puzzle, 'Q', "Puzzle"},
		{Bonus, 'B', "Bonus"},
		{PowerUp, 'K', "PowerUp"},
		{None, ' ', "None"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.o.Glyph())
			assert.Equal(t, c.name, c.o.String())
		})
	}
}
