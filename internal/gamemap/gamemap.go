package gamemap

// Pos is a (row, col) grid coordinate.
type Pos struct {
	Row, Col int
}

// Origin is the player start cell.
var Origin = Pos{0, 0}

// Grid holds the walkability, obstacle, visited and protected layers for one maze.
// Every layer is a flat buffer indexed by row*Cols+col.
type Grid struct {
	Rows, Cols int
	walkable   []bool
	obstacles  []Obstacle
	visited    []bool
	protected  []bool
}

// New creates a Grid filled with walls and no obstacles.
func New(rows, cols int) *Grid {
	n := rows * cols
	return &Grid{
		Rows:      rows,
		Cols:      cols,
		walkable:  make([]bool, n),
		obstacles: make([]Obstacle, n),
		visited:   make([]bool, n),
		protected: make([]bool, n),
	}
}

// Exit returns the bottom-right cell.
func (g *Grid) Exit() Pos {
	return Pos{g.Rows - 1, g.Cols - 1}
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

func (g *Grid) idx(p Pos) int {
	return p.Row*g.Cols + p.Col
}

// IsWalkable returns true when p is in bounds and open.
func (g *Grid) IsWalkable(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.walkable[g.idx(p)]
}

// SetWalkable opens or walls p. Out-of-bounds writes are ignored.
func (g *Grid) SetWalkable(p Pos, open bool) {
	if g.InBounds(p) {
		g.walkable[g.idx(p)] = open
	}
}

// ObstacleAt returns the obstacle on p, or None when out of bounds.
func (g *Grid) ObstacleAt(p Pos) Obstacle {
	if !g.InBounds(p) {
		return None
	}
	return g.obstacles[g.idx(p)]
}

// SetObstacle replaces the obstacle on p.
func (g *Grid) SetObstacle(p Pos, o Obstacle) {
	if g.InBounds(p) {
		g.obstacles[g.idx(p)] = o
	}
}

// Visited reports whether the player has stood on p.
func (g *Grid) Visited(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.visited[g.idx(p)]
}

// MarkVisited flags p as walked on.
func (g *Grid) MarkVisited(p Pos) {
	if g.InBounds(p) {
		g.visited[g.idx(p)] = true
	}
}

// Protected reports whether morphing must leave p alone.
func (g *Grid) Protected(p Pos) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.protected[g.idx(p)]
}

// Protect marks p as off-limits to morphing.
func (g *Grid) Protect(p Pos) {
	if g.InBounds(p) {
		g.protected[g.idx(p)] = true
	}
}

// Reset walls every cell and clears the obstacle and visited layers.
// Protection is kept.
func (g *Grid) Reset() {
	for i := range g.walkable {
		g.walkable[i] = false
		g.obstacles[i] = None
		g.visited[i] = false
	}
}

// CountWalkable returns the number of open cells.
func (g *Grid) CountWalkable() int {
	n := 0
	for _, w := range g.walkable {
		if w {
			n++
		}
	}
	return n
}

// CountObstacles returns how many cells carry o.
func (g *Grid) CountObstacles(o Obstacle) int {
	n := 0
	for _, ob := range g.obstacles {
		if ob == o {
			n++
		}
	}
	return n
}
