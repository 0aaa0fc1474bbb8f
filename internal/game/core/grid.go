package core

// ObstacleGrid is the static blocked/free matrix of a map. It is built once and
// exposes no mutators, so any number of game states may share one instance.
type ObstacleGrid struct {
	W, H    int
	blocked []bool // length = W*H (row-major)
}

// NewObstacleGrid materializes the obstacle cells into a grid. Cells outside the
// bounds are ignored.
func NewObstacleGrid(w, h int, obstacles []Coordinate) *ObstacleGrid {
	g := &ObstacleGrid{W: w, H: h, blocked: make([]bool, w*h)}
	for _, c := range obstacles {
		if g.InBounds(c) {
			g.blocked[c.ToIndex(w)] = true
		}
	}
	return g
}

// InBounds checks if the coordinate lies on the grid
func (g *ObstacleGrid) InBounds(c Coordinate) bool {
	return c.IsValid(g.W, g.H)
}

// IsObstacle reports whether an in-bounds cell is blocked. Out-of-bounds cells are not obstacles.
func (g *ObstacleGrid) IsObstacle(c Coordinate) bool {
	return g.InBounds(c) && g.blocked[c.ToIndex(g.W)]
}

// Passable reports whether a unit may stand on c
func (g *ObstacleGrid) Passable(c Coordinate) bool {
	return g.InBounds(c) && !g.blocked[c.ToIndex(g.W)]
}

// Obstacles returns every blocked cell in row-major order
func (g *ObstacleGrid) Obstacles() []Coordinate {
	var out []Coordinate
	for i, b := range g.blocked {
		if b {
			out = append(out, FromIndex(i, g.W))
		}
	}
	return out
}

// Cells returns the number of cells on the grid
func (g *ObstacleGrid) Cells() int { return g.W * g.H }
