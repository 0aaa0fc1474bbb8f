package core

import (
	"fmt"
	"math"
)

// Coordinate represents a cell on the grid. Y grows southward.
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a grid array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a grid array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Coordinate) DistanceTo(other Coordinate) int {
	dx, dy := absDiff(c.X, other.X), absDiff(c.Y, other.Y)
	return dx + dy
}

// ChebyshevTo calculates the king-move distance to another coordinate
func (c Coordinate) ChebyshevTo(other Coordinate) int {
	return max(absDiff(c.X, other.X), absDiff(c.Y, other.Y))
}

// EuclideanTo calculates the straight-line distance to another coordinate
func (c Coordinate) EuclideanTo(other Coordinate) float64 {
	return math.Hypot(float64(c.X-other.X), float64(c.Y-other.Y))
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Coordinate) IsAdjacentTo(other Coordinate) bool {
	return c.DistanceTo(other) == 1
}

// Neighbors returns the four orthogonal neighbors of this coordinate
func (c Coordinate) Neighbors() []Coordinate {
	neighbors := make([]Coordinate, 0, len(CardinalDirections))
	for _, d := range CardinalDirections {
		neighbors = append(neighbors, c.Move(d))
	}
	return neighbors
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the eight compass directions a unit can be ordered to move in
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// InvalidDirection is returned by DirectionTo for cells that do not touch
const InvalidDirection Direction = -1

// CardinalDirections is the movement subset used by the search. Diagonals are
// left out so units never cut a corner between two obstacles.
var CardinalDirections = []Direction{North, East, South, West}

// AllDirections lists every direction in compass order
var AllDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// DirectionVectors provides coordinate offsets for each direction
var DirectionVectors = map[Direction]Coordinate{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

var directionNames = map[Direction]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// IsCardinal reports whether d is one of N, E, S, W
func (d Direction) IsCardinal() bool {
	return d == North || d == East || d == South || d == West
}

// Vector returns the unit offset for d, or the zero coordinate for an unknown direction
func (d Direction) Vector() Coordinate {
	return DirectionVectors[d]
}

// Move returns a new coordinate moved one step in the given direction
func (c Coordinate) Move(direction Direction) Coordinate {
	if offset, ok := DirectionVectors[direction]; ok {
		return c.Add(offset)
	}
	return c
}

// DirectionTo returns the direction from this coordinate to a touching coordinate,
// diagonals included. Returns InvalidDirection otherwise.
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	delta := other.Sub(c)
	for _, d := range AllDirections {
		if DirectionVectors[d] == delta {
			return d
		}
	}
	return InvalidDirection
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
