package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/tactical-minimax/internal/game/core"
)

func TestDistances(t *testing.T) {
	tests := []struct {
		name      string
		from, to  core.Coordinate
		manhattan int
		chebyshev int
		euclidean float64
	}{
		{"same cell", core.NewCoordinate(2, 2), core.NewCoordinate(2, 2), 0, 0, 0},
		{"orthogonal", core.NewCoordinate(0, 0), core.NewCoordinate(0, 3), 3, 3, 3},
		{"diagonal", core.NewCoordinate(1, 1), core.NewCoordinate(2, 2), 2, 1, math.Sqrt2},
		{"knight hop", core.NewCoordinate(0, 0), core.NewCoordinate(1, 2), 3, 2, math.Sqrt(5)},
		{"negative offsets", core.NewCoordinate(4, 4), core.NewCoordinate(1, 0), 7, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.manhattan, ManhattanDistance(tt.from, tt.to))
			assert.Equal(t, tt.chebyshev, ChebyshevDistance(tt.from, tt.to))
			assert.InDelta(t, tt.euclidean, EuclideanDistance(tt.from, tt.to), 1e-9)
			assert.InDelta(t, EuclideanDistance(tt.from, tt.to), EuclideanDistance(tt.to, tt.from), 1e-9)
		})
	}
}

func TestWithinRange(t *testing.T) {
	origin := core.NewCoordinate(0, 0)

	assert.True(t, WithinRange(origin, core.NewCoordinate(1, 0), 1))
	assert.False(t, WithinRange(origin, core.NewCoordinate(1, 1), 1), "diagonal is sqrt(2) away")
	assert.True(t, WithinRange(origin, core.NewCoordinate(1, 1), 1.5))
	assert.True(t, WithinRange(origin, core.NewCoordinate(3, 4), 5))
	assert.False(t, WithinRange(origin, core.NewCoordinate(3, 4), 4.99))
}
