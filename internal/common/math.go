package common

import "github.com/mitchelldurbincs/tactical-minimax/internal/game/core"

// ManhattanDistance calculates the 4-connected step distance between two coordinates
func ManhattanDistance(from, to core.Coordinate) int {
	return from.DistanceTo(to)
}

// ChebyshevDistance calculates the 8-connected step distance between two coordinates
func ChebyshevDistance(from, to core.Coordinate) int {
	return from.ChebyshevTo(to)
}

// EuclideanDistance calculates the straight-line distance between two coordinates
func EuclideanDistance(from, to core.Coordinate) float64 {
	return from.EuclideanTo(to)
}

// WithinRange reports whether to lies within a straight-line attack range of from
func WithinRange(from, to core.Coordinate, attackRange float64) bool {
	return EuclideanDistance(from, to) <= attackRange
}
