package common

import "github.com/mitchelldurbincs/tactical-minimax/internal/game/core"

// IsValidCoordinate checks if the given coordinates are within the bounds of the grid
func IsValidCoordinate(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// IsAdjacent checks if two positions touch, diagonals included
func IsAdjacent(from, to core.Coordinate) bool {
	return ChebyshevDistance(from, to) == 1
}
