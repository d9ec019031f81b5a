package pathfind

import (
	"math"

	"github.com/phanxgames/cortex/grid"
)

// Heuristic estimates the cost from a to b. Must be admissible (never
// overestimate the true cost) for AStar to return optimal paths.
type Heuristic func(a, b *grid.Cell) float64

// ChebyshevHeuristic is admissible for 8-connected uniform grids where a
// diagonal step costs the same as an orthogonal one.
func ChebyshevHeuristic(a, b *grid.Cell) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	if dr > dc {
		return dr
	}
	return dc
}

// EuclideanHeuristic uses straight-line distance between cell centers.
func EuclideanHeuristic(a, b *grid.Cell) float64 {
	return a.Bounds.Center().Distance(b.Bounds.Center())
}
