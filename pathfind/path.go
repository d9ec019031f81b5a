package pathfind

import (
	"math"

	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"
)

// SmoothPath simplifies path by greedily dropping intermediate waypoints:
// walking from the start, while the straight segment from the current
// anchor to point i+2 crosses no obstructed cell, point i+1 is dropped.
// Repeats until no further simplification is possible. path is not modified
// in place; the simplified copy is returned.
func SmoothPath(path []cortex.Vec2, g *grid.Grid) []cortex.Vec2 {
	for {
		if len(path) < 3 {
			return path
		}
		out := make([]cortex.Vec2, 0, len(path))
		out = append(out, path[0])
		anchor := 0
		for anchor < len(path)-1 {
			next := anchor + 1
			for next+1 < len(path) && lineClear(path[anchor], path[next+1], g) {
				next++
			}
			out = append(out, path[next])
			anchor = next
		}
		if len(out) == len(path) {
			return out
		}
		path = out
	}
}

// lineClear reports whether the straight segment from a to b passes through
// no obstructed cell, sampling at roughly half-cell intervals.
func lineClear(a, b cortex.Vec2, g *grid.Grid) bool {
	dist := a.Distance(b)
	if dist == 0 {
		return true
	}
	c := g.CellAt(0, 0)
	step := 0.5 * math.Min(c.Bounds.Width, c.Bounds.Height)
	steps := int(math.Ceil(dist / step))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(b.Sub(a).Scale(t))
		cell := g.CellAtPoint(p)
		if cell == nil || cell.Obstructed {
			return false
		}
	}
	return true
}
