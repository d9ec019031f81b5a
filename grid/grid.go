// Package grid provides a uniform occupancy grid over a world rectangle,
// used by cortex/pathfind to reason about obstructed and clear cells.
package grid

import (
	"math"

	"github.com/phanxgames/cortex"
)

// ObstacleWorld is the collaborator the grid queries during
// Grid.ScanObstructions. The grid never inspects obstacle shapes directly —
// it only asks whether anything overlaps a cell's bounds.
type ObstacleWorld interface {
	Overlaps(bounds cortex.Rect) bool
}

// Cell is one element of the grid: its bounds, its position in the grid,
// whether it is currently obstructed, and its clearance (the side length, in
// cells, of the largest unobstructed square whose top-left cell is this one
// and which extends east and south within the grid).
type Cell struct {
	Row, Col   int
	Bounds     cortex.Rect
	Obstructed bool
	Clearance  int
}

// Grid is a uniform rows x cols partition of a world rectangle. It does not
// own obstacles; it only observes them through ScanObstructions.
type Grid struct {
	world      cortex.Rect
	rows, cols int
	cellW      float64
	cellH      float64
	cells      []Cell // row-major: cells[row*cols+col]
}

// NewGrid partitions world into rows x cols equal cells. Panics if rows or
// cols is not positive.
func NewGrid(world cortex.Rect, rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("cortex/grid: rows and cols must be positive")
	}
	g := &Grid{
		world: world,
		rows:  rows,
		cols:  cols,
		cellW: world.Width / float64(cols),
		cellH: world.Height / float64(rows),
		cells: make([]Cell, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.cells[g.index(row, col)] = Cell{
				Row: row,
				Col: col,
				Bounds: cortex.Rect{
					X:      world.X + float64(col)*g.cellW,
					Y:      world.Y + float64(row)*g.cellH,
					Width:  g.cellW,
					Height: g.cellH,
				},
			}
		}
	}
	return g
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(row, col int) int { return row*g.cols + col }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns a pointer to the cell at (row, col), or nil if out of
// bounds. The returned pointer aliases the grid's internal storage and must
// not be retained across a grid resize (the grid never resizes, so this is
// safe for the grid's full lifetime).
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}
	return &g.cells[g.index(row, col)]
}

// CellAtPoint returns the cell whose bounds contain p, or nil if p lies
// outside the world rectangle. Points exactly on a shared edge resolve to
// the lower row/col index.
func (g *Grid) CellAtPoint(p cortex.Vec2) *Cell {
	if !g.world.ContainsPoint(p) {
		return nil
	}
	col := edgeIndex((p.X-g.world.X)/g.cellW, g.cols)
	row := edgeIndex((p.Y-g.world.Y)/g.cellH, g.rows)
	return g.CellAt(row, col)
}

// edgeIndex maps a fractional cell coordinate to an integer index, resolving
// an exact boundary (a whole-number coordinate) to the lower of the two
// adjacent cells rather than the upper one floor division would pick.
func edgeIndex(coord float64, count int) int {
	idx := int(math.Ceil(coord)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= count {
		idx = count - 1
	}
	return idx
}

// neighborOffsets is the 8-neighborhood, ordered N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Neighbors returns c's in-bounds 8-neighbors, in the fixed N/NE/E/SE/S/SW/W/NW
// order, omitting any that fall off the grid.
func (g *Grid) Neighbors(c *Cell) []*Cell {
	out := make([]*Cell, 0, 8)
	for _, d := range neighborOffsets {
		if n := g.CellAt(c.Row+d[0], c.Col+d[1]); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// ScanObstructions recomputes every cell's Obstructed flag by querying
// world. It does not update Clearance; call ComputeClearance afterward if
// clearance values should reflect the new obstruction layout.
func (g *Grid) ScanObstructions(world ObstacleWorld) {
	for i := range g.cells {
		g.cells[i].Obstructed = world.Overlaps(g.cells[i].Bounds)
	}
}

// ComputeClearance recomputes every cell's Clearance from the current
// Obstructed flags: 0 if obstructed, else 1 + the minimum clearance among
// its east, south, and southeast neighbors (treating off-grid as 0). Cells
// are visited in reverse row-major order so every dependency is already
// resolved when a cell is computed.
func (g *Grid) ComputeClearance() {
	for row := g.rows - 1; row >= 0; row-- {
		for col := g.cols - 1; col >= 0; col-- {
			c := g.CellAt(row, col)
			if c.Obstructed {
				c.Clearance = 0
				continue
			}
			c.Clearance = 1 + min3(
				g.clearanceAt(row, col+1),
				g.clearanceAt(row+1, col),
				g.clearanceAt(row+1, col+1),
			)
		}
	}
}

func (g *Grid) clearanceAt(row, col int) int {
	if c := g.CellAt(row, col); c != nil {
		return c.Clearance
	}
	return 0
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
