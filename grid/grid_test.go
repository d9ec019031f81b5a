package grid

import (
	"testing"

	"github.com/phanxgames/cortex"
)

type fakeWorld struct {
	obstacles []cortex.Rect
}

func (w *fakeWorld) Overlaps(bounds cortex.Rect) bool {
	for _, o := range w.obstacles {
		if o.Overlaps(bounds) {
			return true
		}
	}
	return false
}

func newTestGrid() *Grid {
	return NewGrid(cortex.Rect{X: 0, Y: 0, Width: 40, Height: 40}, 4, 4)
}

func TestCellAt_OutOfBounds(t *testing.T) {
	g := newTestGrid()
	if c := g.CellAt(-1, 0); c != nil {
		t.Errorf("CellAt(-1,0) = %v, want nil", c)
	}
	if c := g.CellAt(0, 4); c != nil {
		t.Errorf("CellAt(0,4) = %v, want nil", c)
	}
}

func TestCellAtPoint_EdgeResolvesLow(t *testing.T) {
	g := newTestGrid()
	// Cell width/height = 10. Point (10,10) sits exactly on the shared
	// corner of cells (0,0),(0,1),(1,0),(1,1); it must resolve to the
	// lowest index among them, (0,0).
	c := g.CellAtPoint(cortex.Vec2{X: 10, Y: 10})
	if c.Row != 0 || c.Col != 0 {
		t.Errorf("CellAtPoint(10,10) = (%d,%d), want (0,0)", c.Row, c.Col)
	}
	c = g.CellAtPoint(cortex.Vec2{X: 5, Y: 5})
	if c.Row != 0 || c.Col != 0 {
		t.Errorf("CellAtPoint(5,5) = (%d,%d), want (0,0)", c.Row, c.Col)
	}
	c = g.CellAtPoint(cortex.Vec2{X: 15, Y: 15})
	if c.Row != 1 || c.Col != 1 {
		t.Errorf("CellAtPoint(15,15) = (%d,%d), want (1,1)", c.Row, c.Col)
	}
}

func TestNeighbors_CornerHasThree(t *testing.T) {
	g := newTestGrid()
	corner := g.CellAt(0, 0)
	neighbors := g.Neighbors(corner)
	if len(neighbors) != 3 {
		t.Fatalf("corner cell has %d neighbors, want 3", len(neighbors))
	}
}

func TestNeighbors_InteriorHasEight(t *testing.T) {
	g := newTestGrid()
	interior := g.CellAt(1, 1)
	neighbors := g.Neighbors(interior)
	if len(neighbors) != 8 {
		t.Fatalf("interior cell has %d neighbors, want 8", len(neighbors))
	}
}

func TestScanObstructions(t *testing.T) {
	g := newTestGrid()
	world := &fakeWorld{obstacles: []cortex.Rect{{X: 0, Y: 0, Width: 10, Height: 10}}}
	g.ScanObstructions(world)
	if !g.CellAt(0, 0).Obstructed {
		t.Error("cell (0,0) should be obstructed")
	}
	if g.CellAt(3, 3).Obstructed {
		t.Error("cell (3,3) should not be obstructed")
	}
}

func TestComputeClearance_AllClearGrowsFromEdge(t *testing.T) {
	g := newTestGrid()
	g.ScanObstructions(&fakeWorld{})
	g.ComputeClearance()
	if got := g.CellAt(3, 3).Clearance; got != 1 {
		t.Errorf("bottom-right clearance = %d, want 1", got)
	}
	if got := g.CellAt(0, 0).Clearance; got != 4 {
		t.Errorf("top-left clearance = %d, want 4", got)
	}
}

func TestComputeClearance_ObstructedIsZero(t *testing.T) {
	g := newTestGrid()
	world := &fakeWorld{obstacles: []cortex.Rect{{X: 10, Y: 10, Width: 10, Height: 10}}}
	g.ScanObstructions(world)
	g.ComputeClearance()
	if got := g.CellAt(1, 1).Clearance; got != 0 {
		t.Errorf("obstructed cell clearance = %d, want 0", got)
	}
	if got := g.CellAt(0, 0).Clearance; got != 1 {
		t.Errorf("cell adjacent to obstruction clearance = %d, want 1", got)
	}
}
