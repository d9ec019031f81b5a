package pathfind

import (
	"testing"

	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"
)

func openGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g := grid.NewGrid(cortex.Rect{X: 0, Y: 0, Width: float64(cols * 10), Height: float64(rows * 10)}, rows, cols)
	g.ScanObstructions(emptyWorld{})
	return g
}

type emptyWorld struct{}

func (emptyWorld) Overlaps(cortex.Rect) bool { return false }

type wallWorld struct {
	walls []cortex.Rect
}

func (w wallWorld) Overlaps(bounds cortex.Rect) bool {
	for _, wall := range w.walls {
		if wall.Overlaps(bounds) {
			return true
		}
	}
	return false
}

func TestAStar_ComputePath_StraightLine(t *testing.T) {
	g := openGrid(t, 5, 5)
	agent := NewAgentMover(cortex.Vec2{X: 5, Y: 5})
	a := NewAStar(g, ChebyshevHeuristic, agent, false)

	path := a.ComputePath(cortex.Vec2{X: 45, Y: 45})
	if a.State() != StateRunning {
		t.Fatalf("state = %v, want Running", a.State())
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if got := path[len(path)-1]; got.Distance(cortex.Vec2{X: 45, Y: 45}) > 10 {
		t.Errorf("last waypoint %v too far from target", got)
	}
}

func TestAStar_ComputePath_Unreachable(t *testing.T) {
	g := grid.NewGrid(cortex.Rect{X: 0, Y: 0, Width: 50, Height: 50}, 5, 5)
	// Wall off the entire row 2, separating rows 0-1 from rows 3-4.
	g.ScanObstructions(wallWorld{walls: []cortex.Rect{{X: 0, Y: 20, Width: 50, Height: 10}}})

	agent := NewAgentMover(cortex.Vec2{X: 5, Y: 5})
	a := NewAStar(g, ChebyshevHeuristic, agent, false)
	path := a.ComputePath(cortex.Vec2{X: 45, Y: 45})
	if path != nil {
		t.Fatalf("expected nil path, got %v", path)
	}
	if a.State() != StateFailure {
		t.Errorf("state = %v, want Failure", a.State())
	}
}

func TestAStar_Move_ReachesTarget(t *testing.T) {
	g := openGrid(t, 3, 3)
	agent := NewAgentMover(cortex.Vec2{X: 5, Y: 5})
	a := NewAStar(g, ChebyshevHeuristic, agent, true)

	ok := a.Move(cortex.Vec2{X: 25, Y: 25}, 100)
	if !ok {
		t.Fatal("Move returned false, want true")
	}
	if a.State() != StateSuccess {
		t.Errorf("state = %v, want Success", a.State())
	}
}

func TestAStar_Stop_ResetsToUninitialized(t *testing.T) {
	g := openGrid(t, 3, 3)
	agent := NewAgentMover(cortex.Vec2{X: 5, Y: 5})
	a := NewAStar(g, ChebyshevHeuristic, agent, false)
	a.ComputePath(cortex.Vec2{X: 25, Y: 25})
	a.Stop()
	if a.State() != StateUninitialized {
		t.Errorf("state after Stop = %v, want Uninitialized", a.State())
	}
	if len(a.Path()) != 0 {
		t.Errorf("path after Stop = %v, want empty", a.Path())
	}
}

func TestAStar_Tick_NeverReplans(t *testing.T) {
	g := openGrid(t, 3, 3)
	agent := NewAgentMover(cortex.Vec2{X: 5, Y: 5})
	a := NewAStar(g, ChebyshevHeuristic, agent, false)
	path := a.ComputePath(cortex.Vec2{X: 25, Y: 25})

	// Obstruct the grid after planning; A* must not react to it.
	g.ScanObstructions(wallWorld{walls: []cortex.Rect{{X: 10, Y: 0, Width: 10, Height: 30}}})

	a.walker.velocity = 50
	a.Tick(0.01)
	if got := a.Path(); len(got) != len(path) {
		t.Errorf("A* path changed after obstruction appeared: %v -> %v", path, got)
	}
}
