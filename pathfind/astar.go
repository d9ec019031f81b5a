package pathfind

import (
	"container/heap"

	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"
)

// AStar is a best-first search pathfinder. On a static world the path is
// computed once and Tick only advances the agent along it — Tick never
// replans.
type AStar struct {
	grid      *grid.Grid
	heuristic Heuristic
	agent     Agent
	smoothing bool

	state State
	walker
}

// NewAStar constructs an AStar pathfinder over g, scoring with h, moving
// agent. If smoothing is true, ComputePath simplifies the raw search path.
func NewAStar(g *grid.Grid, h Heuristic, agent Agent, smoothing bool) *AStar {
	return &AStar{grid: g, heuristic: h, agent: agent, smoothing: smoothing, state: StateUninitialized}
}

// State returns the pathfinder's current lifecycle state.
func (a *AStar) State() State { return a.state }

// Path returns the most recently computed path.
func (a *AStar) Path() []cortex.Vec2 { return a.walker.path }

type openEntry struct {
	cell     *grid.Cell
	g        float64
	f        float64
	seq      int // insertion order, for the lower-h/insertion-order tie-break
	h        float64
	index    int
}

type openQueue []*openEntry

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *openQueue) Push(x any) {
	e := x.(*openEntry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// ComputePath searches from the agent's current cell to the cell containing
// target and returns the resulting path, or nil if no route exists. Calling
// this replaces any in-progress movement.
func (a *AStar) ComputePath(target cortex.Vec2) []cortex.Vec2 {
	start := a.grid.CellAtPoint(a.agent.Position())
	goal := a.grid.CellAtPoint(target)
	a.walker.reset()
	if start == nil || goal == nil || goal.Obstructed {
		a.state = StateFailure
		return nil
	}
	path := a.search(start, goal)
	if path == nil {
		a.state = StateFailure
		return nil
	}
	if a.smoothing {
		path = SmoothPath(path, a.grid)
	}
	a.walker.path = path
	a.state = StateRunning
	return path
}

func (a *AStar) search(start, goal *grid.Cell) []cortex.Vec2 {
	gScore := map[*grid.Cell]float64{start: 0}
	cameFrom := map[*grid.Cell]*grid.Cell{}
	inOpen := map[*grid.Cell]*openEntry{}

	seq := 0
	open := &openQueue{}
	heap.Init(open)
	startEntry := &openEntry{cell: start, g: 0, h: a.heuristic(start, goal), seq: seq}
	startEntry.f = startEntry.g + startEntry.h
	heap.Push(open, startEntry)
	inOpen[start] = startEntry

	closed := map[*grid.Cell]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*openEntry)
		delete(inOpen, current.cell)
		if current.cell == goal {
			return reconstructPath(cameFrom, goal)
		}
		closed[current.cell] = true

		for _, n := range a.grid.Neighbors(current.cell) {
			if n.Obstructed || closed[n] {
				continue
			}
			tentative := gScore[current.cell] + 1
			if existing, ok := gScore[n]; ok && tentative >= existing {
				continue
			}
			gScore[n] = tentative
			cameFrom[n] = current.cell
			seq++
			h := a.heuristic(n, goal)
			if old, ok := inOpen[n]; ok {
				old.g, old.h, old.f, old.seq = tentative, h, tentative+h, seq
				heap.Fix(open, old.index)
			} else {
				e := &openEntry{cell: n, g: tentative, h: h, f: tentative + h, seq: seq}
				heap.Push(open, e)
				inOpen[n] = e
			}
		}
	}
	return nil
}

// reconstructPath walks cameFrom backward from goal to the search root
// (the cell with no entry) and returns the forward-ordered path of cell
// centers.
func reconstructPath(cameFrom map[*grid.Cell]*grid.Cell, goal *grid.Cell) []cortex.Vec2 {
	cells := []*grid.Cell{goal}
	for {
		prev, ok := cameFrom[cells[len(cells)-1]]
		if !ok {
			break
		}
		cells = append(cells, prev)
	}
	path := make([]cortex.Vec2, len(cells))
	for i, c := range cells {
		path[len(cells)-1-i] = c.Bounds.Center()
	}
	return path
}

// Move is a blocking helper: it computes a path to target then repeatedly
// ticks at a fixed internal step until the pathfinder reaches a terminal
// state, returning whether it succeeded.
func (a *AStar) Move(target cortex.Vec2, velocity float64) bool {
	if a.ComputePath(target) == nil {
		return false
	}
	a.walker.velocity = velocity
	const step = 1.0 / 60.0
	const maxTicks = 60 * 120 // 2 minutes of simulated motion before giving up
	for i := 0; i < maxTicks; i++ {
		switch a.Tick(step) {
		case StateSuccess:
			return true
		case StateFailure:
			return false
		}
	}
	return false
}

// Stop clears the current path and resets to Uninitialized.
func (a *AStar) Stop() {
	a.walker.reset()
	a.state = StateUninitialized
}

// Tick advances the agent along the already-computed path by dt. It never
// replans; if the path is empty the result is Failure.
func (a *AStar) Tick(dt float64) State {
	if a.state != StateRunning {
		return a.state
	}
	a.state = a.walker.advance(a.agent, dt, stepEpsilon(a.grid))
	return a.state
}
