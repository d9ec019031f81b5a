package pathfind

import (
	"container/heap"
	"math"

	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"
)

const inf = math.MaxFloat64 / 2

// dnode carries a cell's persistent D* Lite estimates. Kept in a side-table
// keyed by cell pointer rather than on grid.Cell itself, so the grid stays
// free of pathfinder state and multiple DStarLite instances could in
// principle share one grid without colliding (concurrent use is still
// unsupported — see the manager's shared-resource policy).
type dnode struct {
	g, rhs float64
}

type dEntry struct {
	cell       *grid.Cell
	k1, k2     float64
	index      int
}

type dQueue []*dEntry

func (q dQueue) Len() int { return len(q) }
func (q dQueue) Less(i, j int) bool {
	if q[i].k1 != q[j].k1 {
		return q[i].k1 < q[j].k1
	}
	return q[i].k2 < q[j].k2
}
func (q dQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}
func (q *dQueue) Push(x any) {
	e := x.(*dEntry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *dQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// DStarLite is an incremental pathfinder: it reuses prior search work and
// replans locally when Tick finds the remaining path's obstruction layout
// has changed, instead of recomputing from scratch.
type DStarLite struct {
	grid      *grid.Grid
	heuristic Heuristic
	agent     Agent
	smoothing bool

	goal  *grid.Cell
	nodes map[*grid.Cell]*dnode
	queue dQueue
	inQ   map[*grid.Cell]*dEntry

	pathCells []*grid.Cell
	snapshot  map[*grid.Cell]bool

	state State
	walker
}

// NewDStarLite constructs a DStarLite pathfinder over g, scoring with h,
// moving agent.
func NewDStarLite(g *grid.Grid, h Heuristic, agent Agent, smoothing bool) *DStarLite {
	return &DStarLite{grid: g, heuristic: h, agent: agent, smoothing: smoothing, state: StateUninitialized}
}

func (d *DStarLite) State() State { return d.state }

// Path returns the most recently computed path.
func (d *DStarLite) Path() []cortex.Vec2 { return d.walker.path }

func (d *DStarLite) node(c *grid.Cell) *dnode {
	n, ok := d.nodes[c]
	if !ok {
		n = &dnode{g: inf, rhs: inf}
		d.nodes[c] = n
	}
	return n
}

// calcKey implements spec's numeric contract: k(cell) = min(g,rhs) +
// h(cell, goal), with the open set ordered by k, ties broken by the lower
// of (g, rhs).
func (d *DStarLite) calcKey(c *grid.Cell) (float64, float64) {
	n := d.node(c)
	m := math.Min(n.g, n.rhs)
	return m + d.heuristic(c, d.goal), m
}

func (d *DStarLite) pushOrUpdate(c *grid.Cell) {
	k1, k2 := d.calcKey(c)
	if e, ok := d.inQ[c]; ok {
		e.k1, e.k2 = k1, k2
		heap.Fix(&d.queue, e.index)
		return
	}
	e := &dEntry{cell: c, k1: k1, k2: k2}
	heap.Push(&d.queue, e)
	d.inQ[c] = e
}

func (d *DStarLite) removeFromQueue(c *grid.Cell) {
	if e, ok := d.inQ[c]; ok {
		heap.Remove(&d.queue, e.index)
		delete(d.inQ, c)
	}
}

func (d *DStarLite) updateVertex(u *grid.Cell) {
	if u != d.goal {
		best := inf
		for _, n := range d.grid.Neighbors(u) {
			if n.Obstructed {
				continue
			}
			if g := d.node(n).g + 1; g < best {
				best = g
			}
		}
		d.node(u).rhs = best
	}
	d.removeFromQueue(u)
	n := d.node(u)
	if n.g != n.rhs {
		d.pushOrUpdate(u)
	}
}

func (d *DStarLite) computeShortestPath(start *grid.Cell) {
	for d.queue.Len() > 0 {
		top := d.queue[0]
		sk1, sk2 := d.calcKey(start)
		startNode := d.node(start)
		if (top.k1 > sk1 || (top.k1 == sk1 && top.k2 >= sk2)) && startNode.g == startNode.rhs {
			break
		}
		u := heap.Pop(&d.queue).(*dEntry)
		delete(d.inQ, u.cell)
		uNode := d.node(u.cell)
		if uNode.g > uNode.rhs {
			uNode.g = uNode.rhs
			for _, pred := range d.grid.Neighbors(u.cell) {
				if !pred.Obstructed {
					d.updateVertex(pred)
				}
			}
		} else {
			uNode.g = inf
			d.updateVertex(u.cell)
			for _, pred := range d.grid.Neighbors(u.cell) {
				if !pred.Obstructed {
					d.updateVertex(pred)
				}
			}
		}
	}
}

// ComputePath runs a full D* Lite plan from the agent's current cell to the
// cell containing target, discarding any prior search state.
func (d *DStarLite) ComputePath(target cortex.Vec2) []cortex.Vec2 {
	start := d.grid.CellAtPoint(d.agent.Position())
	goal := d.grid.CellAtPoint(target)
	d.walker.reset()
	d.pathCells = nil
	if start == nil || goal == nil || goal.Obstructed {
		d.state = StateFailure
		return nil
	}

	d.goal = goal
	d.nodes = make(map[*grid.Cell]*dnode)
	d.queue = nil
	d.inQ = make(map[*grid.Cell]*dEntry)
	d.node(goal).rhs = 0
	d.pushOrUpdate(goal)
	d.computeShortestPath(start)

	if d.node(start).g >= inf {
		d.state = StateFailure
		return nil
	}
	return d.rebuildPath(start)
}

// rebuildPath greedily walks from from toward the goal, at each step taking
// the unobstructed neighbor with the lowest g + edge cost, and stores the
// result on the finder (smoothing it first if configured).
func (d *DStarLite) rebuildPath(from *grid.Cell) []cortex.Vec2 {
	cells := []*grid.Cell{from}
	current := from
	for current != d.goal {
		var next *grid.Cell
		best := inf
		for _, n := range d.grid.Neighbors(current) {
			if n.Obstructed {
				continue
			}
			if cost := d.node(n).g + 1; cost < best {
				best = cost
				next = n
			}
		}
		if next == nil {
			d.state = StateFailure
			return nil
		}
		cells = append(cells, next)
		current = next
		if len(cells) > d.grid.Rows()*d.grid.Cols()+1 {
			d.state = StateFailure
			return nil
		}
	}

	d.pathCells = cells
	d.snapshot = make(map[*grid.Cell]bool, len(cells))
	for _, c := range cells {
		d.snapshot[c] = c.Obstructed
	}

	points := make([]cortex.Vec2, len(cells))
	for i, c := range cells {
		points[i] = c.Bounds.Center()
	}
	if d.smoothing {
		points = SmoothPath(points, d.grid)
	}
	d.walker.path = points
	d.walker.cursor = 0
	d.state = StateRunning
	return points
}

// pathObstructionChanged reports whether any cell of the last planned path
// has flipped its Obstructed flag since that (re)plan. Every cell of that
// path is checked, including cells the agent has already passed.
func (d *DStarLite) pathObstructionChanged() bool {
	for _, c := range d.pathCells {
		if c.Obstructed != d.snapshot[c] {
			return true
		}
	}
	return false
}

// Move is a blocking helper: computes a path to target then synchronously
// ticks at a fixed internal step, replanning as needed, until success or
// failure.
func (d *DStarLite) Move(target cortex.Vec2, velocity float64) bool {
	if d.ComputePath(target) == nil {
		return false
	}
	d.walker.velocity = velocity
	const step = 1.0 / 60.0
	const maxTicks = 60 * 120
	for i := 0; i < maxTicks; i++ {
		switch d.Tick(step) {
		case StateSuccess:
			return true
		case StateFailure:
			return false
		}
	}
	return false
}

// Stop clears the current path and resets to Uninitialized.
func (d *DStarLite) Stop() {
	d.walker.reset()
	d.pathCells = nil
	d.state = StateUninitialized
}

// Tick advances the agent along the current path by dt, first replanning
// incrementally if any path cell's obstruction status has changed.
func (d *DStarLite) Tick(dt float64) State {
	if d.state != StateRunning {
		return d.state
	}
	if d.pathObstructionChanged() {
		current := d.grid.CellAtPoint(d.agent.Position())
		if current == nil {
			d.state = StateFailure
			return d.state
		}
		for c := range d.snapshot {
			d.snapshot[c] = c.Obstructed
		}
		for c := range d.snapshot {
			d.updateVertex(c)
			for _, n := range d.grid.Neighbors(c) {
				d.updateVertex(n)
			}
		}
		d.computeShortestPath(current)
		if d.node(current).g >= inf {
			d.state = StateFailure
			return d.state
		}
		if d.rebuildPath(current) == nil {
			return d.state
		}
	}
	d.state = d.walker.advance(d.agent, dt, stepEpsilon(d.grid))
	return d.state
}
