package pathfind

import (
	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"
)

// AgentMover is the default Agent: a bare position field, for callers with
// no entity system of their own.
type AgentMover struct {
	pos cortex.Vec2
}

// NewAgentMover constructs an AgentMover starting at pos.
func NewAgentMover(pos cortex.Vec2) *AgentMover {
	return &AgentMover{pos: pos}
}

func (m *AgentMover) Position() cortex.Vec2 { return m.pos }

func (m *AgentMover) SetPosition(p cortex.Vec2) { m.pos = p }

// walker holds the per-episode movement state shared by AStar and DStarLite:
// the current path, the cursor into it, and the fixed velocity for this
// episode. advance steps the agent toward path[cursor] by velocity*dt,
// advancing the cursor on arrival within epsilon, and reports the resulting
// state.
type walker struct {
	path     []cortex.Vec2
	cursor   int
	velocity float64
}

func (w *walker) reset() {
	w.path = nil
	w.cursor = 0
	w.velocity = 0
}

// stepEpsilon is half a cell's diagonal: the arrival tolerance for deciding
// an agent has reached the current path point.
func stepEpsilon(g *grid.Grid) float64 {
	c := g.CellAt(0, 0)
	diag := cortex.Vec2{X: c.Bounds.Width, Y: c.Bounds.Height}.Length()
	return 0.5 * diag
}

func (w *walker) advance(agent Agent, dt, epsilon float64) State {
	if len(w.path) == 0 {
		return StateFailure
	}
	pos := agent.Position()
	target := w.path[w.cursor]
	if pos.Distance(target) <= epsilon {
		w.cursor++
		if w.cursor >= len(w.path) {
			agent.SetPosition(target)
			return StateSuccess
		}
		target = w.path[w.cursor]
	}
	dir := target.Sub(pos)
	dist := dir.Length()
	step := w.velocity * dt
	if step >= dist || dist == 0 {
		agent.SetPosition(target)
	} else {
		agent.SetPosition(pos.Add(dir.Scale(step / dist)))
	}
	return StateRunning
}
