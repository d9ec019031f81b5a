package pathfind

import "github.com/phanxgames/cortex"

// Pathfinder is the common surface AStar and DStarLite both satisfy.
type Pathfinder interface {
	// ComputePath plans from the agent's current position to the cell
	// containing target and returns the path, or nil if unreachable.
	ComputePath(target cortex.Vec2) []cortex.Vec2
	// Move computes a path to target and synchronously advances the agent
	// along it at velocity until success or failure.
	Move(target cortex.Vec2, velocity float64) bool
	// Stop clears the current path and resets to Uninitialized.
	Stop()
	// Tick advances the agent by dt along the current path.
	Tick(dt float64) State
	// State reports the current lifecycle state.
	State() State
}

var (
	_ Pathfinder = (*AStar)(nil)
	_ Pathfinder = (*DStarLite)(nil)
)
