// Package pathfind provides grid-based A* and D* Lite pathfinders sharing a
// common Pathfinder interface, plus the agent-position type they move.
package pathfind

import "github.com/phanxgames/cortex"

// State is a pathfinder's lifecycle: Uninitialized until a path is computed,
// Running while moving along it, and Success or Failure on reaching the
// target or finding no route.
type State uint8

const (
	StateUninitialized State = iota
	StateRunning
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateRunning:
		return "Running"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Agent is the position accessor a pathfinder moves. AgentMover is the
// default bare-struct implementation; cortex/ecs provides one backed by an
// ECS entity.
type Agent interface {
	Position() cortex.Vec2
	SetPosition(cortex.Vec2)
}
