package ecs

import (
	"github.com/phanxgames/cortex"
	"github.com/phanxgames/cortex/grid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Obstacle marks an entity's rectangle as blocking the grid.
type Obstacle struct {
	Bounds cortex.Rect
}

// AgentPosition holds an agent entity's current world position.
type AgentPosition struct {
	Pos cortex.Vec2
}

var (
	obstacleComponent      = donburi.NewComponentType[Obstacle]()
	agentPositionComponent = donburi.NewComponentType[AgentPosition]()
)

// World adapts a donburi.World into the collaborators cortex's grid and
// pathfinders need, so obstacles and agent positions live as ordinary
// entities instead of a parallel bookkeeping structure.
type World struct {
	world     donburi.World
	obstacles *donburi.Query
}

// NewWorld wraps an existing donburi world.
func NewWorld(world donburi.World) *World {
	return &World{
		world:     world,
		obstacles: donburi.NewQuery(filter.Contains(obstacleComponent)),
	}
}

// AddObstacle creates an entity carrying bounds as an Obstacle component and
// returns its entity id.
func (w *World) AddObstacle(bounds cortex.Rect) donburi.Entity {
	entity := w.world.Create(obstacleComponent)
	donburi.SetValue(w.world.Entry(entity), obstacleComponent, Obstacle{Bounds: bounds})
	return entity
}

// RemoveObstacle deletes the entity, e.g. once a destructible obstacle is
// cleared.
func (w *World) RemoveObstacle(entity donburi.Entity) {
	w.world.Remove(entity)
}

// Overlaps implements grid.ObstacleWorld: true if any Obstacle entity's
// bounds overlaps r.
func (w *World) Overlaps(r cortex.Rect) bool {
	found := false
	w.obstacles.Each(w.world, func(entry *donburi.Entry) {
		if found {
			return
		}
		if donburi.Get[Obstacle](entry).Bounds.Overlaps(r) {
			found = true
		}
	})
	return found
}

var _ grid.ObstacleWorld = (*World)(nil)

// AgentHandle is a pathfind.Agent backed by an AgentPosition component on a
// donburi entity, so an agent's position is queryable and mutable by any
// other ECS system in the same world.
type AgentHandle struct {
	world  donburi.World
	Entity donburi.Entity
}

// NewAgent creates an entity carrying an AgentPosition component at pos and
// returns a handle to it.
func (w *World) NewAgent(pos cortex.Vec2) *AgentHandle {
	entity := w.world.Create(agentPositionComponent)
	donburi.SetValue(w.world.Entry(entity), agentPositionComponent, AgentPosition{Pos: pos})
	return &AgentHandle{world: w.world, Entity: entity}
}

// Position implements pathfind.Agent.
func (a *AgentHandle) Position() cortex.Vec2 {
	return donburi.Get[AgentPosition](a.world.Entry(a.Entity)).Pos
}

// SetPosition implements pathfind.Agent.
func (a *AgentHandle) SetPosition(pos cortex.Vec2) {
	donburi.SetValue(a.world.Entry(a.Entity), agentPositionComponent, AgentPosition{Pos: pos})
}
