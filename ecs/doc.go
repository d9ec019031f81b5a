// Package ecs adapts a [Donburi] world into the collaborators cortex's grid
// and pathfinders need: [World] implements grid.ObstacleWorld over Obstacle
// components, and each agent handle returned by [World.NewAgent] implements
// pathfind.Agent over an AgentPosition component.
//
// Usage:
//
//	world := donburi.NewWorld()
//	cw := ecs.NewWorld(world)
//	cw.AddObstacle(cortex.Rect{X: 4, Y: 4, Width: 1, Height: 1})
//
//	agent := cw.NewAgent(cortex.Vec2{X: 0, Y: 0})
//	finder := pathfind.NewAStar(g, pathfind.ChebyshevHeuristic, agent, true)
//	finder.Move(target, velocity)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
