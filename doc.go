// Package cortex is a behavior-tree runtime and grid pathfinder for
// real-time agent AI.
//
// A tree is built from a declarative [NodeDef] via [Build], which validates
// each definition as it builds it and returns a *[BuildError] naming the
// first offending node's path (and no tree) if anything is wrong:
//
//	tree, err := cortex.Build(cortex.NodeDef{
//		Name: "guard", Kind: cortex.KindPriority, Preempt: true,
//		Children: []cortex.NodeDef{
//			{Name: "chase", Kind: cortex.KindLeaf, Priority: chasePriority, Action: chaseAction},
//			{Name: "patrol", Kind: cortex.KindLeaf, Priority: patrolPriority, Action: patrolAction},
//		},
//	})
//
// # Lifecycle
//
// Every [Node] and [Action] moves through the same four states:
// Inactive, Running, Paused, and Finished. A node is started by its parent
// (or, at the root, by whoever owns the tree) and ticked once per frame while
// Running; [Node.Reset] returns a whole subtree to Inactive. Starting a node
// left Finished resets it first, and ticking a leaf that was never started
// starts its action. Violating the state machine — pausing a node that is not
// Running, resuming one that is not Paused, or driving an [Action] from a
// disallowed state — panics rather than failing silently.
//
// # Variants
//
// Leaf wraps an [Action] and a [PriorityFunc]. Inverter mirrors its single
// child's state and reports 1 minus its priority. Timer gates or cools down
// its child on a wall-clock delay ([TimerPreDelay] / [TimerPostCooldown]).
// Priority, Selector, and Random are composites that choose among several
// children every tick, each by its own rule, and either re-select constantly
// (preempt) or only when nothing is currently running.
//
// # Managing multiple trees
//
// [Manager] owns a named set of trees and ticks every Running one once per
// frame, in registration order:
//
//	m := cortex.NewManager()
//	m.Add("guard-1", tree)
//	m.Start("guard-1")
//	m.TickAll(dt)
//
// # Pathfinding
//
// The cortex/grid and cortex/pathfind packages provide a uniform occupancy
// grid and A*/D* Lite path planners an [Action] can drive, so a leaf's
// behavior can be "compute and follow a path to the target" as easily as
// "run this callback."
package cortex
