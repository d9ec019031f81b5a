package cortex

// NewLeaf constructs a leaf node bound to priorityFn and an action built
// from actionDef. Panics if priorityFn is nil — a leaf's priority function
// is mandatory, not an optional default.
func NewLeaf(name string, priorityFn PriorityFunc, actionDef ActionDef) *Node {
	if priorityFn == nil {
		panic("cortex: leaf requires a priority function")
	}
	return &Node{
		name:       name,
		kind:       KindLeaf,
		index:      -1,
		priorityFn: priorityFn,
		action:     NewAction(actionDef),
	}
}

// startLeaf starts (or restarts, if left Finished by a prior preempt) the
// leaf's action.
func (n *Node) startLeaf() {
	if n.action.State() == StateFinished {
		n.action.Reset()
	}
	n.action.Start()
	n.state = n.action.State()
}

// tickLeaf runs the action one step: starts it if still Inactive (so a leaf
// ticked without an explicit prior Start, e.g. as a lone root, still runs),
// then updates it while Running. The leaf's own state always mirrors the
// action's.
func (n *Node) tickLeaf(dt float64) State {
	if n.action.State() == StateInactive {
		n.action.Start()
	}
	if n.action.State() == StateRunning {
		n.action.Update(dt)
	}
	n.state = n.action.State()
	return n.state
}

// preemptLeaf terminates the action if it is still live and returns the leaf
// to Inactive so it can be started fresh on a future selection.
func (n *Node) preemptLeaf() {
	if s := n.action.State(); s == StateRunning || s == StatePaused {
		n.action.Terminate()
	}
	n.state = StateInactive
}
