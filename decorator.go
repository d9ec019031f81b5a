package cortex

// NewInverter constructs a single-child decorator whose priority is
// 1 - child.priority. Inverters do not accept a user priority function —
// the builder rejects a definition that supplies one.
func NewInverter(name string, child *Node) *Node {
	n := &Node{name: name, kind: KindInverter, index: -1}
	n.attachChild(child)
	return n
}

// tickInverter starts the child if needed and mirrors its resulting state.
func (n *Node) tickInverter(dt float64) State {
	child := n.children[0]
	if child.state == StateInactive {
		n.startChild(child)
	}
	n.state = child.Tick(dt)
	return n.state
}

// TimerMode selects which of the two mutually-exclusive Timer semantics
// applies: delay the child's start, or cool down after the child stops.
type TimerMode uint8

const (
	// TimerPreDelay suppresses the child for Delay seconds before starting it.
	TimerPreDelay TimerMode = iota
	// TimerPostCooldown reports priority 0 for Delay seconds after the
	// child is preempted or finishes.
	TimerPostCooldown
)

// NewTimer constructs a single-child decorator gated by delay seconds in the
// mode given. Panics if delay < 0.
func NewTimer(name string, mode TimerMode, delay float64, child *Node) *Node {
	if delay < 0 {
		panic("cortex: timer delay must be >= 0")
	}
	n := &Node{
		name:     name,
		kind:     KindTimer,
		index:    -1,
		preDelay: mode == TimerPreDelay,
		delay:    delay,
	}
	n.attachChild(child)
	return n
}

// updateTimerPriority implements the priority half of both Timer modes. See
// Node.UpdatePriority for why dt is threaded through: the post-cooldown
// countdown must keep advancing even on ticks where this node isn't the
// active selected child of its parent (and thus Tick is never called on it).
func (n *Node) updateTimerPriority(dt float64) {
	child := n.children[0]
	child.UpdatePriority(dt)
	if n.preDelay {
		n.priority = child.priority
		return
	}
	if n.cooling {
		n.elapsed += dt
		if n.elapsed >= n.delay {
			n.cooling = false
			n.elapsed = 0
		}
	}
	if n.cooling {
		n.priority = 0
	} else {
		n.priority = child.priority
	}
}

// startTimer begins a fresh selection episode. In pre-delay mode the child
// stays Inactive until the delay elapses; in post-cooldown mode the child
// starts immediately (cooldown, if any, has already gated selection via
// priority 0 and cleared before this is called).
func (n *Node) startTimer() {
	if n.preDelay {
		n.elapsed = 0
	} else {
		n.startChild(n.children[0])
	}
	n.state = StateRunning
}

// tickTimer advances the gate (pre-delay) or simply passes ticks through
// (post-cooldown), starting the cooldown the instant the child stops
// running — whether because it finished on its own or was preempted.
func (n *Node) tickTimer(dt float64) State {
	child := n.children[0]
	if n.preDelay {
		if n.elapsed < n.delay {
			n.elapsed += dt
			if n.elapsed < n.delay {
				n.state = StateRunning
				return n.state
			}
		}
		if child.state == StateInactive {
			n.startChild(child)
		}
		n.state = child.Tick(dt)
		return n.state
	}

	if child.state == StateInactive {
		n.startChild(child)
	}
	n.state = child.Tick(dt)
	if n.state == StateFinished {
		n.cooling = true
		n.elapsed = 0
	}
	return n.state
}

// preemptTimer stops the child (if live) and, in post-cooldown mode, begins
// the cooldown window.
func (n *Node) preemptTimer() {
	if c := n.children[0]; c.state == StateRunning || c.state == StatePaused {
		c.Preempt()
	}
	if !n.preDelay {
		n.cooling = true
		n.elapsed = 0
	} else {
		n.elapsed = 0
	}
	n.state = StateInactive
}
