package cortex

import (
	"fmt"
	"math/rand/v2"
)

// Kind tags which behavior-tree variant a Node is. Rather than one type per
// variant behind an interface, every variant shares one flat struct and
// Tick/UpdatePriority dispatch on Kind, avoiding interface dispatch on the
// hot per-frame path.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindInverter
	KindTimer
	KindPriority
	KindSelector
	KindRandom
)

// String renders the kind for debugging.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindInverter:
		return "Inverter"
	case KindTimer:
		return "Timer"
	case KindPriority:
		return "Priority"
	case KindSelector:
		return "Selector"
	case KindRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// PriorityFunc computes a node's priority in [0,1]. Supplied by the caller
// at build time; may close over external state such as agent position.
// Values outside [0,1] are clamped.
type PriorityFunc func() float64

// Node is a single element of a behavior tree: the common envelope (name,
// parent, index, state, priority, children) plus whichever variant-specific
// fields its Kind uses. Parent is a non-owning back reference used only for
// RemoveFromParent.
type Node struct {
	name     string
	kind     Kind
	parent   *Node
	index    int
	state    State
	priority float64
	children []*Node

	// Leaf
	priorityFn PriorityFunc
	action     *Action

	// Priority / Selector / Random (composite)
	preempt     bool
	activeChild int // index into children of the running child, -1 if none
	weighted    bool
	rng         *rand.Rand

	// Timer (decorator)
	preDelay bool
	delay    float64
	elapsed  float64
	cooling  bool
}

// Name returns the node's label. Names need not be unique within a tree.
func (n *Node) Name() string { return n.name }

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the node's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Index returns the node's position within its parent's child list, or -1 at the root.
func (n *Node) Index() int { return n.index }

// State returns the node's current lifecycle state.
func (n *Node) State() State { return n.state }

// Priority returns the node's priority as of the most recent UpdatePriority call.
func (n *Node) Priority() float64 { return n.priority }

// Children returns the node's child list. The caller must not mutate the
// returned slice.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// Action returns the leaf's attached action, or nil for non-leaf nodes.
func (n *Node) Action() *Action { return n.action }

// RemoveFromParent detaches this node from its parent's child list and
// compacts sibling indices. No-op at the root.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	p := n.parent
	idx := n.index
	p.children = append(p.children[:idx], p.children[idx+1:]...)
	for i := idx; i < len(p.children); i++ {
		p.children[i].index = i
	}
	n.parent = nil
	n.index = -1
}

// attachChild appends child to n's child list, recording its parent and
// index. Used only by the node constructors; RemoveFromParent is the only
// other operation that changes a tree's shape.
func (n *Node) attachChild(child *Node) {
	child.parent = n
	child.index = len(n.children)
	n.children = append(n.children, child)
}

// FindByName returns the first node in a pre-order walk from n (n included)
// whose name matches, or nil if none match.
func (n *Node) FindByName(name string) *Node {
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// UpdatePriority recursively refreshes priority bottom-up: it recurses into
// children first, then recomputes this node's own priority from the
// variant's rule. dt is threaded through so Timer's post-cooldown countdown
// — which must keep advancing even while this node is not the tick-selected
// child of its parent — has a wall-clock source; every other variant ignores
// it. This is a deliberate departure from a zero-argument priority refresh:
// without dt here, a cooling-down Timer would never see its own clock move
// once its parent stopped selecting it.
func (n *Node) UpdatePriority(dt float64) {
	switch n.kind {
	case KindLeaf:
		n.priority = clamp01(n.priorityFn())
	case KindInverter:
		child := n.children[0]
		child.UpdatePriority(dt)
		n.priority = clamp01(1 - child.priority)
	case KindTimer:
		n.updateTimerPriority(dt)
	case KindPriority, KindSelector:
		for _, c := range n.children {
			c.UpdatePriority(dt)
		}
		if i := n.runningChildIndex(); i >= 0 {
			n.priority = n.children[i].priority
		} else {
			n.priority = maxPriority(n.children)
		}
	case KindRandom:
		for _, c := range n.children {
			c.UpdatePriority(dt)
		}
		n.priority = meanPriority(n.children)
	}
}

// runningChildIndex returns the index of the currently running child, or -1
// if no child of this composite is running.
func (n *Node) runningChildIndex() int {
	if n.activeChild < 0 || n.activeChild >= len(n.children) {
		return -1
	}
	if n.children[n.activeChild].state != StateRunning {
		return -1
	}
	return n.activeChild
}

func maxPriority(children []*Node) float64 {
	best := children[0].priority
	for _, c := range children[1:] {
		if c.priority > best {
			best = c.priority
		}
	}
	return best
}

func meanPriority(children []*Node) float64 {
	total := 0.0
	for _, c := range children {
		total += c.priority
	}
	return total / float64(len(children))
}

// Tick is the per-frame entry point. The manager calls it only on trees in
// state Running; a composite must never be ticked while every child has
// priority 0 — enforcing that gate is the caller's (parent's) job.
func (n *Node) Tick(dt float64) State {
	switch n.kind {
	case KindLeaf:
		return n.tickLeaf(dt)
	case KindInverter:
		return n.tickInverter(dt)
	case KindTimer:
		return n.tickTimer(dt)
	case KindPriority, KindSelector, KindRandom:
		return n.tickComposite(dt)
	}
	panic("cortex: unreachable node kind")
}

// Start marks this node as newly selected by its parent (or as the tree
// root, by the manager), starting its action or child as appropriate.
func (n *Node) Start() {
	switch n.kind {
	case KindLeaf:
		n.startLeaf()
	case KindInverter:
		n.startChild(n.children[0])
		n.state = StateRunning
	case KindTimer:
		n.startTimer()
	case KindPriority, KindSelector, KindRandom:
		n.activeChild = -1
		n.state = StateRunning
	}
}

// startChild starts c, resetting it first if it was left Finished by a
// previous run (e.g. after a preempt-and-reselect cycle).
func (n *Node) startChild(c *Node) {
	if c.state == StateFinished {
		c.Reset()
	}
	c.Start()
}

// Preempt stops this node and any descendants still running, returning it
// to Inactive. It never propagates to siblings.
func (n *Node) Preempt() {
	switch n.kind {
	case KindLeaf:
		n.preemptLeaf()
	case KindInverter:
		if c := n.children[0]; c.state == StateRunning || c.state == StatePaused {
			c.Preempt()
		}
		n.state = StateInactive
	case KindTimer:
		n.preemptTimer()
	case KindPriority, KindSelector, KindRandom:
		if i := n.activeChild; i >= 0 && i < len(n.children) {
			c := n.children[i]
			if c.state == StateRunning || c.state == StatePaused {
				c.Preempt()
			}
		}
		n.activeChild = -1
		n.state = StateInactive
	}
}

// Pause suspends this node and its active descendant. Must only be called
// while Running.
func (n *Node) Pause() {
	if n.state != StateRunning {
		panic(fmt.Sprintf("cortex: node %q: Pause called from %s, want Running", n.name, n.state))
	}
	n.forEachActiveDescendant(func(d *Node) {
		if d.kind == KindLeaf {
			d.action.Pause()
		}
		d.state = StatePaused
	})
}

// Resume resumes this node and its active descendant. Must only be called
// while Paused.
func (n *Node) Resume() {
	if n.state != StatePaused {
		panic(fmt.Sprintf("cortex: node %q: Resume called from %s, want Paused", n.name, n.state))
	}
	n.forEachActiveDescendant(func(d *Node) {
		if d.kind == KindLeaf {
			d.action.Resume()
		}
		d.state = StateRunning
	})
}

// forEachActiveDescendant walks the path of currently-active children from n
// down to its running leaf, invoking fn on every node along the way
// (including n). Used by Pause/Resume, which must only touch the subtree
// that is actually running, not siblings that were never selected.
func (n *Node) forEachActiveDescendant(fn func(*Node)) {
	fn(n)
	switch n.kind {
	case KindInverter, KindTimer:
		if len(n.children) > 0 {
			if c := n.children[0]; c.state == StateRunning || c.state == StatePaused {
				c.forEachActiveDescendant(fn)
			}
		}
	case KindPriority, KindSelector, KindRandom:
		if i := n.activeChild; i >= 0 && i < len(n.children) {
			n.children[i].forEachActiveDescendant(fn)
		}
	}
}

// Reset returns this node and all descendants to Inactive, clearing any
// per-tick accumulators (timer elapsed, the active-child selection).
func (n *Node) Reset() {
	switch n.kind {
	case KindLeaf:
		n.action.forceReset()
	case KindInverter:
		n.children[0].Reset()
	case KindTimer:
		n.children[0].Reset()
		n.elapsed = 0
		n.cooling = false
	case KindPriority, KindSelector, KindRandom:
		for _, c := range n.children {
			c.Reset()
		}
		n.activeChild = -1
	}
	n.state = StateInactive
	n.priority = 0
}
