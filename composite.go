package cortex

import "math/rand/v2"

// NewPriority constructs a composite that always runs its highest-priority
// child, ties broken by lowest index. Panics if children is empty.
func NewPriority(name string, preempt bool, children ...*Node) *Node {
	return newComposite(name, KindPriority, preempt, children)
}

// NewSelector constructs a composite that runs the first child (by index)
// with priority > 0, or child 0 if all are 0. Panics if children is empty.
func NewSelector(name string, preempt bool, children ...*Node) *Node {
	return newComposite(name, KindSelector, preempt, children)
}

// NewRandomUniform constructs a composite that picks uniformly among
// children with priority > 0 (or uniformly among all, if every priority is
// 0). rng may be nil, in which case the node gets its own source with a
// fixed seed; pass your own to choose the seed.
func NewRandomUniform(name string, preempt bool, rng *rand.Rand, children ...*Node) *Node {
	n := newComposite(name, KindRandom, preempt, children)
	n.weighted = false
	n.rng = rngOrDefault(rng)
	return n
}

// NewRandomWeighted constructs a composite that picks among children with
// probability proportional to priority, redrawing only when (re)entering
// selection (first tick, or any preempt-enabled tick).
func NewRandomWeighted(name string, preempt bool, rng *rand.Rand, children ...*Node) *Node {
	n := newComposite(name, KindRandom, preempt, children)
	n.weighted = true
	n.rng = rngOrDefault(rng)
	return n
}

func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(1, 1))
}

func newComposite(name string, kind Kind, preempt bool, children []*Node) *Node {
	if len(children) == 0 {
		panic("cortex: composite requires at least one child")
	}
	n := &Node{name: name, kind: kind, index: -1, preempt: preempt, activeChild: -1}
	for _, c := range children {
		n.attachChild(c)
	}
	return n
}

// selectChild applies the kind-specific selection rule over the already
// priority-refreshed children and returns the chosen index.
func (n *Node) selectChild() int {
	switch n.kind {
	case KindPriority:
		return selectHighestPriority(n.children)
	case KindSelector:
		return selectFirstNonZero(n.children)
	case KindRandom:
		if n.weighted {
			return selectWeightedRandom(n.children, n.rng)
		}
		return selectUniformRandom(n.children, n.rng)
	}
	panic("cortex: selectChild called on non-composite node")
}

// selectHighestPriority returns the index of the highest-priority child,
// ties broken by lowest index for a stable selection across equal-priority
// siblings.
func selectHighestPriority(children []*Node) int {
	best := 0
	for i := 1; i < len(children); i++ {
		if children[i].priority > children[best].priority {
			best = i
		}
	}
	return best
}

// selectFirstNonZero returns the first child (by index) with priority > 0,
// or 0 if every child is at priority 0.
func selectFirstNonZero(children []*Node) int {
	for i, c := range children {
		if c.priority > 0 {
			return i
		}
	}
	return 0
}

// selectUniformRandom picks uniformly among children with priority > 0, or
// uniformly among all children if every priority is 0.
func selectUniformRandom(children []*Node, rng *rand.Rand) int {
	candidates := nonZeroIndices(children)
	if len(candidates) == 0 {
		return rng.IntN(len(children))
	}
	return candidates[rng.IntN(len(candidates))]
}

// selectWeightedRandom draws an index with probability proportional to
// priority. If every priority is 0 it falls back to a uniform draw over all
// children.
func selectWeightedRandom(children []*Node, rng *rand.Rand) int {
	total := 0.0
	for _, c := range children {
		total += c.priority
	}
	if total <= 0 {
		return rng.IntN(len(children))
	}
	r := rng.Float64() * total
	acc := 0.0
	for i, c := range children {
		acc += c.priority
		if r < acc {
			return i
		}
	}
	return len(children) - 1
}

func nonZeroIndices(children []*Node) []int {
	var idx []int
	for i, c := range children {
		if c.priority > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// tickComposite implements the shared rhythm of Priority, Selector, and
// Random: re-enter selection when preempt is set or no child is currently
// running, otherwise keep ticking whichever child is already active.
func (n *Node) tickComposite(dt float64) State {
	entering := n.preempt || n.runningChildIndex() < 0
	if entering {
		n.UpdatePriority(dt)
		selected := n.selectChild()
		if selected != n.activeChild {
			if i := n.activeChild; i >= 0 {
				if c := n.children[i]; c.state == StateRunning || c.state == StatePaused {
					c.Preempt()
				}
			}
			n.startChild(n.children[selected])
			n.activeChild = selected
		} else if n.children[selected].state != StateRunning {
			n.startChild(n.children[selected])
		}
	}
	child := n.children[n.activeChild]
	n.state = child.Tick(dt)
	if n.state == StateFinished {
		n.activeChild = -1
	}
	return n.state
}
