package cortex

import (
	"fmt"
	"math/rand/v2"
)

// NodeDef is the declarative description of one node in a behavior tree. A
// tree is built from a root NodeDef via Build, which validates each
// definition before constructing its Node.
type NodeDef struct {
	Name string
	Kind Kind

	// Leaf
	Priority PriorityFunc
	Action   ActionDef

	// Timer
	TimerMode TimerMode
	Delay     float64

	// Random
	Weighted bool
	Rng      *rand.Rand

	// Priority / Selector / Random
	Preempt bool

	Children []NodeDef
}

// Build validates def and constructs the corresponding *Node, recursing
// into each child definition in order (validate, then build its subtree).
// On the first validation failure it returns a
// *BuildError naming the offending node's slash-joined path (e.g.
// "root/patrol/attack"); no partial tree is returned on error.
func Build(def NodeDef) (*Node, error) {
	return build(def, "")
}

func build(def NodeDef, parentPath string) (*Node, error) {
	path := def.Name
	if parentPath != "" {
		path = parentPath + "/" + def.Name
	}
	if err := validateDef(def); err != nil {
		return nil, &BuildError{Path: path, Err: err}
	}

	children := make([]*Node, 0, len(def.Children))
	for _, childDef := range def.Children {
		child, err := build(childDef, path)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	switch def.Kind {
	case KindLeaf:
		return NewLeaf(def.Name, def.Priority, def.Action), nil
	case KindInverter:
		return NewInverter(def.Name, children[0]), nil
	case KindTimer:
		return NewTimer(def.Name, def.TimerMode, def.Delay, children[0]), nil
	case KindPriority:
		return NewPriority(def.Name, def.Preempt, children...), nil
	case KindSelector:
		return NewSelector(def.Name, def.Preempt, children...), nil
	case KindRandom:
		if def.Weighted {
			return NewRandomWeighted(def.Name, def.Preempt, def.Rng, children...), nil
		}
		return NewRandomUniform(def.Name, def.Preempt, def.Rng, children...), nil
	}
	return nil, &BuildError{Path: path, Err: ErrUnknownVariant}
}

// validateDef checks def's own fields against its Kind's requirements,
// without recursing into children (the caller walks those separately so
// each gets its own path in a reported BuildError).
func validateDef(def NodeDef) error {
	switch def.Kind {
	case KindLeaf:
		if def.Priority == nil {
			return ErrMissingPriorityFunc
		}
		if def.Action.Update == nil {
			return ErrMissingAction
		}
		if len(def.Children) != 0 {
			return fmt.Errorf("%w: leaf must have no children", ErrChildCount)
		}
	case KindInverter:
		if def.Priority != nil {
			return ErrPriorityFuncNotAllowed
		}
		if len(def.Children) != 1 {
			return fmt.Errorf("%w: inverter requires exactly 1 child", ErrChildCount)
		}
	case KindTimer:
		if def.Priority != nil {
			return ErrPriorityFuncNotAllowed
		}
		if def.Delay < 0 {
			return ErrNegativeDelay
		}
		if len(def.Children) != 1 {
			return fmt.Errorf("%w: timer requires exactly 1 child", ErrChildCount)
		}
	case KindPriority, KindSelector, KindRandom:
		if def.Priority != nil {
			return ErrPriorityFuncNotAllowed
		}
		if len(def.Children) < 1 {
			return fmt.Errorf("%w: composite requires at least 1 child", ErrChildCount)
		}
	default:
		return ErrUnknownVariant
	}
	return nil
}
