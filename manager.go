package cortex

import "fmt"

// entry pairs a named tree with bookkeeping the Manager needs: trees are
// only ticked while Running, and a tree not yet started reports Inactive
// until Start is called on it explicitly.
type entry struct {
	name string
	root *Node
}

// Manager owns a named collection of behavior trees and drives them as a
// unit, preserving the order trees were added in across iteration (TickAll,
// and any future listing) so output is reproducible run to run.
type Manager struct {
	order  []string
	byName map[string]*entry
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{byName: make(map[string]*entry)}
}

// Add registers root under name. Returns ErrDuplicateTreeName if name is
// already registered.
func (m *Manager) Add(name string, root *Node) error {
	if _, exists := m.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateTreeName, name)
	}
	m.byName[name] = &entry{name: name, root: root}
	m.order = append(m.order, name)
	return nil
}

// Remove unregisters name, if present. No-op if name is not registered.
// Returns ErrTreeRunning, leaving the tree registered, if it is currently
// Running — a running tree must be stopped (or left to finish) before it
// can be removed.
func (m *Manager) Remove(name string) error {
	e, exists := m.byName[name]
	if !exists {
		return nil
	}
	if e.root.State() == StateRunning {
		return fmt.Errorf("%w: %q", ErrTreeRunning, name)
	}
	delete(m.byName, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the root node registered under name, or ErrUnknownTree if name
// is not registered.
func (m *Manager) Get(name string) (*Node, error) {
	e, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.root, nil
}

// Start transitions the named tree from Inactive to Running.
func (m *Manager) Start(name string) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	e.root.Start()
	return nil
}

// Restart resets a Finished tree to Inactive and immediately starts it
// again. Returns ErrTreeNotFinished if the tree is not Finished — Running
// or Paused trees must be stopped through their own lifecycle first, and
// an Inactive tree should be started with Start, not Restart.
func (m *Manager) Restart(name string) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	if e.root.State() != StateFinished {
		return fmt.Errorf("%w: %q", ErrTreeNotFinished, name)
	}
	e.root.Reset()
	e.root.Start()
	return nil
}

// Pause suspends the named tree. Must only be called while it is Running.
func (m *Manager) Pause(name string) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	e.root.Pause()
	return nil
}

// Resume resumes the named tree. Must only be called while it is Paused.
func (m *Manager) Resume(name string) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	e.root.Resume()
	return nil
}

// State reports the named tree's current lifecycle state.
func (m *Manager) State(name string) (State, error) {
	e, err := m.lookup(name)
	if err != nil {
		return StateInactive, err
	}
	return e.root.State(), nil
}

// TickAll ticks every Running tree once, in the order trees were added. A
// tree that finishes this tick is left Finished: callers wanting it to run
// again must Restart it explicitly — TickAll never resets on their behalf.
func (m *Manager) TickAll(dt float64) {
	for _, name := range m.order {
		e := m.byName[name]
		if e.root.State() == StateRunning {
			e.root.Tick(dt)
		}
	}
}

func (m *Manager) lookup(name string) (*entry, error) {
	e, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTree, name)
	}
	return e, nil
}
