package cortex

import "testing"

func assertState(t *testing.T, got, want State) {
	t.Helper()
	if got != want {
		t.Errorf("state = %s, want %s", got, want)
	}
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic, got none")
		}
	}()
	fn()
}

func TestNewAction_RequiresUpdate(t *testing.T) {
	assertPanics(t, func() {
		NewAction(ActionDef{ID: "no-update"})
	})
}

func TestAction_Lifecycle(t *testing.T) {
	var started, updated, terminated bool
	a := NewAction(ActionDef{
		ID:        "test",
		Start:     func() { started = true },
		Update:    func(dt float64) bool { updated = true; return false },
		Terminate: func() { terminated = true },
	})
	assertState(t, a.State(), StateInactive)

	a.Start()
	if !started {
		t.Error("Start callback not invoked")
	}
	assertState(t, a.State(), StateRunning)

	a.Update(0.1)
	if !updated {
		t.Error("Update callback not invoked")
	}
	assertState(t, a.State(), StateRunning)

	a.Pause()
	assertState(t, a.State(), StatePaused)

	a.Resume()
	assertState(t, a.State(), StateRunning)

	a.Terminate()
	if !terminated {
		t.Error("Terminate callback not invoked")
	}
	assertState(t, a.State(), StateFinished)

	a.Reset()
	assertState(t, a.State(), StateInactive)
}

func TestAction_UpdateFinishes(t *testing.T) {
	calls := 0
	a := NewAction(ActionDef{Update: func(dt float64) bool {
		calls++
		return calls == 2
	}})
	a.Start()
	assertState(t, a.Update(0.1), StateRunning)
	assertState(t, a.Update(0.1), StateFinished)
}

func TestAction_ContractViolations(t *testing.T) {
	a := NewAction(ActionDef{Update: func(dt float64) bool { return false }})

	assertPanics(t, func() { a.Update(0.1) })
	assertPanics(t, func() { a.Pause() })
	assertPanics(t, func() { a.Resume() })
	assertPanics(t, func() { a.Terminate() })
	assertPanics(t, func() { a.Reset() })

	a.Start()
	assertPanics(t, func() { a.Start() })
}

func TestAction_ForceReset_FromAnyState(t *testing.T) {
	for _, start := range []State{StateInactive, StateRunning, StatePaused, StateFinished} {
		a := NewAction(ActionDef{Update: func(dt float64) bool { return false }})
		switch start {
		case StateRunning:
			a.Start()
		case StatePaused:
			a.Start()
			a.Pause()
		case StateFinished:
			a.Start()
			a.Terminate()
		}
		a.forceReset()
		assertState(t, a.State(), StateInactive)
	}
}
