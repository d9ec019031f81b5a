package cortex

import "testing"

func noopAction(finishAfter int) ActionDef {
	calls := 0
	return ActionDef{Update: func(dt float64) bool {
		calls++
		return calls >= finishAfter
	}}
}

func TestInverter_PriorityIsOneMinusChild(t *testing.T) {
	leaf := NewLeaf("child", constPriority(0.3), noopAction(99))
	inv := NewInverter("not", leaf)
	inv.UpdatePriority(0)
	if inv.Priority() != 0.7 {
		t.Errorf("priority = %v, want 0.7", inv.Priority())
	}
}

func TestInverter_MirrorsChildState(t *testing.T) {
	leaf := NewLeaf("child", constPriority(1), noopAction(1))
	inv := NewInverter("not", leaf)
	inv.Start()
	inv.Tick(0.1)
	assertState(t, inv.State(), StateFinished)
	assertState(t, leaf.State(), StateFinished)
}

func TestTimer_PreDelay_GatesChildUntilElapsed(t *testing.T) {
	leaf := NewLeaf("child", constPriority(1), noopAction(1))
	timer := NewTimer("delayed", TimerPreDelay, 1.0, leaf)
	timer.Start()

	for i := 0; i < 3; i++ {
		timer.Tick(0.3)
		assertState(t, leaf.State(), StateInactive)
	}
	// elapsed is now 1.2 >= 1.0: this tick starts and finishes the child.
	timer.Tick(0.3)
	assertState(t, leaf.State(), StateFinished)
	assertState(t, timer.State(), StateFinished)
}

func TestTimer_PreDelay_DoesNotRestartRunningChild(t *testing.T) {
	leaf := NewLeaf("child", constPriority(1), noopAction(3))
	timer := NewTimer("delayed", TimerPreDelay, 0.1, leaf)
	timer.Start()
	timer.Tick(0.2) // crosses the delay, starts the child, 1st update call
	assertState(t, leaf.State(), StateRunning)

	timer.Tick(0.1) // must NOT restart the child
	timer.Tick(0.1)
	assertState(t, leaf.State(), StateFinished)
}

func TestTimer_PostCooldown_PriorityZeroDuringCooldown(t *testing.T) {
	leaf := NewLeaf("child", constPriority(1), noopAction(1))
	timer := NewTimer("cooled", TimerPostCooldown, 1.0, leaf)
	timer.Start()
	timer.Tick(0.1) // finishes the child, enters cooldown
	assertState(t, timer.State(), StateFinished)

	timer.updateTimerPriority(0.5)
	if timer.Priority() != 0 {
		t.Errorf("priority during cooldown = %v, want 0", timer.Priority())
	}
	timer.updateTimerPriority(0.6) // elapsed now 1.1 >= 1.0: cooldown ends
	if timer.Priority() != 1 {
		t.Errorf("priority after cooldown = %v, want 1 (mirrors child)", timer.Priority())
	}
}

func TestNewTimer_NegativeDelayPanics(t *testing.T) {
	leaf := NewLeaf("child", constPriority(1), noopAction(1))
	assertPanics(t, func() {
		NewTimer("bad", TimerPreDelay, -1, leaf)
	})
}
