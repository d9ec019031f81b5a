package ecs

import (
	"testing"

	"github.com/phanxgames/cortex"

	"github.com/yohamta/donburi"
)

func TestWorld_Overlaps(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	w.AddObstacle(cortex.Rect{X: 4, Y: 4, Width: 1, Height: 1})

	if !w.Overlaps(cortex.Rect{X: 4, Y: 4, Width: 1, Height: 1}) {
		t.Error("expected overlap against the obstacle itself")
	}
	if w.Overlaps(cortex.Rect{X: 10, Y: 10, Width: 1, Height: 1}) {
		t.Error("expected no overlap far from the obstacle")
	}
}

func TestWorld_RemoveObstacle(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	id := w.AddObstacle(cortex.Rect{X: 0, Y: 0, Width: 1, Height: 1})
	w.RemoveObstacle(id)

	if w.Overlaps(cortex.Rect{X: 0, Y: 0, Width: 1, Height: 1}) {
		t.Error("expected no overlap after removing the obstacle")
	}
}

func TestAgentHandle_PositionRoundTrip(t *testing.T) {
	w := NewWorld(donburi.NewWorld())
	agent := w.NewAgent(cortex.Vec2{X: 1, Y: 2})

	if got := agent.Position(); got != (cortex.Vec2{X: 1, Y: 2}) {
		t.Fatalf("Position() = %v, want {1 2}", got)
	}

	agent.SetPosition(cortex.Vec2{X: 5, Y: 6})
	if got := agent.Position(); got != (cortex.Vec2{X: 5, Y: 6}) {
		t.Fatalf("Position() after SetPosition = %v, want {5 6}", got)
	}
}
