package tui

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestHoldTrackerReleasesAfterIdleTicks(t *testing.T) {
	h := NewHoldTracker(3)

	if got := h.Press(core.ActionRight); !slices.Equal(got, []core.Action{core.ActionRight}) {
		t.Fatalf("Press() = %v", got)
	}
	for i := 0; i < 2; i++ {
		if got := h.Tick(); got != core.ActionNone {
			t.Fatalf("tick %d released early: %v", i+1, got)
		}
	}
	if got := h.Tick(); got != core.ActionRightRelease {
		t.Errorf("third tick = %v, expected RightRelease", got)
	}
	if h.Held() != core.ActionNone {
		t.Errorf("Held() = %v after release", h.Held())
	}
	if got := h.Tick(); got != core.ActionNone {
		t.Errorf("release repeated: %v", got)
	}
}

func TestHoldTrackerRepeatKeepsHeld(t *testing.T) {
	h := NewHoldTracker(2)

	h.Press(core.ActionLeft)
	for i := 0; i < 10; i++ {
		h.Tick()
		h.Press(core.ActionLeft) // Key auto-repeat
	}
	if h.Held() != core.ActionLeft {
		t.Errorf("Held() = %v, auto-repeat should keep the direction held", h.Held())
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker(30)

	h.Press(core.ActionRight)
	got := h.Press(core.ActionLeft)
	want := []core.Action{core.ActionRightRelease, core.ActionLeft}
	if !slices.Equal(got, want) {
		t.Errorf("Press(Left) while holding right = %v, expected %v", got, want)
	}
	if h.Held() != core.ActionLeft {
		t.Errorf("Held() = %v", h.Held())
	}
}

func TestHoldTrackerMinimumHold(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionRight)
	if got := h.Tick(); got != core.ActionRightRelease {
		t.Errorf("Tick() = %v, expected an immediate release", got)
	}

	h.Press(core.ActionLeft)
	h.Reset()
	if got := h.Tick(); got != core.ActionNone {
		t.Errorf("Tick() after Reset = %v", got)
	}
}
