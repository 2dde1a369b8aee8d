package widgets

import (
	"testing"

	"github.com/go-drift/slidertabs/pkg/animation"
	"github.com/go-drift/slidertabs/pkg/errors"
)

// Both faults below indicate logic defects and are unreachable through
// the public API by construction, so they are exercised directly.

func TestBeginMove_RejectsIdleTarget(t *testing.T) {
	tabs := NewSliderTabs(nil)
	defer tabs.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for idle transition target")
		}
		if _, ok := r.(*errors.StateError); !ok {
			t.Fatalf("panic value = %T, want *errors.StateError", r)
		}
	}()
	tabs.beginMove(StateIdleRight)
}

func TestAnimationEnd_WhileIdlePanics(t *testing.T) {
	tabs := NewSliderTabs(nil)
	defer tabs.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for completion in idle state")
		}
		if _, ok := r.(*errors.StateError); !ok {
			t.Fatalf("panic value = %T, want *errors.StateError", r)
		}
	}()
	tabs.onAnimationStatus(animation.AnimationCompleted)
}

func TestAnimationStatus_IgnoresInFlightStatuses(t *testing.T) {
	tabs := NewSliderTabs(nil)
	defer tabs.Dispose()

	// Forward/reverse notifications arrive while a transition starts;
	// they must not resolve or fault anything.
	tabs.onAnimationStatus(animation.AnimationForward)
	tabs.onAnimationStatus(animation.AnimationReverse)
	if tabs.State() != StateIdleLeft {
		t.Errorf("state = %v, want %v", tabs.State(), StateIdleLeft)
	}
}
