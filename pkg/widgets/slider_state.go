package widgets

import "fmt"

// SliderState is the position of a SliderTabs control's indicator.
//
// The state machine has two rest states and two transit states:
//
//	StateIdleLeft  ──tap right──► StateMovingRight ──done──► StateIdleRight
//	StateIdleRight ──tap left───► StateMovingLeft  ──done──► StateIdleLeft
//
// A tap during an in-flight animation reverses it toward the opposite
// rest state even though that state was never reached. Only the idle
// states are valid at rest or in persisted state.
type SliderState int

const (
	// StateIdleLeft means the indicator rests on the left tab.
	StateIdleLeft SliderState = iota
	// StateIdleRight means the indicator rests on the right tab.
	StateIdleRight
	// StateMovingLeft means the indicator is animating toward the left tab.
	StateMovingLeft
	// StateMovingRight means the indicator is animating toward the right tab.
	StateMovingRight
)

// String returns a human-readable representation of the state.
func (s SliderState) String() string {
	switch s {
	case StateIdleLeft:
		return "idle-left"
	case StateIdleRight:
		return "idle-right"
	case StateMovingLeft:
		return "moving-left"
	case StateMovingRight:
		return "moving-right"
	default:
		return fmt.Sprintf("SliderState(%d)", int(s))
	}
}

// IsIdle reports whether the state is a rest state.
func (s SliderState) IsIdle() bool {
	return s == StateIdleLeft || s == StateIdleRight
}

// IsMoving reports whether the state is a transit state.
func (s SliderState) IsMoving() bool {
	return s == StateMovingLeft || s == StateMovingRight
}

// Settled returns the rest state this state resolves to: the state
// itself when idle, the animation target when moving.
func (s SliderState) Settled() SliderState {
	switch s {
	case StateMovingLeft:
		return StateIdleLeft
	case StateMovingRight:
		return StateIdleRight
	default:
		return s
	}
}

// nextOnTap is the pure transition function for a qualifying tap:
// left-ish states head right, right-ish states head left.
func nextOnTap(s SliderState) SliderState {
	switch s {
	case StateIdleLeft, StateMovingLeft:
		return StateMovingRight
	default:
		return StateMovingLeft
	}
}

// oppositeSide reports whether x falls on the half of the control not
// occupied by the indicator's rest or target position. mid is the
// horizontal midpoint.
func oppositeSide(s SliderState, x, mid float64) bool {
	switch s {
	case StateIdleLeft, StateMovingLeft:
		return x > mid
	default:
		return x < mid
	}
}

// MarshalText encodes the state for host persistence containers.
func (s SliderState) MarshalText() ([]byte, error) {
	if s < StateIdleLeft || s > StateMovingRight {
		return nil, fmt.Errorf("unknown slider state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state produced by MarshalText.
func (s *SliderState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle-left":
		*s = StateIdleLeft
	case "idle-right":
		*s = StateIdleRight
	case "moving-left":
		*s = StateMovingLeft
	case "moving-right":
		*s = StateMovingRight
	default:
		return fmt.Errorf("unknown slider state %q", text)
	}
	return nil
}
