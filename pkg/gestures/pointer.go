// Package gestures defines the pointer event surface a host delivers to
// controls. It carries raw down/move/up/cancel phases; interpretation
// (press tracking, click resolution) is left to each control.
package gestures

import (
	"fmt"

	"github.com/go-drift/slidertabs/pkg/rendering"
)

// PointerPhase identifies the lifecycle phase of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown means a pointer made contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove means a tracked pointer changed position.
	PointerPhaseMove
	// PointerPhaseUp means a pointer left the surface normally.
	PointerPhaseUp
	// PointerPhaseCancel means the host aborted the pointer sequence
	// (e.g. the gesture was claimed by a scrolling ancestor).
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent describes a single pointer state change in the control's
// local coordinate space.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers.
	PointerID int64
	// Position is the pointer location relative to the control's origin.
	Position rendering.Offset
	// Delta is the movement since the previous event of this pointer.
	Delta rendering.Offset
	// Phase is the lifecycle phase.
	Phase PointerPhase
}

// PointerHandler is implemented by controls that consume pointer input.
//
// HandlePointer returns true when the event was consumed. An unconsumed
// down event passes through to whatever sits behind the control.
type PointerHandler interface {
	HandlePointer(event PointerEvent) bool
}
