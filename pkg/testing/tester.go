package testing

import (
	"testing"
	"time"

	"github.com/go-drift/slidertabs/pkg/animation"
	"github.com/go-drift/slidertabs/pkg/gestures"
	"github.com/go-drift/slidertabs/pkg/layout"
	"github.com/go-drift/slidertabs/pkg/rendering"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 56
)

// Control is the slice of the render-box contract a tester drives.
type Control interface {
	layout.RenderObject
	gestures.PointerHandler
}

// ControlTester hosts a single control the way an embedding application
// would: it lays it out, pumps animation frames on a fake clock, paints
// into a recording canvas, and synthesizes pointer sequences.
type ControlTester struct {
	control   Control
	clock     *FakeClock
	prevClock animation.Clock
	size      rendering.Size
	canvas    *RecordingCanvas
	positions map[int64]rendering.Offset
	nextID    int64
}

// NewControlTester mounts the control at the default surface size.
// Call Cleanup when done, or use NewControlTesterWithT instead.
func NewControlTester(control Control) *ControlTester {
	return NewControlTesterSized(control, rendering.Size{
		Width:  DefaultTestWidth,
		Height: DefaultTestHeight,
	})
}

// NewControlTesterSized mounts the control with tight constraints of the
// given size.
func NewControlTesterSized(control Control, size rendering.Size) *ControlTester {
	t := &ControlTester{
		control:   control,
		clock:     NewFakeClock(),
		size:      size,
		canvas:    NewRecordingCanvas(size),
		positions: make(map[int64]rendering.Offset),
	}
	t.prevClock = animation.SetClock(t.clock)
	control.Layout(layout.Tight(size))
	return t
}

// NewControlTesterWithT mounts the control and auto-restores the
// animation clock via t.Cleanup. This is the recommended constructor.
func NewControlTesterWithT(t *testing.T, control Control) *ControlTester {
	tester := NewControlTester(control)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global animation clock.
func (t *ControlTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *ControlTester) Clock() *FakeClock {
	return t.clock
}

// Canvas returns the recording canvas holding the last painted frame.
func (t *ControlTester) Canvas() *RecordingCanvas {
	return t.canvas
}

// Resize relays the control out with tight constraints of the new size.
func (t *ControlTester) Resize(size rendering.Size) {
	t.size = size
	t.canvas = NewRecordingCanvas(size)
	t.control.MarkNeedsLayout()
	t.control.Layout(layout.Tight(size))
}

// Pump advances the fake clock by d, steps active tickers once, and
// repaints. A zero d paints without advancing time.
func (t *ControlTester) Pump(d time.Duration) {
	if d > 0 {
		t.clock.Advance(d)
	}
	animation.StepTickers()
	t.paint()
}

// PumpFrames advances time in n equal steps, ticking each frame, then
// repaints. Use it to sample mid-flight animation values.
func (t *ControlTester) PumpFrames(n int, step time.Duration) {
	for i := 0; i < n; i++ {
		t.clock.Advance(step)
		animation.StepTickers()
	}
	t.paint()
}

func (t *ControlTester) paint() {
	t.canvas.Reset()
	ctx := &layout.PaintContext{Canvas: t.canvas}
	t.control.Paint(ctx)
	if base, ok := t.control.(interface{ ClearNeedsPaint() }); ok {
		base.ClearNeedsPaint()
	}
}

// TapAt sends a down/up pair at pos. It returns whether the down was
// consumed; the up is delivered either way, mirroring hosts that route
// the whole sequence once a control was hit.
func (t *ControlTester) TapAt(pos rendering.Offset) bool {
	id := t.allocPointer()
	consumed := t.SendPointerDown(pos, id)
	t.SendPointerUp(pos, id)
	return consumed
}

// PressAt sends only a pointer down at pos and returns the pointer ID
// for a later SendPointerUp or SendPointerCancel.
func (t *ControlTester) PressAt(pos rendering.Offset) int64 {
	id := t.allocPointer()
	t.SendPointerDown(pos, id)
	return id
}

// SendPointerDown delivers a down event at pos.
func (t *ControlTester) SendPointerDown(pos rendering.Offset, pointerID int64) bool {
	t.positions[pointerID] = pos
	return t.control.HandlePointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove delivers a move event at pos.
func (t *ControlTester) SendPointerMove(pos rendering.Offset, pointerID int64) bool {
	delta := t.deltaFrom(pointerID, pos)
	t.positions[pointerID] = pos
	return t.control.HandlePointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseMove,
	})
}

// SendPointerUp delivers an up event at pos.
func (t *ControlTester) SendPointerUp(pos rendering.Offset, pointerID int64) bool {
	delta := t.deltaFrom(pointerID, pos)
	delete(t.positions, pointerID)
	return t.control.HandlePointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     delta,
		Phase:     gestures.PointerPhaseUp,
	})
}

// SendPointerCancel aborts the pointer sequence.
func (t *ControlTester) SendPointerCancel(pointerID int64) bool {
	pos := t.positions[pointerID]
	delete(t.positions, pointerID)
	return t.control.HandlePointer(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseCancel,
	})
}

func (t *ControlTester) deltaFrom(pointerID int64, pos rendering.Offset) rendering.Offset {
	prev, ok := t.positions[pointerID]
	if !ok {
		return rendering.Offset{}
	}
	return rendering.Offset{X: pos.X - prev.X, Y: pos.Y - prev.Y}
}

func (t *ControlTester) allocPointer() int64 {
	t.nextID++
	return t.nextID
}
