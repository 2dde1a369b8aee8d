package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/slidertabs/pkg/rendering"
	slidertest "github.com/go-drift/slidertabs/pkg/testing"
	"github.com/go-drift/slidertabs/pkg/theme"
	"github.com/go-drift/slidertabs/pkg/widgets"
)

// countingListener records selection callbacks.
type countingListener struct {
	left  int
	right int
}

func (l *countingListener) OnLeftTabSelected()  { l.left++ }
func (l *countingListener) OnRightTabSelected() { l.right++ }

// The default theme lays out at 200x56, so the midpoint is 100 and the
// idle-right offset is 100.
var (
	rightHalf = rendering.Offset{X: 150, Y: 28}
	leftHalf  = rendering.Offset{X: 50, Y: 28}
)

func newTabs(t *testing.T, td *theme.SliderTabsThemeData) (*widgets.SliderTabs, *slidertest.ControlTester) {
	t.Helper()
	tabs := widgets.NewSliderTabs(td)
	t.Cleanup(tabs.Dispose)
	tester := slidertest.NewControlTesterWithT(t, tabs)
	return tabs, tester
}

func TestSliderTabs_TapRightSwitchesToRight(t *testing.T) {
	tabs, tester := newTabs(t, nil)
	listener := &countingListener{}
	tabs.SetOnTabSelectedListener(listener)

	if !tester.TapAt(rightHalf) {
		t.Fatal("down on the right half should be consumed from idle-left")
	}
	if tabs.State() != widgets.StateMovingRight {
		t.Fatalf("state after tap = %v, want %v", tabs.State(), widgets.StateMovingRight)
	}
	if listener.right != 1 || listener.left != 0 {
		t.Fatalf("listener counts = %d right / %d left, want 1/0", listener.right, listener.left)
	}

	tester.Pump(300 * time.Millisecond)
	if tabs.State() != widgets.StateIdleRight {
		t.Fatalf("state after settle = %v, want %v", tabs.State(), widgets.StateIdleRight)
	}
	if got, want := tabs.SliderOffset(), 100.0; got != want {
		t.Fatalf("offset after settle = %v, want %v", got, want)
	}
	// The callback fired at transition start, not again on completion.
	if listener.right != 1 {
		t.Fatalf("listener.right = %d after settle, want 1", listener.right)
	}
}

func TestSliderTabs_TapLeftSwitchesBack(t *testing.T) {
	tabs, tester := newTabs(t, nil)
	listener := &countingListener{}
	tabs.SetOnTabSelectedListener(listener)
	tabs.SelectRightTab()

	if !tester.TapAt(leftHalf) {
		t.Fatal("down on the left half should be consumed from idle-right")
	}
	if tabs.State() != widgets.StateMovingLeft {
		t.Fatalf("state after tap = %v, want %v", tabs.State(), widgets.StateMovingLeft)
	}
	tester.Pump(300 * time.Millisecond)
	if tabs.State() != widgets.StateIdleLeft {
		t.Fatalf("state after settle = %v, want %v", tabs.State(), widgets.StateIdleLeft)
	}
	if got := tabs.SliderOffset(); got != 0 {
		t.Fatalf("offset after settle = %v, want 0", got)
	}
	if listener.left != 1 || listener.right != 0 {
		t.Fatalf("listener counts = %d left / %d right, want 1/0", listener.left, listener.right)
	}
}

func TestSliderTabs_InterruptReversesFromCurrentOffset(t *testing.T) {
	tabs, tester := newTabs(t, nil)

	tester.TapAt(rightHalf)
	tester.Pump(150 * time.Millisecond)

	mid := tabs.SliderOffset()
	if mid <= 0 || mid >= 100 {
		t.Fatalf("mid-flight offset = %v, want strictly between 0 and 100", mid)
	}

	// While moving right the opposite side is the left half.
	if !tester.TapAt(leftHalf) {
		t.Fatal("down on the left half should be consumed while moving right")
	}
	if tabs.State() != widgets.StateMovingLeft {
		t.Fatalf("state after interrupt = %v, want %v", tabs.State(), widgets.StateMovingLeft)
	}

	// The reversed animation starts from the interrupted offset, not
	// from the abandoned target.
	tester.Pump(0)
	if got := tabs.SliderOffset(); got != mid {
		t.Fatalf("offset at reversal start = %v, want %v", got, mid)
	}

	tester.Pump(300 * time.Millisecond)
	if tabs.State() != widgets.StateIdleLeft {
		t.Fatalf("state after settle = %v, want %v", tabs.State(), widgets.StateIdleLeft)
	}
	if got := tabs.SliderOffset(); got != 0 {
		t.Fatalf("offset after settle = %v, want 0", got)
	}
}

func TestSliderTabs_SameSideDownPassesThrough(t *testing.T) {
	tabs, tester := newTabs(t, nil)
	listener := &countingListener{}
	tabs.SetOnTabSelectedListener(listener)

	if tester.SendPointerDown(leftHalf, 1) {
		t.Fatal("down on the indicator's own side must not be consumed")
	}
	if tabs.Pressed() {
		t.Fatal("pressed must stay false without a tracked press")
	}
	// The up that follows an unconsumed down does nothing either.
	tester.SendPointerUp(leftHalf, 1)
	if tabs.State() != widgets.StateIdleLeft || listener.left+listener.right != 0 {
		t.Fatalf("state = %v with %d callbacks, want idle-left with none",
			tabs.State(), listener.left+listener.right)
	}
}

func TestSliderTabs_ReleaseOutsideStillSwitches(t *testing.T) {
	tabs, tester := newTabs(t, nil)

	id := tester.PressAt(rightHalf)
	if !tabs.Pressed() {
		t.Fatal("expected pressed after opposite-side down")
	}
	// Finger drifts far off the control before release.
	tester.SendPointerMove(rendering.Offset{X: -80, Y: -40}, id)
	tester.SendPointerUp(rendering.Offset{X: -80, Y: -40}, id)

	if tabs.Pressed() {
		t.Fatal("pressed must clear on release")
	}
	if tabs.State() != widgets.StateMovingRight {
		t.Fatalf("state = %v, want %v", tabs.State(), widgets.StateMovingRight)
	}
}

func TestSliderTabs_CancelClearsPressWithoutSwitching(t *testing.T) {
	tabs, tester := newTabs(t, nil)

	id := tester.PressAt(rightHalf)
	tester.SendPointerCancel(id)

	if tabs.Pressed() {
		t.Fatal("pressed must clear on cancel")
	}
	if tabs.State() != widgets.StateIdleLeft {
		t.Fatalf("state = %v, want %v", tabs.State(), widgets.StateIdleLeft)
	}
}

func TestSliderTabs_ProgrammaticSelectionSkipsListenerAndAnimation(t *testing.T) {
	tabs, _ := newTabs(t, nil)
	listener := &countingListener{}
	tabs.SetOnTabSelectedListener(listener)

	tabs.SelectRightTab()
	if tabs.State() != widgets.StateIdleRight {
		t.Fatalf("state = %v, want %v", tabs.State(), widgets.StateIdleRight)
	}
	if got, want := tabs.SliderOffset(), 100.0; got != want {
		t.Fatalf("offset = %v immediately after select, want %v", got, want)
	}

	tabs.SelectLeftTab()
	if tabs.State() != widgets.StateIdleLeft || tabs.SliderOffset() != 0 {
		t.Fatalf("state = %v offset = %v, want idle-left at 0", tabs.State(), tabs.SliderOffset())
	}
	if listener.left+listener.right != 0 {
		t.Fatalf("programmatic selection invoked the listener %d times",
			listener.left+listener.right)
	}
}

func TestSliderTabs_SaveWhileMovingPersistsTarget(t *testing.T) {
	tabs, tester := newTabs(t, nil)

	tester.TapAt(rightHalf)
	tester.Pump(100 * time.Millisecond)
	if tabs.State() != widgets.StateMovingRight {
		t.Fatalf("state = %v, want %v", tabs.State(), widgets.StateMovingRight)
	}

	saved := tabs.SaveState()
	if saved.Selected != widgets.StateIdleRight {
		t.Fatalf("saved state = %v, want %v", saved.Selected, widgets.StateIdleRight)
	}

	// Host tears the control down and recreates it.
	restored := widgets.NewSliderTabs(nil)
	t.Cleanup(restored.Dispose)
	slidertest.NewControlTesterWithT(t, restored)
	restored.RestoreState(saved)

	if restored.State() != widgets.StateIdleRight {
		t.Fatalf("restored state = %v, want %v", restored.State(), widgets.StateIdleRight)
	}
	if got, want := restored.SliderOffset(), 100.0; got != want {
		t.Fatalf("restored offset = %v, want %v", got, want)
	}
}

func TestSliderTabs_RestoreRejectsMovingTag(t *testing.T) {
	tabs, _ := newTabs(t, nil)
	tabs.SelectRightTab()

	tabs.RestoreState(widgets.SavedState{Selected: widgets.StateMovingRight})
	if tabs.State() != widgets.StateIdleLeft {
		t.Fatalf("state = %v, want %v (moving tags restore to the default)",
			tabs.State(), widgets.StateIdleLeft)
	}
	if tabs.SliderOffset() != 0 {
		t.Fatalf("offset = %v, want 0", tabs.SliderOffset())
	}
}

func TestSliderTabs_ResizeWhileIdleResnapsOffset(t *testing.T) {
	tabs, tester := newTabs(t, nil)
	tabs.SelectRightTab()

	tester.Resize(rendering.Size{Width: 320, Height: 56})
	if got, want := tabs.SliderOffset(), 160.0; got != want {
		t.Fatalf("offset after resize = %v, want %v", got, want)
	}
	if tabs.State() != widgets.StateIdleRight {
		t.Fatalf("state after resize = %v, want %v", tabs.State(), widgets.StateIdleRight)
	}
}

func TestSliderTabs_ZeroDurationCompletesSynchronously(t *testing.T) {
	tabs, tester := newTabs(t, &theme.SliderTabsThemeData{AnimationDuration: 0})
	listener := &countingListener{}
	tabs.SetOnTabSelectedListener(listener)

	tester.TapAt(rightHalf)

	// No pump: the transition must already be settled.
	if tabs.State() != widgets.StateIdleRight {
		t.Fatalf("state = %v, want %v without any frame", tabs.State(), widgets.StateIdleRight)
	}
	if got, want := tabs.SliderOffset(), 100.0; got != want {
		t.Fatalf("offset = %v, want %v without any frame", got, want)
	}
	if listener.right != 1 {
		t.Fatalf("listener.right = %d, want 1", listener.right)
	}
}

func TestSliderTabs_ListenerReplacement(t *testing.T) {
	tabs, tester := newTabs(t, nil)
	first := &countingListener{}
	second := &countingListener{}
	tabs.SetOnTabSelectedListener(first)
	tabs.SetOnTabSelectedListener(second)

	tester.TapAt(rightHalf)

	if first.right != 0 {
		t.Fatalf("replaced listener fired %d times", first.right)
	}
	if second.right != 1 {
		t.Fatalf("active listener fired %d times, want 1", second.right)
	}
}

func TestSliderTabs_PaintCrossfadesLabels(t *testing.T) {
	_, tester := newTabs(t, &theme.SliderTabsThemeData{
		LeftTabText:  "Days",
		RightTabText: "Weeks",
	})
	tester.Pump(0)

	canvas := tester.Canvas()
	texts := canvas.OpsNamed("drawText")
	if len(texts) != 4 {
		t.Fatalf("drawText ops = %d, want 4 (two passes per label)", len(texts))
	}
	clips := canvas.OpsNamed("clipRect")
	if len(clips) != 1 {
		t.Fatalf("clipRect ops = %d, want 1 (selected pass clips to the indicator)", len(clips))
	}

	// The clip matches the indicator band at idle-left: offset 0, the
	// default inset of 3 on every edge, half width.
	wantClip := [4]float64{3, 3, 97, 53}
	if got := clips[0].Params["rect"]; got != wantClip {
		t.Fatalf("clip rect = %v, want %v", got, wantClip)
	}

	rrects := canvas.OpsNamed("drawRRect")
	if len(rrects) != 2 {
		t.Fatalf("drawRRect ops = %d, want 2 (background + indicator)", len(rrects))
	}
	if got := rrects[0].Params["color"]; got != uint32(theme.DefaultBackgroundColor) {
		t.Fatalf("background color = %#x, want %#x", got, uint32(theme.DefaultBackgroundColor))
	}
}

func TestSliderTabs_PressedPaintsPressedBackground(t *testing.T) {
	_, tester := newTabs(t, nil)

	tester.PressAt(rightHalf)
	tester.Pump(0)

	rrects := tester.Canvas().OpsNamed("drawRRect")
	if len(rrects) == 0 {
		t.Fatal("expected background drawRRect op")
	}
	if got := rrects[0].Params["color"]; got != uint32(theme.DefaultBackgroundColorPressed) {
		t.Fatalf("pressed background = %#x, want %#x",
			got, uint32(theme.DefaultBackgroundColorPressed))
	}
}

func TestSliderTabs_ZeroSizeLayoutPaintsNothing(t *testing.T) {
	tabs := widgets.NewSliderTabs(nil)
	t.Cleanup(tabs.Dispose)
	tester := slidertest.NewControlTesterSized(tabs, rendering.Size{})
	t.Cleanup(tester.Cleanup)

	tester.Pump(0)
	if got := len(tester.Canvas().Ops()); got != 0 {
		t.Fatalf("ops painted at zero size = %d, want 0", got)
	}
}

func TestSliderTabs_SpringMotionSettles(t *testing.T) {
	tabs, tester := newTabs(t, &theme.SliderTabsThemeData{
		Motion:            theme.MotionSpring,
		AnimationDuration: 200 * time.Millisecond,
	})

	tester.TapAt(rightHalf)
	tester.PumpFrames(30, 10*time.Millisecond)

	if tabs.State() != widgets.StateIdleRight {
		t.Fatalf("state = %v, want %v", tabs.State(), widgets.StateIdleRight)
	}
	if got, want := tabs.SliderOffset(), 100.0; got != want {
		t.Fatalf("offset = %v, want %v", got, want)
	}
}
