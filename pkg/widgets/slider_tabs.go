package widgets

import (
	"github.com/go-drift/slidertabs/pkg/animation"
	"github.com/go-drift/slidertabs/pkg/errors"
	"github.com/go-drift/slidertabs/pkg/gestures"
	"github.com/go-drift/slidertabs/pkg/layout"
	"github.com/go-drift/slidertabs/pkg/rendering"
	"github.com/go-drift/slidertabs/pkg/theme"
)

// noPointer marks that no pointer sequence is being tracked.
const noPointer int64 = -1

// TabSelectionListener receives user-driven tab selections.
//
// Calls are synchronous, on the host's UI thread, at the moment a
// transition begins rather than when its animation completes. Programmatic
// selection via [SliderTabs.SelectLeftTab] / [SliderTabs.SelectRightTab]
// never notifies the listener.
type TabSelectionListener interface {
	OnLeftTabSelected()
	OnRightTabSelected()
}

// SliderTabs is a two-position toggle with an animated sliding indicator.
//
// The control divides at its horizontal midpoint. A pointer that goes
// down on the side opposite the indicator starts a press; releasing it
// anywhere switches tabs, animating the indicator across with the
// configured motion profile. Each label is painted twice, once in the
// surface color and once clipped to the indicator, so the text
// crossfades as the indicator passes beneath it.
//
//	tabs := widgets.NewSliderTabs(nil)
//	tabs.SetOnTabSelectedListener(listener)
//	tabs.Layout(layout.Tight(rendering.Size{Width: 200, Height: 56}))
//
// The host drives the control through the [layout.RenderObject] contract
// plus [SliderTabs.HandlePointer], calls [animation.StepTickers] once per
// frame, and may capture the selection across teardown with
// [SliderTabs.SaveState] / [SliderTabs.RestoreState].
type SliderTabs struct {
	layout.RenderBoxBase

	theme    theme.SliderTabsThemeData
	state    SliderState
	pressed  bool
	tracked  int64
	listener TabSelectionListener

	// controller runs in [0, 1]; offsetTween maps progress onto the
	// indicator's pixel range so a resize rescales mid-flight motion.
	controller  *animation.AnimationController
	offsetTween *animation.Tween[float64]

	unsubscribeValue  func()
	unsubscribeStatus func()
}

// NewSliderTabs creates a control styled by td. A nil theme selects the
// defaults; see [theme.DefaultSliderTabsTheme].
func NewSliderTabs(td *theme.SliderTabsThemeData) *SliderTabs {
	s := &SliderTabs{
		theme:       td.Normalized(),
		state:       StateIdleLeft,
		tracked:     noPointer,
		offsetTween: animation.TweenFloat64(0, 0),
	}
	s.controller = animation.NewAnimationController(s.theme.AnimationDuration)
	s.controller.Curve = curveFor(s.theme)
	s.unsubscribeValue = s.controller.AddListener(s.MarkNeedsPaint)
	s.unsubscribeStatus = s.controller.AddStatusListener(s.onAnimationStatus)
	s.SetSelf(s)
	return s
}

// curveFor resolves the theme's motion profile to an easing function.
func curveFor(td theme.SliderTabsThemeData) func(float64) float64 {
	if td.Motion == theme.MotionSpring {
		return animation.SpringCurve(td.SpringFrequency, td.SpringDamping)
	}
	return animation.EaseInOut
}

// ApplyTheme re-applies styling. Selection state and any in-flight
// animation progress are preserved.
func (s *SliderTabs) ApplyTheme(td *theme.SliderTabsThemeData) {
	s.theme = td.Normalized()
	s.controller.Duration = s.theme.AnimationDuration
	s.controller.Curve = curveFor(s.theme)
	s.MarkNeedsLayout()
	s.MarkNeedsPaint()
}

// SetOnTabSelectedListener registers the selection callback, replacing
// any prior listener. A nil listener disables notification.
func (s *SliderTabs) SetOnTabSelectedListener(listener TabSelectionListener) {
	s.listener = listener
}

// State returns the current state machine position.
func (s *SliderTabs) State() SliderState {
	return s.state
}

// Pressed reports whether an opposite-side press is active.
func (s *SliderTabs) Pressed() bool {
	return s.pressed
}

// SliderOffset returns the indicator's horizontal displacement from its
// leftmost position, in [0, width/2].
func (s *SliderTabs) SliderOffset() float64 {
	return s.offsetTween.Transform(s.controller)
}

// Theme returns a copy of the normalized styling in effect.
func (s *SliderTabs) Theme() theme.SliderTabsThemeData {
	return s.theme
}

// SelectLeftTab forces the left tab: no animation, no listener call.
func (s *SliderTabs) SelectLeftTab() {
	s.forceSelect(StateIdleLeft)
}

// SelectRightTab forces the right tab: no animation, no listener call.
func (s *SliderTabs) SelectRightTab() {
	s.forceSelect(StateIdleRight)
}

func (s *SliderTabs) forceSelect(target SliderState) {
	s.state = target
	// JumpTo fires no status notifications, so the snap cannot be
	// mistaken for an animation completing.
	s.controller.JumpTo(progressFor(target))
	s.MarkNeedsPaint()
}

// progressFor returns the controller progress for a rest state.
func progressFor(s SliderState) float64 {
	if s.Settled() == StateIdleRight {
		return 1
	}
	return 0
}

// PerformLayout sizes the control from its preferred dimensions clamped
// into the host's constraints, and rebinds the indicator's pixel range.
func (s *SliderTabs) PerformLayout() {
	constraints := s.Constraints()
	size := constraints.Constrain(rendering.Size{
		Width:  s.theme.PreferredWidth,
		Height: s.theme.PreferredHeight,
	})
	s.SetSize(size)
	if size.IsEmpty() {
		return
	}
	s.offsetTween.End = size.Width / 2
	if s.state.IsIdle() {
		// Resnap so a stale mid-flight progress never survives a
		// resize that happened at rest.
		s.controller.JumpTo(progressFor(s.state))
	}
	// While moving, the animation keeps running toward the same
	// extreme; the tween rebinding rescales it to the new geometry.
}

// HitTest reports a hit anywhere within bounds.
func (s *SliderTabs) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, s.Size()) {
		return false
	}
	result.Add(s)
	return true
}

// HandlePointer interprets the host's pointer events.
//
// Only a down on the opposite side starts a press and is consumed; a
// down on the indicator's own side passes through. Once a press is
// tracked, the matching up switches tabs no matter where the pointer
// ended up, and a cancel clears the press without switching.
func (s *SliderTabs) HandlePointer(event gestures.PointerEvent) bool {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if s.tracked != noPointer {
			return false
		}
		if !oppositeSide(s.state, event.Position.X, s.Size().Width/2) {
			return false
		}
		s.tracked = event.PointerID
		s.pressed = true
		s.MarkNeedsPaint()
		return true

	case gestures.PointerPhaseUp:
		if event.PointerID != s.tracked {
			return false
		}
		s.tracked = noPointer
		s.pressed = false
		s.MarkNeedsPaint()
		s.beginMove(nextOnTap(s.state))
		return true

	case gestures.PointerPhaseCancel:
		if event.PointerID != s.tracked {
			return false
		}
		s.tracked = noPointer
		s.pressed = false
		s.MarkNeedsPaint()
		return true
	}
	return false
}

// beginMove enters a transit state, notifies the listener, and starts
// the indicator animation toward the target extreme.
func (s *SliderTabs) beginMove(target SliderState) {
	if !target.IsMoving() {
		panic(&errors.StateError{
			Op:     "widgets.SliderTabs.beginMove",
			State:  s.state.String(),
			Event:  target.String(),
			Reason: "animated transition target must be a moving state",
		})
	}
	s.state = target
	s.notifySelection(target)
	if target == StateMovingRight {
		s.controller.Forward()
	} else {
		s.controller.Reverse()
	}
}

func (s *SliderTabs) notifySelection(target SliderState) {
	if s.listener == nil {
		return
	}
	if target == StateMovingRight {
		s.listener.OnRightTabSelected()
	} else {
		s.listener.OnLeftTabSelected()
	}
}

// onAnimationStatus resolves transit states when the indicator comes to
// rest at an extreme.
func (s *SliderTabs) onAnimationStatus(status animation.AnimationStatus) {
	if status != animation.AnimationCompleted && status != animation.AnimationDismissed {
		return
	}
	if s.state.IsIdle() {
		panic(&errors.StateError{
			Op:     "widgets.SliderTabs.onAnimationStatus",
			State:  s.state.String(),
			Event:  status.String(),
			Reason: "animation completed while idle",
		})
	}
	s.state = s.state.Settled()
	s.MarkNeedsPaint()
}

// backgroundRect returns the full-bounds background rectangle.
func (s *SliderTabs) backgroundRect() rendering.Rect {
	size := s.Size()
	return rendering.RectFromLTWH(0, 0, size.Width, size.Height)
}

// sliderRect returns the indicator band: half the control's width, inset
// by the configured margin, positioned by the animated offset.
func (s *SliderTabs) sliderRect() rendering.Rect {
	size := s.Size()
	inset := s.theme.SliderInset
	return rendering.RectFromLTWH(
		s.SliderOffset()+inset,
		inset,
		size.Width/2-2*inset,
		size.Height-2*inset,
	)
}

// Paint draws the control. Zero-size layouts paint nothing.
func (s *SliderTabs) Paint(ctx *layout.PaintContext) {
	size := s.Size()
	if size.IsEmpty() {
		return
	}
	canvas := ctx.Canvas
	radius := rendering.CircularRadius(s.theme.CornerRadius)

	background := rendering.DefaultPaint()
	background.Color = s.theme.BackgroundColor
	if s.pressed {
		background.Color = s.theme.BackgroundColorPressed
	}
	canvas.DrawRRect(rendering.RRectFromRectAndRadius(s.backgroundRect(), radius), background)

	slider := s.sliderRect()
	indicator := rendering.DefaultPaint()
	indicator.Color = s.theme.SliderColor
	canvas.DrawRRect(rendering.RRectFromRectAndRadius(slider, radius), indicator)

	left := rendering.LayoutText(s.theme.LeftTabText, s.labelStyle(s.theme.OnSurfaceTextColor))
	right := rendering.LayoutText(s.theme.RightTabText, s.labelStyle(s.theme.OnSurfaceTextColor))
	s.drawCentered(canvas, left, size.Width*0.25, size.Height/2)
	s.drawCentered(canvas, right, size.Width*0.75, size.Height/2)

	// Second pass clipped to the indicator: the selected color shows
	// exactly where the indicator covers the label, so the crossfade
	// needs no per-character interpolation.
	selectedLeft := rendering.LayoutText(s.theme.LeftTabText, s.labelStyle(s.theme.OnTabTextColor))
	selectedRight := rendering.LayoutText(s.theme.RightTabText, s.labelStyle(s.theme.OnTabTextColor))
	canvas.Save()
	canvas.ClipRect(slider)
	s.drawCentered(canvas, selectedLeft, size.Width*0.25, size.Height/2)
	s.drawCentered(canvas, selectedRight, size.Width*0.75, size.Height/2)
	canvas.Restore()
}

func (s *SliderTabs) labelStyle(color rendering.Color) rendering.TextStyle {
	return rendering.TextStyle{
		Color:    color,
		FontSize: s.theme.FontSize,
		Face:     s.theme.Face,
	}
}

func (s *SliderTabs) drawCentered(canvas rendering.Canvas, text *rendering.TextLayout, cx, cy float64) {
	canvas.DrawText(text, rendering.Offset{
		X: cx - text.Size.Width/2,
		Y: cy - text.Size.Height/2,
	})
}

// Dispose stops the animation and releases listener registrations.
func (s *SliderTabs) Dispose() {
	s.unsubscribeValue()
	s.unsubscribeStatus()
	s.controller.Dispose()
	s.listener = nil
}
