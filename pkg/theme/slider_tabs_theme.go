// Package theme holds the construction-time configuration for slidertabs
// controls: colors, labels, animation timing, and preferred geometry.
// Values come either from Go code (struct literals over
// [SliderTabsThemeData]) or from an optional YAML styling file loaded
// with [LoadOptional].
package theme

import (
	"fmt"
	"time"

	"github.com/go-drift/slidertabs/pkg/rendering"
	"golang.org/x/image/font"
)

// Motion selects the easing profile for the sliding indicator.
type Motion int

const (
	// MotionEase animates with a cubic ease-in-out curve.
	MotionEase Motion = iota
	// MotionSpring animates with a damped spring settle.
	MotionSpring
)

// String returns a human-readable representation of the motion profile.
func (m Motion) String() string {
	switch m {
	case MotionEase:
		return "ease"
	case MotionSpring:
		return "spring"
	default:
		return fmt.Sprintf("Motion(%d)", int(m))
	}
}

// Default styling values. All colors follow the ARGB layout of
// [rendering.Color].
const (
	DefaultBackgroundColor        = rendering.Color(0xFFCCCCCC)
	DefaultBackgroundColorPressed = rendering.Color(0xFF999999)
	DefaultSliderColor            = rendering.ColorWhite
	DefaultOnTabTextColor         = rendering.ColorBlack
	DefaultOnSurfaceTextColor     = rendering.ColorBlack

	DefaultLeftTabText  = "Left Tab"
	DefaultRightTabText = "Right Tab"

	DefaultAnimationDuration = 300 * time.Millisecond

	DefaultCornerRadius    = 8.0
	DefaultSliderInset     = 3.0
	DefaultPreferredWidth  = 200.0
	DefaultPreferredHeight = 56.0
	DefaultFontSize        = 14.0

	DefaultSpringFrequency = 7.0
	DefaultSpringDamping   = 1.0
)

// SliderTabsThemeData defines styling for SliderTabs controls.
//
// Fields follow the explicit-by-default convention: a zero value means
// zero, not "use theme default". [DefaultSliderTabsTheme] returns a
// fully populated instance; [SliderTabsThemeData.Normalized] fills only
// the fields whose zero value can never be meant literally (colors,
// labels, geometry), so an explicit AnimationDuration of 0 — an
// instant, unanimated transition — survives normalization.
type SliderTabsThemeData struct {
	// BackgroundColor is the normal background fill.
	BackgroundColor rendering.Color
	// BackgroundColorPressed is the background fill while a press is active.
	BackgroundColorPressed rendering.Color
	// SliderColor is the sliding indicator fill.
	SliderColor rendering.Color
	// OnTabTextColor is the label color where the indicator covers it.
	OnTabTextColor rendering.Color
	// OnSurfaceTextColor is the label color outside the indicator.
	OnSurfaceTextColor rendering.Color

	// LeftTabText and RightTabText are the tab labels.
	LeftTabText  string
	RightTabText string

	// AnimationDuration is the full-width slide time. Zero disables
	// animation: transitions complete immediately. Negative values are
	// clamped to zero.
	AnimationDuration time.Duration

	// CornerRadius rounds the background and indicator rectangles.
	CornerRadius float64
	// SliderInset is the fixed margin between the indicator and the
	// control bounds.
	SliderInset float64
	// PreferredWidth and PreferredHeight are the sizes requested during
	// layout before constraints clamp them.
	PreferredWidth  float64
	PreferredHeight float64

	// FontSize is the label text size.
	FontSize float64
	// Face is the label font face. Nil selects the built-in default.
	Face font.Face

	// Motion selects the indicator easing profile.
	Motion Motion
	// SpringFrequency and SpringDamping shape the spring when Motion is
	// MotionSpring.
	SpringFrequency float64
	SpringDamping   float64
}

// DefaultSliderTabsTheme returns a theme populated with every default.
func DefaultSliderTabsTheme() *SliderTabsThemeData {
	return &SliderTabsThemeData{
		BackgroundColor:        DefaultBackgroundColor,
		BackgroundColorPressed: DefaultBackgroundColorPressed,
		SliderColor:            DefaultSliderColor,
		OnTabTextColor:         DefaultOnTabTextColor,
		OnSurfaceTextColor:     DefaultOnSurfaceTextColor,
		LeftTabText:            DefaultLeftTabText,
		RightTabText:           DefaultRightTabText,
		AnimationDuration:      DefaultAnimationDuration,
		CornerRadius:           DefaultCornerRadius,
		SliderInset:            DefaultSliderInset,
		PreferredWidth:         DefaultPreferredWidth,
		PreferredHeight:        DefaultPreferredHeight,
		FontSize:               DefaultFontSize,
		Motion:                 MotionEase,
		SpringFrequency:        DefaultSpringFrequency,
		SpringDamping:          DefaultSpringDamping,
	}
}

// Normalized returns a copy with absent visual fields filled from the
// defaults. AnimationDuration and Motion are preserved as-is apart from
// clamping negative durations to zero.
func (t *SliderTabsThemeData) Normalized() SliderTabsThemeData {
	if t == nil {
		return *DefaultSliderTabsTheme()
	}
	out := *t
	if out.BackgroundColor == 0 {
		out.BackgroundColor = DefaultBackgroundColor
	}
	if out.BackgroundColorPressed == 0 {
		out.BackgroundColorPressed = DefaultBackgroundColorPressed
	}
	if out.SliderColor == 0 {
		out.SliderColor = DefaultSliderColor
	}
	if out.OnTabTextColor == 0 {
		out.OnTabTextColor = DefaultOnTabTextColor
	}
	if out.OnSurfaceTextColor == 0 {
		out.OnSurfaceTextColor = DefaultOnSurfaceTextColor
	}
	if out.LeftTabText == "" {
		out.LeftTabText = DefaultLeftTabText
	}
	if out.RightTabText == "" {
		out.RightTabText = DefaultRightTabText
	}
	if out.AnimationDuration < 0 {
		out.AnimationDuration = 0
	}
	if out.CornerRadius == 0 {
		out.CornerRadius = DefaultCornerRadius
	}
	if out.SliderInset == 0 {
		out.SliderInset = DefaultSliderInset
	}
	if out.PreferredWidth == 0 {
		out.PreferredWidth = DefaultPreferredWidth
	}
	if out.PreferredHeight == 0 {
		out.PreferredHeight = DefaultPreferredHeight
	}
	if out.FontSize == 0 {
		out.FontSize = DefaultFontSize
	}
	if out.SpringFrequency == 0 {
		out.SpringFrequency = DefaultSpringFrequency
	}
	if out.SpringDamping == 0 {
		out.SpringDamping = DefaultSpringDamping
	}
	return out
}
