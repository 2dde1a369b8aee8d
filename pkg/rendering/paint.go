package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how a shape is drawn.
type Paint struct {
	// Color is the fill or stroke color.
	Color Color
	// Style selects fill or stroke drawing.
	Style PaintStyle
	// StrokeWidth is the stroke thickness when Style is PaintStyleStroke.
	StrokeWidth float64
	// AntiAlias enables edge smoothing.
	AntiAlias bool
}

// DefaultPaint returns an anti-aliased fill paint in opaque black.
func DefaultPaint() Paint {
	return Paint{
		Color:     ColorBlack,
		Style:     PaintStyleFill,
		AntiAlias: true,
	}
}
