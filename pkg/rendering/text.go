package rendering

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 14
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color    Color
	FontSize float64
	// Face is the font face used for measurement and drawing.
	// Nil selects the built-in default face.
	Face font.Face
}

// TextLayout contains a measured single-line text run and its resolved face.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    Size
	Ascent  float64
	Descent float64
	Face    font.Face
}

// DefaultFace returns the built-in bitmap face used when a style carries
// no explicit font.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// LayoutText measures a single line of text with the style's face.
// Tab labels never wrap, so there is no line-breaking pass.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := style.Face
	if face == nil {
		face = DefaultFace()
	}
	if style.FontSize == 0 {
		style.FontSize = defaultFontSize
	}

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	width := fixedToFloat(font.MeasureString(face, text))

	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    Size{Width: width, Height: ascent + descent},
		Ascent:  ascent,
		Descent: descent,
		Face:    face,
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
