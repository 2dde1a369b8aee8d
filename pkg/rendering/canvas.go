package rendering

// Canvas records or renders drawing commands.
//
// The host supplies a Canvas implementation backed by its own drawing
// surface. Controls only issue commands; rasterization is the host's
// concern. The testing package provides a recording implementation for
// asserting on painted output.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws a laid-out text run with its top-left corner at the
	// given position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
