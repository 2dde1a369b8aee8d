// Package layout defines the host-facing render-box contract: the layout
// handshake (constraints in, size out), painting, and hit testing. It is
// the seam between a control and whatever widget tree or view system the
// host embeds it in; the host's element lifecycle stays on the host's side.
package layout

import (
	"github.com/go-drift/slidertabs/pkg/rendering"
)

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() rendering.Size
	Paint(ctx *PaintContext)
	HitTest(position rendering.Offset, result *HitTestResult) bool
	MarkNeedsLayout()
	MarkNeedsPaint()
	NeedsLayout() bool
	NeedsPaint() bool
}

// layoutDelegate is implemented by render boxes embedding RenderBoxBase.
type layoutDelegate interface {
	PerformLayout()
}

// RenderBoxBase provides base behavior for render boxes.
//
// Embedders implement PerformLayout for their sizing logic; the base
// Layout handles constraint bookkeeping, skips redundant passes, and
// clears the dirty flag. Call SetSelf once after construction so the
// base can reach the embedder's PerformLayout.
type RenderBoxBase struct {
	size        rendering.Size
	constraints Constraints
	self        RenderObject
	needsLayout bool
	needsPaint  bool
}

// SetSelf registers the embedding render object. Must be called before
// the first Layout.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() rendering.Size {
	return r.size
}

// SetSize updates the render box size.
// A size change dirties paint since content must be re-recorded.
func (r *RenderBoxBase) SetSize(size rendering.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// Constraints returns the constraints received in the last Layout call.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout runs the layout pass with the given constraints.
// A clean box with unchanged constraints is skipped.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	if !r.needsLayout && constraints == r.constraints {
		return
	}
	r.constraints = constraints
	if delegate, ok := r.self.(layoutDelegate); ok {
		delegate.PerformLayout()
	}
	r.needsLayout = false
}

// MarkNeedsLayout marks this render box as needing layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	r.needsLayout = true
}

// MarkNeedsPaint marks this render box as needing paint.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
}

// NeedsLayout reports whether a layout pass is pending.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint reports whether a paint pass is pending.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint resets the paint dirty flag. Hosts call this after
// recording the control's paint output.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position rendering.Offset, size rendering.Size) bool {
	return position.X >= 0 && position.X < size.Width &&
		position.Y >= 0 && position.Y < size.Height
}
