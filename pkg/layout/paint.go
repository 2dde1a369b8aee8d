package layout

import (
	"github.com/go-drift/slidertabs/pkg/gestures"
	"github.com/go-drift/slidertabs/pkg/rendering"
)

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerHandlers returns the entries that consume pointer input,
// preserving paint order.
func (h *HitTestResult) PointerHandlers() []gestures.PointerHandler {
	handlers := make([]gestures.PointerHandler, 0, len(h.Entries))
	for _, entry := range h.Entries {
		if handler, ok := entry.(gestures.PointerHandler); ok {
			handlers = append(handlers, handler)
		}
	}
	return handlers
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas rendering.Canvas
}

// PaintAt paints a render box translated to the given offset.
func (p *PaintContext) PaintAt(box RenderObject, offset rendering.Offset) {
	if box == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	box.Paint(p)
	p.Canvas.Restore()
}
