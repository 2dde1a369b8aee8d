package testing

import (
	"math"

	"github.com/go-drift/slidertabs/pkg/rendering"
)

// DisplayOp represents a recorded canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements rendering.Canvas and records ops as
// DisplayOp values so tests can assert on painted output without a
// rasterizer.
type RecordingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

// NewRecordingCanvas creates a recording canvas of the given size.
func NewRecordingCanvas(size rendering.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations in draw order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpsNamed returns the recorded operations with the given op name.
func (c *RecordingCanvas) OpsNamed(name string) []DisplayOp {
	var matched []DisplayOp
	for _, op := range c.ops {
		if op.Op == name {
			matched = append(matched, op)
		}
	}
	return matched
}

// Reset discards all recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: map[string]any{"dx": round2(dx), "dy": round2(dy)},
	})
}

func (c *RecordingCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: map[string]any{"rect": serializeRect(rect)},
	})
}

func (c *RecordingCanvas) ClipRRect(rrect rendering.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op: "clipRRect",
		Params: map[string]any{
			"rect":   serializeRect(rrect.Rect),
			"radius": round2(rrect.TopLeft.X),
		},
	})
}

func (c *RecordingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: map[string]any{"color": serializeColor(color)},
	})
}

func (c *RecordingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRect",
		Params: map[string]any{
			"rect":  serializeRect(rect),
			"color": serializeColor(paint.Color),
		},
	})
}

func (c *RecordingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: map[string]any{
			"rect":   serializeRect(rrect.Rect),
			"radius": round2(rrect.TopLeft.X),
			"color":  serializeColor(paint.Color),
		},
	})
}

func (c *RecordingCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: map[string]any{
			"x1": round2(start.X), "y1": round2(start.Y),
			"x2": round2(end.X), "y2": round2(end.Y),
			"color": serializeColor(paint.Color),
		},
	})
}

func (c *RecordingCanvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: map[string]any{
			"text":  layout.Text,
			"x":     round2(position.X),
			"y":     round2(position.Y),
			"color": serializeColor(layout.Style.Color),
		},
	})
}

func (c *RecordingCanvas) Size() rendering.Size {
	return c.size
}

// round2 rounds to two decimal places so recorded geometry compares
// stably across float noise.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func serializeRect(r rendering.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func serializeColor(c rendering.Color) uint32 {
	return uint32(c)
}
