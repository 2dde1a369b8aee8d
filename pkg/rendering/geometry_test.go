package rendering

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Fatalf("rect = %+v, want {10 20 40 60}", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if c := r.Center(); c.X != 25 || c.Y != 40 {
		t.Fatalf("center = %+v, want {25 40}", c)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)
	tests := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 50, Y: 25}, true},
		{Offset{X: 0, Y: 0}, true},
		{Offset{X: 100, Y: 50}, false}, // right and bottom edges are exclusive
		{Offset{X: -1, Y: 25}, false},
		{Offset{X: 50, Y: 51}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)
	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got != want {
		t.Fatalf("intersection = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(200, 200, 10, 10)
	if !a.Intersect(c).IsEmpty() {
		t.Fatal("disjoint rects must intersect to an empty rect")
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20).Translate(5, -5)
	want := Rect{Left: 15, Top: 5, Right: 35, Bottom: 25}
	if r != want {
		t.Fatalf("translated = %+v, want %+v", r, want)
	}
}

func TestSizeIsEmpty(t *testing.T) {
	if !(Size{}).IsEmpty() {
		t.Error("zero size should be empty")
	}
	if !(Size{Width: 10}).IsEmpty() {
		t.Error("zero height should be empty")
	}
	if (Size{Width: 10, Height: 10}).IsEmpty() {
		t.Error("10x10 should not be empty")
	}
}

func TestRRectFromRectAndRadius(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 40, 40), CircularRadius(8))
	if rr.TopLeft.X != 8 || rr.BottomRight.Y != 8 {
		t.Fatalf("rrect radii = %+v, want uniform 8", rr)
	}
}
