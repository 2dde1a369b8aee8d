package rendering

import "testing"

func TestLayoutTextMeasures(t *testing.T) {
	layout := LayoutText("Left Tab", TextStyle{Color: ColorBlack})

	if layout.Face == nil {
		t.Fatal("layout must resolve a face")
	}
	if layout.Size.Width <= 0 || layout.Size.Height <= 0 {
		t.Fatalf("measured size = %+v, want positive", layout.Size)
	}
	if layout.Ascent <= 0 {
		t.Fatalf("ascent = %v, want positive", layout.Ascent)
	}
	if layout.Style.FontSize != defaultFontSize {
		t.Fatalf("font size = %v, want default %v", layout.Style.FontSize, defaultFontSize)
	}
}

func TestLayoutTextWidthGrowsWithText(t *testing.T) {
	short := LayoutText("A", TextStyle{})
	long := LayoutText("AAAA", TextStyle{})
	if long.Size.Width <= short.Size.Width {
		t.Fatalf("width of longer text = %v, want above %v", long.Size.Width, short.Size.Width)
	}
}
