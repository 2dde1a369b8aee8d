package rendering

import "testing"

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#FF0000", 0xFFFF0000},
		{"ff0000", 0xFFFF0000},
		{"#80FFFFFF", 0x80FFFFFF},
		{" #00CC99 ", 0xFF00CC99},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseHexColorErrors(t *testing.T) {
	for _, in := range []string{"", "#F00", "#GGGGGG", "#FFFFFFFFF"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", in)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if c != 0x44112233 {
		t.Fatalf("RGBA = %#x, want 0x44112233", uint32(c))
	}
	if got := RGB(0x11, 0x22, 0x33); got != 0xFF112233 {
		t.Fatalf("RGB = %#x, want 0xFF112233", uint32(got))
	}
	if got := c.WithAlpha(0xFF); got != 0xFF112233 {
		t.Fatalf("WithAlpha = %#x, want 0xFF112233", uint32(got))
	}
	r, g, b, a := ColorWhite.RGBAF()
	if r != 1 || g != 1 || b != 1 || a != 1 {
		t.Fatalf("white RGBAF = %v %v %v %v, want all 1", r, g, b, a)
	}
}
