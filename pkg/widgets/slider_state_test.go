package widgets

import "testing"

func TestSliderState_Settled(t *testing.T) {
	cases := []struct {
		state SliderState
		want  SliderState
	}{
		{StateIdleLeft, StateIdleLeft},
		{StateIdleRight, StateIdleRight},
		{StateMovingLeft, StateIdleLeft},
		{StateMovingRight, StateIdleRight},
	}
	for _, tc := range cases {
		if got := tc.state.Settled(); got != tc.want {
			t.Errorf("%v.Settled() = %v, want %v", tc.state, got, tc.want)
		}
	}
}

func TestSliderState_NextOnTap(t *testing.T) {
	cases := []struct {
		state SliderState
		want  SliderState
	}{
		{StateIdleLeft, StateMovingRight},
		{StateMovingLeft, StateMovingRight},
		{StateIdleRight, StateMovingLeft},
		{StateMovingRight, StateMovingLeft},
	}
	for _, tc := range cases {
		if got := nextOnTap(tc.state); got != tc.want {
			t.Errorf("nextOnTap(%v) = %v, want %v", tc.state, got, tc.want)
		}
	}
}

func TestSliderState_OppositeSide(t *testing.T) {
	const mid = 100.0
	cases := []struct {
		state SliderState
		x     float64
		want  bool
	}{
		// Left-ish states: the opposite side is the right half.
		{StateIdleLeft, 150, true},
		{StateIdleLeft, 50, false},
		{StateMovingLeft, 150, true},
		{StateMovingLeft, 50, false},
		// Right-ish states: the opposite side is the left half.
		{StateIdleRight, 50, true},
		{StateIdleRight, 150, false},
		{StateMovingRight, 50, true},
		{StateMovingRight, 150, false},
		// The midpoint itself belongs to neither opposite side.
		{StateIdleLeft, 100, false},
		{StateIdleRight, 100, false},
	}
	for _, tc := range cases {
		if got := oppositeSide(tc.state, tc.x, mid); got != tc.want {
			t.Errorf("oppositeSide(%v, %v) = %v, want %v", tc.state, tc.x, got, tc.want)
		}
	}
}

func TestSliderState_TextRoundTrip(t *testing.T) {
	for _, state := range []SliderState{StateIdleLeft, StateIdleRight, StateMovingLeft, StateMovingRight} {
		text, err := state.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", state, err)
		}
		var decoded SliderState
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if decoded != state {
			t.Errorf("round trip %v -> %q -> %v", state, text, decoded)
		}
	}

	var decoded SliderState
	if err := decoded.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("expected error for unknown state text")
	}
	if _, err := SliderState(42).MarshalText(); err == nil {
		t.Error("expected error marshaling out-of-range state")
	}
}
