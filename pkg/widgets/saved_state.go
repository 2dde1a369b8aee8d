package widgets

// SavedState is the one field a host captures across teardown and
// re-creation. The host wraps it in whatever opaque container its view
// system uses; the control never inspects that container.
type SavedState struct {
	// Selected is the idle-equivalent selection. Transit states are
	// never stored; they map to the rest state they were heading for.
	Selected SliderState `yaml:"selected"`
}

// SaveState captures the current selection. Saving mid-animation
// records the animation's target.
func (s *SliderTabs) SaveState() SavedState {
	return SavedState{Selected: s.state.Settled()}
}

// RestoreState re-applies a captured selection without animating and
// without notifying the listener. A tag outside the idle set (a
// corrupted blob, or one written by a future version) restores to the
// initial left selection rather than failing.
func (s *SliderTabs) RestoreState(saved SavedState) {
	selected := saved.Selected
	if !selected.IsIdle() {
		selected = StateIdleLeft
	}
	s.forceSelect(selected)
}
