// Package testing provides isolated control testing without real
// rendering: a fake animation clock, a recording canvas that captures
// draw operations as comparable values, and a ControlTester that plays
// the host role: layout, frame pumping, pointer synthesis.
//
// Typical use:
//
//	tabs := widgets.NewSliderTabs(nil)
//	tester := slidertest.NewControlTesterWithT(t, tabs)
//	tester.TapAt(rendering.Offset{X: 150, Y: 28})
//	tester.Pump(300 * time.Millisecond)
//
// Import under a name like slidertest to avoid shadowing the standard
// testing package.
package testing
