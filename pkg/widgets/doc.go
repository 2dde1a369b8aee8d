// Package widgets contains the SliderTabs control: a two-position
// toggle with an animated sliding indicator, themable appearance, and
// selection persistence across host-driven re-creation.
//
// The control is host-agnostic. It speaks three narrow contracts: the
// render-box protocol from [github.com/go-drift/slidertabs/pkg/layout]
// for sizing, painting, and hit testing; pointer events from
// [github.com/go-drift/slidertabs/pkg/gestures]; and a frame tick via
// [github.com/go-drift/slidertabs/pkg/animation.StepTickers]. Anything
// that can supply those, whether a widget framework, a game loop, or a
// test harness, can embed it.
package widgets
