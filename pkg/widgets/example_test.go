package widgets_test

import (
	"fmt"

	"github.com/go-drift/slidertabs/pkg/gestures"
	"github.com/go-drift/slidertabs/pkg/layout"
	"github.com/go-drift/slidertabs/pkg/rendering"
	"github.com/go-drift/slidertabs/pkg/theme"
	"github.com/go-drift/slidertabs/pkg/widgets"
)

type printingListener struct{}

func (printingListener) OnLeftTabSelected()  { fmt.Println("left tab selected") }
func (printingListener) OnRightTabSelected() { fmt.Println("right tab selected") }

func ExampleSliderTabs() {
	tabs := widgets.NewSliderTabs(&theme.SliderTabsThemeData{
		LeftTabText:  "Days",
		RightTabText: "Weeks",
	})
	defer tabs.Dispose()
	tabs.SetOnTabSelectedListener(printingListener{})

	tabs.Layout(layout.Tight(rendering.Size{Width: 200, Height: 56}))

	// A press on the right half followed by a release switches tabs. With
	// no animation duration configured the transition settles immediately.
	tap := func(pos rendering.Offset) {
		tabs.HandlePointer(gestures.PointerEvent{
			PointerID: 1, Position: pos, Phase: gestures.PointerPhaseDown,
		})
		tabs.HandlePointer(gestures.PointerEvent{
			PointerID: 1, Position: pos, Phase: gestures.PointerPhaseUp,
		})
	}
	tap(rendering.Offset{X: 150, Y: 28})
	fmt.Println("state:", tabs.State())
	tap(rendering.Offset{X: 50, Y: 28})
	fmt.Println("state:", tabs.State())

	// Output:
	// right tab selected
	// state: idle-right
	// left tab selected
	// state: idle-left
}

func ExampleSliderTabs_saveState() {
	tabs := widgets.NewSliderTabs(nil)
	defer tabs.Dispose()
	tabs.Layout(layout.Tight(rendering.Size{Width: 200, Height: 56}))
	tabs.SelectRightTab()

	saved := tabs.SaveState()
	fmt.Println("saved:", saved.Selected)

	restored := widgets.NewSliderTabs(nil)
	defer restored.Dispose()
	restored.Layout(layout.Tight(rendering.Size{Width: 200, Height: 56}))
	restored.RestoreState(saved)
	fmt.Println("restored:", restored.State())

	// Output:
	// saved: idle-right
	// restored: idle-right
}
