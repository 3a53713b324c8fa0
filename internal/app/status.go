package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"hamview/internal/geo"
)

// StatusBar shows the map scale on the left and the geographic
// position under the cursor on the right.
type StatusBar struct {
	container   *fyne.Container
	scaleLabel  *widget.Label
	cursorLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	scaleLabel := widget.NewLabel("Scale: --")
	cursorLabel := widget.NewLabel("--, --")

	mainContainer := container.NewBorder(
		nil, nil,
		scaleLabel,
		cursorLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		scaleLabel:  scaleLabel,
		cursorLabel: cursorLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetScale(text string) {
	sb.scaleLabel.SetText("Scale: " + text)
}

func (sb *StatusBar) SetCursor(pos geo.Position) {
	sb.cursorLabel.SetText(fmt.Sprintf("%.4f, %.4f", pos.Latitude, pos.Longitude))
}
