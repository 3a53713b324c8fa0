package mapwidget

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
)

// ExportTo renders the map to a PNG file. A zero region exports the
// whole viewport; otherwise region selects a pixel rectangle of it.
//
// The software renderer produces the frame synchronously, so no
// redraw needs to be awaited before capturing pixels.
func (m *Map) ExportTo(path string, region image.Rectangle) error {
	frame := m.capture()

	if !region.Empty() {
		region = region.Intersect(frame.Bounds())
		if region.Empty() {
			return fmt.Errorf("export region outside viewport")
		}
		cropped := image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
		draw.Draw(cropped, cropped.Bounds(), frame, region.Min, draw.Src)
		frame = cropped
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, frame); err != nil {
		return fmt.Errorf("encode export png: %w", err)
	}

	m.log.Info("MapWidget", "map exported", map[string]interface{}{
		"path":   path,
		"width":  frame.Bounds().Dx(),
		"height": frame.Bounds().Dy(),
	})
	return nil
}

func (m *Map) capture() image.Image {
	theme := fyne.CurrentApp().Settings().Theme()
	return software.Render(m, theme)
}
