package maptiles

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder renders a substitute tile carrying its zoom/x/y address,
// used when no tile image exists on disk.
func Placeholder(t Tile) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	bg := color.RGBA{200, 220, 255, 255}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	border := color.RGBA{100, 100, 100, 255}
	edges := []image.Rectangle{
		image.Rect(0, 0, TileSize, 1),
		image.Rect(0, TileSize-1, TileSize, TileSize),
		image.Rect(0, 0, 1, TileSize),
		image.Rect(TileSize-1, 0, TileSize, TileSize),
	}
	for _, rect := range edges {
		draw.Draw(img, rect, &image.Uniform{border}, image.Point{}, draw.Src)
	}

	drawCaption(img, t.String())
	return img
}

func drawCaption(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{60, 60, 60, 255}),
		Face: face,
	}

	textWidth := d.MeasureString(text).Round()
	textHeight := face.Metrics().Height.Round()

	d.Dot = fixed.Point26_6{
		X: fixed.I((TileSize - textWidth) / 2),
		Y: fixed.I((TileSize + textHeight) / 2),
	}
	d.DrawString(text)
}
