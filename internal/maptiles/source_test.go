package maptiles

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"hamview/internal/logger"
)

func testLogger() logger.Logger {
	return logger.NewZerolog(os.Stderr, zerolog.Disabled)
}

func writeTestTile(t *testing.T, dir string, tile Tile, c color.RGBA) {
	t.Helper()

	path := filepath.Join(dir, tile.Path())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, y, c)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLocalSourceReadsTileFromDisk(t *testing.T) {
	dir := t.TempDir()
	tile := Tile{X: 3, Y: 5, Zoom: 4}
	writeTestTile(t, dir, tile, color.RGBA{10, 200, 30, 255})

	src := NewLocalSource(dir, testLogger())
	img, err := src.Image(tile)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}

	r, g, b, _ := img.At(100, 100).RGBA()
	if r>>8 != 10 || g>>8 != 200 || b>>8 != 30 {
		t.Errorf("unexpected pixel value (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestLocalSourcePlaceholderFallback(t *testing.T) {
	src := NewLocalSource(t.TempDir(), testLogger())

	img, err := src.Image(Tile{X: 1, Y: 2, Zoom: 3})
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != TileSize || bounds.Dy() != TileSize {
		t.Errorf("placeholder size %dx%d, want %dx%d",
			bounds.Dx(), bounds.Dy(), TileSize, TileSize)
	}
}

func TestLocalSourceCaches(t *testing.T) {
	dir := t.TempDir()
	tile := Tile{X: 0, Y: 0, Zoom: 0}
	writeTestTile(t, dir, tile, color.RGBA{50, 50, 50, 255})

	src := NewLocalSource(dir, testLogger())
	first, err := src.Image(tile)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}

	// A second lookup must not touch the directory again.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("remove tile dir: %v", err)
	}
	second, err := src.Image(tile)
	if err != nil {
		t.Fatalf("Image() after cache error: %v", err)
	}
	if first != second {
		t.Error("cached lookup returned a different image")
	}
}
