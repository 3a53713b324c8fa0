package mapwidget

import (
	"errors"

	"hamview/internal/geo"
	"hamview/internal/maptiles"
)

var (
	// ErrNoCenter is returned when a coordinate query is made before
	// a center position has been set.
	ErrNoCenter = errors.New("map center not set")

	// ErrDegenerateBounds is returned when the bounding box has zero
	// extent on either axis and a conversion would divide by zero.
	ErrDegenerateBounds = errors.New("degenerate map bounds")
)

// TileSlot pairs a visible tile with its column/row offset from the
// center tile. Offsets run from -width/2..width/2 and -height/2..height/2.
type TileSlot struct {
	Tile   maptiles.Tile
	DX, DY int
}

// Viewport holds the geographic-to-pixel transform state for a map
// view sized in whole tiles. It owns no toolkit resources and is only
// mutated from the UI goroutine.
//
// Bounds are kept in a normalized non-negative space (latitude + 90,
// longitude + 180) so the interval arithmetic never crosses zero.
type Viewport struct {
	width    int // tiles
	height   int // tiles
	tileSize int // pixels
	zoom     int

	center *geo.Position

	latMin, latMax float64 // normalized
	lonMin, lonMax float64 // normalized

	// Empirical per-bounds pixel correction. The forward transform
	// is biased on the latitude axis at low zoom; the offset is
	// measured against the center tile's corner each time the bounds
	// change rather than derived in closed form. See CalculateBounds.
	xFudge, yFudge float64

	tiles []TileSlot
}

func NewViewport(width, height, tileSize, zoom int) *Viewport {
	return &Viewport{
		width:    width,
		height:   height,
		tileSize: tileSize,
		zoom:     zoom,
	}
}

// SetCenter moves the viewport center. Bounds are stale until the
// next CalculateBounds call.
func (v *Viewport) SetCenter(pos geo.Position) {
	p := pos
	v.center = &p
}

// Center returns the current center position, if one has been set.
func (v *Viewport) Center() (geo.Position, bool) {
	if v.center == nil {
		return geo.Position{}, false
	}
	return *v.center, true
}

// SetZoom changes the zoom level. Bounds are stale until recalculated.
func (v *Viewport) SetZoom(zoom int) {
	v.zoom = zoom
}

func (v *Viewport) Zoom() int {
	return v.zoom
}

// TileSpan returns the viewport dimensions in tile units.
func (v *Viewport) TileSpan() (width, height int) {
	return v.width, v.height
}

// PixelSize returns the viewport dimensions in pixels.
func (v *Viewport) PixelSize() (width, height int) {
	return v.width * v.tileSize, v.height * v.tileSize
}

func (v *Viewport) TileSize() int {
	return v.tileSize
}

// VisibleTiles returns the tiles covering the viewport after the last
// bounds calculation, with their offsets from the center tile.
func (v *Viewport) VisibleTiles() []TileSlot {
	return v.tiles
}

// CalculateBounds derives the geographic bounding box from the corner
// tiles around the center, then measures the fudge offsets: the
// uncorrected forward transform is run on the center tile's
// north/west corner, and the difference from the expected pixel
// position (half the viewport) is recorded. The offsets are only
// valid for the current center and zoom and are remeasured on every
// call.
func (v *Viewport) CalculateBounds() error {
	if v.center == nil {
		return ErrNoCenter
	}

	center := maptiles.At(*v.center, v.zoom)
	deltaW := v.width / 2
	deltaH := v.height / 2
	topLeft := center.Offset(-deltaW, -deltaH)
	botRight := center.Offset(deltaW, deltaH)

	latMin, _, _, _ := botRight.Edges()
	_, lonMin, latMax, _ := topLeft.Edges()
	_, _, _, lonMax := botRight.Edges()

	v.latMin = latMin + geo.LatMax
	v.latMax = latMax + geo.LatMax
	v.lonMin = lonMin + geo.LonMax
	v.lonMax = lonMax + geo.LonMax

	v.xFudge = 0
	v.yFudge = 0

	_, west, north, _ := center.Edges()
	x, y, err := v.project(geo.Position{Latitude: north, Longitude: west})
	if err != nil {
		return err
	}
	v.xFudge = float64(deltaW*v.tileSize) - x
	v.yFudge = float64(deltaH*v.tileSize) - y

	v.tiles = v.tiles[:0]
	for dy := -deltaH; dy <= deltaH; dy++ {
		for dx := -deltaW; dx <= deltaW; dx++ {
			v.tiles = append(v.tiles, TileSlot{Tile: center.Offset(dx, dy), DX: dx, DY: dy})
		}
	}

	return nil
}

// project is the forward transform without the fudge correction.
func (v *Viewport) project(pos geo.Position) (x, y float64, err error) {
	latSpan := v.latMax - v.latMin
	lonSpan := v.lonMax - v.lonMin
	if latSpan == 0 || lonSpan == 0 {
		return 0, 0, ErrDegenerateBounds
	}

	// Pixel origin is top-left; latitude grows northward, so both
	// fractions are inverted.
	y = 1 - ((pos.Latitude + geo.LatMax - v.latMin) / latSpan)
	x = 1 - ((pos.Longitude + geo.LonMax - v.lonMin) / lonSpan)

	x *= float64(v.tileSize * v.width)
	y *= float64(v.tileSize * v.height)
	return x, y, nil
}

// LatLon2XY translates a geographic position to viewport pixel
// coordinates. CalculateBounds must have run for the current center
// and zoom.
func (v *Viewport) LatLon2XY(pos geo.Position) (x, y float64, err error) {
	if v.center == nil {
		return 0, 0, ErrNoCenter
	}
	x, y, err = v.project(pos)
	if err != nil {
		return 0, 0, err
	}
	return x + v.xFudge, y + v.yFudge, nil
}

// XY2LatLon is the exact inverse of LatLon2XY.
func (v *Viewport) XY2LatLon(x, y float64) (geo.Position, error) {
	if v.center == nil {
		return geo.Position{}, ErrNoCenter
	}
	latSpan := v.latMax - v.latMin
	lonSpan := v.lonMax - v.lonMin
	if latSpan == 0 || lonSpan == 0 {
		return geo.Position{}, ErrDegenerateBounds
	}

	x -= v.xFudge
	y -= v.yFudge

	lon := 1 - (x / float64(v.tileSize*v.width))
	lat := 1 - (y / float64(v.tileSize*v.height))

	lat = lat*latSpan + v.latMin - geo.LatMax
	lon = lon*lonSpan + v.lonMin - geo.LonMax

	return geo.Position{Latitude: lat, Longitude: lon}, nil
}

// PointVisible reports whether pos falls inside any currently
// displayed tile.
func (v *Viewport) PointVisible(pos geo.Position) bool {
	for _, slot := range v.tiles {
		if slot.Tile.Contains(pos) {
			return true
		}
	}
	return false
}

// ScaleText returns a human-readable label for the width of the map
// scale ladder: the ground distance between two pixel points one tile
// apart, scaled to the ladder width of half a tile.
func (v *Viewport) ScaleText(units string) (string, error) {
	size := float64(v.tileSize)
	posA, err := v.XY2LatLon(size, size)
	if err != nil {
		return "", err
	}
	posB, err := v.XY2LatLon(size*2, size)
	if err != nil {
		return "", err
	}

	ladderPixels := float64(v.tileSize / 2)
	width := posA.Distance(posB) * (ladderPixels / size)
	return geo.FormatDistance(width, units), nil
}
