package maptiles

import (
	"fmt"
	"math"

	"hamview/internal/geo"
)

// TileSize is the edge length of a map tile in pixels.
const TileSize = 256

// Tile addresses one slippy-map grid cell at a zoom level.
type Tile struct {
	X, Y, Zoom int
}

// At returns the tile containing pos at the given zoom level.
func At(pos geo.Position, zoom int) Tile {
	latRad := pos.Latitude * math.Pi / 180
	n := math.Pow(2, float64(zoom))
	x := int(math.Floor((pos.Longitude + 180.0) / 360.0 * n))
	y := int(math.Floor((1.0 - math.Log(math.Tan(latRad)+(1/math.Cos(latRad)))/math.Pi) / 2.0 * n))
	return Tile{X: x, Y: y, Zoom: zoom}
}

// Offset returns the tile dx columns east and dy rows south of t.
func (t Tile) Offset(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy, Zoom: t.Zoom}
}

// corner returns the latitude/longitude of the tile grid point (x, y).
func corner(x, y, zoom int) (lat, lon float64) {
	n := math.Pow(2, float64(zoom))
	lon = float64(x)/n*360.0 - 180.0
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*float64(y)/n)))
	lat = latRad * 180.0 / math.Pi
	return lat, lon
}

// Edges returns the geographic extents of the tile.
func (t Tile) Edges() (south, west, north, east float64) {
	north, west = corner(t.X, t.Y, t.Zoom)
	south, east = corner(t.X+1, t.Y+1, t.Zoom)
	return south, west, north, east
}

// Contains reports whether pos falls inside this tile's coverage.
// The north and west edges are inclusive, the south and east edges
// exclusive, so adjacent tiles never both claim a shared boundary.
func (t Tile) Contains(pos geo.Position) bool {
	south, west, north, east := t.Edges()
	return pos.Latitude > south && pos.Latitude <= north &&
		pos.Longitude >= west && pos.Longitude < east
}

// Path is the conventional zoom/x/y.png relative file path for the tile.
func (t Tile) Path() string {
	return fmt.Sprintf("%d/%d/%d.png", t.Zoom, t.X, t.Y)
}

func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Zoom, t.X, t.Y)
}
