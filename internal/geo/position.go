package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	LatMax = 90.0
	LonMax = 180.0

	earthRadiusKm = 6371.0
)

var ErrOutOfRange = errors.New("coordinates out of range")

// Position is an immutable latitude/longitude pair in decimal degrees.
type Position struct {
	Latitude  float64
	Longitude float64
}

func NewPosition(lat, lon float64) (Position, error) {
	if lat < -LatMax || lat > LatMax || lon < -LonMax || lon > LonMax {
		return Position{}, fmt.Errorf("%w: %.4f,%.4f", ErrOutOfRange, lat, lon)
	}
	return Position{Latitude: lat, Longitude: lon}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
}

// Distance returns the great-circle distance to other in kilometers.
func (p Position) Distance(other Position) float64 {
	lat1 := p.Latitude * math.Pi / 180
	lat2 := other.Latitude * math.Pi / 180
	dLat := (other.Latitude - p.Latitude) * math.Pi / 180
	dLon := (other.Longitude - p.Longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
