package geo

import "fmt"

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"

	kmPerMile = 1.609344
)

// FormatDistance renders a distance in kilometers as a human-readable
// string in the configured unit system. Short distances switch to
// meters or feet so map scales stay legible when zoomed in.
func FormatDistance(km float64, units string) string {
	if units == UnitsImperial {
		miles := km / kmPerMile
		if miles < 1 {
			return fmt.Sprintf("%.0f ft", miles*5280)
		}
		return fmt.Sprintf("%.1f mi", miles)
	}
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}
