package geo

import (
	"math"
	"testing"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "valid", lat: 45.0, lon: -122.5},
		{name: "north pole", lat: 90, lon: 0},
		{name: "date line", lat: 0, lon: -180},
		{name: "latitude too high", lat: 90.01, lon: 0, wantErr: true},
		{name: "latitude too low", lat: -91, lon: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lon: 180.5, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -181, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPosition(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPosition(%f, %f) error = %v, wantErr %v",
					tt.lat, tt.lon, err, tt.wantErr)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Position
		wantKm float64
		tolKm  float64
	}{
		{
			name:   "London to Paris",
			a:      Position{Latitude: 51.5074, Longitude: -0.1278},
			b:      Position{Latitude: 48.8566, Longitude: 2.3522},
			wantKm: 343.5,
			tolKm:  2,
		},
		{
			name:   "same point",
			a:      Position{Latitude: 43.7384, Longitude: 7.4246},
			b:      Position{Latitude: 43.7384, Longitude: 7.4246},
			wantKm: 0,
			tolKm:  0.001,
		},
		{
			name:   "one degree of longitude at equator",
			a:      Position{Latitude: 0, Longitude: 0},
			b:      Position{Latitude: 0, Longitude: 1},
			wantKm: 111.2,
			tolKm:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Distance(tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolKm {
				t.Errorf("Distance() = %.2f km, want %.2f ± %.2f", got, tt.wantKm, tt.tolKm)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km    float64
		units string
		want  string
	}{
		{12.3, UnitsMetric, "12.3 km"},
		{0.25, UnitsMetric, "250 m"},
		{16.09344, UnitsImperial, "10.0 mi"},
		{0.3048, UnitsImperial, "1000 ft"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDistance(tt.km, tt.units); got != tt.want {
				t.Errorf("FormatDistance(%v, %s) = %q, want %q", tt.km, tt.units, got, tt.want)
			}
		})
	}
}
