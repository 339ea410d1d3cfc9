package geo

import (
	"math"
	"testing"
)

func TestInitialBearingKualaLumpur(t *testing.T) {
	// Kuala Lumpur -> Kaabah is west-northwest, approximately 292 deg.
	kl := GeoPoint{Lat: 3.1390, Lon: 101.6869}
	got := InitialBearing(kl, Kaabah)
	if math.Abs(got-292) > 1.5 {
		t.Fatalf("InitialBearing(KL, Kaabah) = %.3f, want ~292", got)
	}
}

func TestInitialBearingRange(t *testing.T) {
	points := []GeoPoint{
		{0, 0},
		{3.1390, 101.6869},
		{51.4769, -0.0005},
		{-33.8688, 151.2093},
		{89.9, 10},
		{-89.9, -170},
		{21.4225, 39.8262},
		{0, 179.9},
		{0, -179.9},
	}
	for _, from := range points {
		for _, to := range points {
			b := InitialBearing(from, to)
			if b < 0 || b >= 360 {
				t.Errorf("InitialBearing(%v, %v) = %v, outside [0, 360)", from, to, b)
			}
		}
	}
}

func TestNormalizeBearing(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720, 0},
		{-45, 315},
		{-360, 0},
		{472.3, 112.30000000000001},
	}
	for _, tc := range tests {
		if got := NormalizeBearing(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeBearing(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 350, 10},
		{350, 0, 10},
		{10, 350, 20},
		{90, 270, 180},
		{180, -180, 0},
		{292.5, 112.5, 180},
		{45, 46.5, 1.5},
	}
	for _, tc := range tests {
		if got := AngularDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("AngularDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		// The distance is symmetric in its arguments.
		if got, rev := AngularDistance(tc.a, tc.b), AngularDistance(tc.b, tc.a); math.Abs(got-rev) > 1e-12 {
			t.Errorf("AngularDistance not symmetric: (%v,%v)=%v, (%v,%v)=%v", tc.a, tc.b, got, tc.b, tc.a, rev)
		}
	}
}

func TestInPolarRegion(t *testing.T) {
	tests := []struct {
		lat  float64
		want bool
	}{
		{0, false},
		{66.4, false},
		{66.6, true},
		{-66.6, true},
		{75, true},
		{-60, false},
	}
	for _, tc := range tests {
		p := GeoPoint{Lat: tc.lat}
		if got := p.InPolarRegion(); got != tc.want {
			t.Errorf("InPolarRegion(lat=%v) = %v, want %v", tc.lat, got, tc.want)
		}
	}
}
