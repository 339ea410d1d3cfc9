package geo

import "math"

// GeoPoint represents a geographic coordinate (WGS 84), in degrees.
type GeoPoint struct {
	Lat float64 // [-90, 90], north positive
	Lon float64 // [-180, 180], east positive
}

// Kaabah is the fixed reference point every bearing aims at.
var Kaabah = GeoPoint{Lat: 21.4225, Lon: 39.8262}

// InPolarRegion reports whether the point lies poleward of the polar
// circles (|lat| > 66.5°), where whole days without sunrise or sunset
// occur.
func (p GeoPoint) InPolarRegion() bool {
	return math.Abs(p.Lat) > 66.5
}
