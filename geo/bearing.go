package geo

import "math"

// InitialBearing returns the great-circle initial bearing from one point
// toward another, in degrees clockwise from true north, in [0, 360).
func InitialBearing(from, to GeoPoint) float64 {
	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	dLon := (to.Lon - from.Lon) * math.Pi / 180

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return NormalizeBearing(math.Atan2(x, y) * 180 / math.Pi)
}

// NormalizeBearing wraps a bearing into [0, 360).
func NormalizeBearing(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngularDistance returns the unsigned separation between two bearings,
// measured the short way around the circle. The result is in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(a-b+180, 360)
	if d < 0 {
		d += 360
	}
	return math.Abs(d - 180)
}
