package ephem

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"

	"github.com/fauzisd/DailyQiblaObservation/geo"
)

// MeeusProvider derives the Sun's horizontal position from the Meeus
// algorithms: apparent RA/Dec of the Sun, rotated into the observer's
// frame through the apparent sidereal time at the instant.
type MeeusProvider struct{}

func (MeeusProvider) Position(t time.Time, p geo.GeoPoint) (Observation, error) {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)
	gast := sidereal.Apparent(jd).Angle().Rad()

	lat := p.Lat * math.Pi / 180
	lon := p.Lon * math.Pi / 180
	decR := dec.Rad()

	// Local hour angle, east longitudes positive.
	h := gast + lon - ra.Rad()

	sinAlt := math.Sin(lat)*math.Sin(decR) + math.Cos(lat)*math.Cos(decR)*math.Cos(h)
	alt := math.Asin(sinAlt)

	// Meeus measures azimuth westward from south; rebase to north.
	az := math.Atan2(math.Sin(h), math.Cos(h)*math.Sin(lat)-math.Tan(decR)*math.Cos(lat))
	azDeg := geo.NormalizeBearing(az*180/math.Pi + 180)

	return Observation{Altitude: alt * 180 / math.Pi, Azimuth: azDeg}, nil
}
