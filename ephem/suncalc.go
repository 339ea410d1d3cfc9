package ephem

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/fauzisd/DailyQiblaObservation/geo"
)

// SuncalcProvider wraps the suncalc solar position algorithm. It is
// coarser than the Meeus chain (a few tenths of a degree) but well
// inside the alignment tolerances in use, and useful as an independent
// cross-check.
type SuncalcProvider struct{}

func (SuncalcProvider) Position(t time.Time, p geo.GeoPoint) (Observation, error) {
	pos := suncalc.GetPosition(t, p.Lat, p.Lon)
	// suncalc reports azimuth in radians from south, westward positive.
	az := geo.NormalizeBearing(pos.Azimuth*180/math.Pi + 180)
	return Observation{
		Altitude: pos.Altitude * 180 / math.Pi,
		Azimuth:  az,
	}, nil
}
