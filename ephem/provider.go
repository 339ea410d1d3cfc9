// Package ephem computes apparent solar positions for an observer on the
// ground. Two engines are available: the Meeus algorithms (default) and
// the suncalc port, selectable by name from the CLI.
package ephem

import (
	"fmt"
	"time"

	"github.com/fauzisd/DailyQiblaObservation/geo"
)

// Observation is the Sun's apparent horizontal position.
type Observation struct {
	Altitude float64 // degrees above the horizon, negative below
	Azimuth  float64 // degrees clockwise from true north, [0, 360)
}

// Provider maps an instant and an observer location to the Sun's
// apparent position. Implementations must be pure: same inputs, same
// observation, no hidden state.
type Provider interface {
	Position(t time.Time, p geo.GeoPoint) (Observation, error)
}

// ByName returns the provider selected by the -ephemeris flag.
func ByName(name string) (Provider, error) {
	switch name {
	case "meeus":
		return MeeusProvider{}, nil
	case "suncalc":
		return SuncalcProvider{}, nil
	}
	return nil, fmt.Errorf("unknown ephemeris engine %q (want meeus or suncalc)", name)
}
