// Package dayframe frames a calendar day for presentation: sunrise and
// sunset instants, and a sampled above-horizon sun path.
package dayframe

import (
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/fauzisd/DailyQiblaObservation/ephem"
	"github.com/fauzisd/DailyQiblaObservation/geo"
	"github.com/fauzisd/DailyQiblaObservation/solver"
)

// Events holds the day's sun events, in UTC. Either may be absent at
// extreme latitudes (polar day or polar night).
type Events struct {
	Sunrise    time.Time
	Sunset     time.Time
	HasSunrise bool
	HasSunset  bool
}

// SunEvents returns sunrise and sunset for the given calendar day.
// go-sunrise reports a zero time when an event does not occur; that maps
// to the Has flags here.
func SunEvents(obs geo.GeoPoint, year int, month time.Month, day int) Events {
	rise, set := sunrise.SunriseSunset(obs.Lat, obs.Lon, year, month, day)
	return Events{
		Sunrise:    rise,
		Sunset:     set,
		HasSunrise: !rise.IsZero(),
		HasSunset:  !set.IsZero(),
	}
}

// PathPoint is one above-horizon sample of the Sun's position.
type PathPoint struct {
	Time time.Time
	Obs  ephem.Observation
}

// SamplePath samples the Sun across the window at a fixed cadence and
// keeps the points above the horizon, in time order.
func SamplePath(p ephem.Provider, obs geo.GeoPoint, w solver.DayWindow, step time.Duration) ([]PathPoint, error) {
	var path []PathPoint
	for t := w.Start; !t.After(w.End()); t = t.Add(step) {
		o, err := p.Position(t, obs)
		if err != nil {
			return nil, fmt.Errorf("sampling sun path at %s: %w", t.Format(time.RFC3339), err)
		}
		if o.Altitude > 0 {
			path = append(path, PathPoint{Time: t, Obs: o})
		}
	}
	return path, nil
}
