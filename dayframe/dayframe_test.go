package dayframe_test

import (
	"testing"
	"time"

	"github.com/fauzisd/DailyQiblaObservation/dayframe"
	"github.com/fauzisd/DailyQiblaObservation/ephem"
	"github.com/fauzisd/DailyQiblaObservation/geo"
	"github.com/fauzisd/DailyQiblaObservation/solver"
)

type positionFunc func(t time.Time, p geo.GeoPoint) (ephem.Observation, error)

func (f positionFunc) Position(t time.Time, p geo.GeoPoint) (ephem.Observation, error) {
	return f(t, p)
}

func TestSunEventsLondonEquinox(t *testing.T) {
	london := geo.GeoPoint{Lat: 51.4769, Lon: -0.0005}
	ev := dayframe.SunEvents(london, 2024, time.March, 20)

	if !ev.HasSunrise || !ev.HasSunset {
		t.Fatalf("expected both events, got %+v", ev)
	}
	if !ev.Sunrise.Before(ev.Sunset) {
		t.Errorf("sunrise %v not before sunset %v", ev.Sunrise, ev.Sunset)
	}
	// Around the equinox London sees roughly 6am-6pm UTC.
	if h := ev.Sunrise.UTC().Hour(); h < 5 || h > 7 {
		t.Errorf("sunrise at %v, want 05-07 UTC", ev.Sunrise.UTC())
	}
	if h := ev.Sunset.UTC().Hour(); h < 17 || h > 19 {
		t.Errorf("sunset at %v, want 17-19 UTC", ev.Sunset.UTC())
	}
}

func TestSunEventsPolar(t *testing.T) {
	arctic := geo.GeoPoint{Lat: 75, Lon: 0}
	cases := []struct {
		name  string
		month time.Month
		day   int
	}{
		{"polar night", time.December, 21},
		{"polar day", time.June, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := dayframe.SunEvents(arctic, 2024, tc.month, tc.day)
			if ev.HasSunrise || ev.HasSunset {
				t.Errorf("expected no events at lat 75 on %v %d, got %+v", tc.month, tc.day, ev)
			}
		})
	}
}

func TestSamplePath(t *testing.T) {
	w := solver.NewDayWindow(2024, time.March, 20, time.UTC)

	// Above the horizon from 6h to 18h into the window, exclusive of
	// the upper bound.
	sun := positionFunc(func(ts time.Time, _ geo.GeoPoint) (ephem.Observation, error) {
		off := ts.Sub(w.Start)
		alt := -10.0
		if off >= 6*time.Hour && off < 18*time.Hour {
			alt = 45.0
		}
		return ephem.Observation{Altitude: alt, Azimuth: 120}, nil
	})

	path, err := dayframe.SamplePath(sun, geo.GeoPoint{}, w, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 720 {
		t.Fatalf("got %d samples, want 720 (12h at 1/min)", len(path))
	}
	for i, pt := range path {
		if pt.Obs.Altitude <= 0 {
			t.Fatalf("sample %d below horizon: %+v", i, pt)
		}
		if i > 0 && !path[i-1].Time.Before(pt.Time) {
			t.Fatalf("samples out of order at %d", i)
		}
	}
	if !path[0].Time.Equal(w.Start.Add(6 * time.Hour)) {
		t.Errorf("first sample at %v, want %v", path[0].Time, w.Start.Add(6*time.Hour))
	}
}

func TestSamplePathAllNight(t *testing.T) {
	w := solver.NewDayWindow(2024, time.December, 21, time.UTC)
	sun := positionFunc(func(time.Time, geo.GeoPoint) (ephem.Observation, error) {
		return ephem.Observation{Altitude: -3, Azimuth: 180}, nil
	})
	path, err := dayframe.SamplePath(sun, geo.GeoPoint{Lat: 75}, w, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Errorf("got %d samples during polar night, want 0", len(path))
	}
}
