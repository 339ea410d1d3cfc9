package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fauzisd/DailyQiblaObservation/colors"
	"github.com/fauzisd/DailyQiblaObservation/dayframe"
	"github.com/fauzisd/DailyQiblaObservation/ephem"
	"github.com/fauzisd/DailyQiblaObservation/geo"
	"github.com/fauzisd/DailyQiblaObservation/render"
	"github.com/fauzisd/DailyQiblaObservation/solver"
)

type config struct {
	lat, lon  *float64
	tz        *string
	dateStr   *string
	tolerance *float64
	ephemeris *string
	out       *string
	size      *int
	step      *time.Duration
	showHelp  *bool
}

func defineFlags() config {
	return config{
		lat:     flag.Float64("lat", 3.1390, "Observer latitude in degrees"),
		lon:     flag.Float64("lon", 101.6869, "Observer longitude in degrees"),
		tz:      flag.String("tz", "Asia/Kuala_Lumpur", "IANA timezone of the observer"),
		dateStr: flag.String("date", "", "Date in YYYY-MM-DD format; defaults to today in the given timezone"),

		tolerance: flag.Float64("tolerance", 5.0, "Maximum acceptable azimuth error in degrees"),
		ephemeris: flag.String("ephemeris", "meeus", "Solar position engine (meeus or suncalc)"),

		out:  flag.String("out", "sun_path.png", "Output chart PNG file path"),
		size: flag.Int("size", 800, "Chart size (width/height in pixels)"),
		step: flag.Duration("step", time.Minute, "Sun path sampling cadence"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Daily Qibla Observation - Shadow Alignment Finder

Computes the qibla bearing for an observer, the time(s) of day a shadow
points exactly toward or away from the Kaabah, sunrise/sunset, and a
sky-dome chart of the sun's path.

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Observer Options", []string{"lat", "lon", "tz", "date"})
	printGroup("Solver Options", []string{"tolerance", "ephemeris"})
	printGroup("Output", []string{"out", "size", "step"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	loc, err := time.LoadLocation(*cfg.tz)
	if err != nil {
		log.Fatalf("Invalid timezone %q: %v", *cfg.tz, err)
	}
	year, month, day := parseDateOrExit(*cfg.dateStr, loc)

	engine, err := ephem.ByName(*cfg.ephemeris)
	if err != nil {
		log.Fatal(err)
	}
	provider := ephem.Cached(engine, 4096)

	observer := geo.GeoPoint{Lat: *cfg.lat, Lon: *cfg.lon}
	window := solver.NewDayWindow(year, month, day, loc)
	bearing := geo.InitialBearing(observer, geo.Kaabah)

	// The two alignment searches and the day framing are independent
	// pure computations over the same immutable window.
	var (
		facing, behind solver.Result
		events         dayframe.Events
		path           []dayframe.PathPoint
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		facing, err = solver.FindAlignment(provider, observer, window, bearing, *cfg.tolerance)
		return err
	})
	g.Go(func() error {
		var err error
		behind, err = solver.FindAlignment(provider, observer, window, geo.NormalizeBearing(bearing+180), *cfg.tolerance)
		return err
	})
	g.Go(func() error {
		var err error
		events = dayframe.SunEvents(observer, year, month, day)
		path, err = dayframe.SamplePath(provider, observer, window, *cfg.step)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Solar position provider failed: %v", err)
	}

	markers, err := buildMarkers(provider, observer, events, facing, behind, loc)
	if err != nil {
		log.Fatalf("Solar position provider failed: %v", err)
	}

	chart := render.Chart{
		Title: fmt.Sprintf("Sun path on %04d-%02d-%02d at (%.4f, %.4f)",
			year, month, day, observer.Lat, observer.Lon),
		Bearing:     bearing,
		Path:        path,
		Markers:     markers,
		NoAlignment: !facing.Found && !behind.Found,
	}
	img := chart.Render(*cfg.size, render.DefaultStyle())
	if err := render.WritePNG(*cfg.out, img); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}

	printSummary(observer, bearing, events, facing, behind, loc, *cfg.out)
}

func parseDateOrExit(s string, loc *time.Location) (int, time.Month, int) {
	if s == "" {
		return time.Now().In(loc).Date()
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Invalid date format %q (want YYYY-MM-DD): %v", s, err)
	}
	return t.Date()
}

// buildMarkers resolves each reported instant to its observed position
// on the dome, labeled with the local clock time.
func buildMarkers(p ephem.Provider, observer geo.GeoPoint, events dayframe.Events,
	facing, behind solver.Result, loc *time.Location) ([]render.Marker, error) {

	var markers []render.Marker
	add := func(t time.Time, name string, c colors.Color4, star bool) error {
		obs, err := p.Position(t, observer)
		if err != nil {
			return err
		}
		markers = append(markers, render.Marker{
			Obs:   obs,
			Label: name + " " + t.In(loc).Format("15:04:05"),
			Color: c,
			Star:  star,
		})
		return nil
	}

	if events.HasSunrise {
		if err := add(events.Sunrise, "Sunrise", colors.New(0.85, 0.65, 0.0, 1), true); err != nil {
			return nil, err
		}
	}
	if events.HasSunset {
		if err := add(events.Sunset, "Sunset", colors.New(0.0, 0.55, 0.55, 1), true); err != nil {
			return nil, err
		}
	}
	if facing.Found {
		if err := add(facing.Time, "Facing", colors.New(0.85, 0.1, 0.1, 1), false); err != nil {
			return nil, err
		}
	}
	if behind.Found {
		if err := add(behind.Time, "Behind", colors.New(0.75, 0.1, 0.75, 1), false); err != nil {
			return nil, err
		}
	}
	return markers, nil
}

func printSummary(observer geo.GeoPoint, bearing float64, events dayframe.Events,
	facing, behind solver.Result, loc *time.Location, out string) {

	fmt.Printf("Qibla bearing: %.2f deg from true north\n", bearing)
	if observer.InPolarRegion() {
		fmt.Println("Note: observer is inside a polar circle; the sun may stay up or down all day.")
	}

	fmt.Println("\n--- Sun Times ---")
	if events.HasSunrise {
		fmt.Println("Sunrise (Local):", events.Sunrise.In(loc).Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Sunrise time not available for this date.")
	}
	if events.HasSunset {
		fmt.Println("Sunset (Local):", events.Sunset.In(loc).Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("Sunset time not available for this date.")
	}

	fmt.Println("\n--- Shadow Alignment Times ---")
	if !facing.Found && !behind.Found {
		fmt.Println("No valid shadow alignment found on this date.")
	} else {
		if facing.Found {
			printAlignment("Alignment (Facing Qibla):", facing, loc)
		}
		if behind.Found {
			printAlignment("Alignment (Kaabah Behind):", behind, loc)
		}
	}

	fmt.Println("\nChart written to", out)
}

func printAlignment(title string, r solver.Result, loc *time.Location) {
	fmt.Println(title)
	fmt.Println("  UTC:  ", r.Time.UTC().Format("2006-01-02 15:04:05"))
	fmt.Println("  Local:", r.Time.In(loc).Format("2006-01-02 15:04:05"))
	fmt.Printf("  Azimuth error: %.6f deg\n", r.Error)
}
