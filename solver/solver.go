// Package solver locates the instant within a day at which the Sun's
// azimuth comes closest to a target bearing or its reciprocal: the
// moment an observer's shadow points exactly toward or away from the
// reference point the bearing aims at.
package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/fauzisd/DailyQiblaObservation/ephem"
	"github.com/fauzisd/DailyQiblaObservation/geo"
)

const (
	// BelowHorizonPenalty is the objective value for instants with the
	// Sun at or below the horizon. Larger than any usable tolerance, so
	// night stays inside the search interval but can never win.
	BelowHorizonPenalty = 999

	// coarseStep is the grid spacing of the scan that brackets the
	// global minimum before refinement.
	coarseStep = 5 * time.Minute

	// timeResolution is the stopping criterion on the time axis. The
	// objective has flat plateaus, so termination is on bracket width,
	// not on objective convergence.
	timeResolution = time.Second
)

// Result is the outcome of one alignment search. When Found is false the
// best achievable azimuth error over the window exceeded the tolerance;
// Error still carries that best value, and Time is meaningless.
type Result struct {
	Time  time.Time
	Error float64 // degrees
	Found bool
}

// AzimuthError is the search objective at offset t seconds into the
// window: the angular distance between the Sun's azimuth and the target
// bearing or its reciprocal, whichever is closer. At or below the
// horizon it returns BelowHorizonPenalty.
//
// Taking the minimum over both the target and target+180 makes the
// objective symmetric under reversing the target, so a single search is
// tolerant to either physical alignment of the shadow.
func AzimuthError(p ephem.Provider, obs geo.GeoPoint, w DayWindow, t, target float64) (float64, error) {
	o, err := p.Position(w.At(t), obs)
	if err != nil {
		return 0, fmt.Errorf("solar position at %s: %w", w.At(t).Format(time.RFC3339), err)
	}
	if o.Altitude <= 0 {
		return BelowHorizonPenalty, nil
	}
	target = geo.NormalizeBearing(target)
	direct := geo.AngularDistance(o.Azimuth, target)
	reverse := geo.AngularDistance(o.Azimuth, geo.NormalizeBearing(target+180))
	return math.Min(direct, reverse), nil
}

// FindAlignment locates the instant within w at which AzimuthError is
// smallest, to one-second resolution. A coarse scan over the whole
// window brackets the global minimum past the night-time plateau, and
// golden-section search refines the winning bracket. If the attained
// minimum exceeds tolerance the result reports Found=false: no
// physically meaningful alignment exists that day.
//
// The search is a pure sequential computation; calling it twice with
// identical inputs returns identical results.
func FindAlignment(p ephem.Provider, obs geo.GeoPoint, w DayWindow, target, tolerance float64) (Result, error) {
	f := func(t float64) (float64, error) {
		return AzimuthError(p, obs, w, t, target)
	}

	step := coarseStep.Seconds()
	bestT, bestV := 0.0, math.Inf(1)
	for t := 0.0; t <= w.Seconds(); t += step {
		v, err := f(t)
		if err != nil {
			return Result{}, err
		}
		if v < bestV {
			bestT, bestV = t, v
		}
	}

	lo := math.Max(0, bestT-step)
	hi := math.Min(w.Seconds(), bestT+step)
	t, v, err := goldenSection(f, lo, hi, timeResolution.Seconds())
	if err != nil {
		return Result{}, err
	}
	// The refinement can stall on a plateau; never do worse than the scan.
	if bestV < v {
		t, v = bestT, bestV
	}

	if v > tolerance {
		return Result{Error: v}, nil
	}
	return Result{Time: w.At(t), Error: v, Found: true}, nil
}

// goldenSection minimizes f over [lo, hi], stopping once the bracket is
// narrower than xtol.
func goldenSection(f func(float64) (float64, error), lo, hi, xtol float64) (float64, float64, error) {
	const invPhi = 0.6180339887498949

	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, err := f(c)
	if err != nil {
		return 0, 0, err
	}
	fd, err := f(d)
	if err != nil {
		return 0, 0, err
	}

	for b-a > xtol {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			if fc, err = f(c); err != nil {
				return 0, 0, err
			}
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			if fd, err = f(d); err != nil {
				return 0, 0, err
			}
		}
	}

	mid := (a + b) / 2
	fm, err := f(mid)
	if err != nil {
		return 0, 0, err
	}
	// Keep the best evaluated point, not just the bracket midpoint.
	if fc < fm {
		mid, fm = c, fc
	}
	if fd < fm {
		mid, fm = d, fd
	}
	return mid, fm, nil
}
