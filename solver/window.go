package solver

import "time"

// DayWindow is one local calendar day expressed as a UTC interval.
type DayWindow struct {
	Start    time.Time
	Duration time.Duration
}

// NewDayWindow frames the given local calendar day: local midnight to the
// next local midnight, converted to UTC. DST transition days come out as
// 23- or 25-hour windows rather than a fixed 86400 seconds.
func NewDayWindow(year int, month time.Month, day int, loc *time.Location) DayWindow {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)
	return DayWindow{Start: start.UTC(), Duration: end.Sub(start)}
}

// At converts an offset in seconds from the window start to an instant.
func (w DayWindow) At(offsetSec float64) time.Time {
	return w.Start.Add(time.Duration(offsetSec * float64(time.Second)))
}

// End returns the instant the window closes.
func (w DayWindow) End() time.Time {
	return w.Start.Add(w.Duration)
}

// Seconds returns the window length in seconds.
func (w DayWindow) Seconds() float64 {
	return w.Duration.Seconds()
}
