// Package render draws the day's sun path as a sky-dome chart: an
// overhead polar projection with the zenith at the center and the
// horizon as the outer circle (radius = 90 - altitude).
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fauzisd/DailyQiblaObservation/colors"
	"github.com/fauzisd/DailyQiblaObservation/dayframe"
	"github.com/fauzisd/DailyQiblaObservation/ephem"
)

// Style collects the chart palette.
type Style struct {
	Background colors.Color4
	Horizon    colors.Color4
	PathLow    colors.Color4 // sun path near the horizon
	PathHigh   colors.Color4 // sun path near the zenith
	Qibla      colors.Color4
	Home       colors.Color4
	Text       colors.Color4
	Banner     colors.Color4
}

func DefaultStyle() Style {
	return Style{
		Background: colors.White(),
		Horizon:    colors.New(0.2, 0.2, 0.2, 1),
		PathLow:    colors.New(1.0, 0.55, 0.0, 1),
		PathHigh:   colors.New(1.0, 0.85, 0.2, 1),
		Qibla:      colors.New(0.0, 0.6, 0.1, 1),
		Home:       colors.New(0.1, 0.2, 0.8, 1),
		Text:       colors.Black(),
		Banner:     colors.New(0.8, 0.1, 0.1, 1),
	}
}

// Marker is a labeled point on the dome (sun event or alignment instant).
type Marker struct {
	Obs   ephem.Observation
	Label string
	Color colors.Color4
	Star  bool // star glyph instead of a dot
}

// Chart describes one day's plot.
type Chart struct {
	Title       string
	Bearing     float64 // qibla bearing, degrees from north
	Path        []dayframe.PathPoint
	Markers     []Marker
	NoAlignment bool
}

// Render rasterizes the chart into a square NRGBA image.
func (ch Chart) Render(size int, st Style) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	bg := st.Background.ToNRGBA()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, bg)
		}
	}

	cx := float64(size) / 2
	cy := float64(size) / 2
	scale := float64(size) * 0.45 / 90.0
	horizonR := 90 * scale

	drawDashedCircle(img, cx, cy, horizonR, st.Horizon.ToNRGBA())
	ch.drawCardinals(img, cx, cy, horizonR, st)

	for _, pt := range ch.Path {
		x, y := domeXY(pt.Obs.Azimuth, pt.Obs.Altitude, cx, cy, scale)
		t := pt.Obs.Altitude / 90
		if t < 0 {
			t = 0
		}
		c := st.PathLow.Mix(st.PathHigh, t).ToNRGBA()
		drawDot(img, x, y, 2, c)
	}

	ch.drawQiblaArrow(img, cx, cy, horizonR, st)

	// Home location sits at the zenith of the projection.
	home := st.Home.ToNRGBA()
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			img.SetNRGBA(int(cx)+dx, int(cy)+dy, home)
		}
	}

	for _, m := range ch.Markers {
		x, y := domeXY(m.Obs.Azimuth, m.Obs.Altitude, cx, cy, scale)
		c := m.Color.ToNRGBA()
		if m.Star {
			drawStar(img, x, y, 7, c)
		} else {
			drawDot(img, x, y, 4, c)
		}
		if m.Label != "" {
			drawLabel(img, int(x)+9, int(y)-5, m.Label, c)
		}
	}

	if ch.NoAlignment {
		msg := "No shadow alignment on this date"
		drawLabel(img, int(cx)-len(msg)*7/2, size-20, msg, st.Banner.ToNRGBA())
	}
	if ch.Title != "" {
		drawLabel(img, 10, 20, ch.Title, st.Text.ToNRGBA())
	}
	return img
}

func (ch Chart) drawCardinals(img *image.NRGBA, cx, cy, r float64, st Style) {
	c := st.Text.ToNRGBA()
	drawLabel(img, int(cx)-3, int(cy-r)-8, "N", c)
	drawLabel(img, int(cx+r)+8, int(cy)+5, "E", c)
	drawLabel(img, int(cx)-3, int(cy+r)+16, "S", c)
	drawLabel(img, int(cx-r)-16, int(cy)+5, "W", c)
}

func (ch Chart) drawQiblaArrow(img *image.NRGBA, cx, cy, r float64, st Style) {
	c := st.Qibla.ToNRGBA()
	a := ch.Bearing * math.Pi / 180
	tx := cx + r*math.Sin(a)
	ty := cy - r*math.Cos(a)
	drawSegment(img, cx, cy, tx, ty, c)

	// Arrow head: two short strokes swept back from the tip.
	ux, uy := (tx-cx)/r, (ty-cy)/r
	bx, by := -ux*14, -uy*14
	for _, rot := range []float64{0.45, -0.45} {
		hx := bx*math.Cos(rot) - by*math.Sin(rot)
		hy := bx*math.Sin(rot) + by*math.Cos(rot)
		drawSegment(img, tx, ty, tx+hx, ty+hy, c)
	}

	label := fmt.Sprintf("Kaabah (%.1f deg)", ch.Bearing)
	drawLabel(img, int(cx+(tx-cx)*0.55)+6, int(cy+(ty-cy)*0.55), label, c)
}

// domeXY projects an observation onto the chart: r = 90 - altitude, so
// the zenith maps to the center and the horizon to the outer circle.
func domeXY(az, alt, cx, cy, scale float64) (float64, float64) {
	r := (90 - alt) * scale
	a := az * math.Pi / 180
	return cx + r*math.Sin(a), cy - r*math.Cos(a)
}
