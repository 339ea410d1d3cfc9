package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func drawDot(img *image.NRGBA, x, y float64, r int, c color.NRGBA) {
	xi, yi := int(x+0.5), int(y+0.5)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(xi+dx, yi+dy, c)
			}
		}
	}
}

func drawSegment(img *image.NRGBA, x0, y0, x1, y1 float64, c color.NRGBA) {
	n := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		img.SetNRGBA(int(x+0.5), int(y+0.5), c)
	}
}

func drawStar(img *image.NRGBA, x, y float64, r int, c color.NRGBA) {
	for _, a := range []float64{0, 45, 90, 135} {
		rad := a * math.Pi / 180
		dx := float64(r) * math.Cos(rad)
		dy := float64(r) * math.Sin(rad)
		drawSegment(img, x-dx, y-dy, x+dx, y+dy, c)
	}
}

func drawDashedCircle(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	for deg := 0.0; deg < 360; deg += 0.25 {
		if math.Mod(deg, 12) >= 6 {
			continue
		}
		a := deg * math.Pi / 180
		img.SetNRGBA(int(cx+r*math.Sin(a)+0.5), int(cy-r*math.Cos(a)+0.5), c)
	}
}

func drawLabel(img *image.NRGBA, x, y int, s string, c color.NRGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// WritePNG writes the rendered chart to disk.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
