// Package dial draws angles as a round dial: a face, an optional shaded
// sweep and a needle. Angles increase anti-clockwise from the positive x
// axis (3 o'clock).
package dial

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/tigerbot-team/angle/pkg/angle"
)

const DefaultSize = 128

var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Face       = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	Sweep      = color.RGBA{R: 0xff, G: 0xe6, B: 0x00, A: 0xff}
	Needle     = color.RGBA{R: 0xff, G: 0x33, B: 0x00, A: 0xff}
	Ticks      = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
)

type Options struct {
	// Size is the width and height of the image in pixels. Zero means
	// DefaultSize.
	Size int
	// Label, if set, is drawn under the centre of the dial.
	Label string
}

func (o Options) size() int {
	if o.Size <= 0 {
		return DefaultSize
	}
	return o.Size
}

// Render draws a dial with the needle pointing at a.
func Render(a angle.Angle, opts Options) image.Image {
	dc, r := newDial(opts)
	drawNeedle(dc, a, r)
	drawLabel(dc, opts.Label, r)
	return dc.Image()
}

// RenderSweep draws a dial with the directed sweep from start to end shaded
// and the needle pointing at a. The sweep is the arc that angle.Between
// tests against.
func RenderSweep(a, start, end angle.Angle, opts Options) image.Image {
	dc, r := newDial(opts)
	c := float64(dc.Width()) / 2

	width := end.Sub(start).Normalized()
	// Image y grows downwards, so the maths angle is negated and the arc is
	// drawn from the far end of the sweep back to its start.
	from := -start.Add(width).InRadians()
	to := -start.InRadians()
	dc.SetColor(Sweep)
	dc.MoveTo(c, c)
	dc.DrawArc(c, c, r, from, to)
	dc.ClosePath()
	dc.Fill()

	drawNeedle(dc, a, r)
	drawLabel(dc, opts.Label, r)
	return dc.Image()
}

// NeedleTip returns the image coordinates of the point at distance r from
// (cx, cy) in the direction of a.
func NeedleTip(a angle.Angle, cx, cy, r float64) (x, y float64) {
	return cx + r*a.Cos(), cy - r*a.Sin()
}

func newDial(opts Options) (*gg.Context, float64) {
	s := opts.size()
	dc := gg.NewContext(s, s)
	dc.SetColor(Background)
	dc.Clear()

	c := float64(s) / 2
	r := c * 7 / 8
	dc.SetColor(Face)
	dc.DrawCircle(c, c, r)
	dc.Fill()

	dc.SetColor(Ticks)
	dc.SetLineWidth(1)
	for i := 0; i < 360; i += 30 {
		tick := angle.FromDegrees(float64(i))
		x1, y1 := NeedleTip(tick, c, c, r*0.85)
		x2, y2 := NeedleTip(tick, c, c, r)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	return dc, r
}

func drawNeedle(dc *gg.Context, a angle.Angle, r float64) {
	c := float64(dc.Width()) / 2
	x, y := NeedleTip(a, c, c, r*0.9)
	dc.SetColor(Needle)
	dc.SetLineWidth(3)
	dc.DrawLine(c, c, x, y)
	dc.Stroke()
	dc.DrawCircle(c, c, 3)
	dc.Fill()
}

func drawLabel(dc *gg.Context, label string, r float64) {
	if label == "" {
		return
	}
	c := float64(dc.Width()) / 2
	dc.SetColor(Ticks)
	dc.DrawStringAnchored(label, c, c+r/2, 0.5, 0.5)
}

func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save dial to %s: %w", path, err)
	}
	return nil
}

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode dial: %w", err)
	}
	return nil
}
