// Package art paints the built-in sprite placeholders used when no image
// file is available.
package art

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Sprite sizes match the board units they are drawn at.
const (
	DoodlerSize    = 60
	PlatformWidth  = 70
	PlatformHeight = 22
	RestartSize    = 60
)

// Doodler paints the player sprite looking left or right.
func Doodler(facingLeft bool) image.Image {
	w, h := float64(DoodlerSize), float64(DoodlerSize)
	dc := gg.NewContext(DoodlerSize, DoodlerSize)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	body := color.RGBA{R: 206, G: 222, B: 58, A: 255}
	shade := color.RGBA{R: 132, G: 160, B: 30, A: 255}
	outline := color.RGBA{R: 50, G: 60, B: 20, A: 255}

	dir := 1.0
	if facingLeft {
		dir = -1
	}
	cx := w / 2

	// Legs.
	dc.SetColor(outline)
	dc.SetLineWidth(3)
	dc.SetLineCapRound()
	for _, off := range []float64{-12, -4, 4, 12} {
		dc.DrawLine(cx+off, h*0.78, cx+off, h*0.94)
		dc.Stroke()
	}

	// Body.
	grad := gg.NewLinearGradient(0, h*0.15, 0, h*0.82)
	grad.AddColorStop(0, body)
	grad.AddColorStop(1, shade)
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(cx-20, h*0.15, 40, h*0.65, 16)
	dc.Fill()
	dc.SetColor(outline)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(cx-20, h*0.15, 40, h*0.65, 16)
	dc.Stroke()

	// Snout points the way the doodler faces.
	snoutX := cx + dir*18
	dc.SetColor(body)
	dc.DrawRectangle(math.Min(snoutX, snoutX+dir*10), h*0.3, 10, 9)
	dc.Fill()
	dc.SetColor(outline)
	dc.DrawEllipse(snoutX+dir*11, h*0.3+4.5, 2.5, 5.5)
	dc.Stroke()

	// Eyes.
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(cx+dir*6, h*0.27, 5)
	dc.Fill()
	dc.SetColor(outline)
	dc.DrawCircle(cx+dir*8, h*0.27, 2)
	dc.Fill()

	// Stripes.
	dc.SetRGBA(0.2, 0.3, 0.1, 0.6)
	dc.SetLineWidth(2)
	for i := 0; i < 3; i++ {
		y := h*0.58 + float64(i)*5
		dc.DrawLine(cx-18, y, cx+18, y)
		dc.Stroke()
	}
	return dc.Image()
}

// Platform paints a grass-green ledge.
func Platform() image.Image {
	w, h := float64(PlatformWidth), float64(PlatformHeight)
	dc := gg.NewContext(PlatformWidth, PlatformHeight)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	grad := gg.NewLinearGradient(0, 0, 0, h)
	grad.AddColorStop(0, color.RGBA{R: 140, G: 220, B: 60, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 60, G: 140, B: 30, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(1, 2, w-2, h-4, 7)
	dc.Fill()

	dc.SetRGBA(0.1, 0.3, 0.05, 1)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(1, 2, w-2, h-4, 7)
	dc.Stroke()

	dc.SetRGBA(1, 1, 1, 0.35)
	dc.SetLineWidth(2)
	dc.DrawLine(8, 6, w-8, 6)
	dc.Stroke()
	return dc.Image()
}

// Restart paints a circular arrow on a light disc.
func Restart() image.Image {
	s := float64(RestartSize)
	dc := gg.NewContext(RestartSize, RestartSize)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	c := s / 2
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawCircle(c, c, c-1)
	dc.Fill()

	dc.SetRGB(0.25, 0, 0)
	dc.SetLineWidth(5)
	dc.SetLineCapRound()
	r := s * 0.28
	start := gg.Radians(-60)
	end := gg.Radians(240)
	dc.DrawArc(c, c, r, start, end)
	dc.Stroke()

	// Arrow head at the open end of the arc.
	tipX := c + r*math.Cos(start)
	tipY := c + r*math.Sin(start)
	dc.MoveTo(tipX+8, tipY-2)
	dc.LineTo(tipX-3, tipY-9)
	dc.LineTo(tipX-1, tipY+6)
	dc.ClosePath()
	dc.Fill()
	return dc.Image()
}
