package game

import "math/rand/v2"

type Platform struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (p Platform) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Field is the ordered platform set. Index 0 is the oldest platform and the
// first to leave the bottom of the board; new platforms are appended.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	platforms []Platform
}

func newField(cfg Config, rng *rand.Rand) *Field {
	f := &Field{cfg: cfg, rng: rng}
	f.reset()
	return f
}

// reset places the anchor platform near the bottom and stacks the generated
// platforms above it.
func (f *Field) reset() {
	f.platforms = make([]Platform, 0, f.cfg.FieldSize())
	f.platforms = append(f.platforms, Platform{
		X:      f.cfg.BoardWidth / 2,
		Y:      f.cfg.BoardHeight - f.cfg.AnchorOffset,
		Width:  f.cfg.PlatformWidth,
		Height: f.cfg.PlatformHeight,
	})
	for i := 0; i < f.cfg.GeneratedPlatforms; i++ {
		f.platforms = append(f.platforms, Platform{
			X:      f.randomX(),
			Y:      f.cfg.BoardHeight - f.cfg.PlatformSpacing*float64(i) - f.cfg.FirstPlatformOffset,
			Width:  f.cfg.PlatformWidth,
			Height: f.cfg.PlatformHeight,
		})
	}
}

func (f *Field) randomX() float64 {
	return platformX(f.rng, f.cfg.BoardWidth*3/4)
}

// scroll moves platform i down by the fall-away speed, plus the jump speed
// while the doodler is climbing in the upper part of the board.
func (f *Field) scroll(i int, d Doodler) {
	p := &f.platforms[i]
	p.Y += f.cfg.PlatformFallSpeed
	if d.VY < 0 && d.Y < f.cfg.BoardHeight*3/4 {
		p.Y -= f.cfg.InitialJumpVelocity
	}
}

// recycle drops every platform that has left the bottom of the board and
// appends one fresh platform just above the top for each. It returns the
// number of platforms replaced.
func (f *Field) recycle() int {
	n := 0
	for len(f.platforms) > 0 && f.platforms[0].Y >= f.cfg.BoardHeight {
		f.platforms = append(f.platforms[:0], f.platforms[1:]...)
		f.platforms = append(f.platforms, Platform{
			X:      f.randomX(),
			Y:      -f.cfg.PlatformHeight,
			Width:  f.cfg.PlatformWidth,
			Height: f.cfg.PlatformHeight,
		})
		n++
	}
	return n
}

func (f *Field) Len() int {
	return len(f.platforms)
}

// Platforms returns a copy of the field in recycling order.
func (f *Field) Platforms() []Platform {
	return append([]Platform(nil), f.platforms...)
}
