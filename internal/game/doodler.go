package game

// Facing selects which doodler sprite is drawn.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Doodler is the player entity. It is created once per session and only
// repositioned on restart.
type Doodler struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	VX     float64
	VY     float64
	Facing Facing
}

func (d Doodler) Bounds() Rect {
	return Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// stepHorizontal moves the doodler by vx and wraps it around the board.
// The right edge compares against the full board width, so the sprite is
// allowed to leave the board before it reappears on the left.
func (d *Doodler) stepHorizontal(boardWidth float64) {
	d.X += d.VX
	if d.X > boardWidth {
		d.X = 0
	} else if d.X+d.Width < 0 {
		d.X = boardWidth
	}
}

// stepVertical applies gravity and reports whether the doodler fell below
// the board.
func (d *Doodler) stepVertical(gravity, boardHeight float64) bool {
	d.VY += gravity
	d.Y += d.VY
	return d.Y > boardHeight
}

func (d *Doodler) steer(vx float64, facing Facing) {
	d.VX = vx
	d.Facing = facing
}
