package game

import (
	"fmt"
)

// Config holds every tuning value of a session. Units are board units per
// tick; there is no fixed timestep so one tick is one display frame.
type Config struct {
	BoardWidth  float64
	BoardHeight float64

	DoodlerWidth  float64
	DoodlerHeight float64

	PlatformWidth  float64
	PlatformHeight float64

	Gravity             float64
	InitialJumpVelocity float64
	PlatformFallSpeed   float64

	GeneratedPlatforms  int
	PlatformSpacing     float64
	FirstPlatformOffset float64
	AnchorOffset        float64

	BounceLimit int

	KeySpeed   float64
	SwipeSpeed float64

	PaletteSize      int
	PointsPerPalette float64

	Seed int64
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:          360,
		BoardHeight:         576,
		DoodlerWidth:        60,
		DoodlerHeight:       60,
		PlatformWidth:       70,
		PlatformHeight:      22,
		Gravity:             0.4,
		InitialJumpVelocity: -8,
		PlatformFallSpeed:   4,
		GeneratedPlatforms:  6,
		PlatformSpacing:     75,
		FirstPlatformOffset: 150,
		AnchorOffset:        50,
		BounceLimit:         5,
		KeySpeed:            4,
		SwipeSpeed:          7,
		PaletteSize:         5,
		PointsPerPalette:    1000,
	}
}

func (c Config) Validate() error {
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("board size must be positive, got %gx%g", c.BoardWidth, c.BoardHeight)
	}
	if c.DoodlerWidth <= 0 || c.DoodlerHeight <= 0 {
		return fmt.Errorf("doodler size must be positive, got %gx%g", c.DoodlerWidth, c.DoodlerHeight)
	}
	if c.PlatformWidth <= 0 || c.PlatformHeight <= 0 {
		return fmt.Errorf("platform size must be positive, got %gx%g", c.PlatformWidth, c.PlatformHeight)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %g", c.Gravity)
	}
	if c.InitialJumpVelocity >= 0 {
		return fmt.Errorf("initial jump velocity must be negative, got %g", c.InitialJumpVelocity)
	}
	if c.PlatformFallSpeed < 0 {
		return fmt.Errorf("platform fall speed must not be negative, got %g", c.PlatformFallSpeed)
	}
	if c.GeneratedPlatforms < 0 {
		return fmt.Errorf("generated platform count must not be negative, got %d", c.GeneratedPlatforms)
	}
	if c.BounceLimit < 1 {
		return fmt.Errorf("bounce limit must be at least 1, got %d", c.BounceLimit)
	}
	if c.PaletteSize < 1 {
		return fmt.Errorf("palette size must be at least 1, got %d", c.PaletteSize)
	}
	if c.PointsPerPalette <= 0 {
		return fmt.Errorf("points per palette step must be positive, got %g", c.PointsPerPalette)
	}
	return nil
}

// FieldSize is the number of platforms kept on the board: the anchor plus
// the generated ones.
func (c Config) FieldSize() int {
	return c.GeneratedPlatforms + 1
}

// StartPose is where the doodler spawns on start and restart.
func (c Config) StartPose() Doodler {
	return Doodler{
		X:      c.BoardWidth/2 - c.DoodlerWidth/2,
		Y:      c.BoardHeight*7/8 - c.DoodlerHeight,
		Width:  c.DoodlerWidth,
		Height: c.DoodlerHeight,
		VY:     c.InitialJumpVelocity,
		Facing: FacingRight,
	}
}

// RestartButton is the board area of the restart icon drawn on the
// game-over frame. It is doodler sized and centred on the board.
func (c Config) RestartButton() Rect {
	return Rect{
		X:      c.BoardWidth/2 - c.DoodlerWidth/2,
		Y:      c.BoardHeight/2 - c.DoodlerHeight/2,
		Width:  c.DoodlerWidth,
		Height: c.DoodlerHeight,
	}
}
