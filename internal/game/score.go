package game

import "math"

// Reporter derives the highscore candidate handed to the external store.
// It never persists anything itself.
type Reporter struct {
	known    int
	hasKnown bool
}

// SetKnown records the last highscore the store is known to hold.
func (r *Reporter) SetKnown(highscore int) {
	r.known = highscore
	r.hasKnown = true
}

func (r Reporter) Known() (int, bool) {
	return r.known, r.hasKnown
}

// Candidate is max(score, known highscore), truncated to whole points.
func (r Reporter) Candidate(score float64) int {
	c := int(math.Floor(score))
	if r.hasKnown && r.known > c {
		return r.known
	}
	return c
}

// Improves reports whether the candidate for score beats the known value.
func (r Reporter) Improves(score float64) bool {
	c := int(math.Floor(score))
	return !r.hasKnown || c > r.known
}

// climbPoints is the score earned by one tick at vertical velocity vy.
func climbPoints(vy float64) float64 {
	if vy < 0 {
		return math.Abs(vy)
	}
	return 0
}

// PaletteIndex selects the background colour for a score.
func PaletteIndex(score float64, cfg Config) int {
	idx := int(math.Floor(score/cfg.PointsPerPalette)) % cfg.PaletteSize
	if idx < 0 {
		idx += cfg.PaletteSize
	}
	return idx
}
