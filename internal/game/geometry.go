package game

// Rect is an axis-aligned box in board units, origin top-left.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Overlap reports whether a and b intersect. Edges that only touch do not
// count.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}
