package game

import "testing"

func TestOverlapIsSymmetric(t *testing.T) {
	cases := [][2]Rect{
		{{X: 0, Y: 0, Width: 10, Height: 10}, {X: 5, Y: 5, Width: 10, Height: 10}},
		{{X: 0, Y: 0, Width: 10, Height: 10}, {X: 20, Y: 0, Width: 10, Height: 10}},
		{{X: 0, Y: 0, Width: 60, Height: 60}, {X: 59.5, Y: 59.5, Width: 70, Height: 22}},
		{{X: 3, Y: 3, Width: 2, Height: 2}, {X: 0, Y: 0, Width: 10, Height: 10}},
	}
	for i, c := range cases {
		if Overlap(c[0], c[1]) != Overlap(c[1], c[0]) {
			t.Fatalf("case %d: overlap not symmetric for %+v and %+v", i, c[0], c[1])
		}
	}
}

func TestOverlapTouchingEdgesDoNotCollide(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 60, Height: 60}
	below := Rect{X: 0, Y: 60, Width: 70, Height: 22}
	right := Rect{X: 60, Y: 0, Width: 70, Height: 22}
	if Overlap(a, below) {
		t.Fatalf("expected rectangles sharing a horizontal edge not to overlap")
	}
	if Overlap(a, right) {
		t.Fatalf("expected rectangles sharing a vertical edge not to overlap")
	}
	below.Y = 59.9
	if !Overlap(a, below) {
		t.Fatalf("expected overlap once the edges cross")
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := DefaultConfig().RestartButton()
	if !r.Contains(r.X, r.Y) || !r.Contains(r.X+r.Width, r.Y+r.Height) {
		t.Fatalf("expected restart button to include its edges: %+v", r)
	}
	if r.Contains(r.X-0.1, r.Y) {
		t.Fatalf("expected point left of the button to be outside")
	}
}
