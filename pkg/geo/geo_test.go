package geo

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}

	if got := r.MaxX(); got != 4 {
		t.Errorf("MaxX() = %v, want 4", got)
	}
	if got := r.MaxY(); got != 6 {
		t.Errorf("MaxY() = %v, want 6", got)
	}
	if got := r.Center(); got != (Point{X: 2.5, Y: 4}) {
		t.Errorf("Center() = %v, want {2.5 4}", got)
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Pt(5, 6.8), 0.8, 0.3)

	want := Rect{X: 4.6, Y: 6.65, W: 0.8, H: 0.3}
	if math.Abs(r.X-want.X) > 1e-9 || math.Abs(r.Y-want.Y) > 1e-9 {
		t.Errorf("RectFromCenter = %+v, want %+v", r, want)
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fully inside", Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"touching edges", Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"overflows right", Rect{X: 9, Y: 1, W: 2, H: 2}, false},
		{"overflows top", Rect{X: 1, Y: 9.5, W: 1, H: 1}, false},
		{"below origin", Rect{X: -0.5, Y: 1, W: 1, H: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !r.ContainsPoint(Pt(0, 0)) {
		t.Error("corner point should be inside (edges inclusive)")
	}
	if r.ContainsPoint(Pt(10.01, 5)) {
		t.Error("point past right edge should be outside")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	b := Rect{X: 5, Y: 5, W: 1, H: 1}

	got := a.Union(b)
	want := Rect{X: 0, Y: 0, W: 6, H: 6}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	// Empty rect acts as identity on either side.
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty.Union(b) = %+v, want %+v", got, b)
	}
	if got := b.Union(Rect{}); got != b {
		t.Errorf("b.Union(empty) = %+v, want %+v", got, b)
	}
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 1, Y: 1, W: 2, H: 2}

	got := r.Expand(0.5)
	want := Rect{X: 0.5, Y: 0.5, W: 3, H: 3}
	if got != want {
		t.Errorf("Expand(0.5) = %+v, want %+v", got, want)
	}
}

func TestPointUnit(t *testing.T) {
	tests := []struct {
		name string
		from Point
		to   Point
		want Point
	}{
		{"horizontal", Pt(0, 0), Pt(5, 0), Pt(1, 0)},
		{"vertical down", Pt(5, 6), Pt(5, 5.3), Pt(0, -1)},
		{"coincident", Pt(3, 3), Pt(3, 3), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Unit(tt.to)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Unit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsAccumulation(t *testing.T) {
	var b Bounds

	if b.Valid() {
		t.Fatal("zero Bounds should not be valid")
	}
	if got := b.Rect(); got != (Rect{}) {
		t.Fatalf("zero Bounds.Rect() = %+v, want zero", got)
	}

	b.AddRect(Rect{X: 1, Y: 1, W: 2, H: 2})
	b.AddPoint(Pt(5, 0.5))

	if !b.Valid() {
		t.Fatal("Bounds should be valid after accumulation")
	}
	got := b.Rect()
	want := Rect{X: 1, Y: 0.5, W: 4, H: 2.5}
	if got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	var b Bounds
	b.AddPoint(Pt(2, 3))

	got := b.Rect()
	if got.X != 2 || got.Y != 3 || got.W != 0 || got.H != 0 {
		t.Errorf("single point bounds = %+v, want zero-area box at (2,3)", got)
	}
}
