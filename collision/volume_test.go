package collision

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func vecNear(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestRefreshCircle(t *testing.T) {
	g := NewCircle(30)
	v := NewVolume(&g, r2.Vec{X: 10, Y: 20})

	if v.Kind() != Circle {
		t.Fatalf("Kind = %v, want circle", v.Kind())
	}
	if v.Radius() != 30 {
		t.Errorf("Radius = %v, want 30", v.Radius())
	}
	if want := (r2.Vec{X: 40, Y: 50}); v.Center() != want {
		t.Errorf("Center = %v, want %v", v.Center(), want)
	}
	want := Rect{Min: r2.Vec{X: 10, Y: 20}, Size: r2.Vec{X: 60, Y: 60}}
	if v.Bounds() != want {
		t.Errorf("Bounds = %v, want %v", v.Bounds(), want)
	}
}

func TestRefreshRectangle(t *testing.T) {
	g := NewRectangle(40, 20)
	v := NewVolume(&g, r2.Vec{X: -5, Y: 5})

	if want := (r2.Vec{X: 15, Y: 15}); v.Center() != want {
		t.Errorf("Center = %v, want %v", v.Center(), want)
	}
	if v.Radius() != 0 {
		t.Errorf("Radius = %v, want 0 for rectangle", v.Radius())
	}
	if v.Bounds().Max() != (r2.Vec{X: 35, Y: 25}) {
		t.Errorf("Bounds.Max = %v, want (35, 25)", v.Bounds().Max())
	}
}

func TestRefreshConvexUsesBoxMidpoint(t *testing.T) {
	// Right triangle: area centroid is (10/3, 10/3), box midpoint is (5, 5).
	g := NewConvex(r2.Vec{}, r2.Vec{X: 10}, r2.Vec{Y: 10})
	v := NewVolume(&g, r2.Vec{X: 100, Y: 200})

	if len(v.Vertices()) != 3 {
		t.Fatalf("len(Vertices) = %d, want 3", len(v.Vertices()))
	}
	if v.Vertices()[1] != (r2.Vec{X: 110, Y: 200}) {
		t.Errorf("Vertices[1] = %v, want (110, 200)", v.Vertices()[1])
	}
	if want := (r2.Vec{X: 105, Y: 205}); v.Center() != want {
		t.Errorf("Center = %v, want %v", v.Center(), want)
	}
	want := Rect{Min: r2.Vec{X: 100, Y: 200}, Size: r2.Vec{X: 10, Y: 10}}
	if v.Bounds() != want {
		t.Errorf("Bounds = %v, want %v", v.Bounds(), want)
	}
}

func TestRefreshFollowsPosition(t *testing.T) {
	g := NewConvex(r2.Vec{X: -1, Y: -1}, r2.Vec{X: 1, Y: -1}, r2.Vec{X: 0, Y: 1})
	v := NewVolume(&g, r2.Vec{})
	v.Refresh(&g, r2.Vec{X: 50})

	if len(v.Vertices()) != 3 {
		t.Fatalf("len(Vertices) = %d after second refresh, want 3", len(v.Vertices()))
	}
	if !vecNear(v.Center(), r2.Vec{X: 50}, 1e-12) {
		t.Errorf("Center = %v, want (50, 0)", v.Center())
	}
}

func TestRefreshNilKeepsState(t *testing.T) {
	g := NewCircle(5)
	v := NewVolume(&g, r2.Vec{X: 1, Y: 1})
	before := *v

	v.Refresh(nil, r2.Vec{X: 999, Y: 999})

	if v.Center() != before.Center() || v.Bounds() != before.Bounds() || v.Kind() != before.Kind() {
		t.Errorf("nil refresh changed volume: %+v -> %+v", before, *v)
	}
}

func TestRefreshKindChange(t *testing.T) {
	circle := NewCircle(5)
	v := NewVolume(&circle, r2.Vec{})

	square := NewConvex(r2.Vec{}, r2.Vec{X: 4}, r2.Vec{X: 4, Y: 4}, r2.Vec{Y: 4})
	v.Refresh(&square, r2.Vec{})
	if v.Kind() != Convex || v.Radius() != 0 {
		t.Errorf("after convex refresh: kind %v radius %v", v.Kind(), v.Radius())
	}

	v.Refresh(&circle, r2.Vec{})
	if len(v.Vertices()) != 0 {
		t.Errorf("circle refresh kept %d vertices", len(v.Vertices()))
	}
}

func TestRectIntersectsIsStrict(t *testing.T) {
	a := Rect{Min: r2.Vec{}, Size: r2.Vec{X: 10, Y: 10}}
	touching := Rect{Min: r2.Vec{X: 10}, Size: r2.Vec{X: 10, Y: 10}}
	overlapping := Rect{Min: r2.Vec{X: 9.5, Y: 9.5}, Size: r2.Vec{X: 10, Y: 10}}

	if a.Intersects(touching) {
		t.Error("edge-touching boxes reported as intersecting")
	}
	if !a.Intersects(overlapping) {
		t.Error("overlapping boxes reported as disjoint")
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{Circle: "circle", Rectangle: "rectangle", Convex: "convex", Kind(9): "unknown"} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
