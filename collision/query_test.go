package collision

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// square returns a convex square of the given half extent centered on the origin.
func square(half float64) *Volume {
	return convexAt(r2.Vec{},
		r2.Vec{X: -half, Y: -half},
		r2.Vec{X: half, Y: -half},
		r2.Vec{X: half, Y: half},
		r2.Vec{X: -half, Y: half},
	)
}

func TestContainsPoint(t *testing.T) {
	circle := circleAt(r2.Vec{X: 10, Y: 10}, 5)
	rect := rectAt(r2.Vec{}, 10, 4)
	hex := convexAt(r2.Vec{X: 100, Y: 100},
		r2.Vec{X: 20}, r2.Vec{X: 10, Y: 17}, r2.Vec{X: -10, Y: 17},
		r2.Vec{X: -20}, r2.Vec{X: -10, Y: -17}, r2.Vec{X: 10, Y: -17},
	)

	tests := []struct {
		name string
		v    *Volume
		p    r2.Vec
		want bool
	}{
		{"circle center", circle, r2.Vec{X: 10, Y: 10}, true},
		{"circle rim", circle, r2.Vec{X: 15, Y: 10}, true},
		{"circle outside", circle, r2.Vec{X: 14, Y: 14}, false},
		{"rect min corner", rect, r2.Vec{}, true},
		{"rect max edge", rect, r2.Vec{X: 10, Y: 2}, false},
		{"rect inside", rect, r2.Vec{X: 9.9, Y: 3.9}, true},
		{"hex center", hex, r2.Vec{X: 100, Y: 100}, true},
		{"hex box center", hex, hex.Bounds().Center(), true},
		{"hex near vertex", hex, r2.Vec{X: 118, Y: 100}, true},
		{"hex cut corner", hex, r2.Vec{X: 118, Y: 115}, false},
		{"hex far away", hex, r2.Vec{X: 500, Y: -500}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.ContainsPoint(tc.p); got != tc.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestContainsPointWinding(t *testing.T) {
	cw := convexAt(r2.Vec{}, r2.Vec{}, r2.Vec{Y: 10}, r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10})
	ccw := convexAt(r2.Vec{}, r2.Vec{}, r2.Vec{X: 10}, r2.Vec{X: 10, Y: 10}, r2.Vec{Y: 10})

	for _, p := range []r2.Vec{{X: 5, Y: 5}, {X: 1, Y: 9}, {X: 11, Y: 5}, {X: -1, Y: -1}} {
		if cw.ContainsPoint(p) != ccw.ContainsPoint(p) {
			t.Errorf("winding changes containment of %v", p)
		}
	}
}

func TestDegenerateConvex(t *testing.T) {
	for _, points := range [][]r2.Vec{
		nil,
		{{X: 3, Y: 4}},
		{{X: 0}, {X: 10}},
	} {
		v := convexAt(r2.Vec{X: 1, Y: 1}, points...)

		if v.ContainsPoint(v.Center()) {
			t.Errorf("%d points: degenerate polygon contains its center", len(points))
		}
		if got := v.ClosestPointOnBoundary(r2.Vec{X: 50, Y: 50}); got != v.Center() {
			t.Errorf("%d points: closest = %v, want center %v", len(points), got, v.Center())
		}
	}
}

func TestClosestPointOnBoundaryConvex(t *testing.T) {
	sq := square(50)

	tests := []struct {
		name string
		p    r2.Vec
		want r2.Vec
	}{
		{"outside right", r2.Vec{X: 100}, r2.Vec{X: 50}},
		{"outside corner", r2.Vec{X: 80, Y: -90}, r2.Vec{X: 50, Y: -50}},
		{"inside near top", r2.Vec{X: 10, Y: -45}, r2.Vec{X: 10, Y: -50}},
		{"inside near left", r2.Vec{X: -48, Y: 20}, r2.Vec{X: -50, Y: 20}},
		{"on edge", r2.Vec{X: 50, Y: 7}, r2.Vec{X: 50, Y: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := sq.ClosestPointOnBoundary(tc.p)
			if !vecNear(got, tc.want, 1e-9) {
				t.Errorf("ClosestPointOnBoundary(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestClosestPointOnBoundaryIsNearest(t *testing.T) {
	hex := convexAt(r2.Vec{},
		r2.Vec{X: 300}, r2.Vec{X: 150, Y: 260}, r2.Vec{X: -150, Y: 260},
		r2.Vec{X: -300}, r2.Vec{X: -150, Y: -260}, r2.Vec{X: 150, Y: -260},
	)
	verts := hex.Vertices()

	for _, p := range []r2.Vec{{X: 400, Y: 10}, {X: 0}, {X: -200, Y: 100}, {X: 10, Y: -500}} {
		got := hex.ClosestPointOnBoundary(p)
		gotDist := r2.Norm(r2.Sub(p, got))

		for i := range verts {
			edge := ClosestPointOnSegment(p, verts[i], verts[(i+1)%len(verts)])
			if d := r2.Norm(r2.Sub(p, edge)); d < gotDist-1e-9 {
				t.Errorf("p %v: edge %d point %v is nearer (%v) than %v (%v)", p, i, edge, d, got, gotDist)
			}
		}
	}
}

func TestClosestPointOnBoundaryCircle(t *testing.T) {
	c := circleAt(r2.Vec{X: 10, Y: 10}, 5)

	if got := c.ClosestPointOnBoundary(r2.Vec{X: 30, Y: 10}); !vecNear(got, r2.Vec{X: 15, Y: 10}, 1e-9) {
		t.Errorf("outside: got %v, want (15, 10)", got)
	}
	if got := c.ClosestPointOnBoundary(r2.Vec{X: 10, Y: 12}); !vecNear(got, r2.Vec{X: 10, Y: 15}, 1e-9) {
		t.Errorf("inside: got %v, want (10, 15)", got)
	}
	if got := c.ClosestPointOnBoundary(r2.Vec{X: 10, Y: 10}); got != (r2.Vec{X: 10, Y: 5}) {
		t.Errorf("center: got %v, want (10, 5)", got)
	}
}

func TestClosestPointOnBoundaryRect(t *testing.T) {
	r := rectAt(r2.Vec{}, 100, 40)

	tests := []struct {
		p, want r2.Vec
	}{
		{r2.Vec{X: -10, Y: 20}, r2.Vec{X: 0, Y: 20}},
		{r2.Vec{X: 130, Y: 60}, r2.Vec{X: 100, Y: 40}},
		{r2.Vec{X: 50, Y: 5}, r2.Vec{X: 50, Y: 0}},
		{r2.Vec{X: 97, Y: 20}, r2.Vec{X: 100, Y: 20}},
		{r2.Vec{X: 60, Y: 38}, r2.Vec{X: 60, Y: 40}},
	}
	for _, tc := range tests {
		if got := r.ClosestPointOnBoundary(tc.p); !vecNear(got, tc.want, 1e-9) {
			t.Errorf("ClosestPointOnBoundary(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := r2.Vec{}, r2.Vec{X: 10}

	tests := []struct {
		name string
		p    r2.Vec
		want r2.Vec
	}{
		{"before a", r2.Vec{X: -5, Y: 3}, a},
		{"past b", r2.Vec{X: 15, Y: -3}, b},
		{"middle", r2.Vec{X: 4, Y: 7}, r2.Vec{X: 4}},
	}
	for _, tc := range tests {
		if got := ClosestPointOnSegment(tc.p, a, b); !vecNear(got, tc.want, 1e-12) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}

	short := r2.Vec{X: 0.01}
	if got := ClosestPointOnSegment(r2.Vec{X: 5, Y: 5}, a, short); got != a {
		t.Errorf("short segment: got %v, want a", got)
	}
	if d := r2.Norm(ClosestPointOnSegment(r2.Vec{X: 1, Y: 1}, a, r2.Vec{X: math.Sqrt(2) / 2, Y: math.Sqrt(2) / 2})); math.Abs(d-1) > 1e-12 {
		t.Errorf("diagonal clamp distance = %v, want 1", d)
	}
}
