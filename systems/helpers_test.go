package systems

import (
	"math"

	"github.com/pthm-cable/ghostlight/collision"
	"gonum.org/v1/gonum/spatial/r2"
)

// squareMap returns a convex volume spanning [-half, half] on both axes.
func squareMap(half float64) *collision.Volume {
	g := collision.NewConvex(
		r2.Vec{X: -half, Y: -half},
		r2.Vec{X: half, Y: -half},
		r2.Vec{X: half, Y: half},
		r2.Vec{X: -half, Y: half},
	)
	return collision.NewVolume(&g, r2.Vec{})
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b r2.Vec, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}
