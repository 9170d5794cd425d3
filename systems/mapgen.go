package systems

import (
	"math"
	"slices"

	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"
)

// noiseFrequency spaces successive vertices along the noise field so that
// neighbouring jitters are only loosely correlated.
const noiseFrequency = 0.73

// GenerateMapPolygon returns a closed polygon with points vertices at
// distance radius from the origin. Vertex angles start evenly spaced and are
// each perturbed by up to jitter radians, then sorted so the loop never
// self-intersects.
func GenerateMapPolygon(radius float64, points int, jitter float64, seed int64) []r2.Vec {
	if points < 3 {
		points = 3
	}
	noise := opensimplex.New(seed)

	angles := make([]float64, points)
	for i := range angles {
		base := 2 * math.Pi * float64(i) / float64(points)
		offset := clampFloat(noise.Eval2(float64(i)*noiseFrequency, 0.5), -1, 1) * jitter
		angles[i] = normalizeAngle(base + offset)
	}
	slices.Sort(angles)

	polygon := make([]r2.Vec, points)
	for i, a := range angles {
		polygon[i] = r2.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return polygon
}
