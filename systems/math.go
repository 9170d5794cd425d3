package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// lengthEpsilon is the shortest vector that is normalized rather than
// replaced by a fallback direction.
const lengthEpsilon = 1e-3

// up is the last-resort direction, pointing toward the top of the screen.
var up = r2.Vec{Y: -1}

// unitOr normalizes v. Vectors shorter than lengthEpsilon fall back to
// fallback, then to up.
func unitOr(v, fallback r2.Vec) r2.Vec {
	if n := r2.Norm(v); n > lengthEpsilon {
		return r2.Scale(1/n, v)
	}
	if n := r2.Norm(fallback); n > lengthEpsilon {
		return r2.Scale(1/n, fallback)
	}
	return up
}

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clamp01 clamps v to the [0, 1] range.
func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// lerp interpolates between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
