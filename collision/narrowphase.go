package collision

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Result describes the overlap between two volumes. Separation is the
// minimum translation vector pointing from the receiver toward the other
// volume for circle pairs, and away from the other volume's center for
// box pairs; it is zero when Hit is false. Depth is |Separation| except for
// two circles with coincident centers, which report their full overlap with
// no direction.
type Result struct {
	Hit        bool
	Separation r2.Vec
	Depth      float64
}

// CheckCollision tests v against other. Boxes that do not overlap are
// rejected before any shape-specific work.
//
// Any pair involving a Convex volume is resolved as a box-vs-box test over
// the two bounding boxes. This overestimates contact near polygon corners.
func (v *Volume) CheckCollision(other *Volume) Result {
	if !v.bounds.Intersects(other.bounds) {
		return Result{}
	}

	switch {
	case v.kind == Circle && other.kind == Circle:
		return v.circleCircle(other)
	case v.kind == Circle && other.kind == Rectangle:
		return v.circleRect(other)
	case v.kind == Rectangle && other.kind == Circle:
		res := other.circleRect(v)
		res.Separation = r2.Scale(-1, res.Separation)
		return res
	default:
		return v.rectRect(other)
	}
}

func (v *Volume) circleCircle(other *Volume) Result {
	dir := r2.Sub(other.center, v.center)
	dist := r2.Norm(dir)
	combined := v.radius + other.radius

	if dist >= combined {
		return Result{}
	}

	depth := combined - dist
	var sep r2.Vec
	if dist > epsilon {
		sep = r2.Scale(depth/dist, dir)
	}
	// Coincident centers keep the full depth with a zero separation.
	return Result{Hit: true, Separation: sep, Depth: depth}
}

// circleRect tests the circle v against the bounding box of other.
func (v *Volume) circleRect(other *Volume) Result {
	closest := other.bounds.Clamp(v.center)
	dir := r2.Sub(v.center, closest)
	dist := r2.Norm(dir)

	if dist >= v.radius {
		return Result{}
	}

	depth := v.radius - dist
	sep := r2.Vec{Y: -depth}
	if dist > epsilon {
		sep = r2.Scale(depth/dist, dir)
	}
	return Result{Hit: true, Separation: sep, Depth: depth}
}

func (v *Volume) rectRect(other *Volume) Result {
	aMax, bMax := v.bounds.Max(), other.bounds.Max()
	left := math.Max(v.bounds.Min.X, other.bounds.Min.X)
	right := math.Min(aMax.X, bMax.X)
	top := math.Max(v.bounds.Min.Y, other.bounds.Min.Y)
	bottom := math.Min(aMax.Y, bMax.Y)

	if left >= right || top >= bottom {
		return Result{}
	}

	width := right - left
	height := bottom - top

	var sep r2.Vec
	if width < height {
		sep.X = width
		if v.center.X < other.center.X {
			sep.X = -width
		}
	} else {
		sep.Y = height
		if v.center.Y < other.center.Y {
			sep.Y = -height
		}
	}
	return Result{Hit: true, Separation: sep, Depth: r2.Norm(sep)}
}
