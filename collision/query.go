package collision

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// ContainsPoint reports whether p lies inside the volume. Degenerate
// polygons contain nothing.
func (v *Volume) ContainsPoint(p r2.Vec) bool {
	switch v.kind {
	case Circle:
		return r2.Norm2(r2.Sub(p, v.center)) <= v.radius*v.radius
	case Rectangle:
		return v.bounds.Contains(p)
	case Convex:
		return v.pointInPolygon(p)
	}
	return false
}

// pointInPolygon is the even-odd crossing test over the vertex loop.
func (v *Volume) pointInPolygon(p r2.Vec) bool {
	if v.degenerate() {
		return false
	}

	inside := false
	j := len(v.vertices) - 1
	for i := range v.vertices {
		a, b := v.vertices[i], v.vertices[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// ClosestPointOnBoundary returns the point on the volume's outline nearest
// to p, for points inside and outside alike. Degenerate polygons return the
// center.
func (v *Volume) ClosestPointOnBoundary(p r2.Vec) r2.Vec {
	switch v.kind {
	case Circle:
		return v.closestOnCircle(p)
	case Rectangle:
		return v.closestOnRect(p)
	}

	if v.degenerate() {
		return v.center
	}

	best := v.vertices[0]
	bestDist := math.Inf(1)
	n := len(v.vertices)
	for i := range v.vertices {
		candidate := ClosestPointOnSegment(p, v.vertices[i], v.vertices[(i+1)%n])
		if d := r2.Norm2(r2.Sub(p, candidate)); d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	return best
}

func (v *Volume) closestOnCircle(p r2.Vec) r2.Vec {
	dir := r2.Sub(p, v.center)
	dist := r2.Norm(dir)
	if dist <= epsilon {
		return r2.Vec{X: v.center.X, Y: v.center.Y - v.radius}
	}
	return r2.Add(v.center, r2.Scale(v.radius/dist, dir))
}

func (v *Volume) closestOnRect(p r2.Vec) r2.Vec {
	if !v.bounds.Contains(p) {
		return v.bounds.Clamp(p)
	}

	// Inside: snap to the nearest edge.
	min, max := v.bounds.Min, v.bounds.Max()
	out := r2.Vec{X: min.X, Y: p.Y}
	best := p.X - min.X
	if d := max.X - p.X; d < best {
		best = d
		out = r2.Vec{X: max.X, Y: p.Y}
	}
	if d := p.Y - min.Y; d < best {
		best = d
		out = r2.Vec{X: p.X, Y: min.Y}
	}
	if d := max.Y - p.Y; d < best {
		out = r2.Vec{X: p.X, Y: max.Y}
	}
	return out
}

// ClosestPointOnSegment projects p onto segment ab. Segments shorter than
// the length guard collapse to a.
func ClosestPointOnSegment(p, a, b r2.Vec) r2.Vec {
	ab := r2.Sub(b, a)
	lenSq := r2.Norm2(ab)
	if lenSq < epsilon {
		return a
	}
	t := clamp(r2.Dot(r2.Sub(p, a), ab)/lenSq, 0, 1)
	return r2.Add(a, r2.Scale(t, ab))
}
