// Package collision implements shape volumes and the narrow-phase queries run
// against them: pairwise overlap, point containment and closest boundary point.
package collision

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// epsilon guards divisions by near-zero lengths.
const epsilon = 1e-3

// Kind identifies the shape a volume was built from.
type Kind uint8

const (
	Circle Kind = iota
	Rectangle
	Convex
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case Convex:
		return "convex"
	}
	return "unknown"
}

// ShapeGeometry describes a shape independent of where it is placed.
// Only the field matching Kind is meaningful.
type ShapeGeometry struct {
	Kind   Kind
	Radius float64  // Circle
	Size   r2.Vec   // Rectangle
	Points []r2.Vec // Convex, local coordinates, any winding
}

// NewCircle returns circle geometry of radius r.
func NewCircle(r float64) ShapeGeometry {
	return ShapeGeometry{Kind: Circle, Radius: r}
}

// NewRectangle returns axis-aligned rectangle geometry.
func NewRectangle(w, h float64) ShapeGeometry {
	return ShapeGeometry{Kind: Rectangle, Size: r2.Vec{X: w, Y: h}}
}

// NewConvex returns polygon geometry from an ordered vertex loop.
func NewConvex(points ...r2.Vec) ShapeGeometry {
	return ShapeGeometry{Kind: Convex, Points: points}
}

// Rect is an axis-aligned box given by its minimum corner and size.
type Rect struct {
	Min  r2.Vec
	Size r2.Vec
}

// Max returns the corner opposite Min.
func (r Rect) Max() r2.Vec {
	return r2.Add(r.Min, r.Size)
}

// Center returns the midpoint of the box.
func (r Rect) Center() r2.Vec {
	return r2.Add(r.Min, r2.Scale(0.5, r.Size))
}

// Contains reports whether p lies in [Min, Max).
func (r Rect) Contains(p r2.Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X < max.X && p.Y >= r.Min.Y && p.Y < max.Y
}

// Intersects reports whether the two boxes share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	rMax, oMax := r.Max(), o.Max()
	return math.Max(r.Min.X, o.Min.X) < math.Min(rMax.X, oMax.X) &&
		math.Max(r.Min.Y, o.Min.Y) < math.Min(rMax.Y, oMax.Y)
}

// Clamp returns the point of the box nearest to p.
func (r Rect) Clamp(p r2.Vec) r2.Vec {
	max := r.Max()
	return r2.Vec{
		X: clamp(p.X, r.Min.X, max.X),
		Y: clamp(p.Y, r.Min.Y, max.Y),
	}
}

// Volume is the collision representation of a single object. It is rebuilt
// from its ShapeGeometry and position on every Refresh and carries no history.
type Volume struct {
	kind     Kind
	bounds   Rect
	center   r2.Vec
	radius   float64  // Circle only
	vertices []r2.Vec // Convex only, world space
}

// NewVolume builds a volume from geometry placed at position.
func NewVolume(geometry *ShapeGeometry, position r2.Vec) *Volume {
	v := &Volume{}
	v.Refresh(geometry, position)
	return v
}

// Refresh recomputes every field from geometry placed at position.
// A nil geometry leaves the volume untouched.
//
// Circles and rectangles are anchored at their top-left corner. Convex points
// are translated by position and the center is the middle of their bounding
// box, not the area centroid.
func (v *Volume) Refresh(geometry *ShapeGeometry, position r2.Vec) {
	if geometry == nil {
		return
	}

	v.kind = geometry.Kind
	v.radius = 0
	v.vertices = v.vertices[:0]

	switch geometry.Kind {
	case Circle:
		r := geometry.Radius
		v.radius = r
		v.center = r2.Add(position, r2.Vec{X: r, Y: r})
		v.bounds = Rect{Min: position, Size: r2.Vec{X: 2 * r, Y: 2 * r}}

	case Rectangle:
		v.center = r2.Add(position, r2.Scale(0.5, geometry.Size))
		v.bounds = Rect{Min: position, Size: geometry.Size}

	case Convex:
		for _, p := range geometry.Points {
			v.vertices = append(v.vertices, r2.Add(p, position))
		}
		if len(v.vertices) == 0 {
			v.center = position
			v.bounds = Rect{Min: position}
			return
		}

		min, max := v.vertices[0], v.vertices[0]
		for _, p := range v.vertices[1:] {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
		v.bounds = Rect{Min: min, Size: r2.Sub(max, min)}
		v.center = r2.Scale(0.5, r2.Add(min, max))
	}
}

// Kind returns the shape kind of the last refresh.
func (v *Volume) Kind() Kind { return v.kind }

// Bounds returns the axis-aligned box enclosing the volume.
func (v *Volume) Bounds() Rect { return v.bounds }

// Center returns the volume center.
func (v *Volume) Center() r2.Vec { return v.center }

// Radius returns the circle radius; zero for other kinds.
func (v *Volume) Radius() float64 { return v.radius }

// Vertices returns the world-space polygon. The slice is owned by the volume
// and must not be modified.
func (v *Volume) Vertices() []r2.Vec { return v.vertices }

// degenerate reports a convex volume too small to enclose area.
func (v *Volume) degenerate() bool {
	return v.kind == Convex && len(v.vertices) < 3
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
