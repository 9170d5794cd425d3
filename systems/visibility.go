package systems

import (
	"image/color"
	"math"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// BlendMode tells the renderer how to composite a wedge.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdditive
)

// WedgeVertex is one fan vertex with its colour.
type WedgeVertex struct {
	Pos   r2.Vec
	Color color.RGBA
}

// Wedge is a field-of-view light clipped to the map. Outer and Inner are
// triangle fans whose first vertex is the light origin; the remaining
// vertices are ray endpoints ordered by angle.
type Wedge struct {
	Outer []WedgeVertex
	Inner []WedgeVertex
	Blend BlendMode
}

// RayLengths returns the distance from the origin to each outer endpoint.
func (w *Wedge) RayLengths() []float64 {
	if len(w.Outer) < 2 {
		return nil
	}
	origin := w.Outer[0].Pos
	lengths := make([]float64, 0, len(w.Outer)-1)
	for _, v := range w.Outer[1:] {
		lengths = append(lengths, r2.Norm(r2.Sub(v.Pos, origin)))
	}
	return lengths
}

// Caster builds visibility wedges by marching rays through a boundary volume.
type Caster struct {
	stepSize      float64
	iterations    int
	rayCount      int
	minFOV        float64
	maxFOV        float64
	minRadius     float64
	maxRadius     float64
	falloff       float64
	innerScale    float64
	farShiftStart float64
	originOffset  float64

	outer color.RGBA
	inner color.RGBA
	far   color.RGBA
}

// NewCaster creates a caster from the light section of cfg.
func NewCaster(cfg *config.Config) *Caster {
	l := cfg.Light
	return &Caster{
		stepSize:      l.StepSize,
		iterations:    l.BisectionIterations,
		rayCount:      l.RayCount,
		minFOV:        cfg.Derived.MinFOV,
		maxFOV:        cfg.Derived.MaxFOV,
		minRadius:     l.MinRadius,
		maxRadius:     l.MaxRadius,
		falloff:       l.FalloffExponent,
		innerScale:    l.InnerScale,
		farShiftStart: l.FarShiftStart,
		originOffset:  l.OriginOffset,
		outer:         cfg.Derived.OuterColor,
		inner:         cfg.Derived.InnerColor,
		far:           cfg.Derived.FarColor,
	}
}

// ClampFOV limits a field of view in radians to the configured bounds.
func (c *Caster) ClampFOV(fov float64) float64 {
	return clampFloat(fov, c.minFOV, c.maxFOV)
}

// ClampRadius limits a light reach to the configured bounds.
func (c *Caster) ClampRadius(radius float64) float64 {
	return clampFloat(radius, c.minRadius, c.maxRadius)
}

// LightOrigin returns the point the wedge is cast from, slightly ahead of
// the agent center so the fan does not start behind the body outline.
func (c *Caster) LightOrigin(center, facing r2.Vec) r2.Vec {
	return r2.Add(center, r2.Scale(c.originOffset, unitOr(facing, up)))
}

// CastRay returns where a ray from origin along direction first leaves the
// boundary, or the point at maxDistance if it never does.
//
// The ray is marched in fixed steps; the first outside sample and the inside
// sample before it are refined by bisection and the midpoint of the final
// bracket is returned. An origin that is already outside yields the
// unclipped endpoint.
func (c *Caster) CastRay(origin, direction r2.Vec, maxDistance float64, boundary *collision.Volume) r2.Vec {
	if maxDistance <= 0 {
		return origin
	}
	n := r2.Norm(direction)
	if n <= lengthEpsilon {
		return origin
	}
	dir := r2.Scale(1/n, direction)
	at := func(d float64) r2.Vec { return r2.Add(origin, r2.Scale(d, dir)) }

	if !boundary.ContainsPoint(origin) {
		return at(maxDistance)
	}

	steps := int(math.Ceil(maxDistance / c.stepSize))
	inside := 0.0
	for i := 1; i <= steps; i++ {
		d := math.Min(float64(i)*c.stepSize, maxDistance)
		if boundary.ContainsPoint(at(d)) {
			inside = d
			continue
		}

		lo, hi := inside, d
		for range c.iterations {
			mid := 0.5 * (lo + hi)
			if boundary.ContainsPoint(at(mid)) {
				lo = mid
			} else {
				hi = mid
			}
		}
		return at(0.5 * (lo + hi))
	}
	return at(maxDistance)
}

// BuildWedge casts rayCount rays evenly across fov centered on facing and
// returns the outer and inner fans. fov and maxRadius are clamped first.
func (c *Caster) BuildWedge(origin, facing r2.Vec, fov, maxRadius float64, boundary *collision.Volume) Wedge {
	fov = c.ClampFOV(fov)
	maxRadius = c.ClampRadius(maxRadius)
	innerRadius := c.innerScale * maxRadius

	w := Wedge{
		Outer: make([]WedgeVertex, 0, c.rayCount+1),
		Inner: make([]WedgeVertex, 0, c.rayCount+1),
		Blend: BlendAdditive,
	}
	w.Outer = append(w.Outer, WedgeVertex{Pos: origin, Color: c.outer})
	w.Inner = append(w.Inner, WedgeVertex{Pos: origin, Color: c.inner})

	heading := math.Atan2(facing.Y, facing.X)
	start := heading - fov/2
	span := fov / float64(c.rayCount-1)

	for i := range c.rayCount {
		angle := start + span*float64(i)
		dir := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}

		end := c.CastRay(origin, dir, maxRadius, boundary)
		dist := r2.Norm(r2.Sub(end, origin))
		w.Outer = append(w.Outer, WedgeVertex{Pos: end, Color: c.outerColor(dist, maxRadius)})

		innerDist := math.Min(dist, innerRadius)
		w.Inner = append(w.Inner, WedgeVertex{
			Pos:   r2.Add(origin, r2.Scale(innerDist, dir)),
			Color: attenuate(c.inner, innerDist, innerRadius, c.falloff),
		})
	}
	return w
}

// outerColor fades with distance and shifts toward the far colour near the
// edge of the light.
func (c *Caster) outerColor(dist, maxRadius float64) color.RGBA {
	base := c.outer
	t := clamp01(dist / maxRadius)
	if t > c.farShiftStart && c.farShiftStart < 1 {
		base = lerpColor(c.outer, c.far, (t-c.farShiftStart)/(1-c.farShiftStart))
	}
	return attenuate(base, dist, maxRadius, c.falloff)
}

// attenuate scales alpha by 1 - (dist/radius)^k.
func attenuate(base color.RGBA, dist, radius, k float64) color.RGBA {
	if radius <= 0 {
		base.A = 0
		return base
	}
	t := clamp01(dist / radius)
	base.A = uint8(math.Round(float64(base.A) * (1 - math.Pow(t, k))))
	return base
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
