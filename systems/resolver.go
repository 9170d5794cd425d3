package systems

import (
	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// Outcome classifies what the resolver did to an agent.
type Outcome uint8

const (
	OutcomeFree     Outcome = iota // next step stays inside, nothing changed
	OutcomeSlide                   // outward velocity removed, possibly nudged off the wall
	OutcomePushOut                 // center had escaped and was placed back inside
	OutcomeFallback                // push-out failed, moved toward the map center
)

// String returns the telemetry label for an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFree:
		return "free"
	case OutcomeSlide:
		return "slide"
	case OutcomePushOut:
		return "push_out"
	case OutcomeFallback:
		return "fallback"
	}
	return "unknown"
}

// Resolution is the corrected agent state for one tick.
type Resolution struct {
	Center   r2.Vec
	Velocity r2.Vec
	Outcome  Outcome
	// Penetration is how far the center was outside the boundary, or how far
	// inside the contact band it sat. Zero for OutcomeFree.
	Penetration float64
}

// Resolver keeps a circular agent inside a bounding polygon.
type Resolver struct {
	pushMargin     float64
	fallbackMargin float64
	contactMargin  float64
	slideDamping   float64
}

// NewResolver creates a resolver with the given tuning.
func NewResolver(cfg config.CollisionConfig) *Resolver {
	return &Resolver{
		pushMargin:     cfg.PushMargin,
		fallbackMargin: cfg.FallbackMargin,
		contactMargin:  cfg.ContactMargin,
		slideDamping:   cfg.SlideDamping,
	}
}

var defaultResolver = NewResolver(config.CollisionConfig{
	PushMargin:     2,
	FallbackMargin: 5,
	ContactMargin:  1,
	SlideDamping:   0.8,
})

// ResolveAgainstMap corrects an agent's center and velocity against the map
// polygon using the default margins.
func ResolveAgainstMap(center, velocity r2.Vec, mapVolume *collision.Volume, radius, dt float64) (r2.Vec, r2.Vec) {
	res := defaultResolver.Resolve(center, velocity, mapVolume, radius, dt)
	return res.Center, res.Velocity
}

// Resolve corrects an agent whose circle of the given radius is centered at
// center and moves with velocity over the next dt seconds.
//
// An escaped center is placed back inside, push_margin beyond the radius from
// the nearest wall point, and keeps only its damped tangential velocity. An
// inside center whose next step would leave the map loses the outward part of
// its velocity and is nudged off the wall if it sits within the contact band.
func (r *Resolver) Resolve(center, velocity r2.Vec, mapVolume *collision.Volume, radius, dt float64) Resolution {
	mapCenter := mapVolume.Center()

	if !mapVolume.ContainsPoint(center) {
		return r.pushOut(center, velocity, mapVolume, mapCenter, radius)
	}

	predicted := r2.Add(center, r2.Scale(dt, velocity))
	if mapVolume.ContainsPoint(predicted) {
		return Resolution{Center: center, Velocity: velocity, Outcome: OutcomeFree}
	}

	exit := mapVolume.ClosestPointOnBoundary(predicted)
	normal := unitOr(r2.Sub(predicted, exit), r2.Sub(predicted, mapCenter))
	if vn := r2.Dot(velocity, normal); vn > 0 {
		velocity = r2.Sub(velocity, r2.Scale(vn, normal))
	}

	res := Resolution{Center: center, Velocity: velocity, Outcome: OutcomeSlide}

	wall := mapVolume.ClosestPointOnBoundary(center)
	dist := r2.Norm(r2.Sub(center, wall))
	if shortfall := radius + r.contactMargin - dist; shortfall > 0 {
		inward := unitOr(r2.Sub(center, wall), r2.Scale(-1, normal))
		res.Center = r2.Add(center, r2.Scale(shortfall, inward))
		res.Penetration = shortfall
	}
	return res
}

func (r *Resolver) pushOut(center, velocity r2.Vec, mapVolume *collision.Volume, mapCenter r2.Vec, radius float64) Resolution {
	wall := mapVolume.ClosestPointOnBoundary(center)
	normal := unitOr(r2.Sub(center, wall), r2.Sub(center, mapCenter))

	res := Resolution{
		Center:      r2.Sub(wall, r2.Scale(radius+r.pushMargin, normal)),
		Outcome:     OutcomePushOut,
		Penetration: r2.Norm(r2.Sub(center, wall)),
	}
	if !mapVolume.ContainsPoint(res.Center) {
		toCenter := unitOr(r2.Sub(mapCenter, wall), r2.Scale(-1, normal))
		res.Center = r2.Add(wall, r2.Scale(radius+r.fallbackMargin, toCenter))
		res.Outcome = OutcomeFallback
	}

	tangent := r2.Sub(velocity, r2.Scale(r2.Dot(velocity, normal), normal))
	res.Velocity = r2.Scale(r.slideDamping, tangent)
	return res
}
