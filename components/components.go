// Package components defines ECS components for the simulation.
package components

import (
	"github.com/pthm-cable/ghostlight/collision"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shape holds the placement-free geometry of an entity.
type Shape struct {
	Geometry collision.ShapeGeometry
}

// Collider holds the world-space volume rebuilt from Shape and Position.
type Collider struct {
	Volume collision.Volume `inspect:"skip"`
}

// Agent marks a circular entity that is kept inside the map.
type Agent struct {
	Radius float64 `inspect:"label,fmt:%.0f"`
	Speed  float64 `inspect:"label,fmt:%.0f"`
	Facing r2.Vec  `inspect:"vec"` // unit direction the agent looks toward
}

// Projectile marks a bullet. Projectiles leaving the map are removed.
type Projectile struct {
	Radius float64 `inspect:"label,fmt:%.0f"`
}

// Light is a field-of-view cone attached to an agent.
type Light struct {
	FOV    float64 `inspect:"angle"` // radians
	Radius float64 `inspect:"bar,max:600"`
	On     bool
}

// Gun tracks remaining rounds.
type Gun struct {
	Ammo    int
	MaxAmmo int
}

// MapTag marks the single entity holding the map polygon.
type MapTag struct{}

// Center returns the center of a circle anchored at its top-left corner.
func Center(pos *Position, radius float64) r2.Vec {
	return r2.Vec{X: pos.X + radius, Y: pos.Y + radius}
}

// AnchorFromCenter converts a circle center back to its top-left anchor.
func AnchorFromCenter(center r2.Vec, radius float64) r2.Vec {
	return r2.Vec{X: center.X - radius, Y: center.Y - radius}
}
