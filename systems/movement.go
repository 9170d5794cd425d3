package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ghostlight/components"
)

// MovementSystem integrates entity positions from their velocity.
type MovementSystem struct {
	filter ecs.Filter2[components.Position, components.Velocity]
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	return &MovementSystem{
		filter: *ecs.NewFilter2[components.Position, components.Velocity](w),
	}
}

// Update advances every moving entity by dt seconds.
func (s *MovementSystem) Update(dt float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	}
}
