package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ghostlight/components"
)

// ColliderSystem rebuilds every collision volume from its shape and position.
type ColliderSystem struct {
	filter ecs.Filter3[components.Position, components.Shape, components.Collider]
}

// NewColliderSystem creates a new collider refresh system.
func NewColliderSystem(w *ecs.World) *ColliderSystem {
	return &ColliderSystem{
		filter: *ecs.NewFilter3[components.Position, components.Shape, components.Collider](w),
	}
}

// Update refreshes all colliders.
func (s *ColliderSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, shape, col := query.Get()
		col.Volume.Refresh(&shape.Geometry, pos.Vec())
	}
}
