package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/components"
)

// ProjectileSystem removes projectiles that have left the map.
type ProjectileSystem struct {
	filter ecs.Filter2[components.Collider, components.Projectile]
}

// NewProjectileSystem creates a new projectile culling system.
func NewProjectileSystem(w *ecs.World) *ProjectileSystem {
	return &ProjectileSystem{
		filter: *ecs.NewFilter2[components.Collider, components.Projectile](w),
	}
}

// Update removes every projectile whose collider center lies outside
// mapVolume and returns how many were removed. Colliders must already be
// refreshed for this tick.
func (s *ProjectileSystem) Update(w *ecs.World, mapVolume *collision.Volume) int {
	// First pass: collect (the world is locked while a query is open)
	var toRemove []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		col, _ := query.Get()
		if !mapVolume.ContainsPoint(col.Volume.Center()) {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove
	for _, e := range toRemove {
		w.RemoveEntity(e)
	}
	return len(toRemove)
}

// CullProjectiles removes escaped projectiles from w in one call.
func CullProjectiles(w *ecs.World, mapVolume *collision.Volume) int {
	return NewProjectileSystem(w).Update(w, mapVolume)
}
