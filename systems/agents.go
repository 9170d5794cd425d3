package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/components"
)

// AgentSystem keeps every agent inside the map polygon.
type AgentSystem struct {
	filter   ecs.Filter3[components.Position, components.Velocity, components.Agent]
	resolver *Resolver
}

// NewAgentSystem creates a new agent resolution system.
func NewAgentSystem(w *ecs.World, resolver *Resolver) *AgentSystem {
	return &AgentSystem{
		filter:   *ecs.NewFilter3[components.Position, components.Velocity, components.Agent](w),
		resolver: resolver,
	}
}

// Update resolves each agent against mapVolume for the coming dt and writes
// the corrected position and velocity back. It returns one Resolution per
// agent whose state changed.
func (s *AgentSystem) Update(mapVolume *collision.Volume, dt float64) []Resolution {
	var changed []Resolution

	query := s.filter.Query()
	for query.Next() {
		pos, vel, agent := query.Get()

		center := components.Center(pos, agent.Radius)
		res := s.resolver.Resolve(center, vel.Vec(), mapVolume, agent.Radius, dt)
		if res.Outcome == OutcomeFree {
			continue
		}

		pos.Set(components.AnchorFromCenter(res.Center, agent.Radius))
		vel.Set(res.Velocity)
		changed = append(changed, res)
	}
	return changed
}
