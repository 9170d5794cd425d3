package game

import (
	"github.com/pthm-cable/ghostlight/components"
	"github.com/pthm-cable/ghostlight/systems"
	"github.com/pthm-cable/ghostlight/telemetry"
)

// step advances the simulation by one fixed tick. Input or the autopilot
// must already have set the player's velocity and facing.
func (g *Game) step() {
	dt := g.cfg.Physics.DT

	g.perfCollector.StartPhase(telemetry.PhaseColliders)
	g.colliders.Update()

	// Resolve before moving so the predicted position never leaves the map
	g.perfCollector.StartPhase(telemetry.PhaseResolve)
	g.collector.RecordResolutions(g.agents.Update(g.mapVolume, dt))

	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	g.movement.Update(dt)
	g.colliders.Update()

	g.perfCollector.StartPhase(telemetry.PhaseProjectiles)
	if n := g.projectiles.Update(g.world, g.mapVolume); n > 0 {
		g.collector.RecordCulled(n)
	}

	g.perfCollector.StartPhase(telemetry.PhaseVisibility)
	g.updateWedge()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	if g.dryFireTimer > 0 {
		g.dryFireTimer--
	}
	g.tick++
}

// updateWedge recasts the player's light. A switched-off light keeps an
// empty wedge.
func (g *Game) updateWedge() {
	pos, _, _, _, agent, light, _ := g.playerMapper.Get(g.player)
	if !light.On {
		g.wedge = systems.Wedge{}
		return
	}

	center := components.Center(pos, agent.Radius)
	origin := g.caster.LightOrigin(center, agent.Facing)
	g.wedge = g.caster.BuildWedge(origin, agent.Facing, light.FOV, light.Radius, g.mapVolume)
	g.collector.RecordWedge(g.wedge.RayLengths())
}

// UpdateHeadless runs one tick driven by the autopilot.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.autopilot.drive(g)
	g.step()
	g.perfCollector.EndTick()
}

// Update handles input and runs one tick unless paused.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	if !g.paused {
		g.step()
	}
	g.perfCollector.EndTick()

	g.camera.Update(g.playerCenter(), g.cfg.Physics.DT)
}
