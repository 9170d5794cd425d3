package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/components"
	"github.com/pthm-cable/ghostlight/systems"
)

// dryFireTicks is how long the out-of-ammo warning stays on screen.
const dryFireTicks = 60

// spawnMap generates the bounding polygon and its immutable volume.
func (g *Game) spawnMap(seed int64) {
	cfg := g.cfg
	g.mapPolygon = systems.GenerateMapPolygon(cfg.Map.Radius, cfg.Map.Points, cfg.Derived.MapJitter, seed)

	shape := components.Shape{Geometry: collision.NewConvex(g.mapPolygon...)}
	pos := components.Position{}
	g.mapMapper.NewEntity(&pos, &shape, &components.MapTag{})
	g.mapVolume = collision.NewVolume(&shape.Geometry, pos.Vec())
}

// spawnPlayer creates the player agent centered on center.
func (g *Game) spawnPlayer(center r2.Vec) ecs.Entity {
	cfg := g.cfg
	radius := cfg.Player.Radius

	var pos components.Position
	pos.Set(components.AnchorFromCenter(center, radius))

	return g.playerMapper.NewEntity(
		&pos,
		&components.Velocity{},
		&components.Shape{Geometry: collision.NewCircle(radius)},
		&components.Collider{},
		&components.Agent{Radius: radius, Speed: cfg.Player.Speed, Facing: r2.Vec{X: 1}},
		&components.Light{FOV: cfg.Derived.FOV, Radius: cfg.Light.Radius, On: true},
		&components.Gun{Ammo: cfg.Gun.MaxAmmo, MaxAmmo: cfg.Gun.MaxAmmo},
	)
}

// playerCenter returns the player's current center.
func (g *Game) playerCenter() r2.Vec {
	pos, _, _, _, agent, _, _ := g.playerMapper.Get(g.player)
	return components.Center(pos, agent.Radius)
}

// fire spawns a projectile from the player toward target. It returns false
// when the gun is empty.
func (g *Game) fire(target r2.Vec) bool {
	_, _, _, _, _, _, gun := g.playerMapper.Get(g.player)
	if gun.Ammo <= 0 {
		g.collector.RecordDryFire()
		g.dryFireTimer = dryFireTicks
		slog.Warn("out of ammo", "tick", g.tick)
		return false
	}

	center := g.playerCenter()
	dir := r2.Sub(target, center)
	if r2.Norm(dir) == 0 {
		return false
	}
	dir = r2.Unit(dir)
	gun.Ammo--

	radius := g.cfg.Gun.BulletRadius
	var pos components.Position
	pos.Set(components.AnchorFromCenter(center, radius))
	var vel components.Velocity
	vel.Set(r2.Scale(g.cfg.Gun.BulletSpeed, dir))

	g.bulletMapper.NewEntity(
		&pos,
		&vel,
		&components.Shape{Geometry: collision.NewCircle(radius)},
		&components.Collider{},
		&components.Projectile{Radius: radius},
	)
	g.collector.RecordShot()
	return true
}

// reload refills the player's gun.
func (g *Game) reload() {
	_, _, _, _, _, _, gun := g.playerMapper.Get(g.player)
	gun.Ammo = gun.MaxAmmo
	g.dryFireTimer = 0
	slog.Debug("reloaded", "ammo", gun.Ammo)
}
