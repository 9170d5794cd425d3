package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/components"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestMovementSystem(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Velocity](w)
	e := mapper.NewEntity(&components.Position{X: 1, Y: 2}, &components.Velocity{X: 60, Y: -30})

	NewMovementSystem(w).Update(0.5)

	pos, _ := mapper.Get(e)
	if pos.X != 31 || pos.Y != -13 {
		t.Errorf("position = %+v, want (31, -13)", *pos)
	}
}

func TestColliderSystem(t *testing.T) {
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Shape, components.Collider](w)
	e := mapper.NewEntity(
		&components.Position{X: 10, Y: 20},
		&components.Shape{Geometry: collision.NewCircle(5)},
		&components.Collider{},
	)

	NewColliderSystem(w).Update()

	_, _, col := mapper.Get(e)
	if col.Volume.Center() != (r2.Vec{X: 15, Y: 25}) {
		t.Errorf("center = %v, want (15, 25)", col.Volume.Center())
	}
	if col.Volume.Kind() != collision.Circle {
		t.Errorf("kind = %v, want circle", col.Volume.Kind())
	}
}

func TestProjectileSystemCullsEscaped(t *testing.T) {
	w := ecs.NewWorld()
	m := squareMap(300)

	bullets := ecs.NewMap4[components.Position, components.Shape, components.Collider, components.Projectile](w)
	others := ecs.NewMap3[components.Position, components.Shape, components.Collider](w)

	spawn := func(x, y float64) ecs.Entity {
		return bullets.NewEntity(
			&components.Position{X: x, Y: y},
			&components.Shape{Geometry: collision.NewCircle(5)},
			&components.Collider{},
			&components.Projectile{Radius: 5},
		)
	}
	inside := spawn(0, 0)
	escaped := spawn(400, 0)
	edge := spawn(290, 0) // center at 295
	rock := others.NewEntity(
		&components.Position{X: 500, Y: 500},
		&components.Shape{Geometry: collision.NewCircle(5)},
		&components.Collider{},
	)

	NewColliderSystem(w).Update()
	removed := CullProjectiles(w, m)

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if w.Alive(escaped) {
		t.Error("escaped projectile still alive")
	}
	for name, e := range map[string]ecs.Entity{"inside": inside, "edge": edge, "non-projectile": rock} {
		if !w.Alive(e) {
			t.Errorf("%s entity was removed", name)
		}
	}

	if again := CullProjectiles(w, m); again != 0 {
		t.Errorf("second cull removed %d, want 0", again)
	}
}

func TestAgentSystem(t *testing.T) {
	w := ecs.NewWorld()
	m := squareMap(300)
	mapper := ecs.NewMap3[components.Position, components.Velocity, components.Agent](w)

	const radius = 30
	escaped := mapper.NewEntity(
		&components.Position{X: 301 - radius, Y: -radius},
		&components.Velocity{X: 100},
		&components.Agent{Radius: radius},
	)
	resting := mapper.NewEntity(
		&components.Position{X: -radius, Y: -radius},
		&components.Velocity{},
		&components.Agent{Radius: radius},
	)

	changed := NewAgentSystem(w, defaultResolver).Update(m, dt)

	if len(changed) != 1 || changed[0].Outcome != OutcomePushOut {
		t.Fatalf("changed = %+v, want one push-out", changed)
	}

	pos, vel, _ := mapper.Get(escaped)
	if center := components.Center(pos, radius); !vecNear(center, r2.Vec{X: 268}, 1e-9) {
		t.Errorf("escaped agent center = %v, want (268, 0)", center)
	}
	if !vecNear(vel.Vec(), r2.Vec{}, 1e-9) {
		t.Errorf("escaped agent velocity = %v, want zero", vel.Vec())
	}

	pos, _, _ = mapper.Get(resting)
	if pos.X != -radius || pos.Y != -radius {
		t.Errorf("resting agent moved to %+v", *pos)
	}
}
