package game

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	autopilotArrive    = 20  // distance at which a new target is picked
	autopilotFireEvery = 45  // ticks between shots
	autopilotReloadAt  = 300 // ticks spent dry before reloading
	autopilotRetarget  = 180 // ticks before an unreachable target is dropped
)

// autopilot drives the player in headless runs. Targets are drawn from a
// disc slightly larger than the map so the agent regularly runs into walls.
type autopilot struct {
	rng       *rand.Rand
	reach     float64
	target    r2.Vec
	chasing   int
	dryTicks  int
	sinceShot int
}

func newAutopilot(rng *rand.Rand, mapRadius float64) *autopilot {
	a := &autopilot{rng: rng, reach: mapRadius * 1.2}
	a.target = a.pick()
	return a
}

func (a *autopilot) pick() r2.Vec {
	angle := a.rng.Float64() * 2 * math.Pi
	dist := math.Sqrt(a.rng.Float64()) * a.reach
	return r2.Vec{X: dist * math.Cos(angle), Y: dist * math.Sin(angle)}
}

// drive sets the player's velocity and facing toward the current target and
// fires on a fixed cadence.
func (a *autopilot) drive(g *Game) {
	_, vel, _, _, agent, _, gun := g.playerMapper.Get(g.player)
	center := g.playerCenter()

	to := r2.Sub(a.target, center)
	a.chasing++
	if r2.Norm(to) < autopilotArrive || a.chasing >= autopilotRetarget {
		a.target = a.pick()
		a.chasing = 0
		to = r2.Sub(a.target, center)
	}
	if r2.Norm(to) > 0 {
		dir := r2.Unit(to)
		vel.Set(r2.Scale(agent.Speed, dir))
		agent.Facing = dir
	}

	a.sinceShot++
	if a.sinceShot >= autopilotFireEvery {
		a.sinceShot = 0
		g.fire(a.target)
	}

	if gun.Ammo == 0 {
		a.dryTicks++
		if a.dryTicks >= autopilotReloadAt {
			a.dryTicks = 0
			g.reload()
		}
	}
}
