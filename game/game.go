// Package game wires the ECS world, systems, input and drawing together.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/camera"
	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/components"
	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/inspector"
	"github.com/pthm-cable/ghostlight/systems"
	"github.com/pthm-cable/ghostlight/telemetry"
	"github.com/pthm-cable/ghostlight/ui"
)

// Options configures a game instance.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// Game holds the world and everything needed to step and draw it.
type Game struct {
	cfg *config.Config

	world        *ecs.World
	playerMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Shape,
		components.Collider,
		components.Agent,
		components.Light,
		components.Gun,
	]
	bulletMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Shape,
		components.Collider,
		components.Projectile,
	]
	mapMapper    *ecs.Map3[components.Position, components.Shape, components.MapTag]
	bulletFilter ecs.Filter2[components.Collider, components.Projectile]

	player     ecs.Entity
	mapPolygon []r2.Vec
	mapVolume  *collision.Volume

	// Systems
	colliders   *systems.ColliderSystem
	agents      *systems.AgentSystem
	movement    *systems.MovementSystem
	projectiles *systems.ProjectileSystem
	caster      *systems.Caster
	wedge       systems.Wedge

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Presentation (nil in headless mode)
	camera    *camera.Camera
	hud       *ui.HUD
	panel     *ui.DebugPanel
	inspector *inspector.Inspector

	rng       *rand.Rand
	autopilot *autopilot

	// State
	tick         int32
	paused       bool
	headless     bool
	dryFireTimer int32 // ticks left to show the out-of-ammo warning
	screenWidth  float64
	screenHeight float64
}

// NewGameWithOptions creates a game from the global configuration.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		cfg:   cfg,
		world: world,
		playerMapper: ecs.NewMap7[
			components.Position,
			components.Velocity,
			components.Shape,
			components.Collider,
			components.Agent,
			components.Light,
			components.Gun,
		](world),
		bulletMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Shape,
			components.Collider,
			components.Projectile,
		](world),
		mapMapper:    ecs.NewMap3[components.Position, components.Shape, components.MapTag](world),
		bulletFilter: *ecs.NewFilter2[components.Collider, components.Projectile](world),

		colliders:   systems.NewColliderSystem(world),
		agents:      systems.NewAgentSystem(world, systems.NewResolver(cfg.Collision)),
		movement:    systems.NewMovementSystem(world),
		projectiles: systems.NewProjectileSystem(world),
		caster:      systems.NewCaster(cfg),

		collector:     telemetry.NewCollector(cfg.Derived.WindowTicks, cfg.Physics.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Derived.WindowTicks),
		logStats:      opts.LogStats,

		rng:          rand.New(rand.NewSource(opts.Seed)),
		headless:     opts.Headless,
		screenWidth:  float64(cfg.Screen.Width),
		screenHeight: float64(cfg.Screen.Height),
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g.spawnMap(opts.Seed)
	g.player = g.spawnPlayer(r2.Vec{})
	g.colliders.Update()

	if opts.Headless {
		g.autopilot = newAutopilot(g.rng, cfg.Map.Radius)
	} else {
		g.camera = camera.New(g.screenWidth, g.screenHeight, cfg.Camera)
		g.hud = ui.NewHUD()
		g.panel = ui.NewDebugPanel()
		g.inspector = inspector.NewInspector(world)
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"map_points", len(g.mapPolygon),
		"map_radius", cfg.Map.Radius,
		"headless", opts.Headless,
		"output_dir", g.outputManager.Dir(),
	)
	return g
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
