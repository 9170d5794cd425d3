package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ghostlight/components"
	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/renderer"
	"github.com/pthm-cable/ghostlight/ui"
)

const controlsText = "WASD move | Mouse aim/fire | Middle click inspect | R reload | L light | F follow | Tab panel | Space pause | Arrows pan | Wheel zoom | Home reset"

// Draw renders the world and the UI.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.BeginMode2D(renderer.Camera2D(g.camera))
	renderer.DrawPolygon(g.mapPolygon, renderer.MapFill, renderer.MapOutline)
	renderer.DrawWedge(&g.wedge)
	g.drawBullets()
	g.drawPlayer()
	g.inspector.DrawSelectionHighlight()
	rl.EndMode2D()

	g.drawUI()

	rl.EndDrawing()
}

func (g *Game) drawPlayer() {
	pos, _, _, _, agent, _, _ := g.playerMapper.Get(g.player)
	center := components.Center(pos, agent.Radius)
	renderer.DrawCircle(center, agent.Radius, renderer.AgentColor)
	renderer.DrawFacing(center, agent.Facing, agent.Radius*1.4, renderer.MapOutline)
}

func (g *Game) drawBullets() {
	query := g.bulletFilter.Query()
	for query.Next() {
		col, proj := query.Get()
		if !g.camera.IsVisible(col.Volume.Center(), proj.Radius) {
			continue
		}
		renderer.DrawCircle(col.Volume.Center(), proj.Radius, renderer.BulletTint)
	}
}

func (g *Game) drawUI() {
	_, _, _, _, _, light, gun := g.playerMapper.Get(g.player)

	g.hud.Draw(ui.HUDData{
		Title:     g.cfg.Screen.Title,
		Tick:      g.tick,
		FPS:       rl.GetFPS(),
		Paused:    g.paused,
		Ammo:      gun.Ammo,
		MaxAmmo:   gun.MaxAmmo,
		Zoom:      g.camera.Zoom,
		Following: g.camera.Following,
		LightOn:   light.On,
		OutOfAmmo: g.dryFireTimer > 0,
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsText)
	g.inspector.Draw()

	res := g.panel.Draw(int32(g.screenWidth), ui.LightControls{
		FOV:       config.Degrees(light.FOV),
		MinFOV:    g.cfg.Light.MinFOV,
		MaxFOV:    g.cfg.Light.MaxFOV,
		Radius:    light.Radius,
		MinRadius: g.cfg.Light.MinRadius,
		MaxRadius: g.cfg.Light.MaxRadius,
	})
	if res.Changed {
		light.FOV = g.caster.ClampFOV(config.Radians(res.FOV))
		light.Radius = g.caster.ClampRadius(res.Radius)
	}
	if res.Reload {
		g.reload()
	}
}
