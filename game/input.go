package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.reload()
	}
	if rl.IsKeyPressed(rl.KeyL) {
		_, _, _, _, _, light, _ := g.playerMapper.Get(g.player)
		light.On = !light.On
	}

	g.handleCameraInput()

	if !g.paused {
		g.handlePlayerInput()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
}

// handlePlayerInput sets the player's velocity from WASD, aims at the cursor
// and fires on left click.
func (g *Game) handlePlayerInput() {
	_, vel, _, _, agent, _, _ := g.playerMapper.Get(g.player)

	var move r2.Vec
	if rl.IsKeyDown(rl.KeyW) {
		move.Y--
	}
	if rl.IsKeyDown(rl.KeyS) {
		move.Y++
	}
	if rl.IsKeyDown(rl.KeyA) {
		move.X--
	}
	if rl.IsKeyDown(rl.KeyD) {
		move.X++
	}
	if r2.Norm(move) > 0 {
		move = r2.Scale(agent.Speed, r2.Unit(move))
	}
	vel.Set(move)

	mouse := rl.GetMousePosition()
	aim := g.camera.ScreenToWorld(r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)})
	if to := r2.Sub(aim, g.playerCenter()); r2.Norm(to) > 0 {
		agent.Facing = r2.Unit(to)
	}

	consumed := g.inspector.HandleInput(mouse, aim)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !consumed && !g.overPanel(mouse) {
		g.fire(aim)
	}
}

// overPanel reports whether the cursor is over the visible debug panel.
func (g *Game) overPanel(mouse rl.Vector2) bool {
	return g.panel.Visible && float64(mouse.X) > g.screenWidth-panelReserve
}

// panelReserve is the screen width kept for the debug panel.
const panelReserve = 290

// handleCameraInput processes camera pan, zoom and follow controls.
func (g *Game) handleCameraInput() {
	// Pan deltas are screen pixels; the camera divides by zoom
	const panSpeed = 8.0

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(r2.Vec{X: panSpeed})
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(r2.Vec{X: -panSpeed})
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(r2.Vec{Y: panSpeed})
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(r2.Vec{Y: -panSpeed})
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomWheel(float64(wheel))
	}

	if rl.IsKeyPressed(rl.KeyF) {
		g.camera.ToggleFollow()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
