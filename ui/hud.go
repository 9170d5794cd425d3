package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Tick      int32
	FPS       int32
	Paused    bool
	Ammo      int
	MaxAmmo   int
	Zoom      float64
	Following bool
	LightOn   bool
	OutOfAmmo bool // set for a short time after a dry fire
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := r.Theme.Padding, r.Theme.Padding

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 28

	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d | FPS %d", data.Tick, data.FPS))
	y = r.DrawLabelValue(x, y, "Zoom", fmt.Sprintf("%.1fx%s", data.Zoom, onOff(data.Following, " follow", "")))
	y = r.DrawLabelValue(x, y, "Light", onOff(data.LightOn, "on", "off"))

	var ammo float32
	if data.MaxAmmo > 0 {
		ammo = float32(data.Ammo) / float32(data.MaxAmmo)
	}
	y = r.DrawBar(x, y, fmt.Sprintf("Ammo %d", data.Ammo), ammo, 220)

	if data.OutOfAmmo {
		rl.DrawText("OUT OF AMMO", x, y+4, r.Theme.HeaderFontSize, r.Theme.WarnColor)
		y += r.Theme.LineHeight + 4
	}
	if data.Paused {
		rl.DrawText("PAUSED", x, y+4, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-25, 14, rl.Gray)
}

func onOff(b bool, on, off string) string {
	if b {
		return on
	}
	return off
}
