package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LightControls is the light state edited by the debug panel. FOV is in
// degrees.
type LightControls struct {
	FOV, MinFOV, MaxFOV          float64
	Radius, MinRadius, MaxRadius float64
}

// PanelResult reports what the user changed this frame.
type PanelResult struct {
	FOV     float64
	Radius  float64
	Changed bool
	Reload  bool
}

// DebugPanel draws raygui sliders for the light and a reload button.
type DebugPanel struct {
	renderer *Renderer
	Visible  bool
	width    int32
}

// NewDebugPanel creates a hidden debug panel.
func NewDebugPanel() *DebugPanel {
	return &DebugPanel{renderer: NewRenderer(), width: 260}
}

// Toggle shows or hides the panel.
func (p *DebugPanel) Toggle() {
	p.Visible = !p.Visible
}

// Draw renders the panel at the right edge of the screen and returns the
// edited values. Hidden panels return the input unchanged.
func (p *DebugPanel) Draw(screenWidth int32, lc LightControls) PanelResult {
	res := PanelResult{FOV: lc.FOV, Radius: lc.Radius}
	if !p.Visible {
		return res
	}

	r := p.renderer
	x := screenWidth - p.width - r.Theme.Padding
	y := r.Theme.Padding
	r.DrawPanel(x, y, p.width, 170)

	x += r.Theme.Padding
	y = r.DrawSectionHeader(x, y+r.Theme.Padding, "Light")
	sliderW := float32(p.width - 2*r.Theme.Padding - 50)

	rl.DrawText(fmt.Sprintf("FOV %.0f deg", lc.FOV), x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	fov := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: sliderW, Height: 16},
		"", fmt.Sprintf("%.0f", lc.MaxFOV),
		float32(lc.FOV), float32(lc.MinFOV), float32(lc.MaxFOV),
	)
	y += r.Theme.LineHeight + 6

	rl.DrawText(fmt.Sprintf("Radius %.0f", lc.Radius), x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	radius := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: sliderW, Height: 16},
		"", fmt.Sprintf("%.0f", lc.MaxRadius),
		float32(lc.Radius), float32(lc.MinRadius), float32(lc.MaxRadius),
	)
	y += r.Theme.LineHeight + 10

	if fov != float32(lc.FOV) {
		res.FOV = float64(fov)
		res.Changed = true
	}
	if radius != float32(lc.Radius) {
		res.Radius = float64(radius)
		res.Changed = true
	}

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: 120, Height: 28}, "Reload") {
		res.Reload = true
	}
	return res
}
