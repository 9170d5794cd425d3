// Map preview tool - interactive map generation and light wedge preview with
// sliders.
//
// Usage: go run ./cmd/mappreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/renderer"
	"github.com/pthm-cable/ghostlight/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	previewSize  = 700
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the map and light parameters being edited.
type PreviewParams struct {
	Radius      float32
	Points      int
	Jitter      float32 // degrees
	Seed        int64
	FOV         float32 // degrees
	LightRadius float32
}

func defaultParams(cfg *config.Config) PreviewParams {
	return PreviewParams{
		Radius:      float32(cfg.Map.Radius),
		Points:      cfg.Map.Points,
		Jitter:      float32(cfg.Map.Jitter),
		Seed:        1,
		FOV:         float32(cfg.Light.FOV),
		LightRadius: float32(cfg.Light.Radius),
	}
}

// slider draws a labelled slider and returns the new value.
func slider(x float32, y *float32, label, format string, value, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

func main() {
	cfg := config.Default()
	caster := systems.NewCaster(cfg)

	rl.InitWindow(windowWidth, windowHeight, "Map Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams(cfg)

	var polygon []r2.Vec
	var mapVolume *collision.Volume
	needsRegen := true

	for !rl.WindowShouldClose() {
		if needsRegen {
			polygon = systems.GenerateMapPolygon(float64(params.Radius), params.Points, config.Radians(float64(params.Jitter)), params.Seed)
			shape := collision.NewConvex(polygon...)
			mapVolume = collision.NewVolume(&shape, r2.Vec{})
			needsRegen = false
		}

		// Fit the map into the preview square
		zoom := float32(previewSize) / (2.3 * params.Radius)
		cam := rl.Camera2D{
			Offset: rl.NewVector2(10+previewSize/2, 10+previewSize/2),
			Zoom:   zoom,
		}

		// Light sits at the map center and aims at the cursor
		mouse := rl.GetScreenToWorld2D(rl.GetMousePosition(), cam)
		center := mapVolume.Center()
		facing := r2.Sub(r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}, center)
		wedge := caster.BuildWedge(caster.LightOrigin(center, facing), facing,
			config.Radians(float64(params.FOV)), float64(params.LightRadius), mapVolume)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawRectangle(10, 10, previewSize, previewSize, rl.Black)
		rl.BeginScissorMode(10, 10, previewSize, previewSize)
		rl.BeginMode2D(cam)
		renderer.DrawPolygon(polygon, renderer.MapFill, renderer.MapOutline)
		renderer.DrawWedge(&wedge)
		rl.EndMode2D()
		rl.EndScissorMode()

		// Stats
		lengths := wedge.RayLengths()
		var clipped int
		for _, l := range lengths {
			if l < caster.ClampRadius(float64(params.LightRadius))-1e-6 {
				clipped++
			}
		}
		rl.DrawText(fmt.Sprintf("Vertices: %d  Rays: %d  Clipped: %d", len(polygon), len(lengths), clipped),
			15, previewSize+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Map", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		if v := slider(panelX, &panelY, "Radius", "%.0f", params.Radius, 100, 600); v != params.Radius {
			params.Radius = v
			needsRegen = true
		}
		if v := int(slider(panelX, &panelY, "Points", "%.0f", float32(params.Points), 3, 16)); v != params.Points {
			params.Points = v
			needsRegen = true
		}
		if v := slider(panelX, &panelY, "Jitter (degrees)", "%.1f", params.Jitter, 0, 20); v != params.Jitter {
			params.Jitter = v
			needsRegen = true
		}
		if v := int64(slider(panelX, &panelY, "Seed", "%.0f", float32(params.Seed), 0, 9999)); v != params.Seed {
			params.Seed = v
			needsRegen = true
		}

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15
		rl.DrawText("Light", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		params.FOV = slider(panelX, &panelY, "FOV (degrees)", "%.0f", params.FOV, float32(cfg.Light.MinFOV), float32(cfg.Light.MaxFOV))
		params.LightRadius = slider(panelX, &panelY, "Radius", "%.0f", params.LightRadius, float32(cfg.Light.MinRadius), float32(cfg.Light.MaxRadius))

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 9999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := fmt.Sprintf("map:\n  radius: %.0f\n  points: %d\n  jitter: %.1f\nlight:\n  fov: %.0f\n  radius: %.0f",
			params.Radius, params.Points, params.Jitter, params.FOV, params.LightRadius)
		rl.DrawText(yaml, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}
