// Snapshot tool - renders a generated map and one light wedge to a PNG file.
//
// Usage: go run ./cmd/snapshot -seed 7 -aim 30 -out wedge.png
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/camera"
	"github.com/pthm-cable/ghostlight/collision"
	"github.com/pthm-cable/ghostlight/config"
	"github.com/pthm-cable/ghostlight/renderer"
	"github.com/pthm-cable/ghostlight/systems"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 1, "Map seed")
	x := flag.Float64("x", 0, "Light center X in world units")
	y := flag.Float64("y", 0, "Light center Y in world units")
	aim := flag.Float64("aim", 0, "Facing in degrees, clockwise from +X")
	outPath := flag.String("out", "snapshot.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 800, "Render height")
	flag.Parse()

	config.MustInit(*configPath)
	cfg := config.Cfg()

	polygon := systems.GenerateMapPolygon(cfg.Map.Radius, cfg.Map.Points, cfg.Derived.MapJitter, *seed)
	shape := collision.NewConvex(polygon...)
	mapVolume := collision.NewVolume(&shape, r2.Vec{})

	caster := systems.NewCaster(cfg)
	center := r2.Vec{X: *x, Y: *y}
	angle := config.Radians(*aim)
	facing := r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	wedge := caster.BuildWedge(caster.LightOrigin(center, facing), facing, cfg.Derived.FOV, cfg.Light.Radius, mapVolume)

	// Fit the whole map with a small border
	cam := camera.New(float64(*width), float64(*height), cfg.Camera)
	cam.SetZoom(math.Min(float64(*width), float64(*height)) / (2.2 * cfg.Map.Radius))

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Snapshot")
	defer rl.CloseWindow()

	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	rl.BeginMode2D(renderer.Camera2D(cam))
	renderer.DrawPolygon(polygon, renderer.MapFill, renderer.MapOutline)
	renderer.DrawWedge(&wedge)
	renderer.DrawCircle(center, cfg.Player.Radius, renderer.AgentColor)
	renderer.DrawFacing(center, facing, cfg.Player.Radius*1.4, renderer.MapOutline)
	rl.EndMode2D()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}

	lengths := wedge.RayLengths()
	fmt.Printf("Snapshot rendered to: %s (%dx%d), %d rays, shortest %.1f\n",
		*outPath, *width, *height, len(lengths), minOf(lengths))
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = math.Min(m, v)
	}
	return m
}
