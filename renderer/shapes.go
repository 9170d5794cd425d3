// Package renderer draws the world with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/camera"
)

// Palette
var (
	MapFill    = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	MapOutline = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	AgentColor = color.RGBA{R: 230, G: 230, B: 255, A: 200}
	BulletTint = color.RGBA{R: 255, G: 80, B: 60, A: 255}
)

// vec converts a world vector to raylib's float32 form.
func vec(v r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

// Camera2D mirrors the camera state into a raylib camera.
func Camera2D(c *camera.Camera) rl.Camera2D {
	return rl.Camera2D{
		Offset: rl.NewVector2(float32(c.ViewportW/2), float32(c.ViewportH/2)),
		Target: vec(c.Position),
		Zoom:   float32(c.Zoom),
	}
}

// DrawPolygon fills a convex polygon as a fan around its first vertex and
// outlines it.
func DrawPolygon(points []r2.Vec, fill, outline color.RGBA) {
	if len(points) < 3 {
		return
	}

	rl.DisableBackfaceCulling()
	for i := 1; i < len(points)-1; i++ {
		rl.DrawTriangle(vec(points[0]), vec(points[i]), vec(points[i+1]), fill)
	}
	rl.EnableBackfaceCulling()

	for i := range points {
		next := points[(i+1)%len(points)]
		rl.DrawLineEx(vec(points[i]), vec(next), 2, outline)
	}
}

// DrawCircle draws a filled circle around center.
func DrawCircle(center r2.Vec, radius float64, c color.RGBA) {
	rl.DrawCircleV(vec(center), float32(radius), c)
}

// DrawFacing draws a short line from center along facing.
func DrawFacing(center, facing r2.Vec, length float64, c color.RGBA) {
	end := r2.Add(center, r2.Scale(length, facing))
	rl.DrawLineEx(vec(center), vec(end), 2, c)
}
