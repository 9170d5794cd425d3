// Package camera provides a 2D camera system for viewport control.
package camera

import (
	"math"

	"github.com/pthm-cable/ghostlight/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// Camera controls the viewport into the world.
// Supports pan, stepped zoom and smooth following of a target.
type Camera struct {
	// Position is the camera center in world coordinates
	Position r2.Vec

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
	ZoomStep         float64

	// Following eases toward the target at FollowSpeed per second.
	Following   bool
	FollowSpeed float64
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH float64, cfg config.CameraConfig) *Camera {
	return &Camera{
		Zoom:        clamp(1, cfg.MinZoom, cfg.MaxZoom),
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		MinZoom:     cfg.MinZoom,
		MaxZoom:     cfg.MaxZoom,
		ZoomStep:    cfg.ZoomStep,
		FollowSpeed: cfg.FollowSpeed,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(w r2.Vec) r2.Vec {
	d := r2.Scale(c.Zoom, r2.Sub(w, c.Position))
	return r2.Vec{X: c.ViewportW/2 + d.X, Y: c.ViewportH/2 + d.Y}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(s r2.Vec) r2.Vec {
	d := r2.Vec{X: s.X - c.ViewportW/2, Y: s.Y - c.ViewportH/2}
	return r2.Add(c.Position, r2.Scale(1/c.Zoom, d))
}

// IsVisible returns true if a circle at w with given radius could be visible
// on screen (conservative check for culling).
func (c *Camera) IsVisible(w r2.Vec, radius float64) bool {
	d := r2.Sub(w, c.Position)
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(d.X) <= halfW && math.Abs(d.Y) <= halfH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(delta r2.Vec) {
	c.Position = r2.Add(c.Position, r2.Scale(1/c.Zoom, delta))
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomWheel applies one mouse wheel movement: positive zooms in by ZoomStep
// per notch, negative zooms out.
func (c *Camera) ZoomWheel(notches float64) {
	c.SetZoom(c.Zoom + notches*c.ZoomStep)
}

// ToggleFollow switches target following on or off.
func (c *Camera) ToggleFollow() {
	c.Following = !c.Following
}

// Update eases the camera toward target when following is enabled.
func (c *Camera) Update(target r2.Vec, dt float64) {
	if !c.Following {
		return
	}
	t := clamp(c.FollowSpeed*dt, 0, 1)
	c.Position = r2.Add(c.Position, r2.Scale(t, r2.Sub(target, c.Position)))
}

// Reset returns the camera to the origin at 1:1 zoom.
func (c *Camera) Reset() {
	c.Position = r2.Vec{}
	c.SetZoom(1)
}

// VisibleWorldBounds returns the world-coordinate corners of the visible area.
func (c *Camera) VisibleWorldBounds() (min, max r2.Vec) {
	half := r2.Vec{X: c.ViewportW / (2 * c.Zoom), Y: c.ViewportH / (2 * c.Zoom)}
	return r2.Sub(c.Position, half), r2.Add(c.Position, half)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
