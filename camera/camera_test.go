package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/ghostlight/config"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestCamera() *Camera {
	return New(1280, 720, config.CameraConfig{MinZoom: 0.5, MaxZoom: 3, ZoomStep: 0.1, FollowSpeed: 5})
}

func TestNew(t *testing.T) {
	cam := newTestCamera()

	if cam.Position != (r2.Vec{}) {
		t.Errorf("expected camera at origin, got %v", cam.Position)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.Following {
		t.Error("camera should not follow by default")
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := newTestCamera()
	cam.Position = r2.Vec{X: 100, Y: -50}

	s := cam.WorldToScreen(r2.Vec{X: 100, Y: -50})
	if math.Abs(s.X-640) > 0.01 || math.Abs(s.Y-360) > 0.01 {
		t.Errorf("expected screen center (640, 360), got %v", s)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.Position = r2.Vec{X: 30, Y: 40}
	cam.SetZoom(2.5)

	for _, s := range []r2.Vec{{X: 640, Y: 360}, {X: 100, Y: 100}, {X: 1200, Y: 600}} {
		w := cam.ScreenToWorld(s)
		back := cam.WorldToScreen(w)
		if math.Abs(back.X-s.X) > 0.01 || math.Abs(back.Y-s.Y) > 0.01 {
			t.Errorf("roundtrip failed: %v -> %v -> %v", s, w, back)
		}
	}
}

func TestZoomClamping(t *testing.T) {
	cam := newTestCamera()

	for i := 0; i < 50; i++ {
		cam.ZoomWheel(1)
	}
	if cam.Zoom != 3 {
		t.Errorf("zoom after zooming in = %v, want 3", cam.Zoom)
	}

	for i := 0; i < 50; i++ {
		cam.ZoomWheel(-1)
	}
	if cam.Zoom != 0.5 {
		t.Errorf("zoom after zooming out = %v, want 0.5", cam.Zoom)
	}

	cam.SetZoom(1)
	cam.ZoomWheel(2)
	if math.Abs(cam.Zoom-1.2) > 1e-9 {
		t.Errorf("two notches from 1 = %v, want 1.2", cam.Zoom)
	}
}

func TestFollow(t *testing.T) {
	cam := newTestCamera()
	target := r2.Vec{X: 100}

	cam.Update(target, 0.1)
	if cam.Position != (r2.Vec{}) {
		t.Fatalf("camera moved without following: %v", cam.Position)
	}

	cam.ToggleFollow()
	cam.Update(target, 0.1)
	if math.Abs(cam.Position.X-50) > 1e-9 {
		t.Errorf("after one step X = %v, want 50", cam.Position.X)
	}

	// A long frame snaps instead of overshooting
	cam.Update(target, 1)
	if cam.Position != target {
		t.Errorf("after long step position = %v, want %v", cam.Position, target)
	}
}

func TestIsVisible(t *testing.T) {
	cam := newTestCamera()
	cam.SetZoom(2)

	// Visible half-extent is 320 x 180 world units
	tests := []struct {
		p      r2.Vec
		radius float64
		want   bool
	}{
		{r2.Vec{}, 0, true},
		{r2.Vec{X: 320}, 0, true},
		{r2.Vec{X: 330}, 0, false},
		{r2.Vec{X: 330}, 15, true},
		{r2.Vec{Y: -200}, 10, false},
	}
	for _, tc := range tests {
		if got := cam.IsVisible(tc.p, tc.radius); got != tc.want {
			t.Errorf("IsVisible(%v, %v) = %v, want %v", tc.p, tc.radius, got, tc.want)
		}
	}
}

func TestPanScalesWithZoom(t *testing.T) {
	cam := newTestCamera()
	cam.SetZoom(2)
	cam.Pan(r2.Vec{X: 100, Y: -40})

	if cam.Position != (r2.Vec{X: 50, Y: -20}) {
		t.Errorf("position after pan = %v, want (50, -20)", cam.Position)
	}

	minB, maxB := cam.VisibleWorldBounds()
	if minB != (r2.Vec{X: -270, Y: -200}) || maxB != (r2.Vec{X: 370, Y: 160}) {
		t.Errorf("bounds = %v..%v", minB, maxB)
	}

	cam.Reset()
	if cam.Position != (r2.Vec{}) || cam.Zoom != 1 {
		t.Errorf("Reset left %v zoom %v", cam.Position, cam.Zoom)
	}
}
