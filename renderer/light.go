package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ghostlight/systems"
)

// DrawWedge renders both fans of a light wedge with per-vertex colours.
// Must be called inside BeginMode2D.
func DrawWedge(w *systems.Wedge) {
	if len(w.Outer) < 3 {
		return
	}

	if w.Blend == systems.BlendAdditive {
		rl.BeginBlendMode(rl.BlendAdditive)
		defer rl.EndBlendMode()
	}

	rl.DisableBackfaceCulling()
	drawFan(w.Outer)
	drawFan(w.Inner)
	rl.EnableBackfaceCulling()
}

// drawFan emits one triangle per consecutive pair of rim vertices, each
// sharing fan[0] as the apex.
func drawFan(fan []systems.WedgeVertex) {
	if len(fan) < 3 {
		return
	}
	apex := fan[0]

	rl.Begin(rl.Triangles)
	for i := 1; i < len(fan)-1; i++ {
		for _, v := range []systems.WedgeVertex{apex, fan[i], fan[i+1]} {
			rl.Color4ub(v.Color.R, v.Color.G, v.Color.B, v.Color.A)
			rl.Vertex2f(float32(v.Pos.X), float32(v.Pos.Y))
		}
	}
	rl.End()
}
