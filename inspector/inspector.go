// Package inspector shows the components of a clicked entity.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/components"
	"github.com/pthm-cable/ghostlight/inspector/fields"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
)

// section is one component's worth of fields.
type section struct {
	title  string
	fields []fields.Field
}

// Inspector manages entity selection and panel rendering.
type Inspector struct {
	world       *ecs.World
	selected    ecs.Entity
	hasSelected bool
	panelX      int32
	panelY      int32

	colliders ecs.Filter1[components.Collider]
	posMap    *ecs.Map1[components.Position]
	velMap    *ecs.Map1[components.Velocity]
	colMap    *ecs.Map1[components.Collider]
	agentMap  *ecs.Map1[components.Agent]
	lightMap  *ecs.Map1[components.Light]
	gunMap    *ecs.Map1[components.Gun]
	projMap   *ecs.Map1[components.Projectile]
}

// NewInspector creates an inspector for entities of w. The panel sits at
// the left edge below the HUD.
func NewInspector(w *ecs.World) *Inspector {
	return &Inspector{
		world:     w,
		panelX:    10,
		panelY:    170,
		colliders: *ecs.NewFilter1[components.Collider](w),
		posMap:    ecs.NewMap1[components.Position](w),
		velMap:    ecs.NewMap1[components.Velocity](w),
		colMap:    ecs.NewMap1[components.Collider](w),
		agentMap:  ecs.NewMap1[components.Agent](w),
		lightMap:  ecs.NewMap1[components.Light](w),
		gunMap:    ecs.NewMap1[components.Gun](w),
		projMap:   ecs.NewMap1[components.Projectile](w),
	}
}

// HandleInput selects the entity under the cursor on a middle click and
// deselects on a right click or the close button. mouseScreen is in screen pixels,
// mouseWorld the same point in world units. It reports whether the click
// was consumed by the panel.
func (ins *Inspector) HandleInput(mouseScreen rl.Vector2, mouseWorld r2.Vec) bool {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return false
	}

	if ins.hasSelected && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if int32(mouseScreen.X) >= closeX && int32(mouseScreen.X) <= closeX+20 &&
			int32(mouseScreen.Y) >= closeY && int32(mouseScreen.Y) <= closeY+20 {
			ins.Deselect()
			return true
		}
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonMiddle) {
		return false
	}

	if e, ok := ins.pick(mouseWorld); ok {
		ins.selected = e
		ins.hasSelected = true
	}
	return true
}

// pick returns the entity whose collider contains p. When several overlap,
// the one whose center is nearest wins.
func (ins *Inspector) pick(p r2.Vec) (ecs.Entity, bool) {
	var closest ecs.Entity
	closestDist := 0.0
	found := false

	query := ins.colliders.Query()
	for query.Next() {
		col := query.Get()
		if !col.Volume.ContainsPoint(p) {
			continue
		}
		d := r2.Norm2(r2.Sub(p, col.Volume.Center()))
		if !found || d < closestDist {
			closest = query.Entity()
			closestDist = d
			found = true
		}
	}
	return closest, found
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// sections gathers the inspectable components of the selected entity.
func (ins *Inspector) sections() []section {
	e := ins.selected
	var out []section
	add := func(title string, component any) {
		out = append(out, section{title: title, fields: fields.Extract(component)})
	}

	var transform []fields.Field
	if ins.posMap.Has(e) {
		transform = append(transform, fields.Field{Name: "Anchor", Value: ins.posMap.Get(e).Vec(), Widget: fields.WidgetLabel})
	}
	if ins.velMap.Has(e) {
		vel := ins.velMap.Get(e).Vec()
		transform = append(transform,
			fields.Field{Name: "Velocity", Value: vel, Widget: fields.WidgetLabel},
			fields.Field{Name: "Speed", Value: r2.Norm(vel), Widget: fields.WidgetLabel},
		)
	}
	if len(transform) > 0 {
		out = append(out, section{title: "TRANSFORM", fields: transform})
	}
	if ins.colMap.Has(e) {
		v := &ins.colMap.Get(e).Volume
		b := v.Bounds()
		out = append(out, section{title: "COLLIDER", fields: []fields.Field{
			{Name: "Kind", Value: v.Kind().String(), Widget: fields.WidgetLabel},
			{Name: "Center", Value: v.Center(), Widget: fields.WidgetLabel},
			{Name: "Size", Value: b.Size, Widget: fields.WidgetLabel},
		}})
	}
	if ins.agentMap.Has(e) {
		add("AGENT", ins.agentMap.Get(e))
	}
	if ins.lightMap.Has(e) {
		add("LIGHT", ins.lightMap.Get(e))
	}
	if ins.gunMap.Has(e) {
		add("GUN", ins.gunMap.Get(e))
	}
	if ins.projMap.Has(e) {
		add("PROJECTILE", ins.projMap.Get(e))
	}
	return out
}

// Draw renders the inspector panel if a live entity is selected.
func (ins *Inspector) Draw() {
	if !ins.hasSelected {
		return
	}
	// Entity may have been removed, e.g. a culled projectile
	if !ins.world.Alive(ins.selected) {
		ins.Deselect()
		return
	}

	secs := ins.sections()

	panelHeight := int32(HeaderHeight + 2*PanelPadding + 22)
	for _, s := range secs {
		panelHeight += 24
		for _, f := range s.fields {
			panelHeight += fields.FieldHeight(f)
		}
	}

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	rl.DrawText(fmt.Sprintf("Entity %d", ins.selected.ID()), x, y, 14, ColorHeaderText)
	y += 22

	for _, s := range secs {
		ins.drawSectionHeader(x, y, s.title)
		y += 24
		for _, f := range s.fields {
			y += DrawField(x, y, f)
		}
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// DrawSelectionHighlight outlines the selected entity's collider. Call it
// inside the world camera mode.
func (ins *Inspector) DrawSelectionHighlight() {
	if !ins.hasSelected || !ins.world.Alive(ins.selected) || !ins.colMap.Has(ins.selected) {
		return
	}

	v := &ins.colMap.Get(ins.selected).Volume
	b := v.Bounds()
	c := v.Center()
	radius := 0.5 * r2.Norm(b.Size)
	rl.DrawCircleLinesV(rl.Vector2{X: float32(c.X), Y: float32(c.Y)}, float32(radius*1.2), rl.Yellow)
}
