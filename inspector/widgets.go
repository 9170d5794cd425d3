package inspector

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ghostlight/inspector/fields"
)

// Widget colors
var (
	ColorBarBg       = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill     = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow      = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText        = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim     = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorAngleBg     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorAngleNeedle = rl.Color{R: 255, G: 200, B: 100, A: 255}
	ColorBoolOn      = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff     = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name string, value any, options map[string]string) int32 {
	text := fields.FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 16, ColorText)
	return 20
}

// DrawBar renders a horizontal progress bar.
func DrawBar(x, y int32, name string, value float64, options map[string]string) int32 {
	ratio := float32(math.Max(0, math.Min(1, value/fields.GetMax(options))))

	barWidth := int32(120)
	barHeight := int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 80
	rl.DrawRectangle(barX, y, barWidth, barHeight, ColorBarBg)

	fillColor := ColorBarFill
	if ratio < 0.3 {
		fillColor = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barHeight, fillColor)

	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, 14, ColorTextDim)

	return 18
}

// DrawAngle renders an angular width as a cone opening upward.
func DrawAngle(x, y int32, name string, radians float64) int32 {
	size := int32(40)
	center := rl.Vector2{X: float32(x + 60 + size/2), Y: float32(y + size/2)}
	r := float32(size/2 - 2)

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)
	rl.DrawCircleV(center, float32(size/2), ColorAngleBg)

	// raylib sector angles are degrees, clockwise from +X; -90 is up
	half := float32(radians * 90 / math.Pi)
	rl.DrawCircleSector(center, r, -90-half, -90+half, 16, ColorAngleNeedle)

	rl.DrawText(fmt.Sprintf("%.0f deg", radians*180/math.Pi), x+60+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

// DrawVector renders a direction needle plus its components.
func DrawVector(x, y int32, name string, v r2.Vec) int32 {
	size := int32(40)
	center := rl.Vector2{X: float32(x + 60 + size/2), Y: float32(y + size/2)}

	rl.DrawText(name, x, y+size/2-7, 14, ColorTextDim)
	rl.DrawCircleV(center, float32(size/2), ColorAngleBg)
	rl.DrawCircleLinesV(center, float32(size/2), ColorTextDim)

	if n := r2.Norm(v); n > 0 {
		needle := float32(size/2 - 4)
		end := rl.Vector2{
			X: center.X + needle*float32(v.X/n),
			Y: center.Y + needle*float32(v.Y/n),
		}
		rl.DrawLineEx(center, end, 2, ColorAngleNeedle)
	}

	rl.DrawText(fields.FormatValue(v, ""), x+60+size+5, y+size/2-7, 14, ColorTextDim)

	return size + 4
}

// DrawBool renders an on/off indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	indicatorX := x + 80
	indicatorSize := int32(14)

	color := ColorBoolOff
	text := "OFF"
	if value {
		color = ColorBoolOn
		text = "ON"
	}

	rl.DrawRectangle(indicatorX, y, indicatorSize, indicatorSize, color)
	rl.DrawText(text, indicatorX+indicatorSize+5, y, 14, color)

	return 18
}

// DrawField renders a field using its widget type and returns its height.
func DrawField(x, y int32, field fields.Field) int32 {
	switch fields.EffectiveWidget(field) {
	case fields.WidgetBar:
		v, _ := fields.GetFloatValue(field.Value)
		return DrawBar(x, y, field.Name, v, field.Options)
	case fields.WidgetAngle:
		v, _ := fields.GetFloatValue(field.Value)
		return DrawAngle(x, y, field.Name, v)
	case fields.WidgetVector:
		return DrawVector(x, y, field.Name, field.Value.(r2.Vec))
	case fields.WidgetBool:
		return DrawBool(x, y, field.Name, field.Value.(bool))
	default:
		return DrawLabel(x, y, field.Name, field.Value, field.Options)
	}
}
