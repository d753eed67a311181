package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// RenderContext is the per-frame view shared by all renderers
type RenderContext struct {
	World *engine.World

	// Terminal size in cells
	Width, Height int

	// Play field rectangle in cells, border excluded
	FieldX, FieldY, FieldWidth, FieldHeight int
}

// NewRenderContext lays out the field below the score row and above the status rows
func NewRenderContext(world *engine.World, width, height int) RenderContext {
	ctx := RenderContext{
		World:  world,
		Width:  width,
		Height: height,
		FieldX: 1,
		FieldY: parameter.FieldTop + 1,
	}
	ctx.FieldWidth = max(width-2, 1)
	ctx.FieldHeight = max(height-parameter.FieldTop-parameter.StatusRows-2, 1)
	return ctx
}

// ToCell maps a world position to a terminal cell; world y grows upward, rows grow downward
func (ctx RenderContext) ToCell(pos mgl32.Vec2) (x, y int) {
	area := ctx.World.Resources.Config.Area
	fx := pos.X() / area.Width * float32(ctx.FieldWidth)
	fy := (area.Height - pos.Y()) / area.Height * float32(ctx.FieldHeight)

	x = ctx.FieldX + clampCell(int(fx), ctx.FieldWidth)
	y = ctx.FieldY + clampCell(int(fy), ctx.FieldHeight)
	return x, y
}

// ScaleY converts a world height to a row count, at least one
func (ctx RenderContext) ScaleY(h float32) int {
	rows := int(h / ctx.World.Resources.Config.Area.Height * float32(ctx.FieldHeight))
	return max(rows, 1)
}

func clampCell(v, size int) int {
	return min(max(v, 0), size-1)
}
