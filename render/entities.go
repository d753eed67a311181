package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// PaddleRenderer draws each paddle as a vertical bar
type PaddleRenderer struct{}

// NewPaddleRenderer creates a paddle renderer
func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{}
}

// Render implements SystemRenderer
func (r *PaddleRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	world := ctx.World
	paddles := world.Query().
		With(world.Components.Paddle).
		With(world.Components.Transform).
		Execute()

	for _, e := range paddles {
		paddle, _ := world.Components.Paddle.Get(e)
		transform, _ := world.Components.Transform.Get(e)

		style := tcell.StyleDefault.
			Background(RgbBackground).
			Foreground(PaddleColor(paddle.Side == core.SideLeft))

		x, cy := ctx.ToCell(transform.Position)
		rows := ctx.ScaleY(paddle.Height)
		top := cy - rows/2
		for y := max(top, ctx.FieldY); y < top+rows && y < ctx.FieldY+ctx.FieldHeight; y++ {
			screen.SetContent(x, y, '█', nil, style)
		}
	}
}

// BallRenderer draws every ball as a single cell
type BallRenderer struct{}

// NewBallRenderer creates a ball renderer
func NewBallRenderer() *BallRenderer {
	return &BallRenderer{}
}

// Render implements SystemRenderer
func (r *BallRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	world := ctx.World
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBall)

	balls := world.Query().
		With(world.Components.Ball).
		With(world.Components.Transform).
		Execute()
	for _, e := range balls {
		transform, _ := world.Components.Transform.Get(e)
		x, y := ctx.ToCell(transform.Position)
		screen.SetContent(x, y, '●', nil, style)
	}
}
