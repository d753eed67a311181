package render

import (
	"github.com/gdamore/tcell/v2"
)

// FieldRenderer draws the field border and the center line
type FieldRenderer struct{}

// NewFieldRenderer creates a field renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Render implements SystemRenderer
func (r *FieldRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	border := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbFieldBorder)
	left, right := ctx.FieldX-1, ctx.FieldX+ctx.FieldWidth
	top, bottom := ctx.FieldY-1, ctx.FieldY+ctx.FieldHeight

	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, border)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, border)
		screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, border)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, border)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, border)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)

	divider := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCenterLine)
	midX := ctx.FieldX + ctx.FieldWidth/2
	for y := ctx.FieldY; y < bottom; y += 2 {
		screen.SetContent(midX, y, '┊', nil, divider)
	}
}
