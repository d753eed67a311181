package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-pong/core"
)

// PaddleComponent marks a player paddle; dimensions are fixed for the match
type PaddleComponent struct {
	Side   core.Side
	Width  float32
	Height float32
}

// Rect is an axis-aligned rectangle with inclusive bounds
type Rect struct {
	Left, Bottom, Right, Top float32
}

// Contains reports whether the point lies inside or on the edge of the rectangle
func (r Rect) Contains(p mgl32.Vec2) bool {
	return p.X() >= r.Left && p.X() <= r.Right && p.Y() >= r.Bottom && p.Y() <= r.Top
}

// Bounds returns the paddle rectangle centered on pos, grown by margin on every side
func (p PaddleComponent) Bounds(pos mgl32.Vec2, margin float32) Rect {
	halfW := p.Width * 0.5
	halfH := p.Height * 0.5
	return Rect{
		Left:   pos.X() - halfW - margin,
		Bottom: pos.Y() - halfH - margin,
		Right:  pos.X() + halfW + margin,
		Top:    pos.Y() + halfH + margin,
	}
}

// ClampY limits a paddle center so the paddle stays within [0, areaHeight]
func (p PaddleComponent) ClampY(y, areaHeight float32) float32 {
	halfH := p.Height * 0.5
	return math32.Max(halfH, math32.Min(y, areaHeight-halfH))
}
