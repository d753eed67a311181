package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/status"
)

// StatusRenderer draws the bottom status line: serve countdown, counters and the sound state
type StatusRenderer struct {
	// Countdown reports the seconds until the next serve; nil hides it
	Countdown func() (float32, bool)

	// Muted reports the sound state; nil hides it
	Muted func() bool
}

// Render implements SystemRenderer
func (r *StatusRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	y := ctx.Height - 1
	if y <= ctx.FieldY+ctx.FieldHeight {
		return
	}

	text := r.line(ctx)
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText)
	drawText(screen, 1, y, text, style)

	if halted := ctx.World.Resources.Status.Ints.Get(status.KeyHalted).Load(); halted > 0 {
		warn := fmt.Sprintf(" HALTED:%d ", halted)
		drawText(screen, ctx.Width-len(warn)-1, y, warn,
			tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHaltedText).Bold(true))
	}
}

func (r *StatusRenderer) line(ctx RenderContext) string {
	ints := ctx.World.Resources.Status.Ints

	text := fmt.Sprintf("bounces %d  points %d",
		ints.Get(status.KeyBounces).Load(),
		ints.Get(status.KeyScores).Load())

	if r.Countdown != nil {
		if left, pending := r.Countdown(); pending {
			text = fmt.Sprintf("serve in %.1fs  %s", left, text)
		}
	}
	if r.Muted != nil {
		sound := "on"
		if r.Muted() {
			sound = "off"
		}
		text += "  sound " + sound
	}
	return text
}
