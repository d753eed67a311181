package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ScoreText holds the two score slots written by the simulation and draws them on the score row
type ScoreText struct {
	mu    sync.RWMutex
	slots [2]string
}

// NewScoreText creates empty slots
func NewScoreText() *ScoreText {
	return &ScoreText{}
}

// SetText replaces the text of a side's slot
func (st *ScoreText) SetText(side core.Side, text string) {
	st.mu.Lock()
	st.slots[slotIndex(side)] = text
	st.mu.Unlock()
}

// Text returns the current text of a side's slot
func (st *ScoreText) Text(side core.Side) string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.slots[slotIndex(side)]
}

// Render centers each slot over its half of the field
func (st *ScoreText) Render(ctx RenderContext, screen tcell.Screen) {
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		text := st.Text(side)
		center := ctx.Width / 4
		if side == core.SideRight {
			center = ctx.Width * 3 / 4
		}
		style := tcell.StyleDefault.
			Background(RgbBackground).
			Foreground(PaddleColor(side == core.SideLeft)).
			Bold(true)
		drawText(screen, center-len(text)/2, parameter.ScoreRow, text, style)
	}
}

func slotIndex(side core.Side) int {
	if side == core.SideLeft {
		return 0
	}
	return 1
}
