package engine

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/status"
)

// Resources holds singleton match resources shared by all systems
// Each mutable field has a single writer: Time by the Scheduler, Score by the WinnerSystem,
// Match.QuitRequested by the QuitSystem
type Resources struct {
	Time   *TimeResource
	Config *config.Config
	Score  *ScoreBoard
	Match  *MatchResource
	Events *event.Bus

	// Collaborators, any may be nil
	Input     Input
	Sound     SoundSink
	ScoreText ScoreTextSink

	// Telemetry
	Log    logrus.FieldLogger
	Status *status.Registry
}

// NewResources builds resources for a fresh match; logging is discarded until replaced
func NewResources(cfg *config.Config) *Resources {
	if cfg == nil {
		cfg = config.Default()
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Resources{
		Time:   &TimeResource{},
		Config: cfg,
		Score:  NewScoreBoard(cfg.Rules.MaxScore),
		Match:  &MatchResource{},
		Events: event.NewBus(),
		Log:    logger,
		Status: status.NewRegistry(),
	}
}

// === World Resources ===

// TimeResource is updated by the Scheduler at the start of every tick
type TimeResource struct {
	// DeltaTime is the duration advanced by the current tick
	DeltaTime time.Duration

	// Tick is the number of the current tick, starting at 1
	Tick int64
}

// Delta returns the tick delta in seconds as used by the physics
func (tr *TimeResource) Delta() float32 {
	return float32(tr.DeltaTime.Seconds())
}

// MatchResource carries match-wide flags
type MatchResource struct {
	QuitRequested atomic.Bool
}

// ScoreBoard holds both players' points, each capped at max
type ScoreBoard struct {
	left, right atomic.Int64
	max         int64
}

// NewScoreBoard creates a zeroed board with the given cap
func NewScoreBoard(max int) *ScoreBoard {
	return &ScoreBoard{max: int64(max)}
}

// Add credits one point to side, clamped at the cap, and returns the new value
func (sb *ScoreBoard) Add(side core.Side) int {
	counter := sb.counter(side)
	next := counter.Load() + 1
	if next > sb.max {
		next = sb.max
	}
	counter.Store(next)
	return int(next)
}

// Get returns the points of side
func (sb *ScoreBoard) Get(side core.Side) int {
	return int(sb.counter(side).Load())
}

func (sb *ScoreBoard) counter(side core.Side) *atomic.Int64 {
	if side == core.SideLeft {
		return &sb.left
	}
	return &sb.right
}

// === Collaborators ===

// Input reads directional axes and actions by binding name
type Input interface {
	// Axis returns the deflection in [-1, 1]; false when the binding is not active
	Axis(name string) (float32, bool)
	ActionDown(name string) bool
	// MousePosition is for diagnostics only
	MousePosition() (x, y float32, ok bool)
}

// SoundSink plays one-shot effects; returns false when nothing was rendered
type SoundSink interface {
	Play(core.Sound) bool
}

// ScoreTextSink receives the decimal text of a score slot
type ScoreTextSink interface {
	SetText(side core.Side, text string)
}
