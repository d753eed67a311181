package system

import (
	"strconv"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ScoreTextSystem mirrors the score board into the two text slots whenever a point is scored
type ScoreTextSystem struct {
	world  *engine.World
	bus    *event.Bus
	reader *event.Reader[event.GameEvent]
}

// NewScoreTextSystem creates the system and pushes the initial zero scores
func NewScoreTextSystem(world *engine.World) engine.System {
	bus := world.Resources.Events
	s := &ScoreTextSystem{
		world:  world,
		bus:    bus,
		reader: bus.Game.Subscribe(),
	}
	s.push()
	return s
}

// Name returns system's name
func (s *ScoreTextSystem) Name() string {
	return "score_text"
}

// Priority returns the system's priority
func (s *ScoreTextSystem) Priority() int {
	return parameter.PriorityScoreText
}

// Release unsubscribes from the game channel
func (s *ScoreTextSystem) Release() {
	s.bus.Game.Unsubscribe(s.reader)
}

// Update refreshes both slots once if any Score event is pending
func (s *ScoreTextSystem) Update() {
	scored := false
	for _, ev := range s.bus.Game.Read(s.reader) {
		if ev.Type == event.GameScore {
			scored = true
		}
	}
	if scored {
		s.push()
	}
}

func (s *ScoreTextSystem) push() {
	sink := s.world.Resources.ScoreText
	if sink == nil {
		return
	}
	score := s.world.Resources.Score
	sink.SetText(core.SideLeft, strconv.Itoa(score.Get(core.SideLeft)))
	sink.SetText(core.SideRight, strconv.Itoa(score.Get(core.SideRight)))
}
