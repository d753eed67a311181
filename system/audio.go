package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/status"
)

// AudioSystem forwards the tick's sound requests to the sound sink
type AudioSystem struct {
	world  *engine.World
	bus    *event.Bus
	reader *event.Reader[core.Sound]

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewAudioSystem creates a new audio system
func NewAudioSystem(world *engine.World) engine.System {
	bus := world.Resources.Events
	return &AudioSystem{
		world:       world,
		bus:         bus,
		reader:      bus.Sound.Subscribe(),
		statPlayed:  world.Resources.Status.Ints.Get(status.KeySoundsSent),
		statDropped: world.Resources.Status.Ints.Get(status.KeySoundsLost),
	}
}

// Name returns system's name
func (s *AudioSystem) Name() string {
	return "audio"
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// Release unsubscribes from the sound channel
func (s *AudioSystem) Release() {
	s.bus.Sound.Unsubscribe(s.reader)
}

// Update drains pending sounds; a missing or silent sink drops them
func (s *AudioSystem) Update() {
	sounds := s.bus.Sound.Read(s.reader)
	if len(sounds) == 0 {
		return
	}

	sink := s.world.Resources.Sound
	for _, sound := range sounds {
		if sink != nil && sink.Play(sound) {
			s.statPlayed.Add(1)
			continue
		}
		s.statDropped.Add(1)
	}
}
