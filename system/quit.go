package system

import (
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// QuitSystem raises the match quit flag when the quit action is down
type QuitSystem struct {
	world *engine.World
}

// NewQuitSystem creates a quit system
func NewQuitSystem(world *engine.World) engine.System {
	return &QuitSystem{world: world}
}

// Name returns system's name
func (s *QuitSystem) Name() string {
	return "quit"
}

// Priority returns the system's priority
func (s *QuitSystem) Priority() int {
	return parameter.PriorityQuit
}

// Update checks the quit binding
func (s *QuitSystem) Update() {
	input := s.world.Resources.Input
	if input == nil {
		return
	}
	if input.ActionDown(s.world.Resources.Config.Bindings.Quit) {
		s.world.Resources.Match.QuitRequested.Store(true)
	}
}
