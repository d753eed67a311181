// Package audio renders sound effects and the optional music loop through the system speaker
package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ErrNoOutputDevice is returned by Start when the speaker cannot be opened
var ErrNoOutputDevice = errors.New("no audio output device")

// Player mixes one-shot effects and the music loop into the speaker
// When the device is unavailable it stays in silent mode and Play reports false
type Player struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	mixer *beep.Mixer
	music *beep.Ctrl
	log   logrus.FieldLogger

	withMusic bool

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewPlayer creates a stopped player; cfg.Audio.Enabled false starts it muted
func NewPlayer(cfg *config.Config, log logrus.FieldLogger) *Player {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &Player{
		rate:      beep.SampleRate(parameter.AudioSampleRate),
		mixer:     &beep.Mixer{},
		log:       log.WithField("component", "audio"),
		withMusic: cfg.Audio.Music,
	}
	p.muted.Store(!cfg.Audio.Enabled)
	return p
}

// Start opens the speaker and begins mixing
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running.Load() {
		return fmt.Errorf("audio player already running")
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		p.silentMode.Store(true)
		p.running.Store(true)
		return fmt.Errorf("%w: %v", ErrNoOutputDevice, err)
	}
	speaker.Play(p.mixer)

	if p.withMusic {
		p.music = &beep.Ctrl{
			Streamer: withGain(NewMusicLoop(p.rate), parameter.MusicGain),
			Paused:   p.muted.Load(),
		}
		speaker.Lock()
		p.mixer.Add(p.music)
		speaker.Unlock()
	}

	p.running.Store(true)
	p.log.WithFields(logrus.Fields{
		"rate":  int(p.rate),
		"music": p.withMusic,
	}).Info("audio started")
	return nil
}

// Stop silences everything and releases the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	if p.silentMode.Load() {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.music = nil
}

// Play mixes the effect for sound; false when stopped, muted or silent
func (p *Player) Play(sound core.Sound) bool {
	if !p.IsEnabled() {
		return false
	}

	streamer := Effect(sound, p.rate)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips mute and pauses the music with it; returns true if sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)

	p.mu.Lock()
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = muted
		speaker.Unlock()
	}
	p.mu.Unlock()

	return !muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsSilent reports whether the output device could not be opened
func (p *Player) IsSilent() bool {
	return p.silentMode.Load()
}

// IsEnabled returns true if running and audible
func (p *Player) IsEnabled() bool {
	return p.running.Load() && !p.muted.Load() && !p.silentMode.Load()
}
