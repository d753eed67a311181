package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release ramp to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s, which is cut at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining < len(samples) {
		if remaining <= 0 {
			return 0, false
		}
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withGain wraps s at a fixed gain in base-2 volume steps
func withGain(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain}
}

// BounceTone is a short sine blip
func BounceTone(rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, parameter.BounceToneHz)
	if err != nil {
		// Frequency above Nyquist for this rate; fall back to the local oscillator
		tone = NewOscillator(parameter.BounceToneHz, parameter.BounceToneDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, parameter.BounceToneDuration, parameter.ToneFadeDuration, parameter.ToneFadeDuration, rate)
	return withGain(shaped, parameter.EffectGain)
}

// ScoreTone is a rising two-note square chime
func ScoreTone(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.ScoreToneDuration, WaveSquare, rate)
		return NewEnvelope(osc, parameter.ScoreToneDuration, parameter.ToneFadeDuration, parameter.ToneFadeDuration, rate)
	}

	sequence := beep.Seq(
		note(parameter.ScoreToneLowHz),
		beep.Silence(rate.N(parameter.ScoreToneGapDuration)),
		note(parameter.ScoreToneHighHz),
	)
	return withGain(sequence, parameter.EffectGain)
}

// Effect returns the streamer for a sound, nil for an unknown kind
func Effect(sound core.Sound, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundBounce:
		return BounceTone(rate)
	case core.SoundScore:
		return ScoreTone(rate)
	default:
		return nil
	}
}
