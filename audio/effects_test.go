package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

const testRate = beep.SampleRate(parameter.AudioSampleRate)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

// TestOscillatorLength verifies the oscillator stops at its duration
func TestOscillatorLength(t *testing.T) {
	osc := NewOscillator(440, 50*time.Millisecond, WaveSine, testRate)
	n, peak := drain(t, osc, testRate.N(time.Second))

	if want := testRate.N(50 * time.Millisecond); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Expected sine peak near 1.0, got %f", peak)
	}
}

// TestOscillatorSquare verifies square samples are full scale
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate)
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Expected 64 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Errorf("Square sample %d should be +/-1, got %f", i, v)
		}
	}
}

// TestEnvelopeRamps verifies the envelope starts and ends silent and cuts an endless source
func TestEnvelopeRamps(t *testing.T) {
	src := NewMusicLoop(testRate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate)

	total := testRate.N(100 * time.Millisecond)
	samples := make([][2]float64, total+100)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Expected envelope to cut at %d samples, got %d", total, n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if math.Abs(samples[n-1][0]) > 0.01 {
		t.Errorf("Expected near-silent last sample, got %f", samples[n-1][0])
	}

	if n, ok := env.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained envelope, got n=%d ok=%v", n, ok)
	}
}

// TestEffectTones verifies both effects are finite, audible and attenuated
func TestEffectTones(t *testing.T) {
	cases := []struct {
		sound core.Sound
		want  int
	}{
		{core.SoundBounce, testRate.N(parameter.BounceToneDuration)},
		{core.SoundScore, 2*testRate.N(parameter.ScoreToneDuration) + testRate.N(parameter.ScoreToneGapDuration)},
	}

	for _, tc := range cases {
		t.Run(tc.sound.String(), func(t *testing.T) {
			s := Effect(tc.sound, testRate)
			if s == nil {
				t.Fatal("Expected effect streamer")
			}
			n, peak := drain(t, s, testRate.N(time.Second))
			if n != tc.want {
				t.Errorf("Expected %d samples, got %d", tc.want, n)
			}
			if peak <= 0 || peak >= 1.0 {
				t.Errorf("Expected attenuated audible peak, got %f", peak)
			}
		})
	}

	if Effect(core.SoundCount, testRate) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

// TestMusicLoopEndless verifies the loop keeps producing samples
func TestMusicLoopEndless(t *testing.T) {
	loop := NewMusicLoop(testRate)
	buf := make([][2]float64, testRate.N(time.Second))
	for i := 0; i < 5; i++ {
		n, ok := loop.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Expected full buffer on pass %d, got %d (ok=%v)", i, n, ok)
		}
	}
}

// TestPlayerNotStarted verifies a stopped player reports nothing rendered
func TestPlayerNotStarted(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	p := NewPlayer(config.Default(), logger)

	if p.Play(core.SoundBounce) {
		t.Error("Expected Play to fail before Start")
	}
	if p.IsEnabled() {
		t.Error("Expected player disabled before Start")
	}

	// Stop on a player that never started is a no-op
	p.Stop()
}

// TestPlayerMute verifies mute follows config and toggles
func TestPlayerMute(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := config.Default()
	cfg.Audio.Enabled = false
	p := NewPlayer(cfg, logger)

	if !p.IsMuted() {
		t.Fatal("Expected muted player when audio disabled")
	}
	if !p.ToggleMute() {
		t.Error("Expected sound on after toggle")
	}
	if p.IsMuted() {
		t.Error("Expected unmuted after toggle")
	}
}
