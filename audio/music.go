package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-pong/parameter"
)

// musicLoop is an endless kick and bass pattern, one kick per beat with the bass on the off-beat
type musicLoop struct {
	rate     beep.SampleRate
	beat     int
	kick     int
	position int
	bassPh   float64
	kickPh   float64
}

// NewMusicLoop creates the background loop; it never ends
func NewMusicLoop(rate beep.SampleRate) beep.Streamer {
	return &musicLoop{
		rate: rate,
		beat: rate.N(parameter.MusicBeatDuration),
		kick: rate.N(parameter.MusicKickDuration),
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	half := m.beat / 2
	for i := range samples {
		pos := m.position % m.beat

		var val float64
		if pos < m.kick {
			// Pitch drops 150Hz to 50Hz over the kick with a linear decay
			progress := float64(pos) / float64(m.kick)
			freq := 150 - 100*progress
			m.kickPh += freq / float64(m.rate)
			m.kickPh -= math.Floor(m.kickPh)
			val += math.Sin(2*math.Pi*m.kickPh) * (1 - progress)
		}
		if pos >= half {
			decay := 1 - float64(pos-half)/float64(m.beat-half)
			m.bassPh += parameter.MusicBassHz / float64(m.rate)
			m.bassPh -= math.Floor(m.bassPh)
			val += 0.5 * math.Sin(2*math.Pi*m.bassPh) * decay
		}

		samples[i][0] = val
		samples[i][1] = val
		m.position++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
