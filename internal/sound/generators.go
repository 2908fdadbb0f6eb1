package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a single decaying note. It ends after its duration.
type tone struct {
	freq    float64
	square  bool
	phase   float64
	pos     int
	samples int
	volume  float64
	rate    beep.SampleRate
}

// newTone creates a note that fades out linearly over duration.
func newTone(freq float64, duration time.Duration, square bool, volume float64, rate beep.SampleRate) *tone {
	return &tone{
		freq:    freq,
		square:  square,
		samples: rate.N(duration),
		volume:  volume,
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.samples {
			return i, i > 0
		}
		env := 1 - float64(t.pos)/float64(t.samples)
		val := wave(t.phase, t.square) * env * t.volume
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func wave(phase float64, square bool) float64 {
	if square {
		if phase < 0.5 {
			return 1
		}
		return -1
	}
	return math.Sin(2 * math.Pi * phase)
}

// CoinChime is the rising two-note pickup sound.
func CoinChime(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(1318.5, 60*time.Millisecond, false, 0.35, rate),  // E6
		newTone(1975.5, 120*time.Millisecond, false, 0.35, rate), // B6
	)
}

// GameOverBuzz is the low falling buzz played on game over.
func GameOverBuzz(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(196, 180*time.Millisecond, true, 0.25, rate), // G3
		newTone(147, 180*time.Millisecond, true, 0.25, rate), // D3
		newTone(98, 400*time.Millisecond, true, 0.25, rate),  // G2
	)
}

// melody is the background loop, as frequencies in Hz; 0 is a rest.
var melody = []float64{
	523.3, 659.3, 784.0, 659.3, 587.3, 698.5, 880.0, 698.5,
	523.3, 659.3, 784.0, 1046.5, 987.8, 784.0, 587.3, 0,
}

// Music is an endless chiptune loop. It never ends by itself; pause it
// through a beep.Ctrl.
type Music struct {
	rate   beep.SampleRate
	step   int // Samples per note
	pos    int // Sample within the current note
	note   int
	phase  float64
	bassPh float64
}

// NewMusic creates the background music streamer.
func NewMusic(rate beep.SampleRate) *Music {
	return &Music{rate: rate, step: rate.N(180 * time.Millisecond)}
}

func (m *Music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := melody[m.note]
		env := 1 - float64(m.pos)/float64(m.step)

		var val float64
		if freq > 0 {
			val = wave(m.phase, true) * env * 0.08
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		bass := melody[m.note-m.note%4] / 4
		val += wave(m.bassPh, false) * 0.06
		m.bassPh += bass / float64(m.rate)
		m.bassPh -= math.Floor(m.bassPh)

		samples[i][0] = val
		samples[i][1] = val

		m.pos++
		if m.pos >= m.step {
			m.pos = 0
			m.note = (m.note + 1) % len(melody)
		}
	}
	return len(samples), true
}

func (m *Music) Err() error { return nil }
