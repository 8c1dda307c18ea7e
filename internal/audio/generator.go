package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator generates a soft square-ish tone
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) + 0.1*math.Sin(2*math.Pi*g.freq*3*t)

		// 5ms attack avoids a click
		envelope := math.Min(t/0.005, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep over the given duration
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the glide has no discontinuities
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.25 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator generates a decaying crunch
type NoiseGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewNoiseGenerator creates a noise generator. The seed makes the output reproducible.
func NewNoiseGenerator(sr beep.SampleRate, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)
		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
