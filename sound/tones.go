package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"warped/game"
)

// Tone builds the streamer for an effect at volume, 0 is silent and 1 is full scale
func Tone(effect game.Effect, volume float64) (beep.Streamer, error) {
	var s beep.Streamer
	switch effect {
	case game.EffectLaser:
		s = NewSweepGenerator(sampleRate, 1200, 400, 90*time.Millisecond)
	case game.EffectExplosion:
		s = NewNoiseGenerator(sampleRate, 300*time.Millisecond, 1)
	case game.EffectPickup:
		low, err := generators.SineTone(sampleRate, 660)
		if err != nil {
			return nil, errors.Wrap(err, "pickup tone")
		}
		high, err := generators.SineTone(sampleRate, 990)
		if err != nil {
			return nil, errors.Wrap(err, "pickup tone")
		}
		s = beep.Seq(
			beep.Take(sampleRate.N(70*time.Millisecond), low),
			beep.Take(sampleRate.N(110*time.Millisecond), high),
		)
	default:
		return nil, errors.Errorf("unknown effect %d", effect)
	}
	return newVolume(s, volume*0.5), nil
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SweepGenerator is a sine whose pitch slides linearly between two frequencies
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Fade out over the sweep
		sample := (1 - progress) * math.Sin(2*math.Pi*g.phase)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator is decaying noise over a low rumble
type NoiseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	seed    int64
}

// NewNoiseGenerator creates a burst lasting d
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, samples: sr.N(d), seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, slower decay
		envelope := math.Exp(-t * 10)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.6*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
