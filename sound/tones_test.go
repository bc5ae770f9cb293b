package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warped/game"
)

// drain streams s to the end and returns the samples it produced
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestTonesEndAndStayInRange(t *testing.T) {
	tests := []struct {
		name   string
		effect game.Effect
		length time.Duration
	}{
		{"laser", game.EffectLaser, 90 * time.Millisecond},
		{"explosion", game.EffectExplosion, 300 * time.Millisecond},
		{"pickup", game.EffectPickup, 180 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Tone(tt.effect, 1)
			require.NoError(t, err)

			samples := drain(t, s)
			assert.Equal(t, sampleRate.N(tt.length), len(samples))
			for _, smp := range samples {
				assert.LessOrEqual(t, smp[0], 1.0)
				assert.GreaterOrEqual(t, smp[0], -1.0)
			}
		})
	}
}

func TestToneUnknownEffect(t *testing.T) {
	_, err := Tone(game.Effect(99), 1)
	assert.Error(t, err)
}

func TestToneSilentAtZeroVolume(t *testing.T) {
	s, err := Tone(game.EffectExplosion, 0)
	require.NoError(t, err)
	for _, smp := range drain(t, s) {
		assert.Equal(t, [2]float64{0, 0}, smp)
	}
}

func TestSweepGeneratorFadesOut(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 1000, 500, 10*time.Millisecond)
	samples := drain(t, g)
	require.Len(t, samples, sampleRate.N(10*time.Millisecond))
	assert.InDelta(t, 0, samples[len(samples)-1][0], 0.01)
	assert.NoError(t, g.Err())
}

func TestPlayerIgnoresEffectsBeforeInitialize(t *testing.T) {
	p := NewPlayer(game.AudioConfig{Enabled: false, Volume: 1})
	require.NoError(t, p.Initialize())
	p.Play(game.EffectLaser)
	assert.Equal(t, 0, p.mixer.Len())
	p.Close()
}
