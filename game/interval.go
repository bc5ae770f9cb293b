package game

import (
	"math"
	"math/rand"
	"time"
)

// Never is returned for intensities that can never fire
const Never = time.Duration(math.MaxInt64)

// IntervalGenerator turns an events-per-minute intensity into jittered waits
type IntervalGenerator struct {
	rng *rand.Rand
}

// NewIntervalGenerator creates a generator drawing from rng
func NewIntervalGenerator(rng *rand.Rand) *IntervalGenerator {
	return &IntervalGenerator{rng: rng}
}

// idealInterval returns the average wait in milliseconds
func idealInterval(intensity float64) float64 {
	return 60000 / intensity
}

// Normal samples N(0.5*ideal, 1.5*ideal), clamped at zero
func (g *IntervalGenerator) Normal(intensity float64) time.Duration {
	if intensity <= 0 {
		return Never
	}
	ideal := idealInterval(intensity)
	ms := ideal*0.5 + g.rng.NormFloat64()*ideal*1.5
	return millis(ms)
}

// Uniform samples U[0.2*ideal, 1.8*ideal]
func (g *IntervalGenerator) Uniform(intensity float64) time.Duration {
	if intensity <= 0 {
		return Never
	}
	ideal := idealInterval(intensity)
	low, high := ideal*0.2, ideal*1.8
	return millis(low + g.rng.Float64()*(high-low))
}

// millis converts a millisecond sample, negative and NaN become zero
func millis(ms float64) time.Duration {
	if !(ms > 0) {
		return 0
	}
	d := ms * float64(time.Millisecond)
	if d >= float64(Never) {
		return Never
	}
	return time.Duration(d)
}
