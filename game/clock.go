package game

import "time"

// Clock supplies the time that deadlines are checked against
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock
type RealClock struct{}

// Now returns the current wall-clock time
func (RealClock) Now() time.Time {
	return time.Now()
}

// StepClock is a manually advanced clock for headless runs and tests
type StepClock struct {
	now time.Time
}

// NewStepClock creates a step clock starting at start
func NewStepClock(start time.Time) *StepClock {
	return &StepClock{now: start}
}

// Now returns the clock's current time
func (c *StepClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *StepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set jumps the clock to t
func (c *StepClock) Set(t time.Time) {
	c.now = t
}
