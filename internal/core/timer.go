package core

import "time"

// FixedStep advances a simulated clock in constant increments of 1/TPS.
// Headless runs use it instead of wall time so frames are reproducible.
type FixedStep struct {
	tps     int
	step    time.Duration
	ticks   int64
	elapsed time.Duration
}

// NewFixedStep constructs a FixedStep targeting the given ticks per second.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate; non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the configured tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Delta returns the tick length in seconds.
func (f *FixedStep) Delta() float64 { return f.step.Seconds() }

// Tick advances the clock by one step and returns its length in seconds.
func (f *FixedStep) Tick() float64 {
	f.ticks++
	f.elapsed += f.step
	return f.step.Seconds()
}

// Ticks reports how many steps have elapsed.
func (f *FixedStep) Ticks() int64 { return f.ticks }

// Elapsed returns the simulated time since construction or the last Reset.
func (f *FixedStep) Elapsed() time.Duration { return f.elapsed }

// Reset rewinds the clock to zero.
func (f *FixedStep) Reset() {
	f.ticks = 0
	f.elapsed = 0
}
