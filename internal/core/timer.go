package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// A multiplier stretches each tick, slowing simulation time relative to the
// caller's frame rate.
type FixedStep struct {
	base        time.Duration
	step        time.Duration
	multiplier  int
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{multiplier: 1, now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.base = time.Second / time.Duration(tps)
	f.step = f.base * time.Duration(f.multiplier)
}

// SetMultiplier stretches the tick interval by m. Values below 1 reset it.
func (f *FixedStep) SetMultiplier(m int) {
	if m < 1 {
		m = 1
	}
	f.multiplier = m
	f.step = f.base * time.Duration(m)
}

// Interval reports the current tick interval including the multiplier.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			// at most one catch-up tick after a stall
			f.accumulator = f.step
		}
		return true
	}
	return false
}
