package core

import "time"

// FixedStep meters simulation ticks at a steady ticks-per-second rate,
// independent of how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Due reports how many ticks have accumulated since the last call, capped at
// max so a stalled caller does not trigger a burst. Leftover time carries over.
func (f *FixedStep) Due(max int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n <= 0 {
		return 0
	}
	if max > 0 && n > max {
		f.accumulator = 0
		return max
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Wait blocks until at least one tick is due and returns how many are.
func (f *FixedStep) Wait(max int) int {
	for {
		if n := f.Due(max); n > 0 {
			return n
		}
		time.Sleep(f.step - f.accumulator)
	}
}
