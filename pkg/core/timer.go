package core

import "time"

// FixedStep helps run simulation updates at a steady cadence.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedInterval constructs a FixedStep that fires once per interval. The
// first tick is due one full interval after creation.
func NewFixedInterval(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// SetInterval changes the tick period. Non-positive values fall back to 60 TPS.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		f.SetTPS(60)
		return
	}
	f.step = d
}

// Interval reports the current tick period.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance feeds delta into the accumulator and reports whether a tick is due.
// At most one tick is reported per call.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
