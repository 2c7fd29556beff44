package core

import "time"

// FixedStep converts wall-clock time into a steady stream of simulation
// ticks. Callers poll ShouldStep in their frame loop and advance the
// simulation once per true result.
type FixedStep struct {
	interval time.Duration
	backlog  time.Duration
	prev     time.Time
}

// NewFixedStep returns a controller targeting tps ticks per second.
// Non-positive rates fall back to 60.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{}
	f.SetTPS(tps)
	// Fire immediately on the first poll.
	f.backlog = f.interval
	return f
}

// SetTPS changes the tick rate without resetting the backlog.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.interval = time.Second / time.Duration(tps)
}

// ShouldStep reports whether one tick's worth of time has elapsed. The
// backlog is capped at a quarter second so a stalled host (suspended
// terminal, dragged window) resumes smoothly instead of bursting through
// the missed ticks.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if !f.prev.IsZero() {
		f.backlog += now.Sub(f.prev)
	}
	f.prev = now
	if f.backlog > time.Second/4 {
		f.backlog = time.Second / 4
	}
	if f.backlog < f.interval {
		return false
	}
	f.backlog -= f.interval
	return true
}
