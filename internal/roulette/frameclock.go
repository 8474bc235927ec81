package roulette

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultMaxDelta caps a single frame's delta. Longer stalls (a dragged or
// minimized window) are treated as one frame of this length.
const DefaultMaxDelta = 250 * time.Millisecond

// FrameClock measures wall time between frames.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type FrameClock struct {
	clock    clockwork.Clock
	maxDelta time.Duration
	last     time.Time
	started  bool
}

func NewFrameClock(clock clockwork.Clock, maxDelta time.Duration) *FrameClock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameClock{clock: clock, maxDelta: maxDelta}
}

// Delta returns the time since the previous call. The first call returns 0.
func (f *FrameClock) Delta() time.Duration {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	dt := now.Sub(f.last)
	f.last = now
	if dt < 0 {
		return 0
	}
	if dt > f.maxDelta {
		return f.maxDelta
	}
	return dt
}
