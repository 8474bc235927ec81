package roulette

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestFrameClock_FirstDeltaIsZero(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fc := NewFrameClock(clock, 0)

	assert.Equal(t, time.Duration(0), fc.Delta())
}

func TestFrameClock_MeasuresElapsed(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fc := NewFrameClock(clock, 0)
	fc.Delta()

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, fc.Delta())

	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, fc.Delta())

	assert.Equal(t, time.Duration(0), fc.Delta())
}

func TestFrameClock_ClampsStalls(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fc := NewFrameClock(clock, 100*time.Millisecond)
	fc.Delta()

	clock.Advance(5 * time.Second)
	assert.Equal(t, 100*time.Millisecond, fc.Delta())
}

func TestFrameClock_DrivesWheel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fc := NewFrameClock(clock, DefaultMaxDelta)
	rec := &cueRecorder{}
	w := New(makeNames(3), seeded(9), WithSounder(rec))

	fc.Delta()
	w.Trigger()
	committed := false
	for i := 0; i < 1000 && !committed; i++ {
		clock.Advance(time.Second / 30)
		_, committed = w.Tick(fc.Delta())
	}

	assert.True(t, committed)
	assert.Equal(t, 35, rec.count(CueFlash))
	assert.Equal(t, 2, w.Remaining())
}
