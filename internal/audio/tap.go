package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap records the last N mono samples of every stream wrapped by it into a
// ring buffer so the renderer can draw a level meter from recent beeps.
type Tap struct {
	buffer    []float64
	nextIndex int
	unread    int
	mu        sync.RWMutex
}

func NewTap(ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{buffer: make([]float64, ringSize)}
}

// Wrap returns a streamer that plays src and records what it produced.
func (t *Tap) Wrap(src beep.Streamer) beep.Streamer {
	return &tapStreamer{source: src, tap: t}
}

type tapStreamer struct {
	source beep.Streamer
	tap    *Tap
}

func (s *tapStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := s.source.Stream(samples)
	if n > 0 {
		s.tap.record(samples[:n])
	}
	return n, ok
}

func (s *tapStreamer) Err() error { return s.source.Err() }

func (t *Tap) record(samples [][2]float64) {
	t.mu.Lock()
	for _, s := range samples {
		t.buffer[t.nextIndex] = (s[0] + s[1]) * 0.5
		t.nextIndex++
		if t.nextIndex >= len(t.buffer) {
			t.nextIndex = 0
		}
	}
	t.unread += len(samples)
	if t.unread > len(t.buffer) {
		t.unread = len(t.buffer)
	}
	t.mu.Unlock()
}

// Snapshot returns up to the last n samples, most recent last.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastLocked(n)
}

func (t *Tap) lastLocked(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Level returns the RMS of the samples recorded since the previous call,
// or 0 if nothing has played since.
func (t *Tap) Level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.unread == 0 {
		return 0
	}
	var sumSquares float64
	for _, v := range t.lastLocked(t.unread) {
		sumSquares += v * v
	}
	rms := math.Sqrt(sumSquares / float64(t.unread))
	t.unread = 0
	return rms
}
