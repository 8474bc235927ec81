// Package roulette implements the name-picking state machine: a shrinking
// pool of names, a timed flashing animation, and the winner draw.
//
// A Wheel has no clock of its own. The host advances it with Tick once per
// frame and asks it what to draw.
package roulette

import (
	"math/rand/v2"
	"strings"
	"time"
)

const (
	DefaultInterval = 280 * time.Millisecond
	DefaultDuration = 10 * time.Second

	// NoNames is displayed when a wheel is created with an empty pool.
	NoNames = "(no names)"
)

type State int

const (
	Idle State = iota
	Flashing
	Selected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Flashing:
		return "flashing"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// Cue identifies which beep a wheel wants played.
type Cue int

const (
	CueFlash Cue = iota
	CueFinal
)

func (c Cue) String() string {
	if c == CueFinal {
		return "final"
	}
	return "flash"
}

// Sounder plays cues emitted by a Wheel. Play is called from Tick and must
// not block.
type Sounder interface {
	Play(c Cue)
}

type SounderFunc func(c Cue)

func (f SounderFunc) Play(c Cue) { f(c) }

type Option func(*Wheel)

func WithInterval(d time.Duration) Option {
	return func(w *Wheel) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithDuration(d time.Duration) Option {
	return func(w *Wheel) {
		if d > 0 {
			w.duration = d
		}
	}
}

func WithRand(r *rand.Rand) Option {
	return func(w *Wheel) {
		if r != nil {
			w.rng = r
		}
	}
}

func WithSounder(s Sounder) Option {
	return func(w *Wheel) {
		if s != nil {
			w.sounder = s
		}
	}
}

type Wheel struct {
	names    []string
	interval time.Duration
	duration time.Duration
	rng      *rand.Rand
	sounder  Sounder

	state        State
	intervalAcc  time.Duration
	totalElapsed time.Duration
	flashes      int
	candidate    string
	winner       string
	hasWinner    bool
	winners      []string
}

// New builds a wheel over names. Blank entries and repeats are dropped so
// every pool entry is unique.
func New(names []string, opts ...Option) *Wheel {
	w := &Wheel{
		interval: DefaultInterval,
		duration: DefaultDuration,
		// #nosec G404 -- picking a name, not security-sensitive
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sounder:  SounderFunc(func(Cue) {}),
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		w.names = append(w.names, n)
	}

	if len(w.names) > 0 {
		w.candidate = w.names[0]
	} else {
		w.candidate = NoNames
	}
	return w
}

// Trigger starts a round. It reports false and does nothing while a round
// is running or when the pool is empty.
func (w *Wheel) Trigger() bool {
	if w.state == Flashing || len(w.names) == 0 {
		return false
	}
	w.state = Flashing
	w.intervalAcc = 0
	w.totalElapsed = 0
	w.flashes = 0
	w.winner = ""
	w.hasWinner = false
	// The previous candidate may have been the winner that was just removed.
	w.candidate = w.names[w.rng.IntN(len(w.names))]
	return true
}

// Tick advances a running round by dt. On the tick that commits a winner
// it returns the winner and true.
func (w *Wheel) Tick(dt time.Duration) (string, bool) {
	if w.state != Flashing || dt <= 0 {
		return "", false
	}
	w.intervalAcc += dt
	w.totalElapsed += dt

	for w.intervalAcc >= w.interval && time.Duration(w.flashes+1)*w.interval <= w.duration {
		w.intervalAcc -= w.interval
		w.flashes++
		w.candidate = w.names[w.rng.IntN(len(w.names))]
		w.sounder.Play(CueFlash)
	}

	if w.totalElapsed < w.duration {
		return "", false
	}
	return w.commit(), true
}

func (w *Wheel) commit() string {
	idx := w.rng.IntN(len(w.names))
	winner := w.names[idx]
	w.names = append(w.names[:idx], w.names[idx+1:]...)

	w.winner = winner
	w.hasWinner = true
	w.winners = append(w.winners, winner)
	w.state = Selected
	w.sounder.Play(CueFinal)
	return winner
}

// Display returns the name to render.
func (w *Wheel) Display() string {
	if w.state != Flashing && w.hasWinner {
		return w.winner
	}
	return w.candidate
}

func (w *Wheel) Remaining() int { return len(w.names) }

func (w *Wheel) State() State { return w.state }

// Winner returns the winner of the most recent round, if it has been
// committed and no new round has started since.
func (w *Wheel) Winner() (string, bool) {
	return w.winner, w.hasWinner
}

// Winners returns every committed winner, oldest first.
func (w *Wheel) Winners() []string {
	out := make([]string, len(w.winners))
	copy(out, w.winners)
	return out
}

// Names returns a copy of the live pool in its original order.
func (w *Wheel) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Done reports whether the pool is exhausted and no round is running.
func (w *Wheel) Done() bool {
	return len(w.names) == 0 && w.state != Flashing
}

// Progress is the fraction of the current round elapsed, in [0, 1].
func (w *Wheel) Progress() float64 {
	switch w.state {
	case Flashing:
		p := float64(w.totalElapsed) / float64(w.duration)
		if p > 1 {
			return 1
		}
		return p
	case Selected:
		return 1
	default:
		return 0
	}
}

// TimeLeft is the time remaining before the running round commits.
func (w *Wheel) TimeLeft() time.Duration {
	if w.state != Flashing {
		return 0
	}
	left := w.duration - w.totalElapsed
	if left < 0 {
		return 0
	}
	return left
}
