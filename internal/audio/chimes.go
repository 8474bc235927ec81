package audio

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/name-roulette/internal/roulette"
)

// PlayFunc hands streamers to the output mixer, e.g. speaker.Play.
type PlayFunc func(s ...beep.Streamer)

var _ roulette.Sounder = (*Chimes)(nil)

// Chimes plays a clip for every roulette cue, louder for the final one.
type Chimes struct {
	clip      *Clip
	play      PlayFunc
	tap       *Tap
	flashGain float64
	finalGain float64
}

// NewChimes takes linear gains where 1 leaves the clip untouched. tap may
// be nil.
func NewChimes(clip *Clip, play PlayFunc, tap *Tap, flashGain, finalGain float64) *Chimes {
	return &Chimes{
		clip:      clip,
		play:      play,
		tap:       tap,
		flashGain: flashGain,
		finalGain: finalGain,
	}
}

func (c *Chimes) Play(cue roulette.Cue) {
	gain := c.flashGain
	if cue == roulette.CueFinal {
		gain = c.finalGain
	}

	// effects.Gain scales by 1+Gain.
	var s beep.Streamer = &effects.Gain{Streamer: c.clip.Streamer(), Gain: gain - 1}
	if c.tap != nil {
		s = c.tap.Wrap(s)
	}
	c.play(s)
}
