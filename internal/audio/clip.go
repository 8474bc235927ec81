// Package audio turns synthesized tones into playable beep streams.
package audio

import (
	"bytes"
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/name-roulette/internal/tone"
)

// Clip is a decoded tone held in memory so it can be replayed any number of
// times, including overlapping plays.
type Clip struct {
	buf *beep.Buffer
}

// Load decodes the tone's WAVE container straight from memory.
func Load(t tone.Tone) (*Clip, error) {
	return decode(t.WAV())
}

func decode(data []byte) (*Clip, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode tone: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("buffer tone: %w", err)
	}
	return &Clip{buf: buf}, nil
}

// Streamer returns a fresh stream over the whole clip.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buf.Streamer(0, c.buf.Len())
}

func (c *Clip) Format() beep.Format { return c.buf.Format() }

func (c *Clip) Len() int { return c.buf.Len() }
