// Package tone synthesizes short sine beeps as 16-bit mono PCM and wraps
// them in a minimal RIFF/WAVE container.
package tone

import (
	"math"
	"time"
)

const (
	DefaultSampleRate = 44100

	// headroom scales samples to a quarter of full range.
	headroom = 0.25
)

// Tone is a synthesized beep together with its container bytes.
type Tone struct {
	SampleRate int
	Samples    []int16
	wav        []byte
}

// New synthesizes a tone at the default sample rate.
func New(frequencyHz int, d time.Duration) Tone {
	samples := Synthesize(frequencyHz, d, DefaultSampleRate)
	return Tone{
		SampleRate: DefaultSampleRate,
		Samples:    samples,
		wav:        Containerize(samples, DefaultSampleRate),
	}
}

// WAV returns the container form of the tone. The slice must not be modified.
func (t Tone) WAV() []byte { return t.wav }

func (t Tone) Len() int { return len(t.Samples) }

func (t Tone) Duration() time.Duration {
	if t.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(t.Samples)) * time.Second / time.Duration(t.SampleRate)
}

// Synthesize returns max(1, round(d*sampleRate)) samples of a sine wave at
// frequencyHz with a linear fade-out over the whole buffer.
func Synthesize(frequencyHz int, d time.Duration, sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := int(math.Round(d.Seconds() * float64(sampleRate)))
	if n < 1 {
		n = 1
	}

	out := make([]int16, n)
	for i := range out {
		wave := math.Sin(2 * math.Pi * float64(frequencyHz) * float64(i) / float64(sampleRate))
		fade := 1 - float64(i)/float64(n)
		out[i] = int16(math.Round(wave * fade * headroom * math.MaxInt16))
	}
	return out
}
