package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/name-roulette/internal/config"
	"github.com/iburimskiy/name-roulette/internal/roulette"
	"github.com/iburimskiy/name-roulette/internal/tone"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func loadBeep(t *testing.T) *Clip {
	t.Helper()
	clip, err := Load(tone.New(880, 30*time.Millisecond))
	require.NoError(t, err)
	return clip
}

func TestLoad(t *testing.T) {
	clip := loadBeep(t)

	assert.Equal(t, 1323, clip.Len())
	assert.Equal(t, beep.SampleRate(44100), clip.Format().SampleRate)
	assert.Equal(t, 1, clip.Format().NumChannels)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := decode([]byte("not a wave file at all"))
	assert.Error(t, err)
}

func TestClip_StreamerIsFreshEachTime(t *testing.T) {
	clip := loadBeep(t)

	first := drain(clip.Streamer())
	second := drain(clip.Streamer())

	assert.Len(t, first, clip.Len())
	assert.Equal(t, first, second)
}

func TestChimes_AppliesGainPerCue(t *testing.T) {
	clip := loadBeep(t)
	var played []beep.Streamer
	chimes := NewChimes(clip, func(s ...beep.Streamer) { played = append(played, s...) }, nil, 0.6, 1.0)

	chimes.Play(roulette.CueFlash)
	chimes.Play(roulette.CueFinal)
	require.Len(t, played, 2)

	ref := peak(drain(clip.Streamer()))
	require.Greater(t, ref, 0.0)
	assert.InDelta(t, 0.6*ref, peak(drain(played[0])), 1e-9)
	assert.InDelta(t, ref, peak(drain(played[1])), 1e-9)
}

func TestTap_LevelAfterPlayback(t *testing.T) {
	clip := loadBeep(t)
	tap := NewTap(2048)
	var played []beep.Streamer
	chimes := NewChimes(clip, func(s ...beep.Streamer) { played = append(played, s...) }, tap, 0.6, 1.0)

	assert.Equal(t, 0.0, tap.Level())

	chimes.Play(roulette.CueFinal)
	require.Len(t, played, 1)
	drain(played[0])

	level := tap.Level()
	assert.Greater(t, level, 0.0)
	assert.Less(t, level, 0.25)
	assert.Equal(t, 0.0, tap.Level(), "level drains until the next playback")
}

func TestTap_FrameLevelFitsMeterGain(t *testing.T) {
	clip := loadBeep(t)
	tap := NewTap(config.LevelRingSize)
	var played []beep.Streamer
	chimes := NewChimes(clip, func(s ...beep.Streamer) { played = append(played, s...) }, tap, config.FlashGain, config.FinalGain)

	chimes.Play(roulette.CueFinal)
	require.Len(t, played, 1)

	// One 60 Hz frame of audio.
	n, _ := played[0].Stream(make([][2]float64, 735))
	require.Equal(t, 735, n)

	scaled := tap.Level() * config.LevelGain
	assert.Greater(t, scaled, 0.5, "meter should rise past half height on a fresh beep")
	assert.LessOrEqual(t, scaled, 1.0)
}

func TestTap_SnapshotOrder(t *testing.T) {
	tap := NewTap(4)
	samples := [][2]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}, {6, 6}}
	s := tap.Wrap(beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		n := copy(buf, samples)
		samples = samples[n:]
		return n, n > 0
	}))

	drain(s)

	assert.Equal(t, []float64{3, 4, 5, 6}, tap.Snapshot(4))
	assert.Equal(t, []float64{5, 6}, tap.Snapshot(2))
	assert.Equal(t, []float64{3, 4, 5, 6}, tap.Snapshot(10))
}

func TestTap_SnapshotNonPositive(t *testing.T) {
	tap := NewTap(4)

	assert.NotPanics(t, func() {
		assert.Empty(t, tap.Snapshot(-1))
		assert.Empty(t, tap.Snapshot(0))
	})
}

func TestTap_MixesToMono(t *testing.T) {
	tap := NewTap(2)
	s := tap.Wrap(beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		buf[0] = [2]float64{1, 0}
		return 1, true
	}))

	s.Stream(make([][2]float64, 1))

	assert.Equal(t, []float64{0.5}, tap.Snapshot(1))
	assert.InDelta(t, 0.5, tap.Level(), 1e-12)
}
