package config

import (
	"time"

	"github.com/iburimskiy/name-roulette/internal/roulette"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 40
	ButtonX      = 40
	ButtonY      = 40

	// Roulette timing
	FlashInterval = roulette.DefaultInterval
	FlashDuration = roulette.DefaultDuration
	MaxFrameDelta = roulette.DefaultMaxDelta

	// Beep
	ToneFrequency  = 880
	ToneDuration   = 30 * time.Millisecond
	FlashGain      = 0.6
	FinalGain      = 1.0
	SpeakerBuffer  = time.Second / 20
	LevelRingSize  = 2048
	LevelSmoothing = 0.6
	LevelGain      = 12
	WaveGain       = 8
	WaveSamples    = 480
	ColorShiftRate = 0.01

	// Display
	NameScale    = 3
	WinnersShown = 8
)

// Names is the pool a session starts with.
var Names = []string{
	"Luke", "Blake", "Amy", "Bowen", "Joaquin", "Manny", "Noah", "Aidan",
	"Leslie", "John", "Greta", "Eric", "McKenna", "Andrew", "Mike",
}
