package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/name-roulette/internal/audio"
	"github.com/iburimskiy/name-roulette/internal/config"
	"github.com/iburimskiy/name-roulette/internal/game"
	"github.com/iburimskiy/name-roulette/internal/logger"
	"github.com/iburimskiy/name-roulette/internal/roulette"
	"github.com/iburimskiy/name-roulette/internal/tone"
)

func main() {
	log := logger.New(zerolog.InfoLevel)

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("name roulette failed")
		_ = zenity.Error(err.Error(), zenity.Title("Name Roulette"))
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	beepTone := tone.New(config.ToneFrequency, config.ToneDuration)
	log.Info().Int("samples", beepTone.Len()).Int("bytes", len(beepTone.WAV())).Msg("tone synthesized")

	clip, err := audio.Load(beepTone)
	if err != nil {
		return err
	}

	format := clip.Format()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(config.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	defer speaker.Close()

	tap := audio.NewTap(config.LevelRingSize)
	chimes := audio.NewChimes(clip, speaker.Play, tap, config.FlashGain, config.FinalGain)

	wheel := roulette.New(config.Names,
		roulette.WithInterval(config.FlashInterval),
		roulette.WithDuration(config.FlashDuration),
		roulette.WithSounder(chimes),
	)
	frames := roulette.NewFrameClock(clockwork.NewRealClock(), config.MaxFrameDelta)
	log.Info().Int("names", wheel.Remaining()).Msg("ready")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Name Roulette - Space: spin, Esc/Q: quit")

	g := game.New(wheel, frames, tap, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
