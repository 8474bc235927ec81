package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/name-roulette/internal/config"
	"github.com/iburimskiy/name-roulette/internal/roulette"
)

const (
	debugCharWidth  = 6
	debugLineHeight = 16
	winnersColumn   = 260

	headline = "Press SPACE or click Spin to pick a name | Esc/Q: quit"
)

// Meter exposes recently played audio: Level is the RMS since the last
// call, Snapshot the last n mono samples.
type Meter interface {
	Level() float64
	Snapshot(n int) []float64
}

// Game adapts a roulette wheel to ebiten's update/draw loop.
type Game struct {
	wheel  *roulette.Wheel
	clock  *roulette.FrameClock
	meter  Meter
	log    zerolog.Logger

	// viz
	level      float64
	colorPhase float64
	nameImage  *ebiten.Image

	// button state
	buttonHovered bool
	buttonPressed bool
}

// New returns a game over wheel. meter may be nil.
func New(wheel *roulette.Wheel, clock *roulette.FrameClock, meter Meter, log zerolog.Logger) *Game {
	return &Game{
		wheel: wheel,
		clock: clock,
		meter: meter,
		log:   log,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	triggered := inpututil.IsKeyJustPressed(ebiten.KeySpace)

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			triggered = true
		}
		g.buttonPressed = false
	}

	if triggered && g.wheel.Trigger() {
		g.log.Info().Int("remaining", g.wheel.Remaining()).Msg("round started")
	}

	if winner, ok := g.wheel.Tick(g.clock.Delta()); ok {
		g.log.Info().Str("winner", winner).Int("remaining", g.wheel.Remaining()).Msg("name selected")
		if g.wheel.Done() {
			g.log.Info().Int("picked", len(g.wheel.Winners())).Msg("all names picked")
		}
	}

	g.colorPhase += config.ColorShiftRate
	if g.meter != nil {
		// A decoded beep frame has an RMS around 0.05.
		raw := clamp01(g.meter.Level() * config.LevelGain)
		g.level = config.LevelSmoothing*g.level + (1-config.LevelSmoothing)*raw
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 13, G: 13, B: 18, A: 255})

	ebitenutil.DebugPrintAt(screen, headline, 12, 12)
	g.drawButton(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Remaining: %d", g.wheel.Remaining()), config.ButtonX, 100)
	if g.wheel.Done() {
		ebitenutil.DebugPrintAt(screen, "All done! No names left.", config.ButtonX, 120)
	}

	g.drawName(screen)
	if _, ok := g.wheel.Winner(); ok {
		ebitenutil.DebugPrintAt(screen, "(Selected and removed)", config.ButtonX, config.WindowHeight/2+40)
	}

	g.drawWinners(screen)
	g.drawProgressBar(screen)
	g.drawLevelMeter(screen)
	g.drawWaveform(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// drawName renders the current name with the debug font scaled up.
func (g *Game) drawName(screen *ebiten.Image) {
	// Leave the right-hand column for the picked list.
	w := (config.WindowWidth - winnersColumn) / config.NameScale
	if g.nameImage == nil {
		g.nameImage = ebiten.NewImage(w, debugLineHeight)
	}
	g.nameImage.Clear()
	ebitenutil.DebugPrint(g.nameImage, ">> "+g.wheel.Display()+" <<")

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(config.NameScale, config.NameScale)
	op.GeoM.Translate(config.ButtonX, float64(config.WindowHeight/2-debugLineHeight*config.NameScale/2))
	if g.wheel.State() == roulette.Flashing {
		r, gv, b := hsvToRgb(g.colorPhase*360, 0.6, 1.0)
		op.ColorScale.ScaleWithColor(color.RGBA{R: r, G: gv, B: b, A: 255})
	}
	screen.DrawImage(g.nameImage, op)
}

func (g *Game) drawWinners(screen *ebiten.Image) {
	winners := g.wheel.Winners()
	if len(winners) == 0 {
		return
	}
	x := config.WindowWidth - winnersColumn + 40
	ebitenutil.DebugPrintAt(screen, "Picked:", x, 100)
	for i, name := range recent(winners, config.WinnersShown) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%2d. %s", len(winners)-i, name), x, 100+(i+1)*debugLineHeight)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	switch {
	case g.wheel.Done() || g.wheel.State() == roulette.Flashing:
		bgColor = color.RGBA{R: 60, G: 60, B: 70, A: 255} // Disabled
	case g.buttonPressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case g.buttonHovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "Spin"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*debugCharWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-debugLineHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	if g.wheel.State() != roulette.Flashing {
		return
	}

	barHeight := 20
	barY := config.WindowHeight - 60
	barWidth := config.WindowWidth - 40 - 2*config.ButtonX
	barX := config.ButtonX

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)
	vector.StrokeRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	progress := g.wheel.Progress()
	if progress > 0 {
		r, gv, b := hsvToRgb((g.colorPhase+progress*0.5)*360, 0.8, 0.9)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(progress*float64(barWidth)), float32(barHeight), color.RGBA{R: r, G: gv, B: b, A: 180}, false)
	}

	left := formatDuration(g.wheel.TimeLeft())
	ebitenutil.DebugPrintAt(screen, left, barX+barWidth-len(left)*debugCharWidth, barY+barHeight+4)
}

func (g *Game) drawLevelMeter(screen *ebiten.Image) {
	meterWidth := 20
	meterHeight := 120
	meterX := config.WindowWidth - 40
	meterY := config.WindowHeight - 80 - meterHeight

	vector.DrawFilledRect(screen, float32(meterX), float32(meterY), float32(meterWidth), float32(meterHeight), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	if h := clamp01(g.level) * float64(meterHeight); h >= 1 {
		r, gv, b := hsvToRgb(120-120*g.level, 0.8, 0.9)
		vector.DrawFilledRect(screen, float32(meterX), float32(float64(meterY+meterHeight)-h), float32(meterWidth), float32(h), color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
	vector.StrokeRect(screen, float32(meterX), float32(meterY), float32(meterWidth), float32(meterHeight), 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}

// drawWaveform plots the most recent beep samples left of the level meter.
func (g *Game) drawWaveform(screen *ebiten.Image) {
	if g.meter == nil {
		return
	}

	boxWidth := 120
	boxHeight := 120
	boxX := config.WindowWidth - 40 - boxWidth - 10
	boxY := config.WindowHeight - 80 - boxHeight
	midY := float64(boxY) + float64(boxHeight)/2

	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxWidth), float32(boxHeight), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeLine(screen, float32(boxX), float32(midY), float32(boxX+boxWidth), float32(midY), 1, color.RGBA{R: 100, G: 110, B: 130, A: 100}, false)

	samples := g.meter.Snapshot(config.WaveSamples)
	if len(samples) >= 2 {
		step := float64(boxWidth) / float64(len(samples)-1)
		half := float64(boxHeight) / 2
		r, gv, b := hsvToRgb(g.colorPhase*360, 0.7, 0.9)
		waveColor := color.RGBA{R: r, G: gv, B: b, A: 220}
		for i := 1; i < len(samples); i++ {
			y1 := midY - clampUnit(samples[i-1]*config.WaveGain)*half
			y2 := midY - clampUnit(samples[i]*config.WaveGain)*half
			x1 := float64(boxX) + float64(i-1)*step
			x2 := float64(boxX) + float64(i)*step
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, waveColor, false)
		}
	}

	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxWidth), float32(boxHeight), 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}
