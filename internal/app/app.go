//go:build ebiten

package app

import (
	"image/color"
	"time"

	"ising-mc/internal/core"
	"ising-mc/internal/render"
	"ising-mc/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type temperatureReader interface {
	Temperature() float64
}

type batchReader interface {
	TrialsPerTick() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	upColor   color.Color
	downColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:       sim,
		painter:   gp,
		hud:       ui.NewHUD(sim),
		upColor:   color.White,
		downColor: color.Black,
		scale:     scale,
		seed:      seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.adjustTemperature()
	g.adjustBatch()

	if g.hud != nil {
		g.hud.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// adjustTemperature nudges the temperature control by its advertised step
// when an arrow key is pressed, for simulations that expose one.
func (g *Game) adjustTemperature() {
	dir := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dir++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dir--
	}
	if dir == 0 {
		return
	}
	reader, ok := g.sim.(temperatureReader)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.FloatParameterSetter)
	if !ok {
		return
	}
	setter.SetFloatParameter("temperature", reader.Temperature()+dir*controlStep(g.sim, "temperature"))
}

// adjustBatch halves or doubles the per-tick trial budget with the bracket
// keys.
func (g *Game) adjustBatch() {
	reader, ok := g.sim.(batchReader)
	if !ok {
		return
	}
	setter, ok := g.sim.(core.IntParameterSetter)
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		setter.SetIntParameter("trials_per_tick", reader.TrialsPerTick()*2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		setter.SetIntParameter("trials_per_tick", reader.TrialsPerTick()/2)
	}
}

// controlStep looks up the advertised step size for a HUD control key.
func controlStep(sim core.Sim, key string) float64 {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return 0.05
	}
	for _, ctrl := range provider.ParameterControls() {
		if ctrl.Key == key && ctrl.Step > 0 {
			return ctrl.Step
		}
	}
	return 0.05
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.upColor, g.downColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
