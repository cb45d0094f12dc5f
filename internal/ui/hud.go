//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"ising-mc/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type observableProvider interface {
	Temperature() float64
	Magnetization() float64
	AcceptanceRate() float64
	Trials() int64
}

const (
	hudPadding    = 6
	hudLineHeight = 14
)

// HUD draws a live observable readout on top of the simulation view.
type HUD struct {
	sim     core.Sim
	visible bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update processes HUD key bindings.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the readout panel in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}

	lines := []string{h.sim.Name()}
	if obs, ok := h.sim.(observableProvider); ok {
		lines = append(lines,
			fmt.Sprintf("T      %.3f", obs.Temperature()),
			fmt.Sprintf("m      %+.4f", obs.Magnetization()),
			fmt.Sprintf("accept %.1f%%", obs.AcceptanceRate()*100),
			fmt.Sprintf("trials %s", formatCount(obs.Trials())),
		)
	}

	width := 0
	for _, line := range lines {
		if w := len(line) * basicfont.Face7x13.Advance; w > width {
			width = w
		}
	}

	h.drawBackdrop(screen, width+2*hudPadding, len(lines)*hudLineHeight+2*hudPadding)

	y := hudPadding + hudLineHeight - 3
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, y, color.White)
		y += hudLineHeight
	}
}

func (h *HUD) drawBackdrop(screen *ebiten.Image, w, ht int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.ColorScale.Scale(0, 0, 0, 0.65)
	screen.DrawImage(h.pixel, op)
}

func formatCount(v int64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fk", float64(v)/1_000)
	default:
		return fmt.Sprintf("%d", v)
	}
}
