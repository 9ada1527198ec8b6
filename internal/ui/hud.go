//go:build ebiten

package ui

import (
	"image/color"

	"cellular/internal/view"
	"cellular/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 16
	helpText     = "space run/stop  s step  r reset  c clear  f find  h hide  drag pan  click toggle"
)

// HUD renders a status strip over the top of the view.
type HUD struct {
	sim     core.Sim
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image, state core.RunState, cam *view.Camera) {
	if !h.visible {
		return
	}
	lines := append(StatusLines(h.sim.Name(), h.sim.Stats(), state, cam), helpText)
	width := screen.Bounds().Dx()
	height := panelPadding*2 + lineHeight*len(lines)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 12, G: 12, B: 18, A: 180})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		y := panelPadding + lineHeight*(i+1) - 3
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
