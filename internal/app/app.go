//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"cellular/internal/render"
	"cellular/internal/ui"
	"cellular/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	grid    *core.ByteGrid

	onColor  color.Color
	offColor color.Color

	frame   time.Duration
	touch   ebiten.TouchID
	touched bool
	touches []ebiten.TouchID
	w, h    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		ctl:      NewController(sim, cfg, log.Default()),
		painter:  render.NewGridPainter(),
		hud:      ui.NewHUD(sim),
		grid:     core.NewByteGrid(1, 1),
		onColor:  color.RGBA{R: 0x4A, G: 0xE3, B: 0xDF, A: 0xFF},
		offColor: color.RGBA{R: 0x10, G: 0x12, B: 0x1C, A: 0xFF},
		frame:    time.Second / time.Duration(tps),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.ToggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ctl.Recenter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && g.hud != nil {
		g.hud.Toggle()
	}

	if !ebiten.IsFocused() {
		g.ctl.PointerCancel()
		g.touched = false
	} else {
		g.handleMouse()
		g.handleTouch()
	}

	g.ctl.Tick(g.frame)
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.PointerDown(mx, my)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctl.PointerUp(mx, my)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctl.PointerMove(mx, my)
	}
}

// handleTouch follows the first finger down; further fingers are ignored.
func (g *Game) handleTouch() {
	if g.touched {
		if inpututil.IsTouchJustReleased(g.touch) {
			x, y := inpututil.TouchPositionInPreviousTick(g.touch)
			g.ctl.PointerUp(x, y)
			g.touched = false
			return
		}
		x, y := ebiten.TouchPosition(g.touch)
		g.ctl.PointerMove(x, y)
		return
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if len(g.touches) == 0 {
		return
	}
	g.touch = g.touches[0]
	g.touched = true
	x, y := ebiten.TouchPosition(g.touch)
	g.ctl.PointerDown(x, y)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	cam := g.ctl.Camera
	if cam.Cols > 0 && cam.Rows > 0 {
		render.Sample(g.ctl.Sim, cam, g.grid)
		g.painter.Blit(screen, g.grid, g.onColor, g.offColor, cam.CellSize)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.ctl.Sched.State(), cam)
	}
}

// Layout tracks the window size so the camera always covers it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctl.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
