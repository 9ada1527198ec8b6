package app

import (
	"log"
	"time"

	"cellular/internal/view"
	"cellular/pkg/coord"
	"cellular/pkg/core"
)

// Controller applies user input to a simulation, its scheduler and the
// camera. It holds no GUI state so every platform front end can share it.
type Controller struct {
	Sim     core.Sim
	Sched   *core.Scheduler
	Camera  *view.Camera
	Pointer *view.Pointer

	seed int64
}

// NewController wires sim to a stopped scheduler and a camera at the origin.
func NewController(sim core.Sim, cfg *Config, logger *log.Logger) *Controller {
	cam := view.NewCamera(cfg.CellSize)
	return &Controller{
		Sim:     sim,
		Sched:   core.NewScheduler(sim.Step, cfg.Interval, logger),
		Camera:  cam,
		Pointer: view.NewPointer(cam),
		seed:    cfg.Seed,
	}
}

// Resize updates the camera extent. The first resize centres the origin.
func (c *Controller) Resize(widthPx, heightPx int) {
	first := c.Camera.Cols == 0 && c.Camera.Rows == 0
	c.Camera.Resize(widthPx, heightPx)
	if first {
		c.Camera.Center(c.Camera.Origin)
	}
}

// ToggleRun starts or stops the scheduler.
func (c *Controller) ToggleRun() { c.Sched.Toggle() }

// StepOnce advances one generation without changing the run state.
func (c *Controller) StepOnce() { c.Sched.Step() }

// Reset reseeds the simulation. The scheduler keeps its state.
func (c *Controller) Reset() { c.Sim.Reset(c.seed) }

// Clear kills every cell when the sim supports it.
func (c *Controller) Clear() {
	if cl, ok := c.Sim.(interface{ Clear() }); ok {
		cl.Clear()
	}
}

// Recenter centres the camera on the live cells' bounding box and reports
// whether there were any. Sims without bounds are left alone.
func (c *Controller) Recenter() bool {
	b, ok := c.Sim.(interface {
		Bounds() (lo, hi coord.Vec, ok bool)
	})
	if !ok {
		return false
	}
	lo, hi, populated := b.Bounds()
	if !populated {
		return false
	}
	c.Camera.Center(lo.Add(hi).Div(coord.Splat(2)))
	return true
}

// PointerDown starts a press at pixel (px, py).
func (c *Controller) PointerDown(px, py int) { c.Pointer.Down(px, py) }

// PointerMove drags the active press, if any.
func (c *Controller) PointerMove(px, py int) { c.Pointer.Move(px, py) }

// PointerUp ends the press and toggles the cell for a click.
func (c *Controller) PointerUp(px, py int) view.Action {
	act := c.Pointer.Up(px, py)
	if act.Kind == view.ActionToggle {
		core.Toggle(c.Sim, act.Cell)
	}
	return act
}

// PointerCancel abandons the active press, restoring the camera if it was
// panning. It reports whether a press was active.
func (c *Controller) PointerCancel() bool {
	if !c.Pointer.Active() {
		return false
	}
	c.Pointer.Cancel()
	return true
}

// Tick feeds elapsed frame time to the scheduler.
func (c *Controller) Tick(dt time.Duration) bool { return c.Sched.Advance(dt) }
