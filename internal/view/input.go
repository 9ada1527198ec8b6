package view

import "cellular/pkg/coord"

// DefaultDragThreshold is the pixel distance a pointer must travel on either
// axis before a press becomes a pan.
const DefaultDragThreshold = 2

// ActionKind classifies a finished pointer gesture.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	// ActionToggle asks for the cell in Action.Cell to be flipped.
	ActionToggle
	// ActionPan reports that the gesture moved the camera.
	ActionPan
)

// Action is the outcome of a pointer gesture.
type Action struct {
	Kind ActionKind
	Cell coord.Vec
}

// Pointer tracks a single press-drag-release gesture against a camera.
// Short drags are treated as clicks so taps on touch screens still toggle.
type Pointer struct {
	cam       *Camera
	Threshold int

	down      bool
	panning   bool
	start     coord.Vec
	startOrig coord.Vec
}

// NewPointer returns a tracker that pans cam.
func NewPointer(cam *Camera) *Pointer {
	return &Pointer{cam: cam, Threshold: DefaultDragThreshold}
}

// Active reports whether a gesture is in progress.
func (p *Pointer) Active() bool { return p.down }

// Down begins a gesture at pixel (px, py).
func (p *Pointer) Down(px, py int) {
	p.down = true
	p.panning = false
	p.start = coord.New(px, py)
	p.startOrig = p.cam.Origin
}

// Move updates the gesture. Once the travel reaches the threshold on either
// axis the camera follows the pointer, in whole cells.
func (p *Pointer) Move(px, py int) {
	if !p.down {
		return
	}
	delta := coord.New(px, py).Sub(p.start)
	if !p.panning {
		d := delta.Abs()
		if d.X < p.Threshold && d.Y < p.Threshold {
			return
		}
		p.panning = true
	}
	p.cam.Origin = p.startOrig.Sub(p.cam.ScreenToCell(delta.X, delta.Y))
}

// Up ends the gesture. A gesture that never became a pan is a click on the
// cell under the press position.
func (p *Pointer) Up(px, py int) Action {
	if !p.down {
		return Action{}
	}
	p.Move(px, py)
	p.down = false
	if p.panning {
		p.panning = false
		return Action{Kind: ActionPan}
	}
	return Action{Kind: ActionToggle, Cell: p.cam.ScreenToWorld(p.start.X, p.start.Y)}
}

// Cancel abandons the gesture, restoring the camera origin.
func (p *Pointer) Cancel() {
	if p.down && p.panning {
		p.cam.Origin = p.startOrig
	}
	p.down = false
	p.panning = false
}
