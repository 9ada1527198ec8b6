// Package view maps screen pixels onto world cells and turns pointer
// gestures into cell toggles or camera pans.
package view

import "cellular/pkg/coord"

// DefaultCellSize is the edge length of a cell in pixels.
const DefaultCellSize = 15

// Camera is the visible window into the world.
type Camera struct {
	// Origin is the world position of the top-left visible cell.
	Origin   coord.Vec
	CellSize int
	Cols     int
	Rows     int
}

// NewCamera returns a camera at the world origin. Non-positive cell sizes
// fall back to DefaultCellSize.
func NewCamera(cellSize int) *Camera {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Camera{CellSize: cellSize}
}

// Resize recomputes the visible extent from pixel dimensions. The origin is
// left alone.
func (c *Camera) Resize(widthPx, heightPx int) {
	c.Cols = max(widthPx, 0) / c.CellSize
	c.Rows = max(heightPx, 0) / c.CellSize
}

// ScreenToCell converts a pixel offset into a cell offset, flooring so that
// negative pixels land on negative cells.
func (c *Camera) ScreenToCell(px, py int) coord.Vec {
	return coord.New(px, py).Div(coord.Splat(c.CellSize))
}

// ScreenToWorld returns the world cell under the pixel (px, py).
func (c *Camera) ScreenToWorld(px, py int) coord.Vec {
	return c.ScreenToCell(px, py).Add(c.Origin)
}

// Visible returns the half-open world rectangle [lo, hi) shown on screen.
func (c *Camera) Visible() (lo, hi coord.Vec) {
	return c.Origin, c.Origin.Add(coord.New(c.Cols, c.Rows))
}

// Center moves the camera so that cell w sits in the middle of the view.
func (c *Camera) Center(w coord.Vec) {
	c.Origin = w.Sub(coord.New(c.Cols, c.Rows).Div(coord.Splat(2)))
}
