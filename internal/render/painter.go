//go:build ebiten

package render

import (
	"image/color"

	"cellular/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a sampled ByteGrid into an image, one pixel per cell,
// and draws it scaled to the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter with no backing image yet.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit uploads grid and draws it onto dst, each cell scale pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *core.ByteGrid, on, off color.Color, scale int) {
	if grid.W != gp.w || grid.H != gp.h || gp.img == nil {
		gp.resize(grid.W, grid.H)
	}
	fillBinaryRGBA(gp.buf, grid.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}
