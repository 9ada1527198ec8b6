package render

import (
	"image/color"

	"cellular/internal/view"
	"cellular/pkg/coord"
	"cellular/pkg/core"
)

// Sample copies the cells visible through cam into grid as 0/1 values,
// resizing grid to the camera's extent.
func Sample(sim core.Sim, cam *view.Camera, grid *core.ByteGrid) {
	grid.Resize(cam.Cols, cam.Rows)
	if cam.Cols == 0 || cam.Rows == 0 {
		return
	}
	cells := grid.Cells()
	lo, hi := cam.Visible()
	for y := lo.Y; y < hi.Y; y++ {
		for x := lo.X; x < hi.X; x++ {
			if sim.Alive(coord.New(x, y)) {
				cells[grid.Index(x-lo.X, y-lo.Y)] = 1
			}
		}
	}
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
