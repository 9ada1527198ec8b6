package life

import (
	"fmt"

	"cellular/pkg/coord"
)

// Size is the side length of a chunk in cells.
const Size = 32

var sizeVec = coord.Splat(Size)

// Chunk is a Size×Size tile of cells with a cached live-cell count.
type Chunk struct {
	cells [Size][Size]bool
	count int
}

// newChunkFrom builds a chunk from a full cell matrix, counting live cells.
func newChunkFrom(cells *[Size][Size]bool) *Chunk {
	c := &Chunk{cells: *cells}
	for y := range c.cells {
		for x := range c.cells[y] {
			if c.cells[y][x] {
				c.count++
			}
		}
	}
	return c
}

// Count returns the number of live cells in the chunk.
func (c *Chunk) Count() int { return c.count }

// Get returns the state of the cell at local, which must lie in [0, Size)
// on both axes.
func (c *Chunk) Get(local coord.Vec) bool {
	mustLocal(local)
	return c.cells[local.Y][local.X]
}

// Set writes the state of the cell at local and keeps the count in sync.
func (c *Chunk) Set(local coord.Vec, alive bool) {
	mustLocal(local)
	cell := &c.cells[local.Y][local.X]
	if *cell == alive {
		return
	}
	*cell = alive
	if alive {
		c.count++
	} else {
		c.count--
	}
}

func mustLocal(local coord.Vec) {
	if local.X < 0 || local.X >= Size || local.Y < 0 || local.Y >= Size {
		panic(fmt.Sprintf("life: chunk-local coordinate %v outside [0,%d)", local, Size))
	}
}
