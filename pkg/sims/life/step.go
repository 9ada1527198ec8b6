package life

import "cellular/pkg/coord"

// Step computes the next generation of w and returns it as a new World; w is
// not modified. Only chunks within one chunk of a populated chunk are
// evaluated, since life cannot appear further than one cell from existing
// life in a single generation.
func Step(w *World) *World {
	candidates := make(map[int64]coord.Vec, len(w.chunks)*9)
	for key := range w.chunks {
		c := coord.Unpack(key)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := c.Add(coord.New(dx, dy))
				candidates[n.Pack()] = n
			}
		}
	}

	next := &World{chunks: make(map[int64]*Chunk, len(w.chunks))}
	var cells [Size][Size]bool
	for key, chunk := range candidates {
		if evolveChunk(w, chunk, &cells) {
			next.chunks[key] = newChunkFrom(&cells)
		}
	}
	return next
}

// evolveChunk fills cells with the next state of the chunk at chunk and
// reports whether any of them is alive.
func evolveChunk(w *World, chunk coord.Vec, cells *[Size][Size]bool) bool {
	base := chunk.Mul(sizeVec)
	populated := false
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			pos := base.Add(coord.New(x, y))
			alive := rule(w.Cell(pos), liveNeighbors(w, pos))
			cells[y][x] = alive
			populated = populated || alive
		}
	}
	return populated
}

// liveNeighbors counts live cells around c, stopping at 4 since the rule
// does not distinguish larger counts.
func liveNeighbors(w *World, c coord.Vec) int {
	n := 0
	for _, off := range coord.Neighbors8 {
		if w.Cell(c.Add(off)) {
			n++
			if n > 3 {
				return n
			}
		}
	}
	return n
}

// rule is B3/S23.
func rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
