package life

import (
	"math"

	"cellular/pkg/coord"
)

// MinCell and MaxCell bound the supported cell domain on each axis: every
// cell whose chunk coordinate fits in an int32.
const (
	MinCell = math.MinInt32 * Size
	MaxCell = (math.MaxInt32+1)*Size - 1
)

// InDomain reports whether both components of c lie in [MinCell, MaxCell].
func InDomain(c coord.Vec) bool {
	return c.X >= MinCell && c.X <= MaxCell && c.Y >= MinCell && c.Y <= MaxCell
}

// World is a sparse plane of chunks keyed by packed chunk coordinate. A
// missing key means every cell of that chunk is dead; chunks with no live
// cells are never kept.
type World struct {
	chunks map[int64]*Chunk
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{chunks: make(map[int64]*Chunk)}
}

// chunkOf splits a world coordinate into its chunk coordinate and the
// position inside that chunk.
func chunkOf(c coord.Vec) (chunk, local coord.Vec) {
	chunk = c.Div(sizeVec)
	local = c.Sub(chunk.Mul(sizeVec))
	return chunk, local
}

// Cell reports whether the cell at c is alive. It never allocates. c must
// satisfy InDomain; cells outside it alias cells inside.
func (w *World) Cell(c coord.Vec) bool {
	chunk, local := chunkOf(c)
	ch, ok := w.chunks[chunk.Pack()]
	if !ok {
		return false
	}
	return ch.Get(local)
}

// SetCell writes the cell at c, creating its chunk on the first live write
// and dropping it when its last live cell dies. c must satisfy InDomain.
func (w *World) SetCell(c coord.Vec, alive bool) {
	chunk, local := chunkOf(c)
	key := chunk.Pack()
	ch, ok := w.chunks[key]
	if !ok {
		if !alive {
			return
		}
		ch = &Chunk{}
		w.chunks[key] = ch
	}
	ch.Set(local, alive)
	if ch.count == 0 {
		delete(w.chunks, key)
	}
}

// Toggle flips the cell at c and returns its new state.
func (w *World) Toggle(c coord.Vec) bool {
	alive := !w.Cell(c)
	w.SetCell(c, alive)
	return alive
}

// Clear removes every live cell.
func (w *World) Clear() {
	clear(w.chunks)
}

// ChunkCount returns the number of materialised chunks.
func (w *World) ChunkCount() int { return len(w.chunks) }

// Population returns the number of live cells.
func (w *World) Population() int {
	n := 0
	for _, ch := range w.chunks {
		n += ch.count
	}
	return n
}

// Each calls fn for every live cell in no particular order.
func (w *World) Each(fn func(c coord.Vec)) {
	for key, ch := range w.chunks {
		base := coord.Unpack(key).Mul(sizeVec)
		for y := range ch.cells {
			for x := range ch.cells[y] {
				if ch.cells[y][x] {
					fn(base.Add(coord.New(x, y)))
				}
			}
		}
	}
}

// Bounds returns the inclusive bounding box of all live cells. ok is false
// for an empty world.
func (w *World) Bounds() (lo, hi coord.Vec, ok bool) {
	w.Each(func(c coord.Vec) {
		if !ok {
			lo, hi, ok = c, c, true
			return
		}
		lo = coord.New(min(lo.X, c.X), min(lo.Y, c.Y))
		hi = coord.New(max(hi.X, c.X), max(hi.Y, c.Y))
	})
	return lo, hi, ok
}
