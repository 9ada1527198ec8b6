package life

import (
	"testing"

	"cellular/pkg/coord"
	"cellular/pkg/core"
)

func TestChunkCountTracksFlips(t *testing.T) {
	var ch Chunk
	p := coord.New(3, 4)
	ch.Set(p, true)
	ch.Set(p, true)
	if ch.Count() != 1 {
		t.Fatalf("count = %d after redundant set, expected 1", ch.Count())
	}
	ch.Set(coord.New(31, 31), true)
	ch.Set(p, false)
	ch.Set(p, false)
	if ch.Count() != 1 {
		t.Fatalf("count = %d, expected 1", ch.Count())
	}
	if ch.Get(p) || !ch.Get(coord.New(31, 31)) {
		t.Fatal("cell states do not match writes")
	}
}

func TestChunkOutOfRangePanics(t *testing.T) {
	for _, local := range []coord.Vec{{-1, 0}, {0, Size}, {Size, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Get(%v) did not panic", local)
				}
			}()
			var ch Chunk
			ch.Get(local)
		}()
	}
}

func TestWorldNegativeCoordinates(t *testing.T) {
	w := NewWorld()
	cells := []coord.Vec{{-1, -1}, {-32, -32}, {-33, 0}, {0, -33}, {31, 31}, {32, 32}}
	for _, c := range cells {
		w.SetCell(c, true)
	}
	for _, c := range cells {
		if !w.Cell(c) {
			t.Fatalf("cell %v not alive after set", c)
		}
	}
	for _, c := range []coord.Vec{{0, 0}, {-2, -1}, {-31, -32}, {33, 32}} {
		if w.Cell(c) {
			t.Fatalf("cell %v unexpectedly alive", c)
		}
	}
	if got := w.Population(); got != len(cells) {
		t.Fatalf("population = %d, expected %d", got, len(cells))
	}
	// (-1,-1) and (-32,-32) share chunk (-1,-1); the rest are separate.
	if got := w.ChunkCount(); got != 5 {
		t.Fatalf("chunks = %d, expected 5", got)
	}
}

func TestWorldSparseInvariant(t *testing.T) {
	rng := core.NewRNG(5).Source()
	w := NewWorld()
	for i := 0; i < 5000; i++ {
		c := coord.New(rng.IntN(200)-100, rng.IntN(200)-100)
		w.SetCell(c, rng.IntN(3) == 0)
		for key, ch := range w.chunks {
			if ch.Count() == 0 {
				t.Fatalf("empty chunk %v left in world after write %d", coord.Unpack(key), i)
			}
		}
	}
	w.Each(func(c coord.Vec) { w.SetCell(c, false) })
	if w.ChunkCount() != 0 {
		t.Fatalf("killing every cell left %d chunks", w.ChunkCount())
	}
}

func TestWorldDeadWriteDoesNotAllocate(t *testing.T) {
	w := NewWorld()
	w.SetCell(coord.New(1000, 1000), false)
	if w.ChunkCount() != 0 {
		t.Fatal("dead write created a chunk")
	}
	if w.Cell(coord.New(1000, 1000)) || w.ChunkCount() != 0 {
		t.Fatal("read created a chunk")
	}
}

func TestWorldToggleAndBounds(t *testing.T) {
	w := NewWorld()
	if _, _, ok := w.Bounds(); ok {
		t.Fatal("empty world should have no bounds")
	}
	w.Toggle(coord.New(-5, 2))
	w.Toggle(coord.New(7, -3))
	lo, hi, ok := w.Bounds()
	if !ok || lo != coord.New(-5, -3) || hi != coord.New(7, 2) {
		t.Fatalf("bounds = %v..%v ok=%v", lo, hi, ok)
	}
	if w.Toggle(coord.New(-5, 2)) {
		t.Fatal("second toggle should kill the cell")
	}
	w.Clear()
	if w.Population() != 0 || w.ChunkCount() != 0 {
		t.Fatal("Clear left cells behind")
	}
}

func TestWorldDomainEdges(t *testing.T) {
	cases := []struct {
		c    coord.Vec
		want bool
	}{
		{coord.New(0, 0), true},
		{coord.New(MaxCell, MinCell), true},
		{coord.New(MaxCell+1, 0), false},
		{coord.New(0, MinCell-1), false},
		{coord.New(1<<37, 0), false},
	}
	for _, tc := range cases {
		if got := InDomain(tc.c); got != tc.want {
			t.Fatalf("InDomain(%v) = %v, want %v", tc.c, got, tc.want)
		}
	}

	w := NewWorld()
	w.SetCell(coord.New(MaxCell, MaxCell), true)
	w.SetCell(coord.New(MinCell, MinCell), true)
	if w.Cell(coord.New(0, 0)) || w.Cell(coord.New(MaxCell, MinCell)) {
		t.Fatal("edge cells aliased onto other cells")
	}
	if !w.Cell(coord.New(MaxCell, MaxCell)) || !w.Cell(coord.New(MinCell, MinCell)) {
		t.Fatal("edge cells were not stored")
	}
	if w.ChunkCount() != 2 {
		t.Fatalf("ChunkCount = %d, want 2", w.ChunkCount())
	}
}
