package life

import (
	"log"

	"cellular/pkg/coord"
	"cellular/pkg/core"
)

// Life implements Conway's Game of Life on an unbounded sparse plane.
type Life struct {
	cfg        Config
	world      *World
	generation int
}

// New returns a Life simulation with an empty world.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, world: NewWorld()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// World exposes the current generation for read access.
func (l *Life) World() *World { return l.world }

// Alive reports whether the cell at c is alive.
func (l *Life) Alive(c coord.Vec) bool { return l.world.Cell(c) }

// SetAlive writes the cell at c.
func (l *Life) SetAlive(c coord.Vec, alive bool) { l.world.SetCell(c, alive) }

// Stats reports generation and occupancy counters.
func (l *Life) Stats() core.Stats {
	return core.Stats{
		Generation: l.generation,
		Population: l.world.Population(),
		Chunks:     l.world.ChunkCount(),
	}
}

// Clear kills every cell without resetting the generation counter.
func (l *Life) Clear() { l.world.Clear() }

// Bounds returns the inclusive bounding box of the live cells.
func (l *Life) Bounds() (lo, hi coord.Vec, ok bool) { return l.world.Bounds() }

// Reset rebuilds the initial world. A zero seed uses the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.world = NewWorld()
	l.generation = 0

	if l.cfg.Pattern != "" {
		p, err := LookupPattern(l.cfg.Pattern)
		if err != nil {
			log.Printf("[life] %v", err)
		} else {
			StampCentered(l.world, p, coord.Vec{})
		}
	}
	if l.cfg.Soup > 0 {
		rng := core.NewRNG(seed)
		r := l.cfg.Soup
		for y := -r; y < r; y++ {
			for x := -r; x < r; x++ {
				if rng.Chance(l.cfg.Density) {
					l.world.SetCell(coord.New(x, y), true)
				}
			}
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.world = Step(l.world)
	l.generation++
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
