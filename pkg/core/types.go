package core

import "cellular/pkg/coord"

// Stats summarises the state of a simulation for status displays.
type Stats struct {
	Generation int
	Population int
	Chunks     int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells are addressed in unbounded world coordinates.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	Alive(c coord.Vec) bool
	SetAlive(c coord.Vec, alive bool)
	Stats() Stats
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Toggle flips the cell at c and returns its new state.
func Toggle(s Sim, c coord.Vec) bool {
	alive := !s.Alive(c)
	s.SetAlive(c, alive)
	return alive
}
