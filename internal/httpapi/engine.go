package httpapi

import (
	"context"
	"log"
	"sync"
	"time"

	"cellular/pkg/coord"
	"cellular/pkg/core"
)

// Status is the externally visible state of an Engine.
type Status struct {
	Name       string `json:"name"`
	Generation int    `json:"generation"`
	Population int    `json:"population"`
	Chunks     int    `json:"chunks"`
	Running    bool   `json:"running"`
	IntervalMS int64  `json:"interval_ms"`
}

// Engine owns a Sim and its Scheduler and serialises every access to them,
// so requests and ticks never overlap.
type Engine struct {
	mu      sync.Mutex
	sim     core.Sim
	sched   *core.Scheduler
	rephase bool
	restart chan struct{}
}

// NewEngine wraps sim with a stopped scheduler ticking every interval.
func NewEngine(sim core.Sim, interval time.Duration, logger *log.Logger) *Engine {
	return &Engine{
		sim:     sim,
		sched:   core.NewScheduler(sim.Step, interval, logger),
		restart: make(chan struct{}, 1),
	}
}

// Run drives the scheduler from a ticker until ctx is done. Each tick feeds
// exactly one interval, and the ticker is re-phased whenever Start begins a
// run, so the first scheduled step lands one interval after the immediate one.
func (e *Engine) Run(ctx context.Context) error {
	interval := e.sched.Interval()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.restart:
			if e.takeRephase() {
				t.Reset(interval)
			}
		case <-t.C:
			if !e.tick(interval) {
				t.Reset(interval)
			}
		}
	}
}

func (e *Engine) takeRephase() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.rephase
	e.rephase = false
	return r
}

// tick advances by one interval unless a Start is waiting to re-phase the
// ticker, in which case it reports false and does nothing.
func (e *Engine) tick(interval time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rephase {
		e.rephase = false
		return false
	}
	e.sched.Advance(interval)
	return true
}

// Advance feeds elapsed time to the scheduler and reports whether it stepped.
func (e *Engine) Advance(dt time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sched.Advance(dt)
}

// Status snapshots the engine state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

func (e *Engine) statusLocked() Status {
	st := e.sim.Stats()
	return Status{
		Name:       e.sim.Name(),
		Generation: st.Generation,
		Population: st.Population,
		Chunks:     st.Chunks,
		Running:    e.sched.Running(),
		IntervalMS: e.sched.Interval().Milliseconds(),
	}
}

// Start begins ticking. changed is false if it was already running.
func (e *Engine) Start() (changed bool, st Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed = e.sched.Start()
	if changed {
		e.rephase = true
		select {
		case e.restart <- struct{}{}:
		default:
		}
	}
	return changed, e.statusLocked()
}

// Stop halts ticking. changed is false if it was already stopped.
func (e *Engine) Stop() (changed bool, st Status) {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed = e.sched.Stop()
	return changed, e.statusLocked()
}

// Step advances one generation regardless of run state.
func (e *Engine) Step() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sched.Step()
	return e.statusLocked()
}

// Reset reseeds the sim; a zero seed uses its configured seed.
func (e *Engine) Reset(seed int64) Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sim.Reset(seed)
	return e.statusLocked()
}

// SetCell writes one cell. A nil alive toggles it. The new state is returned.
func (e *Engine) SetCell(c coord.Vec, alive *bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if alive == nil {
		return core.Toggle(e.sim, c)
	}
	e.sim.SetAlive(c, *alive)
	return *alive
}

// Region returns the live cells inside the w×h rectangle at origin, in
// row-major order.
func (e *Engine) Region(origin coord.Vec, w, h int) []coord.Vec {
	e.mu.Lock()
	defer e.mu.Unlock()
	var cells []coord.Vec
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := origin.Add(coord.New(x, y))
			if e.sim.Alive(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}
