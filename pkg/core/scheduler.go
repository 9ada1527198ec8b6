package core

import (
	"log"
	"time"
)

// DefaultInterval is the time between generations while running.
const DefaultInterval = 100 * time.Millisecond

// RunState is the lifecycle state of a Scheduler.
type RunState uint8

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Scheduler owns the Running/Stopped lifecycle of a simulation and decides
// when ticks happen. It does not own a timer; callers report elapsed time
// through Advance.
type Scheduler struct {
	step  func()
	clock *FixedStep
	state RunState
	log   *log.Logger
}

// NewScheduler returns a stopped scheduler that calls step once per interval
// while running. A nil logger uses log.Default().
func NewScheduler(step func(), interval time.Duration, logger *log.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{step: step, clock: NewFixedInterval(interval), log: logger}
}

// State reports the current lifecycle state.
func (s *Scheduler) State() RunState { return s.state }

// Running reports whether ticks are being scheduled.
func (s *Scheduler) Running() bool { return s.state == Running }

// Interval reports the tick period.
func (s *Scheduler) Interval() time.Duration { return s.clock.Interval() }

// Start moves to Running and advances one generation immediately. It returns
// false, logging a diagnostic, if the scheduler was already running.
func (s *Scheduler) Start() bool {
	if s.state == Running {
		s.log.Printf("[life] simulation is already running")
		return false
	}
	s.step()
	s.clock.Reset()
	s.state = Running
	s.log.Printf("[life] simulation started")
	return true
}

// Stop moves to Stopped. A step in progress is never interrupted; only later
// ticks are suppressed. It returns false if the scheduler was already stopped.
func (s *Scheduler) Stop() bool {
	if s.state == Stopped {
		s.log.Printf("[life] simulation is not running")
		return false
	}
	s.state = Stopped
	s.log.Printf("[life] simulation stopped")
	return true
}

// Toggle starts a stopped scheduler or stops a running one.
func (s *Scheduler) Toggle() {
	if s.state == Running {
		s.Stop()
		return
	}
	s.Start()
}

// Step advances exactly one generation regardless of state.
func (s *Scheduler) Step() {
	s.step()
}

// Advance reports elapsed time. While running it performs at most one step
// once a full interval has accumulated, and reports whether it did.
func (s *Scheduler) Advance(delta time.Duration) bool {
	if s.state != Running {
		return false
	}
	if !s.clock.Advance(delta) {
		return false
	}
	s.step()
	return true
}
