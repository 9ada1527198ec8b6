package core

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func newTestScheduler(steps *int) (*Scheduler, *bytes.Buffer) {
	var buf bytes.Buffer
	s := NewScheduler(func() { *steps++ }, 100*time.Millisecond, log.New(&buf, "", 0))
	return s, &buf
}

func TestSchedulerLifecycle(t *testing.T) {
	steps := 0
	s, _ := newTestScheduler(&steps)

	if s.State() != Stopped {
		t.Fatalf("new scheduler state = %v, want stopped", s.State())
	}
	if s.Advance(time.Second) {
		t.Fatal("stopped scheduler must not tick")
	}
	if !s.Start() {
		t.Fatal("Start from stopped should report a transition")
	}
	if steps != 1 {
		t.Fatalf("Start should step immediately, steps=%d", steps)
	}
	if s.Advance(99 * time.Millisecond) {
		t.Fatal("tick before a full interval elapsed")
	}
	if !s.Advance(time.Millisecond) {
		t.Fatal("expected tick once the interval elapsed")
	}
	if steps != 2 {
		t.Fatalf("steps=%d, want 2", steps)
	}
	if !s.Stop() {
		t.Fatal("Stop from running should report a transition")
	}
	if s.Advance(time.Second) {
		t.Fatal("stopped scheduler ticked")
	}
	if steps != 2 {
		t.Fatalf("steps=%d after stop, want 2", steps)
	}
}

func TestSchedulerRepeatedTransitionsAreBenign(t *testing.T) {
	steps := 0
	s, buf := newTestScheduler(&steps)

	if s.Stop() {
		t.Fatal("Stop while stopped should be a no-op")
	}
	if !strings.Contains(buf.String(), "not running") {
		t.Fatalf("expected diagnostic, got %q", buf.String())
	}

	s.Start()
	buf.Reset()
	if s.Start() {
		t.Fatal("Start while running should be a no-op")
	}
	if !strings.Contains(buf.String(), "already running") {
		t.Fatalf("expected diagnostic, got %q", buf.String())
	}
	if steps != 1 {
		t.Fatalf("no-op Start stepped, steps=%d", steps)
	}
	if s.State() != Running {
		t.Fatalf("state = %v, want running", s.State())
	}
}

func TestSchedulerManualStepKeepsState(t *testing.T) {
	steps := 0
	s, _ := newTestScheduler(&steps)

	s.Step()
	if steps != 1 || s.State() != Stopped {
		t.Fatalf("step while stopped: steps=%d state=%v", steps, s.State())
	}
	s.Start()
	s.Step()
	if steps != 3 || s.State() != Running {
		t.Fatalf("step while running: steps=%d state=%v", steps, s.State())
	}
}

func TestSchedulerToggle(t *testing.T) {
	steps := 0
	s, _ := newTestScheduler(&steps)
	s.Toggle()
	if !s.Running() {
		t.Fatal("toggle should start")
	}
	s.Toggle()
	if s.Running() {
		t.Fatal("toggle should stop")
	}
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(func() {}, 0, nil)
	if got := s.Interval(); got != DefaultInterval {
		t.Fatalf("interval = %v, want %v", got, DefaultInterval)
	}
	if Running.String() != "running" || Stopped.String() != "stopped" {
		t.Fatal("unexpected RunState strings")
	}
}
