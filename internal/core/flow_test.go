package core

import "testing"

func TestFlowTransitions(t *testing.T) {
	resets := 0
	f := NewFlow(func() { resets++ })

	if f.Status() != StatusIdle {
		t.Fatalf("initial status = %v, expected idle", f.Status())
	}

	steps := []struct {
		name     string
		op       func() bool
		changed  bool
		expected Status
	}{
		{"pause while idle", f.Pause, false, StatusIdle},
		{"end while idle", f.End, false, StatusIdle},
		{"start", f.Start, true, StatusRunning},
		{"start while running", f.Start, false, StatusRunning},
		{"resume while running", f.Resume, false, StatusRunning},
		{"pause", f.Pause, true, StatusPaused},
		{"pause while paused", f.Pause, false, StatusPaused},
		{"end while paused", f.End, false, StatusPaused},
		{"resume", f.Resume, true, StatusRunning},
		{"toggle", f.TogglePause, true, StatusPaused},
		{"toggle back", f.TogglePause, true, StatusRunning},
		{"end", f.End, true, StatusOver},
		{"pause while over", f.Pause, false, StatusOver},
		{"toggle while over", f.TogglePause, false, StatusOver},
		{"restart", f.Start, true, StatusRunning},
	}

	for _, s := range steps {
		if got := s.op(); got != s.changed {
			t.Errorf("%s: changed = %v, expected %v", s.name, got, s.changed)
		}
		if f.Status() != s.expected {
			t.Errorf("%s: status = %v, expected %v", s.name, f.Status(), s.expected)
		}
	}

	if resets != 2 {
		t.Errorf("reset hook ran %d times, expected 2", resets)
	}
}

func TestFlowResetReturnsToIdle(t *testing.T) {
	resets := 0
	f := NewFlow(func() { resets++ })
	f.Start()
	f.End()

	if !f.Reset() {
		t.Error("Reset from over should report a change")
	}
	if f.Status() != StatusIdle || resets != 2 {
		t.Errorf("status = %v, resets = %d; expected idle, 2", f.Status(), resets)
	}
	if f.Running() {
		t.Error("Running() should be false after Reset")
	}
}

func TestFlowPrimary(t *testing.T) {
	f := NewFlow(nil)
	expected := []Status{StatusRunning, StatusPaused, StatusRunning}
	for i, want := range expected {
		f.Primary()
		if f.Status() != want {
			t.Errorf("press %d: status = %v, expected %v", i+1, f.Status(), want)
		}
	}

	f.End()
	f.Primary()
	if f.Status() != StatusRunning {
		t.Errorf("Primary from over = %v, expected running", f.Status())
	}
}

func TestFlowRestart(t *testing.T) {
	resets := 0
	f := NewFlow(func() { resets++ })

	for _, setup := range []func() bool{f.Start, f.Pause, f.End} {
		setup()
		f.Restart()
		if f.Status() != StatusRunning {
			t.Errorf("Restart() status = %v, expected running", f.Status())
		}
	}
	if resets != 4 {
		t.Errorf("reset hook ran %d times, expected 4", resets)
	}
}
