package core

// Status is the game flow state shared by both simulations.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Flow is the idle/running/paused/over state machine.
//
// The only way out of StatusOver is Start, Restart or Reset, each of which
// calls the reset hook first. Every method reports whether a transition
// happened; calls that do not apply in the current state are no-ops.
type Flow struct {
	status  Status
	onReset func()
}

// NewFlow creates a flow in StatusIdle. reset reinitializes the owning
// simulation and may be nil.
func NewFlow(reset func()) *Flow {
	return &Flow{status: StatusIdle, onReset: reset}
}

// Status returns the current state.
func (f *Flow) Status() Status {
	return f.status
}

// Running reports whether simulation ticks should execute.
func (f *Flow) Running() bool {
	return f.status == StatusRunning
}

// Start begins a run from idle, or restarts from over via a full reset.
func (f *Flow) Start() bool {
	switch f.status {
	case StatusIdle, StatusOver:
		f.reset()
		f.status = StatusRunning
		return true
	}
	return false
}

// Pause freezes a running game.
func (f *Flow) Pause() bool {
	if f.status != StatusRunning {
		return false
	}
	f.status = StatusPaused
	return true
}

// Resume continues a paused game.
func (f *Flow) Resume() bool {
	if f.status != StatusPaused {
		return false
	}
	f.status = StatusRunning
	return true
}

// TogglePause switches between running and paused.
func (f *Flow) TogglePause() bool {
	if f.status == StatusPaused {
		return f.Resume()
	}
	return f.Pause()
}

// End moves a running game to over.
func (f *Flow) End() bool {
	if f.status != StatusRunning {
		return false
	}
	f.status = StatusOver
	return true
}

// Reset reinitializes the simulation and returns to idle.
func (f *Flow) Reset() bool {
	f.reset()
	changed := f.status != StatusIdle
	f.status = StatusIdle
	return changed
}

// Restart resets and starts a new run from any state.
func (f *Flow) Restart() bool {
	f.reset()
	f.status = StatusRunning
	return true
}

// Primary is the single start/pause/resume button.
func (f *Flow) Primary() bool {
	switch f.status {
	case StatusRunning:
		return f.Pause()
	case StatusPaused:
		return f.Resume()
	default:
		return f.Start()
	}
}

func (f *Flow) reset() {
	if f.onReset != nil {
		f.onReset()
	}
}
