package core

// Action is a semantic game intent, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionDrop      // hard drop
	ActionRotateCW  // rotate clockwise
	ActionRotateCCW // rotate counter-clockwise
	ActionLight     // light attack
	ActionHeavy     // heavy attack
	ActionShoot     // ranged shot
	ActionConfirm   // start / pause / resume
	ActionPause
	ActionRestart
	ActionBack
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionDrop:      "Drop",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionLight:     "Light",
	ActionHeavy:     "Heavy",
	ActionShoot:     "Shoot",
	ActionConfirm:   "Confirm",
	ActionPause:     "Pause",
	ActionRestart:   "Restart",
	ActionBack:      "Back",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input delivered to a game for one frame.
// Actions holds discrete presses seen this frame; Held holds latched
// state such as movement keys that stay down across frames.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetHeld marks an action as held down.
func (f *InputFrame) SetHeld(a Action) {
	if a == ActionNone {
		return
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld reports whether the action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets presses and held state for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
