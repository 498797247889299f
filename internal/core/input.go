package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionAbility1        // 1 - first ability slot, first discovery option
	ActionAbility2        // 2 - second ability slot, second discovery option
	ActionAbility3        // 3 - third ability slot, leave discovery
	ActionHeal            // 4 - trade science for energy
	ActionInteract        // E - warp to a nearby planet
	ActionConfirm         // Enter - start, leave discovery, back to menu
	ActionPause           // P - pause/unpause simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAbility1:
		return "Ability1"
	case ActionAbility2:
		return "Ability2"
	case ActionAbility3:
		return "Ability3"
	case ActionHeal:
		return "Heal"
	case ActionInteract:
		return "Interact"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// MouseInput is the pointer state for one frame, in screen pixels with the
// origin at the top-left of the playfield.
type MouseInput struct {
	X, Y     float64
	DownL    bool
	DownR    bool
	ClickedL bool // Left button went down this frame
	ClickedR bool // Right button went down this frame
}

// InputFrame is the flat input snapshot for a single simulation tick.
// It is immutable for the duration of that tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Mouse   MouseInput
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a left click at screen position (x, y).
func (f *InputFrame) Click(x, y float64) {
	f.Mouse.X = x
	f.Mouse.Y = y
	f.Mouse.ClickedL = true
}

// AbilitySlot returns the pressed ability slot, or -1 when none is pressed.
// Lower slots win when several keys arrive in the same frame.
func (f InputFrame) AbilitySlot() int {
	switch {
	case f.Has(ActionAbility1):
		return 0
	case f.Has(ActionAbility2):
		return 1
	case f.Has(ActionAbility3):
		return 2
	}
	return -1
}

// Clear resets all actions and click edges for the next frame.
// Pointer position and held buttons carry over.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Mouse.ClickedL = false
	f.Mouse.ClickedR = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Mouse = f.Mouse
	return clone
}
