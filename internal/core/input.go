package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // Up arrow - move vertical vehicle / menu focus up
	ActionDown                // Down arrow - move vertical vehicle / menu focus down
	ActionLeft                // Left arrow - move horizontal vehicle
	ActionRight               // Right arrow - move horizontal vehicle
	ActionConfirm             // Enter - activate focused button
	ActionBack                // Escape - one level up
	ActionPause               // P - pause/unpause
	ActionRestart             // R - restart level after win or game over
	ActionSelectTarget        // Space - select the target vehicle
	ActionSelect1             // 1..9 - select vehicle by number
	ActionSelect2
	ActionSelect3
	ActionSelect4
	ActionSelect5
	ActionSelect6
	ActionSelect7
	ActionSelect8
	ActionSelect9
	ActionQuit // Ctrl+C - exit immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionSelectTarget:
		return "SelectTarget"
	case ActionQuit:
		return "Quit"
	}
	if n, ok := a.VehicleNumber(); ok {
		return "Select" + string(rune('0'+n))
	}
	return "Unknown"
}

// SelectAction returns the action selecting vehicle number n (1-9).
func SelectAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionSelect1 + Action(n-1)
}

// VehicleNumber returns the 1-based vehicle number for a selection action.
func (a Action) VehicleNumber() (int, bool) {
	if a < ActionSelect1 || a > ActionSelect9 {
		return 0, false
	}
	return int(a-ActionSelect1) + 1, true
}

// IsDirection reports whether the action is one of the four held directions.
func (a Action) IsDirection() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputKind distinguishes the events carried by an InputFrame.
type InputKind int

const (
	InputPress InputKind = iota
	InputRelease
	InputPointerMove
	InputPointerClick
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// InputEvent is a single discrete input: an action press or release, or a
// pointer event. Pointer coordinates are in the game's virtual canvas units.
type InputEvent struct {
	Kind   InputKind
	Action Action
	Button MouseButton
	X, Y   float64
}

// InputFrame holds every input event accumulated since the previous tick, in
// arrival order. Nothing is lost between frames: the platform appends, the
// game consumes the whole frame, then the platform clears it.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records an action key going down.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, InputEvent{Kind: InputPress, Action: a})
}

// Release records an action key going up.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Kind: InputRelease, Action: a})
}

// PointerMove records the pointer moving to (x, y).
func (f *InputFrame) PointerMove(x, y float64) {
	f.Events = append(f.Events, InputEvent{Kind: InputPointerMove, X: x, Y: y})
}

// PointerClick records a pointer button press at (x, y).
func (f *InputFrame) PointerClick(b MouseButton, x, y float64) {
	f.Events = append(f.Events, InputEvent{Kind: InputPointerClick, Button: b, X: x, Y: y})
}

// Clear resets the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
