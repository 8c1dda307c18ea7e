package core

// KeyCode is a host key code. Only the four arrow codes drive the game.
type KeyCode int

// Arrow key codes delivered by the host event source.
const (
	KeyNone  KeyCode = 0
	KeyLeft  KeyCode = 37
	KeyUp    KeyCode = 38
	KeyRight KeyCode = 39
	KeyDown  KeyCode = 40
)

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyUp:
		return "Up"
	case KeyRight:
		return "Right"
	case KeyDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key-down or key-up delivered by the host.
type KeyEvent struct {
	Code KeyCode
	Down bool
}

// Keyboard tracks the pressed/released state of key codes.
// Codes never pressed, or released since, report not pressed.
type Keyboard struct {
	pressed map[KeyCode]bool
}

// NewKeyboard creates a keyboard with every key released.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[KeyCode]bool)}
}

// PressKey marks code as pressed. Pressing an already pressed key is a no-op.
func (k *Keyboard) PressKey(code KeyCode) {
	if k.pressed == nil {
		k.pressed = make(map[KeyCode]bool)
	}
	k.pressed[code] = true
}

// ReleaseKey marks code as released.
func (k *Keyboard) ReleaseKey(code KeyCode) {
	delete(k.pressed, code)
}

// IsPressed reports whether code is currently held. KeyNone is never pressed.
func (k *Keyboard) IsPressed(code KeyCode) bool {
	if code == KeyNone {
		return false
	}
	return k.pressed[code]
}

// ReleaseAll releases every key.
func (k *Keyboard) ReleaseAll() {
	clear(k.pressed)
}

// Action represents a platform-level intent, abstracted from physical key presses.
// Arrow movement is carried separately as key events.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the host delivered between two ticks: the
// ordered key events and the platform actions.
type InputFrame struct {
	// Keys holds key-down/key-up events in delivery order.
	Keys []KeyEvent

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// KeyDown appends a key-down event.
func (f *InputFrame) KeyDown(code KeyCode) {
	f.Keys = append(f.Keys, KeyEvent{Code: code, Down: true})
}

// KeyUp appends a key-up event.
func (f *InputFrame) KeyUp(code KeyCode) {
	f.Keys = append(f.Keys, KeyEvent{Code: code, Down: false})
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

// Clear resets all events and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Keys = f.Keys[:0]
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
