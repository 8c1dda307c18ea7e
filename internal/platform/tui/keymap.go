package tui

import (
	"maps"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after the
// terminal last reported it. Terminals only send presses (and auto-repeats),
// so releases are synthesized once a key goes quiet for this long. It has to
// outlast the delay before auto-repeat starts, usually 250-500ms.
const DefaultHoldWindow = 550 * time.Millisecond

// movementKeys maps terminal key names to game key codes.
var movementKeys = map[string]core.KeyCode{
	"left":  core.KeyLeft,
	"a":     core.KeyLeft,
	"h":     core.KeyLeft,
	"up":    core.KeyUp,
	"w":     core.KeyUp,
	"k":     core.KeyUp,
	"right": core.KeyRight,
	"d":     core.KeyRight,
	"l":     core.KeyRight,
	"down":  core.KeyDown,
	"s":     core.KeyDown,
	"j":     core.KeyDown,
}

// KeyMapper translates Bubble Tea key messages to game input and tracks
// which movement keys are still considered held.
type KeyMapper struct {
	hold     time.Duration
	lastSeen map[core.KeyCode]time.Time
}

// NewKeyMapper creates a key mapper. A non-positive hold uses DefaultHoldWindow.
func NewKeyMapper(hold time.Duration) *KeyMapper {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyMapper{
		hold:     hold,
		lastSeen: make(map[core.KeyCode]time.Time),
	}
}

// MapKey translates a key message to a movement code or a platform action.
// Returns whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code core.KeyCode, action core.Action, isQuit bool) {
	key := msg.String()

	if c, ok := movementKeys[key]; ok {
		return c, core.ActionNone, false
	}

	switch key {
	case "ctrl+c", "q":
		return core.KeyNone, core.ActionQuit, true
	case "enter":
		return core.KeyNone, core.ActionConfirm, false
	case "b", "esc":
		return core.KeyNone, core.ActionBack, false
	case "p", " ":
		return core.KeyNone, core.ActionPause, false
	case "r":
		return core.KeyNone, core.ActionRestart, false
	}

	return core.KeyNone, core.ActionNone, false
}

// MapKeyToFrame records a key message in the input frame.
// Every press of a movement key is delivered as a key-down; the game
// ignores presses of keys it already considers held.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	code, action, isQuit := km.MapKey(msg)
	if code != core.KeyNone {
		frame.KeyDown(code)
		km.lastSeen[code] = now
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Expire appends a key-up for every held key not seen within the hold window.
func (km *KeyMapper) Expire(frame *core.InputFrame, now time.Time) {
	for _, code := range slices.Sorted(maps.Keys(km.lastSeen)) {
		if now.Sub(km.lastSeen[code]) >= km.hold {
			frame.KeyUp(code)
			delete(km.lastSeen, code)
		}
	}
}

// ReleaseAll appends a key-up for every held key.
func (km *KeyMapper) ReleaseAll(frame *core.InputFrame) {
	for _, code := range slices.Sorted(maps.Keys(km.lastSeen)) {
		frame.KeyUp(code)
	}
	clear(km.lastSeen)
}

// Held reports whether code is still inside its hold window.
func (km *KeyMapper) Held(code core.KeyCode) bool {
	_, ok := km.lastSeen[code]
	return ok
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
