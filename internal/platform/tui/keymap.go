package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "f2", "`":
		return core.ActionDebug, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// holdState keeps a steering direction active between key repeats.
// Terminals report presses only, so a direction stays set for a number
// of ticks after its last press. Pressing one direction drops the other.
type holdState struct {
	ticks int
	left  int
	right int
}

func newHoldState(ticks int) holdState {
	return holdState{ticks: max(ticks, 1)}
}

// press records a key press.
func (h *holdState) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.ticks, 0
	case core.ActionRight:
		h.right, h.left = h.ticks, 0
	}
}

// apply sets held directions on frame and counts one tick down.
func (h *holdState) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

func (h *holdState) release() {
	h.left, h.right = 0, 0
}
