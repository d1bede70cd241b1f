package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a viewer command, independent of the physical key
type Action int

const (
	ActionQuit Action = iota
	ActionTogglePause
	ActionStepFrame
	ActionRestart
	ActionCount // Sentinel value for array sizing
)

// InputManager maps keys to viewer actions and tracks per-frame presses.
// Key events arrive from GLFW callbacks on the main thread, so no locking is
// needed.
type InputManager struct {
	keyToActions map[glfw.Key][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{keyToActions: make(map[glfw.Key][]Action)}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionTogglePause)
	im.BindKey(glfw.KeyRight, ActionStepFrame)
	im.BindKey(glfw.KeyPeriod, ActionStepFrame)
	im.BindKey(glfw.KeyHome, ActionRestart)
	im.BindKey(glfw.KeyR, ActionRestart)

	return im
}

// BindKey adds a binding from key to action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes every binding for key
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.keyToActions, key)
}

// HandleKeyEvent records a key event. Repeats of a held key count as a new
// press so that holding the step key keeps stepping.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	for _, act := range im.keyToActions[key] {
		switch action {
		case glfw.Press, glfw.Repeat:
			im.justPressed[act] = true
			im.held[act] = true
		case glfw.Release:
			im.held[act] = false
		}
	}
}

// SetKeyCallback routes the window's key events into the manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// JustPressed reports whether action was triggered since the last PostUpdate
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// IsHeld reports whether a key bound to action is down
func (im *InputManager) IsHeld(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.held[action]
}

// PostUpdate clears the per-frame press flags. Call once at the end of
// each frame.
func (im *InputManager) PostUpdate() {
	clear(im.justPressed[:])
}
