package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/danmaku/internal/core"
)

// KeyMap defines the key bindings of the viewer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Step    key.Binding
	Method  key.Binding
	Finer   key.Binding
	Coarser key.Binding
	Grid    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Method, k.Finer, k.Coarser, k.Grid, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Step, k.Restart},
		{k.Method, k.Finer, k.Coarser, k.Grid},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:    key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:    key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:   key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Pause:   key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Step:    key.NewBinding(key.WithKeys("n", "."), key.WithHelp("n", "step")),
		Method:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "method")),
		Finer:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "finer")),
		Coarser: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "coarser")),
		Grid:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "overlay")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap()}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.Keys
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}

	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Pause, core.ActionPause},
		{k.Step, core.ActionStep},
		{k.Method, core.ActionMethod},
		{k.Finer, core.ActionFiner},
		{k.Coarser, core.ActionCoarser},
		{k.Grid, core.ActionGrid},
		{k.Restart, core.ActionRestart},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
