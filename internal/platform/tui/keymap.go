package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// KeyMap defines the key bindings for the cannon game.
type KeyMap struct {
	Fire       key.Binding
	PowerUp    key.Binding
	PowerDown  key.Binding
	Left       key.Binding
	Right      key.Binding
	Shoot      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.PowerUp, k.PowerDown, k.Left, k.Right, k.Shoot, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.PowerUp, k.PowerDown},
		{k.Left, k.Right, k.Shoot},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "charge/fire"),
		),
		PowerUp: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "power +"),
		),
		PowerDown: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "power -"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "shoot"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to session events.
//
// Terminals report presses only, so the fire key toggles: it charges the
// cannon when idle and releases it when charging.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a session event.
// charging is the cannon state the event will be applied to.
// Returns false for keys the game does not use.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, charging bool) (core.Event, bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Terminate(), true
	case key.Matches(msg, km.keys.Fire):
		if charging {
			return core.Released(core.KeySpace), true
		}
		return core.Pressed(core.KeySpace), true
	case key.Matches(msg, km.keys.PowerUp):
		return core.Pressed(core.KeyUp), true
	case key.Matches(msg, km.keys.PowerDown):
		return core.Pressed(core.KeyDown), true
	case key.Matches(msg, km.keys.Left):
		return core.Pressed(core.KeyLeft), true
	case key.Matches(msg, km.keys.Right):
		return core.Pressed(core.KeyRight), true
	case key.Matches(msg, km.keys.Shoot):
		return core.Pressed(core.KeyShoot), true
	}
	return core.Event{}, false
}
