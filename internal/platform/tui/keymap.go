package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/void-sectors/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Ability1   key.Binding
	Ability2   key.Binding
	Ability3   key.Binding
	Heal       key.Binding
	Interact   key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ability1, k.Ability2, k.Ability3, k.Heal, k.Interact, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Ability1, k.Ability2, k.Ability3, k.Heal},
		{k.Interact, k.Confirm, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Ability1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "missile"),
		),
		Ability2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "torpedo"),
		),
		Ability3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "nova"),
		),
		Heal: key.NewBinding(
			key.WithKeys("4", "h"),
			key.WithHelp("4/h", "heal"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "warp"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "confirm"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Keys that are not game actions map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Ability1):
		return core.ActionAbility1
	case key.Matches(msg, k.Ability2):
		return core.ActionAbility2
	case key.Matches(msg, k.Ability3):
		return core.ActionAbility3
	case key.Matches(msg, k.Heal):
		return core.ActionHeal
	case key.Matches(msg, k.Interact):
		return core.ActionInteract
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
