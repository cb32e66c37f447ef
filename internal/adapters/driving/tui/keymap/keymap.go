// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Submit sends the typed question to the vault.
	Submit key.Binding

	// ScrollUp scrolls the transcript up.
	ScrollUp key.Binding

	// ScrollDown scrolls the transcript down.
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Plain letters are never bound: they belong to the question input.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ask"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "pgup"),
			key.WithHelp("↑/pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "pgdown"),
			key.WithHelp("↓/pgdn", "scroll down"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit}
}

// FullHelp returns the full list of keybindings.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit},
		{k.ScrollUp, k.ScrollDown},
		{k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
