package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ErrNotInteractive is returned by prompts when no terminal is available.
var ErrNotInteractive = errors.New("prompt requires an interactive terminal")

// confirmKeyMap extends the huh defaults so y/n answer immediately and
// esc cancels like ctrl+c.
func confirmKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Confirm.Accept = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	km.Confirm.Reject = key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no"))
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	return km
}

// runForm is replaced in tests.
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// Confirm asks a yes/no question. A canceled prompt counts as "no".
func Confirm(title, description string) (bool, error) {
	if !IsInteractive() {
		return false, ErrNotInteractive
	}

	var confirmed bool
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(currentThemeOrDefault()).
		WithKeyMap(confirmKeyMap())

	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}
