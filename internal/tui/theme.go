package tui

import (
	"github.com/charmbracelet/huh"
)

// currentTheme is nil until SetTheme picks a known theme.
var currentTheme *huh.Theme

// SetTheme selects the prompt theme by name and reports whether the name
// was recognized. Unknown or empty names select the scafsln theme.
func SetTheme(name string) bool {
	currentTheme = GetTheme(name)
	return currentTheme != nil || name == ""
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return scafslnTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}
