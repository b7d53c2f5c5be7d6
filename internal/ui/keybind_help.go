package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles/help model in the app colors.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Key
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Key
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient hint bar shown after SPC,
// listing the next keys of the typed sequence for mode.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	prefix := "SPC"
	if seq := keyHandler.CurrentSeq(); seq != "" {
		prefix = seq
	}
	content := Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(content)
}
