package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition. Routes produce Views and the app model
// forwards every message to the current one.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
