package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, header, borders
	ColorHighlight = "205" // Magenta - cursor, selected rows
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, separators
	ColorText      = "252" // Light gray - cell text
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // bold accent, pane titles
	Header   lipgloss.Style // table header row
	Cell     lipgloss.Style // normal cell text
	Cursor   lipgloss.Style // row under the cursor
	Selected lipgloss.Style // selected row marker and text
	Muted    lipgloss.Style // hints, separators
	Key      lipgloss.Style // key names in help
	Empty    lipgloss.Style // empty-state text
	Error    lipgloss.Style // status errors
	Pane     lipgloss.Style // detail pane box
	PaneDim  lipgloss.Style // detail pane box when unfocused
	Overlay  lipgloss.Style // help overlay box
	Status   lipgloss.Style // bottom status line
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Cell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Pane: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	PaneDim: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
