package ui

// StartFilterMsg focuses the filter input of the data table (SPC / or "/").
type StartFilterMsg struct{}

// ToggleCaseMsg flips case-sensitive filtering (SPC f c).
type ToggleCaseMsg struct{}

// CycleMatchMsg switches to the next filter match mode (SPC f m).
type CycleMatchMsg struct{}

// CopyRowMsg copies the detail pane row to the clipboard (SPC y or y in the pane).
type CopyRowMsg struct{}

// ToggleHelpMsg shows or hides the help overlay (?).
type ToggleHelpMsg struct{}

// RowToggledMsg reports a selection change after a click or toggle key.
type RowToggledMsg struct {
	ID       int  // row identity
	Selected bool // selected after the toggle
	PaneOpen bool
}

// StatusMsg sets the transient status line text.
type StatusMsg struct {
	Text  string
	Error bool
}
