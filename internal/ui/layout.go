package ui

// Panel IDs of the table holder.
const (
	PanelTable = "table"
	PanelPane  = "pane"
)

// Bounds is a panel rectangle in terminal cells.
type Bounds struct {
	X, Y, W, H int
}

// Panel is a bounded region within a layout.
type Panel struct {
	ID     string
	Bounds Bounds
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels(width, height int) []Panel
	FocusOrder() []string
}

// SplitLayout puts the table on the left and, while the pane is open, the
// detail pane on the right taking PaneRatio of the width (at least MinPane).
type SplitLayout struct {
	PaneOpen  bool
	PaneRatio float64
	MinPane   int
}

// Panels implements Layout.
func (l SplitLayout) Panels(width, height int) []Panel {
	if !l.PaneOpen {
		return []Panel{{ID: PanelTable, Bounds: Bounds{W: width, H: height}}}
	}
	pane := int(float64(width) * l.PaneRatio)
	if pane < l.MinPane {
		pane = l.MinPane
	}
	if pane > width {
		pane = width
	}
	table := width - pane
	return []Panel{
		{ID: PanelTable, Bounds: Bounds{W: table, H: height}},
		{ID: PanelPane, Bounds: Bounds{X: table, W: pane, H: height}},
	}
}

// FocusOrder implements Layout.
func (l SplitLayout) FocusOrder() []string {
	if !l.PaneOpen {
		return []string{PanelTable}
	}
	return []string{PanelTable, PanelPane}
}
