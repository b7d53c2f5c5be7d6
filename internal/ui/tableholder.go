package ui

import (
	"dealtable/internal/datatable"
	"dealtable/internal/schema"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TableHolderOptions are the inputs of the table holder view.
type TableHolderOptions struct {
	Rows          []datatable.Row
	Columns       schema.Schema
	Filter        datatable.FilterOptions
	InitialFilter string
	MarkdownStyle string
}

// TableHolderView composes the data table with its detail pane. The pane is
// laid out next to the table exactly while one row is selected.
type TableHolderView struct {
	table  *DataTableView
	pane   *DetailPane
	focus  *FocusManager
	layout SplitLayout
	width  int
	height int
}

// Ensure TableHolderView implements View.
var _ View = (*TableHolderView)(nil)

// NewTableHolderView mounts a table over opts.Rows and opts.Columns.
func NewTableHolderView(opts TableHolderOptions) *TableHolderView {
	t := datatable.New(opts.Rows, opts.Columns, opts.Filter)
	t.SetFilter(opts.InitialFilter)

	h := &TableHolderView{
		table:  NewDataTableView(t),
		pane:   NewDetailPane(opts.Columns),
		layout: SplitLayout{PaneRatio: 0.4, MinPane: 30},
		width:  80,
		height: 20,
	}
	h.pane.SetMarkdownStyle(opts.MarkdownStyle)
	h.focus = &FocusManager{
		Current: PanelTable,
		Order:   h.layout.FocusOrder(),
		OnChange: func(_, to string) {
			h.pane.SetFocused(to == PanelPane)
		},
	}
	h.resize()
	return h
}

// Table returns the data table view.
func (h *TableHolderView) Table() *DataTableView { return h.table }

// Pane returns the detail pane.
func (h *TableHolderView) Pane() *DetailPane { return h.pane }

// PaneOpen reports whether the detail pane is shown.
func (h *TableHolderView) PaneOpen() bool { return h.layout.PaneOpen }

// Focused returns the ID of the focused panel.
func (h *TableHolderView) Focused() string { return h.focus.Current }

// Mode implements moder.
func (h *TableHolderView) Mode() AppMode {
	switch {
	case h.table.Filtering():
		return ModeFilter
	case h.focus.Is(PanelPane):
		return ModeDetail
	default:
		return ModeBrowse
	}
}

// Init implements View.
func (h *TableHolderView) Init() tea.Cmd {
	return h.table.Init()
}

// Update implements View.
func (h *TableHolderView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.resize()
		return h, nil
	case CopyRowMsg:
		_, cmd := h.pane.Update(msg)
		return h, cmd
	case tea.KeyMsg:
		if h.table.Filtering() {
			break
		}
		switch msg.String() {
		case "tab":
			h.focus.Next()
			return h, nil
		case "shift+tab":
			h.focus.Prev()
			return h, nil
		case "esc":
			if h.focus.Is(PanelPane) {
				h.focus.SetFocus(PanelTable)
				return h, nil
			}
		}
		if h.focus.Is(PanelPane) {
			_, cmd := h.pane.Update(msg)
			return h, cmd
		}
	case tea.MouseMsg:
		if panels := h.layout.Panels(h.width, h.height); h.layout.PaneOpen && msg.X >= panels[1].Bounds.X {
			msg.X -= panels[1].Bounds.X
			_, cmd := h.pane.Update(msg)
			return h, cmd
		}
	}

	_, cmd := h.table.Update(msg)
	h.sync()
	return h, cmd
}

// sync opens, fills or closes the pane to match the table's selection.
func (h *TableHolderView) sync() {
	open := h.table.PaneOpen()
	if open != h.layout.PaneOpen {
		h.layout.PaneOpen = open
		h.focus.Order = h.layout.FocusOrder()
		if !open {
			h.focus.SetFocus(PanelTable)
			h.pane.Clear()
		}
		h.resize()
	}
	if !open {
		return
	}
	row, id, _ := h.table.Table().PaneRow()
	if cur, ok := h.pane.RowID(); !ok || cur != id {
		h.pane.SetRow(row, id)
	}
}

func (h *TableHolderView) resize() {
	panels := h.layout.Panels(h.width, h.height)
	h.table.SetSize(panels[0].Bounds.W, h.height)
	if len(panels) > 1 {
		h.pane.SetSize(panels[1].Bounds.W, h.height)
	}
}

// View implements View.
func (h *TableHolderView) View() string {
	if !h.layout.PaneOpen {
		return h.table.View()
	}
	panels := h.layout.Panels(h.width, h.height)
	left := lipgloss.NewStyle().Width(panels[0].Bounds.W).Render(h.table.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, h.pane.View())
}
