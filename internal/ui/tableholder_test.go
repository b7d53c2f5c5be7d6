package ui

import (
	"testing"

	"dealtable/internal/datatable"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHolder() *TableHolderView {
	h := NewTableHolderView(TableHolderOptions{
		Rows:          testRows(),
		Columns:       testColumns(),
		Filter:        datatable.DefaultFilterOptions(),
		MarkdownStyle: "notty",
	})
	h.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return h
}

func TestTableHolder_InitialFilter(t *testing.T) {
	h := NewTableHolderView(TableHolderOptions{
		Rows:          testRows(),
		Columns:       testColumns(),
		Filter:        datatable.DefaultFilterOptions(),
		InitialFilter: "John",
	})
	assert.Equal(t, []int{0}, h.Table().Table().Visible())
	assert.False(t, h.PaneOpen())
}

func TestTableHolder_PaneFollowsSelection(t *testing.T) {
	h := newTestHolder()
	require.False(t, h.PaneOpen())

	h.Update(click(1, tableChrome))
	require.True(t, h.PaneOpen())
	id, ok := h.Pane().RowID()
	require.True(t, ok)
	assert.Equal(t, 0, id)
	assert.Equal(t, "John", h.Pane().Title())
	assert.Contains(t, ansi.Strip(h.View()), "John")

	h.Update(click(1, tableChrome+1))
	assert.False(t, h.PaneOpen(), "two selected rows close the pane")
	_, ok = h.Pane().RowID()
	assert.False(t, ok)

	h.Update(click(1, tableChrome))
	require.True(t, h.PaneOpen(), "back to one selected row")
	id, _ = h.Pane().RowID()
	assert.Equal(t, 1, id, "pane shows the remaining selected row")
	assert.Equal(t, "Doe", h.Pane().Title())
}

func TestTableHolder_SplitsWidth(t *testing.T) {
	h := newTestHolder()
	h.Update(keyMsg("enter"))
	require.True(t, h.PaneOpen())

	assert.Equal(t, 60, h.Table().width)
	assert.Equal(t, 40, h.Pane().width)

	h.Update(keyMsg("enter"))
	assert.False(t, h.PaneOpen())
	assert.Equal(t, 100, h.Table().width)
}

func TestTableHolder_ClickInPaneDoesNotToggle(t *testing.T) {
	h := newTestHolder()
	h.Update(keyMsg("enter"))
	require.True(t, h.PaneOpen())

	h.Update(click(70, tableChrome+1))
	assert.Equal(t, []int{0}, h.Table().Table().Selection().IDs())
}

func TestTableHolder_FocusRotation(t *testing.T) {
	h := newTestHolder()

	h.Update(keyMsg("tab"))
	assert.Equal(t, PanelTable, h.Focused(), "tab without a pane keeps table focus")

	h.Update(keyMsg("enter"))
	h.Update(keyMsg("tab"))
	assert.Equal(t, PanelPane, h.Focused())
	assert.Equal(t, ModeDetail, h.Mode())
	assert.True(t, h.Pane().focused)

	h.Update(keyMsg("j"))
	assert.Equal(t, 0, h.Table().Cursor(), "keys go to the focused pane")

	h.Update(keyMsg("esc"))
	assert.Equal(t, PanelTable, h.Focused())
	assert.False(t, h.Pane().focused)

	h.Update(keyMsg("tab"))
	h.Update(click(1, tableChrome))
	assert.False(t, h.PaneOpen())
	assert.Equal(t, PanelTable, h.Focused(), "closing the pane returns focus to the table")
	assert.Equal(t, ModeBrowse, h.Mode())
}

func TestTableHolder_FilterModeBypassesFocusKeys(t *testing.T) {
	h := newTestHolder()
	h.Update(StartFilterMsg{})
	require.Equal(t, ModeFilter, h.Mode())

	h.Update(keyMsg("tab"))
	h.Update(keyMsg("esc"))
	assert.Equal(t, ModeBrowse, h.Mode())
}

func TestTableHolder_CopyRow(t *testing.T) {
	h := newTestHolder()
	var copied string
	h.Pane().copy = func(s string) error {
		copied = s
		return nil
	}

	_, cmd := h.Update(CopyRowMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Text: "no row to copy", Error: true}, cmd())

	h.Update(keyMsg("enter"))
	_, cmd = h.Update(CopyRowMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, StatusMsg{Text: "copied John"}, cmd())
	assert.JSONEq(t, `{"id": 1, "name": "John"}`, copied)
}
