package ui

import (
	"testing"

	"dealtable/internal/datatable"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	m := NewAppModel(TableHolderOptions{
		Rows:          testRows(),
		Columns:       testColumns(),
		Filter:        datatable.DefaultFilterOptions(),
		MarkdownStyle: "notty",
	})
	a := m.AsTeaModel()
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	return m, a
}

// press sends a single key through the app.
func press(a tea.Model, k string) tea.Cmd {
	_, cmd := a.Update(keyMsg(k))
	return cmd
}

func TestApp_StartsOnTableHolderRoute(t *testing.T) {
	m, a := newTestApp(t)
	assert.Equal(t, "TableHolder", m.Router.CurrentName())
	require.NotNil(t, m.Holder())
	assert.Equal(t, ModeBrowse, m.Mode())

	out := ansi.Strip(a.View())
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "[Browse]")
}

func TestApp_WindowSizeReservesStatusLine(t *testing.T) {
	m, _ := newTestApp(t)
	assert.Equal(t, 23, m.Holder().Table().height)
}

func TestApp_SelectionScenario(t *testing.T) {
	m, a := newTestApp(t)

	a.Update(click(1, tableChrome))
	assert.True(t, m.Holder().PaneOpen(), "one row selected opens the pane")

	a.Update(click(1, tableChrome+1))
	assert.False(t, m.Holder().PaneOpen(), "two rows selected close the pane")
}

func TestApp_QuitKeys(t *testing.T) {
	_, a := newTestApp(t)

	cmd := press(a, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	cmd = press(a, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	press(a, " ")
	cmd = press(a, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_TypingFilterDoesNotTriggerBindings(t *testing.T) {
	m, a := newTestApp(t)

	press(a, "/")
	require.Equal(t, ModeFilter, m.Mode())

	for _, k := range []string{"q", "?", " "} {
		press(a, k)
		assert.Equal(t, ModeFilter, m.Mode(), "key %q left the filter", k)
	}
	assert.Equal(t, "q? ", m.Holder().Table().Table().FilterKey())
	assert.False(t, m.KeyHandler.LeaderWaiting)
	assert.Contains(t, ansi.Strip(a.View()), "esc clear filter")

	cmd := press(a, "ctrl+c")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_LeaderFilterCommands(t *testing.T) {
	m, a := newTestApp(t)

	press(a, " ")
	assert.Contains(t, ansi.Strip(a.View()), "Filter rows")
	press(a, "f")
	assert.Contains(t, ansi.Strip(a.View()), "Case sensitivity")
	cmd := press(a, "c")
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.True(t, m.Holder().Table().Table().Options().CaseSensitive)

	press(a, " ")
	cmd = press(a, "/")
	require.NotNil(t, cmd)
	a.Update(cmd())
	assert.Equal(t, ModeFilter, m.Mode())
}

func TestApp_StatusMessages(t *testing.T) {
	m, a := newTestApp(t)

	a.Update(StatusMsg{Text: "match mode: exact"})
	assert.Contains(t, ansi.Strip(a.View()), "match mode: exact")

	press(a, "j")
	assert.Equal(t, StatusMsg{}, m.Status, "next key clears the status")
}

func TestApp_HelpOverlay(t *testing.T) {
	m, a := newTestApp(t)

	cmd := press(a, "?")
	require.NotNil(t, cmd)
	a.Update(cmd())
	require.Equal(t, 1, m.Overlays.Len())
	out := ansi.Strip(a.View())
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "Quit")

	press(a, "j")
	assert.Equal(t, 0, m.Holder().Table().Cursor(), "overlay swallows keys")

	press(a, "esc")
	assert.Equal(t, 0, m.Overlays.Len())

	a.Update(ToggleHelpMsg{})
	a.Update(ToggleHelpMsg{})
	assert.Equal(t, 0, m.Overlays.Len(), "help toggles")
}

func TestApp_OverlayBlocksClicks(t *testing.T) {
	m, a := newTestApp(t)

	a.Update(ToggleHelpMsg{})
	require.Equal(t, 1, m.Overlays.Len())
	a.Update(click(1, tableChrome))
	assert.Equal(t, 0, m.Holder().Table().Table().Selection().Len())
	assert.False(t, m.Holder().PaneOpen())

	a.Update(ToggleHelpMsg{})
	a.Update(click(1, tableChrome))
	assert.True(t, m.Holder().PaneOpen(), "clicks reach the table once the overlay closes")
}

func TestApp_CopyFromFocusedPane(t *testing.T) {
	m, a := newTestApp(t)
	var copied string
	m.Holder().Pane().copy = func(s string) error {
		copied = s
		return nil
	}

	press(a, "enter")
	press(a, "tab")
	require.Equal(t, ModeDetail, m.Mode())

	press(a, " ")
	assert.Contains(t, ansi.Strip(a.View()), "Copy row")
	cmd := press(a, "y")
	require.NotNil(t, cmd)
	_, cmd = a.Update(cmd())
	require.NotNil(t, cmd)
	a.Update(cmd())

	assert.JSONEq(t, `{"id": 1, "name": "John"}`, copied)
	assert.Contains(t, ansi.Strip(a.View()), "copied John")
}
