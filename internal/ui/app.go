package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootPath is the path of the table holder route.
const RootPath = "/"

// AppModel is the root model: it owns the router, the keybind system, the
// overlays and the status line, and forwards everything else to the
// routed view.
type AppModel struct {
	Router     *Router
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Status     StatusMsg
	Verbose    bool
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// newAppKeybinds registers the application key bindings.
func newAppKeybinds() *KeybindRegistry {
	browse := []AppMode{ModeBrowse, ModeDetail}
	reg := NewKeybindRegistry()
	reg.BindForMode("q", tea.Quit, "Quit", browse)
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.BindForMode("?", func() tea.Msg { return ToggleHelpMsg{} }, "Help", browse)
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.BindForMode("SPC /", func() tea.Msg { return StartFilterMsg{} }, "Filter rows", browse)
	reg.BindForMode("SPC f c", func() tea.Msg { return ToggleCaseMsg{} }, "Case sensitivity", browse)
	reg.BindForMode("SPC f m", func() tea.Msg { return CycleMatchMsg{} }, "Match mode", browse)
	reg.BindForMode("SPC y", func() tea.Msg { return CopyRowMsg{} }, "Copy row", []AppMode{ModeDetail})
	return reg
}

// TableHolderRoute returns the "/" route mounting a table holder over opts.
func TableHolderRoute(opts TableHolderOptions) Route {
	return Route{
		Path: RootPath,
		Name: "TableHolder",
		New:  func() View { return NewTableHolderView(opts) },
	}
}

// NewAppModel creates the root model and navigates to RootPath.
func NewAppModel(opts TableHolderOptions) *AppModel {
	m := &AppModel{
		Router:     NewRouter(TableHolderRoute(opts)),
		KeyHandler: NewKeyHandler(newAppKeybinds()),
	}
	if _, err := m.Router.Navigate(RootPath); err != nil {
		// The root route is registered above.
		panic(err)
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the interaction mode of the routed view.
func (m *AppModel) Mode() AppMode {
	if v, ok := m.Router.Current().(moder); ok {
		return v.Mode()
	}
	return ModeBrowse
}

// Holder returns the routed table holder, or nil on another route.
func (m *AppModel) Holder() *TableHolderView {
	h, _ := m.Router.Current().(*TableHolderView)
	return h
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if v := a.Router.Current(); v != nil {
		return v.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Reserve the status line.
		return a, a.Router.Update(tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-1, 1)})
	case StatusMsg:
		a.Status = msg
		if msg.Error {
			log.Printf("status: %s", msg.Text)
		}
		return a, nil
	case RowToggledMsg:
		if a.Verbose {
			log.Printf("toggle row %d: selected=%v pane_open=%v", msg.ID, msg.Selected, msg.PaneOpen)
		}
		return a, nil
	case ToggleHelpMsg:
		if _, ok := a.Overlays.Pop(); !ok {
			a.Overlays.Push(newHelpOverlay(NewKeyMap(a.KeyHandler.Registry, a.KeyHandler, a.Mode())))
		}
		return a, nil
	case tea.MouseMsg:
		// Views behind an overlay take no clicks.
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		a.Status = StatusMsg{}
		// While typing a filter only ctrl+c escapes the input.
		if a.Mode() == ModeFilter {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			break
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}
	return a, a.Router.Update(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
		}
		return top.View.View()
	}
	base := ""
	if v := a.Router.Current(); v != nil {
		base = v.View()
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode()); help != "" {
		return base + "\n" + help
	}
	return base + "\n" + a.statusLine()
}

func (a *appModelAdapter) statusLine() string {
	if a.Status.Text != "" {
		if a.Status.Error {
			return Styles.Error.Render(a.Status.Text)
		}
		return Styles.Status.Render(a.Status.Text)
	}
	hint := "SPC commands · / filter · enter select · tab focus · ? help"
	if a.Mode() == ModeFilter {
		hint = "enter keep filter · esc clear filter"
	}
	return Styles.Status.Render("[" + a.Mode().String() + "] " + hint)
}
