package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a modal view with the keys that dismiss it.
type Overlay struct {
	View    View
	Dismiss []string // e.g. "esc", "?"
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	for _, k := range o.Dismiss {
		if k == key {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays; the topmost receives input first.
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay and stores the view it returns.
// Reports false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}

// helpOverlay lists every binding of a mode in full.
type helpOverlay struct {
	keys help.KeyMap
}

func newHelpOverlay(keys help.KeyMap) Overlay {
	return Overlay{View: &helpOverlay{keys: keys}, Dismiss: []string{"esc", "?", "q"}}
}

func (o *helpOverlay) Init() tea.Cmd { return nil }

func (o *helpOverlay) Update(tea.Msg) (View, tea.Cmd) { return o, nil }

func (o *helpOverlay) View() string {
	h := newHelpModel()
	h.ShowAll = true
	return Styles.Overlay.Render(Styles.Title.Render("Keys") + "\n\n" + h.View(o.keys))
}
