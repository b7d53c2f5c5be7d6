package ui

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) move(to string) string {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

// Next advances focus to the next panel in order and returns its ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.move(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
}

// Prev moves focus to the previous panel in order and returns its ID.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.indexOf(f.Current) - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	return f.move(f.Order[i])
}

// SetFocus focuses the given panel. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}
