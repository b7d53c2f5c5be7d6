package datatable

import "sort"

// Selection is the set of selected row identities.
// The zero value is an empty selection ready to use.
type Selection struct {
	ids map[int]struct{}
}

// Toggle adds id if absent and removes it if present.
// Reports whether id is selected afterwards.
func (s *Selection) Toggle(id int) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	s.ids[id] = struct{}{}
	return true
}

// Contains reports whether id is selected.
func (s Selection) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected rows.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected identities in ascending order.
func (s Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Single returns the only selected id when exactly one row is selected.
func (s Selection) Single() (int, bool) {
	if len(s.ids) != 1 {
		return 0, false
	}
	for id := range s.ids {
		return id, true
	}
	return 0, false
}

// IsPaneOpen reports whether the detail pane is open for sel:
// true iff exactly one row is selected.
func IsPaneOpen(sel Selection) bool {
	return sel.Len() == 1
}
