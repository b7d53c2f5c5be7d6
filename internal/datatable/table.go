// Package datatable holds the filter and selection state of a data table,
// independent of any rendering. Rows are identified by their index in the
// supplied row list; the detail pane is open iff exactly one row is selected.
package datatable

import (
	"errors"
	"fmt"

	"dealtable/internal/schema"
)

// ErrNoSuchRow is returned when a toggle addresses a row that does not exist.
var ErrNoSuchRow = errors.New("no such row")

// Row is one record of the table, keyed by field name.
type Row = map[string]any

// Table is the state of a mounted data table.
// Rows and columns are fixed for the lifetime of the table; the selection
// changes only through Toggle and ToggleVisible.
type Table struct {
	rows    []Row
	columns schema.Schema
	key     string
	opts    FilterOptions
	visible []int
	sel     Selection
}

// New mounts a table over rows and columns with an empty filter and selection.
func New(rows []Row, columns schema.Schema, opts FilterOptions) *Table {
	t := &Table{rows: rows, columns: columns, opts: opts}
	t.refilter()
	return t
}

func (t *Table) refilter() {
	t.visible = FilteredRows(t.rows, t.columns, t.key, t.opts)
}

// Rows returns the full row list.
func (t *Table) Rows() []Row { return t.rows }

// Columns returns the column schema.
func (t *Table) Columns() schema.Schema { return t.columns }

// FilterKey returns the current filter key.
func (t *Table) FilterKey() string { return t.key }

// Options returns the current filter options.
func (t *Table) Options() FilterOptions { return t.opts }

// SetFilter changes the filter key and recomputes the visible rows.
// The selection is left untouched.
func (t *Table) SetFilter(key string) {
	if key == t.key {
		return
	}
	t.key = key
	t.refilter()
}

// SetOptions changes the filter options and recomputes the visible rows.
func (t *Table) SetOptions(opts FilterOptions) {
	t.opts = opts
	t.refilter()
}

// Visible returns the identities of the visible rows in display order.
func (t *Table) Visible() []int { return t.visible }

// VisibleRow returns the i-th visible row and its identity.
func (t *Table) VisibleRow(i int) (Row, int, bool) {
	if i < 0 || i >= len(t.visible) {
		return nil, 0, false
	}
	id := t.visible[i]
	return t.rows[id], id, true
}

// Toggle flips the selection of the row with identity id and returns the
// resulting pane-open state.
func (t *Table) Toggle(id int) (bool, error) {
	if id < 0 || id >= len(t.rows) {
		return t.PaneOpen(), fmt.Errorf("toggle row %d: %w", id, ErrNoSuchRow)
	}
	t.sel.Toggle(id)
	return t.PaneOpen(), nil
}

// ToggleVisible flips the selection of the i-th visible row, the equivalent
// of clicking it, and returns the resulting pane-open state.
func (t *Table) ToggleVisible(i int) (bool, error) {
	if i < 0 || i >= len(t.visible) {
		return t.PaneOpen(), fmt.Errorf("toggle visible row %d: %w", i, ErrNoSuchRow)
	}
	return t.Toggle(t.visible[i])
}

// Selected reports whether the row with identity id is selected.
func (t *Table) Selected(id int) bool { return t.sel.Contains(id) }

// Selection returns the current selection.
func (t *Table) Selection() Selection { return t.sel }

// PaneOpen reports whether exactly one row is selected.
func (t *Table) PaneOpen() bool { return IsPaneOpen(t.sel) }

// PaneRow returns the row shown in the detail pane, if the pane is open.
func (t *Table) PaneRow() (Row, int, bool) {
	id, ok := t.sel.Single()
	if !ok {
		return nil, 0, false
	}
	return t.rows[id], id, true
}
