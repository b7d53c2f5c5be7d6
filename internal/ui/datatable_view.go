package ui

import (
	"context"
	"fmt"
	"strings"

	"dealtable/internal/datatable"
	"dealtable/internal/schema"
	"dealtable/internal/telemetry"
	"dealtable/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// tableChrome is the number of lines above the first row:
	// filter bar, header, separator.
	tableChrome    = 3
	maxColumnWidth = 28
	columnGap      = "  "
	rowPrefixWidth = 2
)

var matchCycle = []datatable.MatchMode{
	datatable.MatchContains,
	datatable.MatchPrefix,
	datatable.MatchExact,
	datatable.MatchFuzzy,
}

// DataTableView renders a datatable.Table with one line per visible row.
// Clicking a row or pressing enter/x on it toggles its selection.
type DataTableView struct {
	table     *datatable.Table
	cursor    int // index into the visible rows
	offset    int // first visible row drawn
	width     int
	height    int
	widths    []int
	filter    textinput.Model
	filtering bool
	ctx       context.Context
}

// Ensure DataTableView implements View.
var _ View = (*DataTableView)(nil)

// NewDataTableView creates a view over table.
func NewDataTableView(table *datatable.Table) *DataTableView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter rows"
	ti.SetValue(table.FilterKey())
	return &DataTableView{
		table:  table,
		width:  80,
		height: 20,
		widths: columnWidths(table.Rows(), table.Columns()),
		filter: ti,
		ctx:    context.Background(),
	}
}

// columnWidths sizes each column to its widest cell across all rows, so
// widths stay stable while filtering.
func columnWidths(rows []datatable.Row, cols schema.Schema) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = textutil.Width(c.Title())
		for _, row := range rows {
			if w := textutil.Width(textutil.SingleLine(c.Format(row))); w > widths[i] {
				widths[i] = w
			}
		}
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

// Table returns the underlying table state.
func (d *DataTableView) Table() *datatable.Table { return d.table }

// PaneOpen reports whether exactly one row is selected.
func (d *DataTableView) PaneOpen() bool { return d.table.PaneOpen() }

// Cursor returns the cursor position among the visible rows.
func (d *DataTableView) Cursor() int { return d.cursor }

// Filtering reports whether the filter input has focus.
func (d *DataTableView) Filtering() bool { return d.filtering }

// SetSize sets the drawing area.
func (d *DataTableView) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.filter.Width = max(width-textutil.Width(d.filter.Prompt)-1, 1)
	d.scrollToCursor()
}

func (d *DataTableView) bodyHeight() int {
	return max(d.height-tableChrome, 1)
}

// Init implements View.
func (d *DataTableView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DataTableView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return d, nil
	case StartFilterMsg:
		return d, d.startFilter()
	case ToggleCaseMsg:
		opts := d.table.Options()
		opts.CaseSensitive = !opts.CaseSensitive
		d.setOptions(opts)
		state := "off"
		if opts.CaseSensitive {
			state = "on"
		}
		return d, statusCmd("case-sensitive filter "+state, false)
	case CycleMatchMsg:
		opts := d.table.Options()
		opts.Match = nextMatchMode(opts.Match)
		d.setOptions(opts)
		return d, statusCmd("match mode: "+string(opts.Match), false)
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	case tea.KeyMsg:
		if d.filtering {
			return d, d.updateFilter(msg)
		}
		return d, d.handleKey(msg)
	}
	if d.filtering {
		var cmd tea.Cmd
		d.filter, cmd = d.filter.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DataTableView) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(d.table.Visible())
	switch msg.String() {
	case "j", "down":
		if d.cursor < n-1 {
			d.cursor++
		}
	case "k", "up":
		if d.cursor > 0 {
			d.cursor--
		}
	case "g", "home":
		d.cursor = 0
	case "G", "end":
		d.cursor = max(n-1, 0)
	case "enter", "x":
		return d.toggle(d.cursor)
	case "/":
		return d.startFilter()
	}
	d.scrollToCursor()
	return nil
}

// handleMouse toggles the row under a left click. Y is relative to the
// top of this view.
func (d *DataTableView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.X < 0 || msg.X >= d.width {
		return nil
	}
	line := msg.Y - tableChrome
	if line < 0 || line >= d.bodyHeight() {
		return nil
	}
	i := d.offset + line
	if i >= len(d.table.Visible()) {
		return nil
	}
	d.cursor = i
	return d.toggle(i)
}

// toggle flips the selection of the i-th visible row, the equivalent of a click.
func (d *DataTableView) toggle(i int) tea.Cmd {
	_, id, ok := d.table.VisibleRow(i)
	if !ok {
		return nil
	}
	open, err := d.table.ToggleVisible(i)
	if err != nil {
		return statusCmd(err.Error(), true)
	}
	telemetry.RecordToggle(d.ctx, id, d.state())
	selected := d.table.Selected(id)
	return func() tea.Msg {
		return RowToggledMsg{ID: id, Selected: selected, PaneOpen: open}
	}
}

func (d *DataTableView) startFilter() tea.Cmd {
	d.filtering = true
	d.filter.SetValue(d.table.FilterKey())
	d.filter.CursorEnd()
	return d.filter.Focus()
}

func (d *DataTableView) stopFilter() {
	d.filtering = false
	d.filter.Blur()
}

// updateFilter feeds a key to the filter input: enter keeps the filter,
// esc clears it, anything else edits it live.
func (d *DataTableView) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		d.stopFilter()
		return nil
	case "esc":
		d.filter.SetValue("")
		d.stopFilter()
		d.applyFilter()
		return nil
	}
	var cmd tea.Cmd
	d.filter, cmd = d.filter.Update(msg)
	d.applyFilter()
	return cmd
}

func (d *DataTableView) applyFilter() {
	key := d.filter.Value()
	if key == d.table.FilterKey() {
		return
	}
	d.table.SetFilter(key)
	d.afterRefilter()
}

func (d *DataTableView) setOptions(opts datatable.FilterOptions) {
	d.table.SetOptions(opts)
	d.afterRefilter()
}

func (d *DataTableView) afterRefilter() {
	if n := len(d.table.Visible()); d.cursor >= n {
		d.cursor = max(n-1, 0)
	}
	d.scrollToCursor()
	telemetry.RecordFilter(d.ctx, d.state())
}

func (d *DataTableView) scrollToCursor() {
	body := d.bodyHeight()
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+body {
		d.offset = d.cursor - body + 1
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

func (d *DataTableView) state() telemetry.TableState {
	return telemetry.TableState{
		FilterKey: d.table.FilterKey(),
		Visible:   len(d.table.Visible()),
		Selected:  d.table.Selection().Len(),
		PaneOpen:  d.table.PaneOpen(),
	}
}

func nextMatchMode(m datatable.MatchMode) datatable.MatchMode {
	for i, mode := range matchCycle {
		if mode == m {
			return matchCycle[(i+1)%len(matchCycle)]
		}
	}
	return matchCycle[0]
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isErr} }
}

// Mode implements moder.
func (d *DataTableView) Mode() AppMode {
	if d.filtering {
		return ModeFilter
	}
	return ModeBrowse
}

// View implements View.
func (d *DataTableView) View() string {
	var b strings.Builder
	b.WriteString(d.filterBar() + "\n")
	b.WriteString(Styles.Header.Render(d.fit(d.headerLine())) + "\n")
	b.WriteString(Styles.Muted.Render(d.fit(strings.Repeat("─", d.lineWidth()))))

	visible := d.table.Visible()
	if len(visible) == 0 {
		b.WriteString("\n" + Styles.Empty.Render(d.fit("  (no matching rows)")))
		return b.String()
	}
	end := min(d.offset+d.bodyHeight(), len(visible))
	for i := d.offset; i < end; i++ {
		b.WriteString("\n" + d.rowLine(i))
	}
	return b.String()
}

func (d *DataTableView) filterBar() string {
	if d.filtering {
		return d.filter.View()
	}
	total := len(d.table.Rows())
	shown := len(d.table.Visible())
	opts := d.table.Options()
	mode := string(opts.Match)
	if mode == "" {
		mode = string(datatable.MatchContains)
	}
	// Fuzzy matching ignores case.
	if opts.CaseSensitive && opts.Match != datatable.MatchFuzzy {
		mode += ", case-sensitive"
	}
	if key := d.table.FilterKey(); key != "" {
		return Styles.Title.Render(d.fit(fmt.Sprintf("/ %s  %d of %d rows (%s)", key, shown, total, mode)))
	}
	return Styles.Muted.Render(d.fit(fmt.Sprintf("/ to filter · %d rows (%s)", total, mode)))
}

func (d *DataTableView) lineWidth() int {
	w := rowPrefixWidth
	for i, cw := range d.widths {
		if i > 0 {
			w += len(columnGap)
		}
		w += cw
	}
	return w
}

func (d *DataTableView) fit(s string) string {
	return textutil.Truncate(s, d.width)
}

func (d *DataTableView) headerLine() string {
	cells := make([]string, len(d.widths))
	for i, c := range d.table.Columns() {
		cells[i] = d.pad(c, c.Title(), d.widths[i])
	}
	return strings.Repeat(" ", rowPrefixWidth) + strings.Join(cells, columnGap)
}

func (d *DataTableView) pad(c schema.Column, s string, width int) string {
	if c.Type == schema.TypeInt || c.Type == schema.TypeDecimal {
		return textutil.PadLeft(s, width)
	}
	return textutil.PadRight(s, width)
}

func (d *DataTableView) rowLine(i int) string {
	row, id, _ := d.table.VisibleRow(i)
	selected := d.table.Selected(id)

	prefix := []rune("  ")
	if i == d.cursor {
		prefix[0] = '▸'
	}
	if selected {
		prefix[1] = '●'
	}

	cells := make([]string, len(d.widths))
	for ci, c := range d.table.Columns() {
		cells[ci] = d.pad(c, textutil.SingleLine(c.Format(row)), d.widths[ci])
	}
	line := d.fit(string(prefix) + strings.Join(cells, columnGap))

	switch {
	case i == d.cursor:
		return Styles.Cursor.Render(line)
	case selected:
		return Styles.Selected.Render(line)
	default:
		return Styles.Cell.Render(line)
	}
}
