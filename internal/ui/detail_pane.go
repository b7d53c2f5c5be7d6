package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"dealtable/internal/datatable"
	"dealtable/internal/schema"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// DetailPane shows every column of the single selected row.
type DetailPane struct {
	columns  schema.Schema
	row      datatable.Row
	id       int
	hasRow   bool
	focused  bool
	width    int
	height   int
	viewport viewport.Model
	renderer *glamour.TermRenderer
	wrap     int    // word wrap the renderer was built for
	style    string // glamour standard style; "" or "auto" detects

	// copy writes text to the clipboard; replaced in tests.
	copy func(string) error
}

// Ensure DetailPane implements View.
var _ View = (*DetailPane)(nil)

// NewDetailPane creates an empty pane for rows of columns.
func NewDetailPane(columns schema.Schema) *DetailPane {
	return &DetailPane{
		columns:  columns,
		width:    40,
		height:   20,
		viewport: viewport.New(36, 18),
		copy:     clipboard.WriteAll,
	}
}

// SetRow shows row (identity id). Re-setting the same row keeps the scroll position.
func (p *DetailPane) SetRow(row datatable.Row, id int) {
	same := p.hasRow && p.id == id
	p.row, p.id, p.hasRow = row, id, true
	p.refresh()
	if !same {
		p.viewport.GotoTop()
	}
}

// Clear empties the pane.
func (p *DetailPane) Clear() {
	p.row, p.id, p.hasRow = nil, 0, false
	p.viewport.SetContent("")
}

// RowID returns the identity of the shown row.
func (p *DetailPane) RowID() (int, bool) {
	return p.id, p.hasRow
}

// SetMarkdownStyle selects the glamour style ("dark", "light", "notty" or "auto").
func (p *DetailPane) SetMarkdownStyle(style string) {
	p.style = style
	p.renderer = nil
	p.refresh()
}

// SetFocused marks the pane as focused; only a focused pane scrolls.
func (p *DetailPane) SetFocused(f bool) {
	p.focused = f
}

// SetSize sets the outer size of the pane including its border.
func (p *DetailPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	frameW, frameH := Styles.Pane.GetFrameSize()
	p.viewport.Width = max(width-frameW, 1)
	p.viewport.Height = max(height-frameH-1, 1) // title line
	p.refresh()
}

func (p *DetailPane) refresh() {
	if !p.hasRow {
		return
	}
	p.viewport.SetContent(p.render())
}

// render returns the pane body: markdown through glamour, or plain
// "Label: value" lines when glamour is unavailable.
func (p *DetailPane) render() string {
	md := p.markdown()
	if r := p.termRenderer(); r != nil {
		if out, err := r.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return p.plain()
}

func (p *DetailPane) termRenderer() *glamour.TermRenderer {
	wrap := p.viewport.Width
	if p.renderer != nil && p.wrap == wrap {
		return p.renderer
	}
	styleOpt := glamour.WithAutoStyle()
	if p.style != "" && p.style != "auto" {
		styleOpt = glamour.WithStandardStyle(p.style)
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil
	}
	p.renderer, p.wrap = r, wrap
	return r
}

func (p *DetailPane) markdown() string {
	var b strings.Builder
	for _, c := range p.columns {
		fmt.Fprintf(&b, "**%s**  \n%s\n\n", escapeMarkdown(c.Title()), escapeMarkdown(cellOrDash(c, p.row)))
	}
	return b.String()
}

func (p *DetailPane) plain() string {
	var b strings.Builder
	for i, c := range p.columns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Header.Render(c.Title()+":") + " " + cellOrDash(c, p.row))
	}
	return b.String()
}

// cellOrDash renders missing or empty values as "—".
func cellOrDash(c schema.Column, row datatable.Row) string {
	if s := c.Format(row); s != "" {
		return s
	}
	return "—"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "#", `\#`, "<", `\<`,
	"|", `\|`, "~", `\~`,
)

// escapeMarkdown makes s render as literal paragraph text: inline markers
// are escaped and no line may start a block (list, quote, rule, setext
// underline).
func escapeMarkdown(s string) string {
	lines := strings.Split(markdownEscaper.Replace(s), "\n")
	for i, line := range lines {
		lines[i] = escapeLineStart(strings.TrimLeft(line, " \t"))
	}
	return strings.Join(lines, "\n")
}

func escapeLineStart(line string) string {
	if line == "" {
		return line
	}
	switch line[0] {
	case '-', '+', '=', '>':
		return `\` + line
	}
	// Ordered list markers: up to nine digits then '.' or ')'.
	digits := 0
	for digits < len(line) && digits < 10 && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits <= 9 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return line[:digits] + `\` + line[digits:]
	}
	return line
}

// Title returns the pane heading: the first non-empty string cell, or "Row N".
func (p *DetailPane) Title() string {
	for _, c := range p.columns {
		if c.Type != schema.TypeString {
			continue
		}
		if s := c.Format(p.row); s != "" {
			return s
		}
	}
	return fmt.Sprintf("Row %d", p.id+1)
}

// Init implements View.
func (p *DetailPane) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *DetailPane) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case CopyRowMsg:
		return p, p.copyRow()
	case tea.KeyMsg:
		if msg.String() == "y" {
			return p, p.copyRow()
		}
		if !p.focused {
			return p, nil
		}
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}
	return p, nil
}

// copyRow writes the shown row as indented JSON to the clipboard.
func (p *DetailPane) copyRow() tea.Cmd {
	if !p.hasRow {
		return statusCmd("no row to copy", true)
	}
	data, err := json.MarshalIndent(p.row, "", "  ")
	if err != nil {
		return statusCmd(fmt.Sprintf("copy row: %v", err), true)
	}
	if err := p.copy(string(data)); err != nil {
		return statusCmd("clipboard unavailable", true)
	}
	return statusCmd(fmt.Sprintf("copied %s", p.Title()), false)
}

// View implements View.
func (p *DetailPane) View() string {
	box := Styles.PaneDim
	if p.focused {
		box = Styles.Pane
	}
	frameW, frameH := box.GetFrameSize()
	box = box.Width(max(p.width-frameW+box.GetHorizontalPadding(), 1)).
		Height(max(p.height-frameH+box.GetVerticalPadding(), 1))
	if !p.hasRow {
		return box.Render(Styles.Empty.Render("no row selected"))
	}
	return box.Render(Styles.Title.Render(p.Title()) + "\n" + p.viewport.View())
}
