package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = "  "

// Table renders rows in aligned columns. Widths are measured in terminal
// cells, so Japanese company names and statements line up.
type Table struct {
	headers  []string
	rows     [][]string
	widths   []int
	right    map[int]bool
	maxWidth int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{headers: headers, widths: widths, right: map[int]bool{}}
}

// AlignRight right-aligns the given 0-based columns (scores, averages).
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

// MaxCellWidth truncates data cells wider than n cells with an ellipsis.
// Zero disables truncation. Call it before adding rows.
func (t *Table) MaxCellWidth(n int) *Table {
	t.maxWidth = n
	return t
}

// AddRow adds a row. Missing values are blank and extra values are dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(values) {
			row[i] = truncate(values[i], t.maxWidth)
		}
		t.widths[i] = max(t.widths[i], visualLen(row[i]))
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder
	t.writeLine(&sb, t.headers, func(s string) string { return StyleHeader.Render(s) })

	rule := make([]string, len(t.widths))
	for i, w := range t.widths {
		rule[i] = strings.Repeat("─", w)
	}
	t.writeLine(&sb, rule, func(s string) string { return StyleMuted.Render(s) })

	for _, row := range t.rows {
		t.writeLine(&sb, row, nil)
	}
	return sb.String()
}

func (t *Table) writeLine(sb *strings.Builder, cells []string, style func(string) string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString(columnGap)
		}
		if t.right[i] {
			cell = padLeft(cell, t.widths[i])
		} else if i < len(cells)-1 {
			cell = pad(cell, t.widths[i])
		}
		if style != nil {
			cell = style(cell)
		}
		sb.WriteString(cell)
	}
	sb.WriteString("\n")
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to w.
func (t *Table) Print(w io.Writer) {
	fmt.Fprint(w, t.Render())
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// visualLen is the terminal cell width of s, ignoring ANSI sequences and
// counting East Asian wide characters as two cells.
func visualLen(s string) int {
	return lipgloss.Width(s)
}

// pad right-pads s to width cells.
func pad(s string, width int) string {
	if n := visualLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft left-pads s to width cells.
func padLeft(s string, width int) string {
	if n := visualLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// truncate shortens plain text s to at most width cells, ending in "…".
func truncate(s string, width int) string {
	if width <= 0 || visualLen(s) <= width {
		return s
	}
	var sb strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String() + "…"
}
