package cli

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiPattern matches SGR escape sequences, which take no columns on screen.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Alignment controls how a cell is padded within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table lays out rows in aligned columns under a dashed header rule.
// Cells may contain ANSI colour escapes; they do not count towards width.
type Table struct {
	headers []string
	align   map[int]Alignment
	rows    [][]string
	gap     int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		align:   make(map[int]Alignment),
		gap:     2,
	}
}

// AlignColumn sets the alignment of column col.
func (t *Table) AlignColumn(col int, a Alignment) *Table {
	t.align[col] = a
	return t
}

// AddRow appends a row, padding or truncating it to the header count.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render returns the formatted table, or "" when there are no headers.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleWidth(cell))
		}
	}

	var b strings.Builder
	t.writeLine(&b, t.headers, widths)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	t.writeLine(&b, rule, widths)

	for _, row := range t.rows {
		t.writeLine(&b, row, widths)
	}
	return b.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}

func (t *Table) writeLine(b *strings.Builder, cells []string, widths []int) {
	sep := strings.Repeat(" ", t.gap)
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i], t.align[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(parts, sep), " "))
	b.WriteByte('\n')
}

// pad fills s with spaces up to width visible columns.
func pad(s string, width int, a Alignment) string {
	fill := width - visibleWidth(s)
	if fill <= 0 {
		return s
	}
	if a == AlignRight {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

// visibleWidth counts the runes of s that are not part of an escape sequence.
func visibleWidth(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}
