package goldmark

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	extast "github.com/yuin/goldmark/extension/ast"
)

// renderTable lays a table out in columns sized to the widest cell. Cell
// text is unstyled so that runewidth sees only printable characters.
func (r *ansiRenderer) renderTable(table *extast.Table, source []byte, buf *bytes.Buffer) {
	var rows [][]string
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		var row []string
		for cell := c.FirstChild(); cell != nil; cell = cell.NextSibling() {
			row = append(row, plainInline(cell, source))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return
	}

	cols := len(table.Alignments)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	sep := r.muted.Render(" │ ")
	_, hasHeader := table.FirstChild().(*extast.TableHeader)
	for ri, row := range rows {
		cells := make([]string, cols)
		for i := range cols {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = align(cell, widths[i], alignment(table, i))
			if ri == 0 && hasHeader {
				cells[i] = r.bold.Render(cells[i])
			}
		}
		buf.WriteString(strings.TrimRight(strings.Join(cells, sep), " "))
		buf.WriteString("\n")
		if ri == 0 && hasHeader {
			rules := make([]string, cols)
			for i, w := range widths {
				rules[i] = strings.Repeat("─", w)
			}
			buf.WriteString(r.muted.Render(strings.Join(rules, "─┼─")))
			buf.WriteString("\n")
		}
	}
}

func alignment(table *extast.Table, col int) extast.Alignment {
	if col < len(table.Alignments) {
		return table.Alignments[col]
	}
	return extast.AlignNone
}

func align(s string, width int, a extast.Alignment) string {
	switch a {
	case extast.AlignRight:
		return runewidth.FillLeft(s, width)
	case extast.AlignCenter:
		pad := width - runewidth.StringWidth(s)
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return runewidth.FillRight(s, width)
	}
}
