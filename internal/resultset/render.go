package resultset

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sqlping/sqlping/internal/styles"
)

const maxColumnWidth = 40

// Render formats a table for terminal output with a footer reporting row
// count and elapsed time.
func Render(t *Table, elapsed time.Duration) string {
	if t == nil || len(t.Columns) == 0 {
		return styles.Faint.Render("(no result set)")
	}

	widths := columnWidths(t)

	var b strings.Builder
	b.WriteString(renderRow(t.Columns, widths, styles.TableHeader))
	b.WriteString("\n")
	b.WriteString(styles.TableBorder.Render(separator(widths)))
	b.WriteString("\n")

	for i := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j := range t.Columns {
			cells[j] = t.Cell(i, j)
		}
		b.WriteString(renderRow(cells, widths, styles.TableCell))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d row(s) in %.2fs", t.RowCount(), elapsed.Seconds())
	b.WriteString(styles.Faint.Render(footer))
	return b.String()
}

// RenderSets renders every table of a multi-result-set response, separated by
// blank lines.
func RenderSets(tables []*Table, elapsed time.Duration) string {
	parts := make([]string, 0, len(tables))
	for _, t := range tables {
		parts = append(parts, Render(t, elapsed))
	}
	return strings.Join(parts, "\n\n")
}

func columnWidths(t *Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for i := range t.Rows {
		for j := range t.Columns {
			if w := runewidth.StringWidth(t.Cell(i, j)); w > widths[j] {
				widths[j] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		truncated := runewidth.Truncate(cell, widths[i], "…")
		padded[i] = style.Render(runewidth.FillRight(truncated, widths[i]))
	}
	return strings.Join(padded, styles.Separator.Render(" │ "))
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "─┼─")
}
