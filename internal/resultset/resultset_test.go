package resultset

import (
	"strings"
	"testing"
	"time"
)

func sampleTable() *Table {
	return &Table{
		Columns: []string{"id", "name"},
		Rows: [][]any{
			{int64(1), "ada"},
			{int64(2), nil},
		},
	}
}

func TestCell(t *testing.T) {
	tbl := sampleTable()

	tests := []struct {
		name string
		row  int
		col  int
		want string
	}{
		{"Int value", 0, 0, "1"},
		{"String value", 0, 1, "ada"},
		{"Nil renders as NULL", 1, 1, "NULL"},
		{"Out of range row", 5, 0, ""},
		{"Out of range column", 0, 5, ""},
		{"Negative index", -1, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tbl.Cell(tt.row, tt.col); got != tt.want {
				t.Errorf("Cell(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestRowCount(t *testing.T) {
	if got := sampleTable().RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}

	var nilTable *Table
	if got := nilTable.RowCount(); got != 0 {
		t.Errorf("nil table RowCount() = %d, want 0", got)
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleTable(), 120*time.Millisecond)

	for _, frag := range []string{"id", "name", "ada", "NULL", "2 row(s)"} {
		if !strings.Contains(out, frag) {
			t.Errorf("Render() missing %q in:\n%s", frag, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(&Table{}, 0)
	if !strings.Contains(out, "no result set") {
		t.Errorf("Render() of empty table = %q", out)
	}

	out = Render(nil, 0)
	if !strings.Contains(out, "no result set") {
		t.Errorf("Render() of nil table = %q", out)
	}
}

func TestRenderTruncatesWideCells(t *testing.T) {
	tbl := &Table{
		Columns: []string{"v"},
		Rows:    [][]any{{strings.Repeat("x", 200)}},
	}

	out := Render(tbl, 0)
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > 80 {
			t.Errorf("line longer than expected after truncation: %d runes", len([]rune(line)))
		}
	}
}

func TestRenderSets(t *testing.T) {
	out := RenderSets([]*Table{sampleTable(), sampleTable()}, 0)
	if got := strings.Count(out, "2 row(s)"); got != 2 {
		t.Errorf("RenderSets() rendered %d footers, want 2", got)
	}
}
