// Package resultset buffers rows returned by a query into an ordered,
// vendor-neutral table.
package resultset

import (
	"database/sql"
	"fmt"
)

// Table holds one result set: ordered columns, ordered rows of scanned
// values. Built fresh per call and never retained by the connector.
type Table struct {
	Columns []string
	Types   []string
	Rows    [][]any
}

// RowCount returns the number of buffered rows.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the display string for a cell, "NULL" for nil values.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return formatValue(t.Rows[row][col])
}

func formatValue(val any) string {
	if val == nil {
		return "NULL"
	}
	switch v := val.(type) {
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ReadAll drains rows into a Table. The caller keeps ownership of rows and
// closes them; ReadAll only iterates the current result set.
func ReadAll(rows *sql.Rows) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns: %w", err)
	}

	t := &Table{Columns: columns}

	if colTypes, err := rows.ColumnTypes(); err == nil {
		for _, ct := range colTypes {
			t.Types = append(t.Types, ct.DatabaseTypeName())
		}
	}

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row := make([]any, len(columns))
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				row[i] = string(b)
				continue
			}
			row[i] = val
		}
		t.Rows = append(t.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return t, nil
}

// ReadAllSets drains every result set of a multi-statement query into one
// Table per set.
func ReadAllSets(rows *sql.Rows) ([]*Table, error) {
	var tables []*Table
	for {
		t, err := ReadAll(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("advancing result sets: %w", err)
	}
	return tables, nil
}
