package connector

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sqlping/sqlping/internal/resultset"
)

// Base carries the state shared by every vendor connector and implements
// the one-shot operation cycle. Vendor types embed *Base and contribute
// their driver registration.
type Base struct {
	Name   string
	Vendor string
	Driver string
	DSN    string

	params  []Param
	records []Record
}

func newBase(name, vendor, driver, dsn string) *Base {
	return &Base{Name: name, Vendor: vendor, Driver: driver, DSN: dsn}
}

func (b *Base) GetName() string   { return b.Name }
func (b *Base) GetVendor() string { return b.Vendor }
func (b *Base) GetDSN() string    { return b.DSN }

func (b *Base) AddParameter(p Param) {
	for _, existing := range b.params {
		if existing.Name == p.Name {
			return
		}
	}
	b.params = append(b.params, p)
}

func (b *Base) Parameters() []Param {
	out := make([]Param, len(b.params))
	copy(out, b.params)
	return out
}

func (b *Base) Clear() {
	b.params = nil
	b.records = nil
}

func (b *Base) ClearErrors() {
	b.records = nil
}

func (b *Base) Errors() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// fail wraps a driver error, appends it to the diagnostic list and returns
// it as the operation's explicit error value.
func (b *Base) fail(routine string, err error) *OpError {
	oe := &OpError{Source: b.Vendor, Routine: routine, Err: err}
	b.records = append(b.records, oe.record())
	return oe
}

// open hands out a fresh handle for exactly one operation. The caller closes
// it before returning on every path.
func (b *Base) open() (*sql.DB, error) {
	return sql.Open(b.Driver, b.DSN)
}

func (b *Base) CanConnect(ctx context.Context) bool {
	db, err := b.open()
	if err != nil {
		b.fail(opCanConnect, err)
		return false
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		b.fail(opCanConnect, err)
		return false
	}
	return true
}

func (b *Base) ExecuteNonQuery(ctx context.Context, command string) (int64, error) {
	db, err := b.open()
	if err != nil {
		return 0, b.fail(opExecuteNonQuery, err)
	}
	defer db.Close()

	res, err := db.ExecContext(ctx, command, bindArgs(b.Vendor, b.params)...)
	if err != nil {
		return 0, b.fail(opExecuteNonQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, b.fail(opExecuteNonQuery, err)
	}
	return affected, nil
}

func (b *Base) ExecuteScalar(ctx context.Context, command string) (any, error) {
	db, err := b.open()
	if err != nil {
		return nil, b.fail(opExecuteScalar, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, command, bindArgs(b.Vendor, b.params)...)
	if err != nil {
		return nil, b.fail(opExecuteScalar, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, b.fail(opExecuteScalar, err)
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, b.fail(opExecuteScalar, err)
		}
		return nil, nil
	}

	values := make([]any, len(columns))
	valuePtrs := make([]any, len(columns))
	for i := range columns {
		valuePtrs[i] = &values[i]
	}
	if err := rows.Scan(valuePtrs...); err != nil {
		return nil, b.fail(opExecuteScalar, err)
	}
	if bs, ok := values[0].([]byte); ok {
		return string(bs), nil
	}
	return values[0], nil
}

func (b *Base) QueryTable(ctx context.Context, command string) (*resultset.Table, error) {
	db, err := b.open()
	if err != nil {
		return &resultset.Table{}, b.fail(opQueryTable, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, command, bindArgs(b.Vendor, b.params)...)
	if err != nil {
		return &resultset.Table{}, b.fail(opQueryTable, err)
	}
	defer rows.Close()

	t, err := resultset.ReadAll(rows)
	if err != nil {
		return &resultset.Table{}, b.fail(opQueryTable, err)
	}
	return t, nil
}

func (b *Base) ApplyRowLimit(command string, limit int) string {
	trimmed := strings.TrimSpace(command)
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return command
	}

	switch b.Vendor {
	case "sqlserver":
		if strings.Contains(upper, " TOP ") || strings.Contains(upper, "FETCH") {
			return command
		}
		if strings.HasPrefix(upper, "SELECT") {
			rest := strings.TrimLeft(trimmed[len("SELECT"):], " \t")
			return fmt.Sprintf("SELECT TOP %d %s", limit, rest)
		}
		return fmt.Sprintf("%s\nOFFSET 0 ROWS FETCH NEXT %d ROWS ONLY",
			strings.TrimRight(trimmed, ";"), limit)
	case "oracle":
		if strings.Contains(upper, "FETCH") || strings.Contains(upper, "ROWNUM") {
			return command
		}
		return fmt.Sprintf("%s\nFETCH FIRST %d ROWS ONLY", strings.TrimRight(trimmed, ";"), limit)
	default:
		if strings.Contains(upper, " LIMIT ") {
			return command
		}
		return fmt.Sprintf("%s\nLIMIT %d", strings.TrimRight(trimmed, ";"), limit)
	}
}

func (b *Base) QueryDataSet(ctx context.Context, command string) ([]*resultset.Table, error) {
	db, err := b.open()
	if err != nil {
		return nil, b.fail(opQueryDataSet, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, command, bindArgs(b.Vendor, b.params)...)
	if err != nil {
		return nil, b.fail(opQueryDataSet, err)
	}
	defer rows.Close()

	tables, err := resultset.ReadAllSets(rows)
	if err != nil {
		return nil, b.fail(opQueryDataSet, err)
	}
	return tables, nil
}
