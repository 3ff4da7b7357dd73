package connector

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync/atomic"
)

// A stub driver so connector paths can be exercised without a reachable
// server. The DSN selects the behavior: "ok", "pingfail", "execfail",
// "queryfail".

var (
	fakeOpens  atomic.Int64
	fakeCloses atomic.Int64
)

func init() {
	sql.Register("sqlping_fake", fakeDriver{})
}

func newFakeConnector(mode string) *Base {
	return newBase("test", "fake", "sqlping_fake", mode)
}

type fakeDriver struct{}

func (fakeDriver) Open(dsn string) (driver.Conn, error) {
	if dsn == "openfail" {
		return nil, errors.New("connection refused")
	}
	fakeOpens.Add(1)
	return &fakeConn{mode: dsn}, nil
}

type fakeConn struct {
	mode string
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements not supported")
}

func (c *fakeConn) Close() error {
	fakeCloses.Add(1)
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *fakeConn) Ping(ctx context.Context) error {
	if c.mode == "pingfail" {
		return errors.New("no such host")
	}
	return nil
}

func (c *fakeConn) CheckNamedValue(nv *driver.NamedValue) error {
	return nil
}

func (c *fakeConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if c.mode == "execfail" {
		return nil, errors.New("incorrect syntax near 'FORM'")
	}
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "UPDATE") {
		return driver.RowsAffected(3), nil
	}
	return driver.RowsAffected(0), nil
}

func (c *fakeConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if c.mode == "queryfail" {
		return nil, errors.New("invalid object name 'users'")
	}

	upper := strings.ToUpper(query)
	switch {
	case strings.Contains(upper, "EMPTY"):
		return &fakeRows{
			columns: [][]string{{"id"}},
			data:    [][][]driver.Value{{}},
		}, nil
	case strings.Contains(upper, "MULTI"):
		return &fakeRows{
			columns: [][]string{{"id"}, {"name", "age"}},
			data: [][][]driver.Value{
				{{int64(1)}, {int64(2)}},
				{{"ada", int64(36)}},
			},
		}, nil
	default:
		return &fakeRows{
			columns: [][]string{{"id", "name"}},
			data: [][][]driver.Value{
				{
					{int64(1), "ada"},
					{int64(2), nil},
				},
			},
		}, nil
	}
}

type fakeRows struct {
	columns [][]string
	data    [][][]driver.Value
	set     int
	row     int
}

func (r *fakeRows) Columns() []string {
	return r.columns[r.set]
}

func (r *fakeRows) Close() error {
	return nil
}

func (r *fakeRows) Next(dest []driver.Value) error {
	rows := r.data[r.set]
	if r.row >= len(rows) {
		return io.EOF
	}
	copy(dest, rows[r.row])
	r.row++
	return nil
}

func (r *fakeRows) HasNextResultSet() bool {
	return r.set+1 < len(r.columns)
}

func (r *fakeRows) NextResultSet() error {
	if !r.HasNextResultSet() {
		return io.EOF
	}
	r.set++
	r.row = 0
	return nil
}
