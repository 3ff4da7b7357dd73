// Package connector wraps a database driver's connection and command
// lifecycle behind one vendor-neutral interface. Every operation performs a
// single open-execute-close cycle; nothing stays open between calls.
package connector

import (
	"context"

	"github.com/sqlping/sqlping/internal/resultset"
)

// Connector performs one request/response cycle per operation against a
// relational database. Failures are captured into a diagnostic list that
// accumulates until cleared, and are also returned as explicit errors.
type Connector interface {
	// CanConnect opens a connection, pings it and closes it. It returns
	// true on success; on failure it appends exactly one diagnostic
	// record and returns false.
	CanConnect(ctx context.Context) bool

	// ExecuteNonQuery runs a statement that returns no rows and reports
	// the affected-row count, 0 on failure.
	ExecuteNonQuery(ctx context.Context, command string) (int64, error)

	// ExecuteScalar runs a query and returns the first column of the
	// first row, nil on failure or on an empty result.
	ExecuteScalar(ctx context.Context, command string) (any, error)

	// QueryTable runs a query and buffers the first result set. An empty
	// table is returned on failure.
	QueryTable(ctx context.Context, command string) (*resultset.Table, error)

	// QueryDataSet runs a query and buffers every result set it returns.
	QueryDataSet(ctx context.Context, command string) ([]*resultset.Table, error)

	// ApplyRowLimit rewrites a row-returning command to cap it at limit
	// rows using the vendor's syntax. Commands that are not SELECTs or
	// that already carry a limit come back unchanged.
	ApplyRowLimit(command string, limit int) string

	// AddParameter registers a named parameter for subsequent execute
	// calls. Adding a parameter with an already registered name is a
	// no-op.
	AddParameter(p Param)
	Parameters() []Param

	// Clear empties the parameter list and the diagnostic list.
	Clear()
	// ClearErrors empties only the diagnostic list.
	ClearErrors()
	// Errors returns the accumulated diagnostic records.
	Errors() []Record

	GetName() string
	GetVendor() string
	GetDSN() string
}
