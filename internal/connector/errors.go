package connector

import "fmt"

// Operation names recorded in diagnostics. Passing explicit constants keeps
// the record accurate without inspecting the call stack.
const (
	opCanConnect      = "CanConnect"
	opExecuteNonQuery = "ExecuteNonQuery"
	opExecuteScalar   = "ExecuteScalar"
	opQueryTable      = "QueryTable"
	opQueryDataSet    = "QueryDataSet"
)

// Record is one diagnostic entry: which vendor produced it, the driver
// message, and the operation that caught it.
type Record struct {
	Source  string
	Message string
	Routine string
}

// String renders the record as "<message> <routine>", the format surfaced in
// the status line.
func (r Record) String() string {
	return r.Message + " " + r.Routine
}

// OpError is the explicit failure value returned by connector operations.
// The same failure is appended to the connector's diagnostic list.
type OpError struct {
	Source  string
	Routine string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Routine, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) record() Record {
	return Record{Source: e.Source, Message: e.Err.Error(), Routine: e.Routine}
}
