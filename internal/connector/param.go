package connector

import (
	"database/sql"
	"fmt"
	"strings"
)

// Direction mirrors the classic command-parameter direction. Only input
// parameters are bound today; the field is kept so profiles and callers can
// declare intent.
type Direction int

const (
	Input Direction = iota
	Output
	InputOutput
)

// Param is a named command parameter attached to a connector before an
// execute call.
type Param struct {
	Name      string
	Value     any
	Direction Direction
}

// Placeholder returns the vendor's parameter placeholder syntax for a
// 1-based index.
func Placeholder(vendor string, index int) string {
	switch vendor {
	case "postgres":
		return fmt.Sprintf("$%d", index)
	case "oracle":
		return fmt.Sprintf(":%d", index)
	case "sqlserver":
		return fmt.Sprintf("@p%d", index)
	default:
		return "?"
	}
}

// bindArgs converts registered parameters into driver arguments. Vendors
// with named-parameter support get sql.Named bindings; the rest are bound
// positionally in registration order.
func bindArgs(vendor string, params []Param) []any {
	if len(params) == 0 {
		return nil
	}
	args := make([]any, 0, len(params))
	named := vendor == "sqlserver" || vendor == "oracle"
	for _, p := range params {
		if named && p.Name != "" {
			args = append(args, sql.Named(strings.TrimLeft(p.Name, "@:"), p.Value))
			continue
		}
		args = append(args, p.Value)
	}
	return args
}
