// Package params parses command-line parameter bindings of the form
// name=value into typed command parameters.
package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlping/sqlping/internal/connector"
)

// Parse converts one "name=value" pair into a command parameter. Values are
// coerced to int64, float64 or bool when they look like one; everything else
// stays a string.
func Parse(pair string) (connector.Param, error) {
	name, value, found := strings.Cut(pair, "=")
	if !found || name == "" {
		return connector.Param{}, fmt.Errorf("invalid parameter %q, expected name=value", pair)
	}
	return connector.Param{Name: name, Value: coerce(value)}, nil
}

// ParseAll converts a list of pairs, failing on the first malformed one.
func ParseAll(pairs []string) ([]connector.Param, error) {
	out := make([]connector.Param, 0, len(pairs))
	for _, pair := range pairs {
		p, err := Parse(pair)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func coerce(value string) any {
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
