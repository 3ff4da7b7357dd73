package connector

import (
	"fmt"

	"github.com/sqlping/sqlping/internal/dsn"
)

// New selects a vendor implementation by configuration. The dsn argument is
// a ready driver connection string.
func New(name, vendor, connStr string) (Connector, error) {
	switch dsn.Normalize(vendor) {
	case "sqlserver":
		return NewSQLServerConnector(name, connStr)
	case "oracle":
		return NewOracleConnector(name, connStr)
	case "postgres":
		return NewPostgresConnector(name, connStr)
	case "mysql":
		return NewMySQLConnector(name, connStr)
	case "sqlite":
		return NewSQLiteConnector(name, connStr)
	default:
		return nil, fmt.Errorf("driver not implemented for %s", vendor)
	}
}

// FromParams builds the connection string from params and hands it to New.
func FromParams(name string, p dsn.Params) (Connector, error) {
	connStr, err := p.Build()
	if err != nil {
		return nil, err
	}
	return New(name, p.Vendor, connStr)
}
