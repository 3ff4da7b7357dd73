package connector

import (
	_ "github.com/microsoft/go-mssqldb"
)

type SQLServerConnector struct {
	*Base
}

func NewSQLServerConnector(name, dsn string) (*SQLServerConnector, error) {
	return &SQLServerConnector{
		Base: newBase(name, "sqlserver", "sqlserver", dsn),
	}, nil
}
