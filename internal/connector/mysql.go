package connector

import (
	_ "github.com/go-sql-driver/mysql"
)

type MySQLConnector struct {
	*Base
}

func NewMySQLConnector(name, dsn string) (*MySQLConnector, error) {
	return &MySQLConnector{
		Base: newBase(name, "mysql", "mysql", dsn),
	}, nil
}
