package connector

import (
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteConnector struct {
	*Base
}

func NewSQLiteConnector(name, dsn string) (*SQLiteConnector, error) {
	return &SQLiteConnector{
		Base: newBase(name, "sqlite", "sqlite3", dsn),
	}, nil
}
