package connector

import (
	_ "github.com/lib/pq"
)

type PostgresConnector struct {
	*Base
}

func NewPostgresConnector(name, dsn string) (*PostgresConnector, error) {
	return &PostgresConnector{
		Base: newBase(name, "postgres", "postgres", dsn),
	}, nil
}
