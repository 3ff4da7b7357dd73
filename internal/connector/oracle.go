package connector

import (
	_ "github.com/godror/godror"
)

type OracleConnector struct {
	*Base
}

func NewOracleConnector(name, dsn string) (*OracleConnector, error) {
	return &OracleConnector{
		Base: newBase(name, "oracle", "godror", dsn),
	}, nil
}
