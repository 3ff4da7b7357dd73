package config

import (
	"github.com/sqlping/sqlping/internal/connector"
	"github.com/sqlping/sqlping/internal/dsn"
)

// Profile is a saved set of connection parameters under a user-chosen name.
type Profile struct {
	Name   string     `yaml:"name"`
	Params dsn.Params `yaml:"params"`
}

// Connector builds a fresh connector for the profile. Each caller gets its
// own instance; nothing is shared or kept open.
func (p *Profile) Connector() (connector.Connector, error) {
	return connector.FromParams(p.Name, p.Params)
}
