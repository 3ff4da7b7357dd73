package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

var CfgPath = os.ExpandEnv("$HOME/.config/sqlping/")
var CfgFile = filepath.Join(CfgPath, "config.yaml")

type Config struct {
	CurrentProfile string              `yaml:"current_profile"`
	Profiles       map[string]*Profile `yaml:"profiles"`
	Style          Style               `yaml:"style"`
	// DefaultRowLimit caps row-returning commands; 0 disables the cap.
	DefaultRowLimit int `yaml:"default_row_limit,omitempty"`

	path string
}

type Style struct {
	Accent string `yaml:"accent_color"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{
				Profiles: make(map[string]*Profile),
				path:     path,
			}
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	cfg.path = path
	return &cfg, nil
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = CfgFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	// profiles may carry passwords when persist_security is set
	return os.WriteFile(path, data, 0600)
}

// Current returns the active profile, or an error naming what is missing.
func (c *Config) Current() (*Profile, error) {
	if c.CurrentProfile == "" {
		return nil, fmt.Errorf("no profile selected, run 'sqlping init' first")
	}
	p, ok := c.Profiles[c.CurrentProfile]
	if !ok {
		return nil, fmt.Errorf("profile %q does not exist", c.CurrentProfile)
	}
	return p, nil
}
