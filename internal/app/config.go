package app

import (
	"errors"
	"fmt"
)

// DefaultSettingsPath is loaded when no settings path is given. Unlike an
// explicit path, it may be missing.
const DefaultSettingsPath = "gradlerun.hcl"

// Config holds everything an App needs to run.
type Config struct {
	SettingsPaths []string // .hcl/.yaml files or directories; must exist
	Runs          []string // run names, in launch order
	All           bool     // select every run, ignoring Runs

	Execute   bool   // launch instead of printing
	Format    string // "text" or "json"
	LogFormat string
	LogLevel  string
	CacheSize int

	defaultSettings bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.SettingsPaths) == 0 {
		cfg.SettingsPaths = []string{DefaultSettingsPath}
		cfg.defaultSettings = true
	}
	if !cfg.All && len(cfg.Runs) == 0 {
		return nil, errors.New("no runs selected: name one or more runs, or use -all")
	}
	switch cfg.Format {
	case "", "text":
		cfg.Format = "text"
	case "json":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", cfg.Format)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 128
	}
	return &cfg, nil
}
