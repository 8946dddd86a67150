// Package config handles .icudash.yaml / .icudash.toml configuration files.
package config

import (
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/page"
)

// Config represents the contents of an icudash config file.
type Config struct {
	Endpoint   string `yaml:"endpoint,omitempty" toml:"endpoint,omitempty"`
	DateRange  string `yaml:"date_range,omitempty" toml:"date_range,omitempty"`
	Unit       string `yaml:"unit,omitempty" toml:"unit,omitempty"`
	ErrorScope string `yaml:"error_scope,omitempty" toml:"error_scope,omitempty"`
	NoColor    *bool  `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
	TokenEnv   string `yaml:"token_env,omitempty" toml:"token_env,omitempty"`
}

// File names looked up in the working directory, in order.
const (
	FileName     = ".icudash.yaml"
	TOMLFileName = ".icudash.toml"
)

// Error panel scopes.
const (
	ScopeSurface = "surface"
	ScopeContent = "content"
)

// Defaults for settings no source provides.
const (
	DefaultEndpoint = "http://127.0.0.1:5000"
	DefaultTokenEnv = "ICUDASH_TOKEN"
)

// Settings is the resolved configuration of one run.
type Settings struct {
	Endpoint   string
	DateRange  string
	Unit       string
	ErrorScope string
	NoColor    bool
	TokenEnv   string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Endpoint:   DefaultEndpoint,
		DateRange:  filter.DefaultDateRange,
		Unit:       filter.DefaultUnit,
		ErrorScope: ScopeSurface,
		TokenEnv:   DefaultTokenEnv,
	}
}

// ErrorRegion returns the page region the error panel mounts over.
func (s Settings) ErrorRegion() page.ID {
	if s.ErrorScope == ScopeContent {
		return page.Content
	}
	return page.Container
}

// Config returns s as a config file would spell it.
func (s Settings) Config() *Config {
	cfg := &Config{
		Endpoint:   s.Endpoint,
		DateRange:  s.DateRange,
		Unit:       s.Unit,
		ErrorScope: s.ErrorScope,
		TokenEnv:   s.TokenEnv,
	}
	if s.NoColor {
		cfg.NoColor = &s.NoColor
	}
	return cfg
}
