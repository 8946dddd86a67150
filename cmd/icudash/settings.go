// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/davetashner/icudash/internal/config"
	"github.com/davetashner/icudash/internal/dashboard"
	"github.com/davetashner/icudash/internal/fetch"
	"github.com/davetashner/icudash/internal/filter"
	"github.com/davetashner/icudash/internal/redact"
	"github.com/davetashner/icudash/internal/term"
)

// loadSettings resolves flags, the project config and the global config into
// one validated Settings. Config problems exit with ExitInvalidArgs.
func loadSettings() (config.Settings, error) {
	var project *config.Config
	var err error
	if configPath != "" {
		project, err = config.LoadFile(configPath)
	} else {
		project, err = config.Load(".")
	}
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "icudash: loading config: %v", err)
	}
	if err := config.Validate(project); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "icudash: %v", err)
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "icudash: loading global config: %v", err)
	}
	if err := config.Validate(global); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "icudash: global config: %v", err)
	}

	s := config.Merge(config.Settings{
		Endpoint:   endpoint,
		DateRange:  dateRange,
		Unit:       unit,
		ErrorScope: errorScope,
		NoColor:    noColor,
	}, project, global)
	if err := config.Validate(s.Config()); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "icudash: %v", err)
	}

	if s.NoColor {
		term.SetColor(false)
	}
	redact.Register(s.TokenEnv)
	return s, nil
}

// newSession opens a dashboard session against the configured endpoint.
func newSession(s config.Settings) *term.Session {
	var opts []fetch.Option
	if token := os.Getenv(s.TokenEnv); token != "" {
		opts = append(opts, fetch.WithToken(token))
	}
	return term.NewSession(
		fetch.New(s.Endpoint, opts...),
		filter.Base{DateRange: s.DateRange, Unit: s.Unit},
		dashboard.Options{ErrorRegion: s.ErrorRegion()},
	)
}
