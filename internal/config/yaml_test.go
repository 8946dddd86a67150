// Copyright 2026 The Icudash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Endpoint)
	assert.Nil(t, cfg.NoColor)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := `
endpoint: http://icu.example:5000
date_range: Last 7 Days
unit: MICU
error_scope: content
no_color: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://icu.example:5000", cfg.Endpoint)
	assert.Equal(t, "Last 7 Days", cfg.DateRange)
	assert.Equal(t, "MICU", cfg.Unit)
	assert.Equal(t, ScopeContent, cfg.ErrorScope)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	content := `
endpoint = "https://icu.example"
unit = "SICU"
token_env = "WARD_TOKEN"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://icu.example", cfg.Endpoint)
	assert.Equal(t, "SICU", cfg.Unit)
	assert.Equal(t, "WARD_TOKEN", cfg.TokenEnv)
}

func TestLoad_YAMLPreferredOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("unit: MICU\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(`unit = "SICU"`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "MICU", cfg.Unit)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid yaml"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("unit = "), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestWrite_RoundTrip(t *testing.T) {
	noColor := true
	original := &Config{Endpoint: "http://localhost:5000", Unit: "CCU", NoColor: &noColor}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, original))

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	decoded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}
