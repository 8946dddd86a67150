package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		Endpoint:   "https://icu.example:8443",
		DateRange:  "All Time",
		ErrorScope: ScopeSurface,
		TokenEnv:   "WARD_TOKEN",
	}
	assert.NoError(t, Validate(cfg))
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := &Config{
		Endpoint:   "ftp://icu.example",
		DateRange:  "Last Year",
		ErrorScope: "page",
		TokenEnv:   "1-BAD",
	}
	err := Validate(cfg)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "endpoint: scheme must be http or https")
	assert.Contains(t, msg, `date_range: invalid value "Last Year"`)
	assert.Contains(t, msg, `error_scope: invalid value "page"`)
	assert.Contains(t, msg, `token_env: invalid environment variable name "1-BAD"`)
}

func TestValidate_EndpointMissingHost(t *testing.T) {
	err := Validate(&Config{Endpoint: "http://"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing host")
}
