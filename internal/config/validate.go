package config

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/davetashner/icudash/internal/filter"
)

var envNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("endpoint: %v", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Sprintf("endpoint: scheme must be http or https, got %q", u.Scheme))
		case u.Host == "":
			errs = append(errs, "endpoint: missing host")
		}
	}

	if cfg.DateRange != "" && !slices.Contains(filter.DateRanges, cfg.DateRange) {
		errs = append(errs, fmt.Sprintf("date_range: invalid value %q (must be one of %s)",
			cfg.DateRange, strings.Join(filter.DateRanges, ", ")))
	}

	switch cfg.ErrorScope {
	case "", ScopeSurface, ScopeContent:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("error_scope: invalid value %q (must be surface or content)", cfg.ErrorScope))
	}

	if cfg.TokenEnv != "" && !envNameRe.MatchString(cfg.TokenEnv) {
		errs = append(errs, fmt.Sprintf("token_env: invalid environment variable name %q", cfg.TokenEnv))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
