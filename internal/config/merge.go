package config

// Merge resolves settings from CLI values and config files. Non-zero CLI
// fields win; then files in the order given (project before global); then
// Defaults.
func Merge(cli Settings, files ...*Config) Settings {
	result := cli
	def := Defaults()

	pick := func(dst *string, fileVal func(*Config) string, fallback string) {
		if *dst != "" {
			return
		}
		for _, f := range files {
			if f == nil {
				continue
			}
			if v := fileVal(f); v != "" {
				*dst = v
				return
			}
		}
		*dst = fallback
	}

	pick(&result.Endpoint, func(c *Config) string { return c.Endpoint }, def.Endpoint)
	pick(&result.DateRange, func(c *Config) string { return c.DateRange }, def.DateRange)
	pick(&result.Unit, func(c *Config) string { return c.Unit }, def.Unit)
	pick(&result.ErrorScope, func(c *Config) string { return c.ErrorScope }, def.ErrorScope)
	pick(&result.TokenEnv, func(c *Config) string { return c.TokenEnv }, def.TokenEnv)

	// NoColor: CLI wins if true, otherwise the first file that sets it.
	if !result.NoColor {
		for _, f := range files {
			if f != nil && f.NoColor != nil {
				result.NoColor = *f.NoColor
				break
			}
		}
	}

	return result
}
