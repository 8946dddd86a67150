package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/icudash/internal/config"
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View icudash configuration",
	Long: `View icudash configuration.

icudash reads .icudash.yaml (or .icudash.toml) in the current directory.
A global config at ~/.config/icudash/config.yaml provides defaults.
Flags override the project config, which overrides the global config.`,
}

// configShowCmd prints the resolved settings.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the configuration icudash would run with, after merging flags, the
project config, the global config and built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		if err := config.Write(cmd.OutOrStdout(), s.Config()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		return nil
	},
}

// configPathCmd prints where config files are looked up.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config file locations",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "project: %s, %s\n", config.FileName, config.TOMLFileName)
		_, _ = fmt.Fprintf(w, "global:  %s\n", config.GlobalConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
