package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/crossing-arcade/internal/config"
	"github.com/vovakirdan/crossing-arcade/internal/registry"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or check a game config",
	Long: `Print the built-in default config for a game, ready to be copied to
~/.arcade/configs/ and edited.

With --check, the effective config (after --config, the user and local
config directories and --difficulty) is loaded, validated and printed.

Examples:
  arcade config crossing > ~/.arcade/configs/crossing.yaml
  arcade config crossing --check --config ./my-crossing.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Load and validate the effective config")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	if !flagConfigCheck {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return fmt.Errorf("game %q has no config", gameID)
		}
		_, err := out.Write(data)
		return err
	}

	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyCrossingPreset(&cfg, preset)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	fmt.Fprintf(out, "# %s: config OK\n", gameID)
	_, err = out.Write(data)
	return err
}
