package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the game would use and prints it as YAML.

Search order: --config, ~/.arcade/configs/breakout.yaml,
./configs/breakout.yaml, built-in defaults. The --difficulty preset is
applied on top.

With --defaults the built-in defaults are printed verbatim instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
