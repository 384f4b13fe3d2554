package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/games/rocket"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would use as YAML, after applying the
search order: --config, ~/.arcade/configs/rocket.yaml, ./configs/rocket.yaml,
then the embedded defaults.

Examples:
  rocket config
  rocket config --config ./my-rocket.yaml
  rocket config --defaults > configs/rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config unchanged")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(rocket.GameID))
		return err
	}

	cfg, source, err := config.LoadRocket(flagConfig)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	fmt.Printf("# source: %s\n", source)
	_, err = os.Stdout.Write(data)
	return err
}
