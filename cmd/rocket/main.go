// rocket is a retro arcade game: keep the rocket airborne and dodge asteroids,
// lasers and enemy ships for as long as possible.
//
// Usage:
//
//	rocket play              - Play in the terminal
//	rocket play --window     - Play in a native window
//	rocket list              - List available games
//	rocket config            - Print the effective configuration
//	rocket snapshot          - Run headless and save the final frame
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-level <level> - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/retro-rocket/internal/games/rocket"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rocket",
	Short: "Retro Rocket - keep the rocket flying",
	Long: `Retro Rocket is a pixel-art arcade game. Hold thrust to fight gravity,
stay between the sky and the ground, and avoid everything that flies past.

Available commands:
  play      - Play in the terminal or a window
  list      - Show all available games
  config    - Print the effective configuration
  snapshot  - Run headless and write the final frame

Examples:
  rocket play
  rocket play --window
  rocket play --seed 42 --log-file rocket.log
  rocket config > configs/rocket.yaml
  rocket snapshot --ticks 300 --out frame.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger creates a logger writing to w at the level from --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rocket",
		Level:           level,
	})
	return logger, nil
}
