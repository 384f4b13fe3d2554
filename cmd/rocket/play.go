package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/games/rocket"
	"github.com/vovakirdan/retro-rocket/internal/platform/tui"
	"github.com/vovakirdan/retro-rocket/internal/platform/window"
	"github.com/vovakirdan/retro-rocket/internal/registry"
)

var (
	flagWindow  bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to rocket.

Controls:
  Space/Up/Click  - Boost (hold)
  R/Click button  - Restart (after game over)
  Q/Esc/Ctrl+C    - Quit

In the terminal the game runs on the alternate screen, so logs go to
--log-file (or nowhere). With --window logs go to stderr.

Examples:
  rocket play
  rocket play --window
  rocket play --seed 7 --log-level debug --log-file rocket.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a native window instead of using the terminal")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal mode)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := rocket.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'rocket list' to see available games)", gameID)
	}

	logOut, closeLog, err := playLogOutput()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	// Set config path and logger before creation
	rocket.SetConfigPath(flagConfig)
	rocket.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	gameCfg := config.DefaultRocketConfig()
	if rg, ok := game.(*rocket.Game); ok {
		if gameCfg, err = rg.Config(); err != nil {
			return err
		}
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagWindow {
		return window.Run(game, cfg, window.Options{
			MaxW:   gameCfg.Surface.Width,
			MaxH:   gameCfg.Surface.Height,
			Logger: logger,
		})
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("terminal play needs an interactive terminal; try --window or 'rocket snapshot'")
	}
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		logger.Debug("terminal", "cols", w, "rows", h)
	}

	return tui.Run(game, cfg, tui.Options{
		KeyHold: time.Duration(gameCfg.Controls.KeyHoldMS) * time.Millisecond,
		Logger:  logger,
	})
}

// playLogOutput picks where play logs go. The terminal host owns stdout and
// stderr, so it only logs to a file.
func playLogOutput() (io.Writer, func(), error) {
	if flagWindow {
		return os.Stderr, func() {}, nil
	}
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}
