package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/games/rocket"
)

var (
	flagTicks     int
	flagOut       string
	flagWidth     int
	flagHeight    int
	flagThrustOn  int
	flagThrustOff int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run headless and save the final frame",
	Long: `Runs the game without a display on a synthetic clock of --fps frames per
second, then prints a summary and optionally writes the last frame as PNG.
Thrust is pulsed: held for --thrust-on ticks, then released for --thrust-off.

Examples:
  rocket snapshot --ticks 300 --seed 1
  rocket snapshot --ticks 600 --thrust-on 4 --thrust-off 8 --out frame.png
  rocket snapshot --width 300 --height 400 --out small.png`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagTicks, "ticks", 120, "Maximum number of ticks to simulate")
	snapshotCmd.Flags().StringVar(&flagOut, "out", "", "Write the final frame to this PNG file")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 0, "Surface width (0 = from config)")
	snapshotCmd.Flags().IntVar(&flagHeight, "height", 0, "Surface height (0 = from config)")
	snapshotCmd.Flags().IntVar(&flagThrustOn, "thrust-on", 1, "Ticks of thrust per pulse (0 = never)")
	snapshotCmd.Flags().IntVar(&flagThrustOff, "thrust-off", 2, "Ticks without thrust per pulse")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadRocket(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	w, h := cfg.Surface.Width, cfg.Surface.Height
	if flagWidth != 0 || flagHeight != 0 {
		w, h = flagWidth, flagHeight
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}

	var gameOver float64
	overReported := false
	handle, err := rocket.Start(core.NewSurface(w, h), rocket.Options{
		Config: cfg,
		Seed:   flagSeed,
		Callbacks: core.Callbacks{
			OnGameOver: func(score float64) {
				gameOver = score
				overReported = true
			},
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("snapshot %dx%d: %w", w, h, err)
	}
	defer handle.Stop()

	ran := rocket.RunHeadless(handle, time.Unix(0, 0), time.Second/time.Duration(fps), flagTicks,
		rocket.Pulse(flagThrustOn, flagThrustOff))

	st := handle.State()
	fmt.Printf("surface:   %dx%d\n", w, h)
	fmt.Printf("seed:      %d\n", flagSeed)
	fmt.Printf("ticks:     %d\n", ran)
	fmt.Printf("score:     %.2f\n", st.Score)
	fmt.Printf("craft:     y=%.2f velocity=%.3f\n", st.Craft.Y, st.Craft.Velocity)
	fmt.Printf("obstacles: %d\n", len(st.Obstacles))
	if overReported {
		fmt.Printf("game over: score %.2f\n", gameOver)
	} else {
		fmt.Println("game over: no")
	}

	if flagOut == "" {
		return nil
	}
	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOut, err)
	}
	if err := png.Encode(f, handle.Surface().Image()); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", flagOut, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("frame written", "path", flagOut)
	return nil
}
