package rocket

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/registry"
)

// GameID is the registry identifier for Retro Rocket.
const GameID = "rocket"

// Package-level settings applied to games created through the registry.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config path for subsequent game creation.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to subsequent runs.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts the loop to the registry.Game lifecycle. Every Reset discards
// the previous run's handle and starts a new one.
type Game struct {
	cfg     config.RocketConfig
	loaded  bool
	runtime core.RuntimeConfig
	cb      core.Callbacks
	handle  *Handle
	runs    int // Runs started; offsets the seed so restarts differ
}

// New creates a new Retro Rocket instance that loads its config on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates an instance using cfg instead of loading from disk.
func NewWithConfig(cfg config.RocketConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Retro Rocket"
}

// Config returns the game configuration, loading it if needed.
func (g *Game) Config() (config.RocketConfig, error) {
	if g.loaded {
		return g.cfg, nil
	}
	cfg, source, err := config.LoadRocket(configPath)
	if err != nil {
		return config.RocketConfig{}, fmt.Errorf("rocket: %w", err)
	}
	logger.Info("config loaded", "source", source)
	g.cfg = cfg
	g.loaded = true
	return cfg, nil
}

// Reset starts a new run on a surface of cfg.SurfaceW x cfg.SurfaceH pixels,
// falling back to the configured surface size when both are zero.
// Any previous run is stopped first and will not report again.
func (g *Game) Reset(cfg core.RuntimeConfig, cb core.Callbacks) error {
	gameCfg, err := g.Config()
	if err != nil {
		return err
	}

	g.handle.Stop()
	g.handle = nil

	if cfg.SurfaceW == 0 && cfg.SurfaceH == 0 {
		cfg.SurfaceW = gameCfg.Surface.Width
		cfg.SurfaceH = gameCfg.Surface.Height
	}
	g.runtime = cfg
	g.cb = cb

	h, err := Start(core.NewSurface(cfg.SurfaceW, cfg.SurfaceH), Options{
		Config:    gameCfg,
		Seed:      cfg.Seed + int64(g.runs),
		Callbacks: cb,
		Logger:    logger,
	})
	if err != nil {
		logger.Warn("run not started", "width", cfg.SurfaceW, "height", cfg.SurfaceH, "error", err)
		return err
	}
	g.handle = h
	g.runs++
	return nil
}

// Restart begins a fresh run with the last runtime config and callbacks.
func (g *Game) Restart() error {
	logger.Info("restart", "run", g.runs+1)
	return g.Reset(g.runtime, g.cb)
}

// Step advances the current run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.handle == nil {
		return core.StepResult{}
	}
	cont := g.handle.Tick(in)
	return core.StepResult{State: g.State(), Continue: cont}
}

// Surface returns the surface of the current run, or nil before Reset.
func (g *Game) Surface() *core.Surface {
	if g.handle == nil {
		return nil
	}
	return g.handle.Surface()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.handle == nil {
		return core.GameState{}
	}
	st := g.handle.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Over,
		Ticks:    st.Ticks,
	}
}

// Stop tears down the current run.
func (g *Game) Stop() {
	g.handle.Stop()
}

// Handle exposes the current loop handle, or nil before Reset.
func (g *Game) Handle() *Handle {
	return g.handle
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
