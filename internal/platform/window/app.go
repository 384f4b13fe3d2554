// Package window runs Retro Rocket in a native window with Ebitengine.
//
// The game surface follows the window: it takes 90% of the window width and
// 70% of its height, capped at the configured size, and a size change starts
// a fresh run on a surface of the new dimensions.
package window

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/registry"
)

const (
	widthFraction  = 0.9
	heightFraction = 0.7

	overlayAlpha = 0.75
	overlayFade  = 0.4 // seconds

	// Ebitengine debug font cell size
	glyphW = 6
	glyphH = 16

	hintText     = "Tap or click to boost the rocket!"
	restartLabel = "Restart"
)

var backdrop = color.RGBA{R: 0x11, G: 0x11, B: 0x18, A: 0xFF}

// Options configures the window host.
type Options struct {
	// MaxW and MaxH cap the surface size. Defaults to 600x800.
	MaxW, MaxH int
	// WindowW and WindowH set the initial window size.
	WindowW, WindowH int
	Logger           *log.Logger
}

// App implements ebiten.Game around a registry.Game.
type App struct {
	game    registry.Game
	runtime core.RuntimeConfig
	opts    Options
	logger  *log.Logger

	score float64
	over  bool

	outerW, outerH int // Last size reported by Layout
	surfW, surfH   int // Size of the current run's surface
	live           bool
	thrust         core.ThrustSignal
	frame          *ebiten.Image
	pixel          *ebiten.Image

	fade      *gween.Tween
	fadeAlpha float32
}

// NewApp creates the window host. The first run starts on the first Update,
// once the window size is known.
func NewApp(game registry.Game, cfg core.RuntimeConfig, opts Options) *App {
	if opts.MaxW <= 0 || opts.MaxH <= 0 {
		opts.MaxW, opts.MaxH = 600, 800
	}
	if opts.WindowW <= 0 || opts.WindowH <= 0 {
		// Large enough for a full-size surface
		opts.WindowW = opts.MaxW*10/9 + 1
		opts.WindowH = opts.MaxH*10/7 + 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &App{
		game:    game,
		runtime: cfg,
		opts:    opts,
		logger:  logger,
		pixel:   pixel,
	}
}

func (a *App) callbacks() core.Callbacks {
	return core.Callbacks{
		OnScore: func(score float64) {
			a.score = score
		},
		OnGameOver: func(score float64) {
			a.over = true
			a.score = score
			a.fade = gween.New(0, overlayAlpha, overlayFade, ease.OutQuad)
		},
	}
}

// start begins a new run on a w x h surface. A window too small for any
// surface leaves the app idle until the next resize.
func (a *App) start(w, h int) {
	a.surfW, a.surfH = w, h
	a.score, a.over = 0, false
	a.fade, a.fadeAlpha = nil, 0

	cfg := a.runtime
	cfg.SurfaceW, cfg.SurfaceH = w, h
	if err := a.game.Reset(cfg, a.callbacks()); err != nil {
		a.logger.Warn("surface unavailable", "width", w, "height", h, "error", err)
		a.live = false
		return
	}
	a.live = true

	if a.frame == nil || a.frame.Bounds().Dx() != w || a.frame.Bounds().Dy() != h {
		if a.frame != nil {
			a.frame.Deallocate()
		}
		a.frame = ebiten.NewImage(w, h)
	}
}

// restart starts a fresh run on the current surface size.
func (a *App) restart() {
	a.logger.Info("restart", "score", a.score)
	a.start(a.surfW, a.surfH)
}

// Update runs one tick. Ebitengine calls it at the configured TPS.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.Stop()
		return ebiten.Termination
	}

	// Resize restarts the run on the new surface
	w, h := core.FitSurface(a.outerW, a.outerH, a.opts.MaxW, a.opts.MaxH, widthFraction, heightFraction)
	if w != a.surfW || h != a.surfH {
		a.logger.Debug("resize", "window", [2]int{a.outerW, a.outerH}, "surface", [2]int{w, h})
		a.game.Stop()
		a.start(w, h)
	}
	if !a.live {
		return nil
	}

	if a.over {
		a.updateOverlay()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || a.restartClicked() {
			a.restart()
		}
		return nil
	}

	a.thrust.Set(thrustHeld())
	a.game.Step(core.NewInputFrame(time.Now(), a.thrust.Active()))
	return nil
}

func (a *App) updateOverlay() {
	if a.fade == nil {
		return
	}
	alpha, done := a.fade.Update(1 / float32(ebiten.TPS()))
	a.fadeAlpha = alpha
	if done {
		a.fade = nil
	}
}

// thrustHeld reports whether any thrust input is down this frame.
func thrustHeld() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
}

// restartClicked reports whether a click or tap landed on the restart button.
func (a *App) restartClicked() bool {
	button := a.restartButton()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if button.Contains(float64(x), float64(y)) {
			return true
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if button.Contains(float64(x), float64(y)) {
			return true
		}
	}
	return false
}

// origin returns the window position of the surface's top-left corner.
func (a *App) origin() image.Point {
	return image.Pt((a.outerW-a.surfW)/2, (a.outerH-a.surfH)/2)
}

// restartButton returns the button area in window coordinates.
func (a *App) restartButton() core.Rect {
	bw, bh := len(restartLabel)*glyphW+24, glyphH+12
	o := a.origin()
	x := o.X + (a.surfW-bw)/2
	y := o.Y + a.surfH/2 + glyphH
	return core.NewRect(float64(x), float64(y), float64(bw), float64(bh))
}

// Draw uploads the game surface and draws the HUD around it.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if !a.live {
		return
	}
	surface := a.game.Surface()
	if surface == nil {
		return
	}

	a.frame.WritePixels(surface.Pix())
	o := a.origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(o.X), float64(o.Y))
	screen.DrawImage(a.frame, op)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %.2f", a.score), o.X, o.Y-glyphH-4)
	ebitenutil.DebugPrintAt(screen, hintText, o.X+(a.surfW-len(hintText)*glyphW)/2, o.Y+a.surfH+4)

	if a.over {
		a.drawGameOver(screen, o)
	}
}

func (a *App) drawGameOver(screen *ebiten.Image, o image.Point) {
	area := core.NewRect(float64(o.X), float64(o.Y), float64(a.surfW), float64(a.surfH))
	a.fillRect(screen, area, color.RGBA{A: 0xFF}, a.fadeAlpha)

	const title = "Game Over!"
	ebitenutil.DebugPrintAt(screen, title, o.X+(a.surfW-len(title)*glyphW)/2, o.Y+a.surfH/2-2*glyphH)
	score := fmt.Sprintf("Score: %.2f", a.score)
	ebitenutil.DebugPrintAt(screen, score, o.X+(a.surfW-len(score)*glyphW)/2, o.Y+a.surfH/2-glyphH)

	button := a.restartButton()
	a.fillRect(screen, button, core.ColorGround, 1)
	cx, cy := button.Center()
	ebitenutil.DebugPrintAt(screen, restartLabel, int(cx)-len(restartLabel)*glyphW/2, int(cy)-glyphH/2)
}

// fillRect draws a solid rectangle by stretching the white pixel.
func (a *App) fillRect(screen *ebiten.Image, r core.Rect, c color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W, r.H)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(
		float32(c.R)/255*alpha,
		float32(c.G)/255*alpha,
		float32(c.B)/255*alpha,
		alpha,
	)
	screen.DrawImage(a.pixel, op)
}

// Layout keeps the screen at window resolution and records its size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.outerW, a.outerH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(app.opts.WindowW, app.opts.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.runtime.TickRate)

	app.logger.Info("window opened", "game", game.ID(), "tps", app.runtime.TickRate)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	game.Stop()
	return nil
}
