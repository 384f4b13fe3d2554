package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-rocket/internal/core"
	"github.com/vovakirdan/retro-rocket/internal/registry"
)

// hintText is shown under the playfield while a run is live.
const hintText = "Tap or click to boost the rocket!"

// chromeRows is the number of terminal rows used outside the playfield:
// the score line, the hint or game-over line, and the help line.
const chromeRows = 3

var (
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6347")).Bold(true)
	restartStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#00FF00")).
			Padding(0, 1)
)

// Options configures the terminal host.
type Options struct {
	// KeyHold keeps keyboard thrust active after each key event.
	KeyHold time.Duration
	// Logger receives host events. Discards when nil.
	Logger *log.Logger
}

// hud holds values reported by game callbacks. It is shared by pointer
// because Bubble Tea copies the model on every update.
type hud struct {
	score     float64
	over      bool
	lastScore float64
}

func (h *hud) callbacks() core.Callbacks {
	return core.Callbacks{
		OnScore: func(score float64) {
			h.score = score
		},
		OnGameOver: func(score float64) {
			h.over = true
			h.lastScore = score
		},
	}
}

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game    registry.Game
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	thrust  *thrustLatch
	hud     *hud
	painter *Painter
	logger  *log.Logger

	width    int
	height   int
	ticking  bool // Whether a tick command is in flight
	quitting bool
}

// NewModel creates a model and starts the first run of game.
// It fails if the game cannot start on the configured surface.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &hud{}
	if err := game.Reset(cfg, h.callbacks()); err != nil {
		return Model{}, fmt.Errorf("start %s: %w", game.ID(), err)
	}

	return Model{
		game:    game,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		thrust:  newThrustLatch(opts.KeyHold),
		hud:     h,
		painter: NewPainter(),
		logger:  logger,
		ticking: true,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Presentation only; the game keeps its fixed surface
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case core.ActionThrust:
		m.thrust.Key(time.Now())
	case core.ActionRestart:
		if m.hud.over {
			return m.restart()
		}
	}
	return m, nil
}

// handleMouse maps the left button to thrust, or to restart once the run is over.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.hud.over {
			return m.restart()
		}
		m.thrust.Press()
	case tea.MouseActionRelease:
		// Release events do not always carry the button
		m.thrust.Release()
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res := m.game.Step(core.NewInputFrame(now, m.thrust.Active(now)))
	if !res.Continue {
		// Stop the tick chain until restart
		m.ticking = false
		if res.State.GameOver {
			m.logger.Info("game over", "score", res.State.Score, "ticks", res.State.Ticks)
		}
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run and revives the tick chain if it had stopped.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Restart(); err != nil {
		m.logger.Error("restart failed", "error", err)
		return m, nil
	}
	*m.hud = hud{}
	m.thrust.Reset()

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// View renders the score line, the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	surface := m.game.Surface()
	maxCols, maxRows := m.width, m.height-chromeRows
	if m.width == 0 {
		// No size reported yet
		maxCols, maxRows = 80, 24-chromeRows
	}
	cols, rows := FitCells(surface, maxCols, maxRows)
	field := m.painter.Render(surface, cols, rows)

	score := scoreStyle.Render(fmt.Sprintf("Score: %.2f", m.hud.score))

	status := hintStyle.Render(hintText)
	if m.hud.over {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			gameOverStyle.Render("Game Over!"),
			" ",
			restartStyle.Render("Restart"),
		)
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		score,
		field,
		status,
		m.help.View(m.keys),
	)
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and release drive thrust
	)

	_, err = p.Run()
	game.Stop()
	return err
}
