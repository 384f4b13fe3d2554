package rocket

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// ErrNoSurface is returned by Start when there is nothing to draw into.
var ErrNoSurface = errors.New("rocket: surface unavailable")

// Options configures a loop started with Start.
type Options struct {
	Config    config.RocketConfig
	Seed      int64
	Callbacks core.Callbacks
	Logger    *log.Logger // Optional; discards when nil
	// RenderRand drives texture flicker. Defaults to a source seeded from Seed.
	RenderRand *rand.Rand
}

// Handle is one running game loop. The host calls Tick once per display
// refresh and stops calling once Tick returns false.
//
// A Handle is not safe for concurrent use; input crosses goroutines through
// core.ThrustSignal and reaches the loop as a core.InputFrame.
type Handle struct {
	cfg      config.RocketConfig
	surface  *core.Surface
	geo      Geometry
	physics  Physics
	rng      *rand.Rand
	gen      *Generator
	renderer *Renderer
	state    *RunState
	cb       core.Callbacks
	logger   *log.Logger

	last     time.Time
	started  bool // Whether a tick has run; the first tick has dt = 0
	stopped  bool
	notified bool // Whether OnGameOver has fired
}

// Start initializes a fresh run on surface and returns its handle.
// It returns ErrNoSurface, without starting anything, if the surface is missing.
func Start(surface *core.Surface, opts Options) (*Handle, error) {
	if !surface.Valid() {
		return nil, ErrNoSurface
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderRand := opts.RenderRand
	if renderRand == nil {
		renderRand = rand.New(rand.NewSource(opts.Seed + 1))
	}

	cfg := opts.Config
	rng := rand.New(rand.NewSource(opts.Seed))
	geo := NewGeometry(cfg, surface.Width(), surface.Height())

	h := &Handle{
		cfg:      cfg,
		surface:  surface,
		geo:      geo,
		physics:  NewPhysics(cfg.Physics, cfg.Surface.ReferenceHeight, surface.Height()),
		rng:      rng,
		gen:      NewGenerator(rng, cfg.Obstacles, cfg.Surface.ReferenceWidth),
		renderer: NewRenderer(renderRand, cfg.Render, cfg.Ground),
		state:    NewRunState(rng, cfg, geo),
		cb:       opts.Callbacks,
		logger:   logger,
	}

	logger.Debug("run started",
		"surface", [2]int{surface.Width(), surface.Height()},
		"seed", opts.Seed,
		"stars", len(h.state.Stars),
	)
	return h, nil
}

// Tick advances the run by one frame stamped with in.Now and renders it.
// It returns whether the host should request another frame.
func (h *Handle) Tick(in core.InputFrame) bool {
	if h.stopped || h.state.Over {
		return false
	}

	dt := 0.0
	if h.started {
		dt = max(in.Now.Sub(h.last).Seconds(), 0)
	}
	h.last = in.Now
	h.started = true

	st := h.state
	st.Thrusting = in.Thrust
	st.Ticks++

	AdvanceStars(st.Stars, h.rng, h.cfg.Stars, h.geo.Width, h.geo.Height, st.Thrusting)
	Integrate(&st.Craft, h.physics, st.Thrusting)
	st.Obstacles = AdvanceObstacles(st.Obstacles, h.geo.Width)

	if CollidesAny(st.Craft, st.Obstacles, h.geo) {
		h.end("obstacle")
	} else if h.geo.OutOfBounds(st.Craft) {
		h.end("boundary")
	}

	st.Score += dt
	st.SpawnTimer += dt
	if st.SpawnTimer > h.cfg.Obstacles.SpawnInterval {
		o := h.gen.Spawn(h.geo.Width, h.geo.Height)
		st.Obstacles = append(st.Obstacles, o)
		st.SpawnTimer = 0
		h.logger.Debug("obstacle spawned", "kind", o.Kind, "x", o.X, "speed", o.Speed)
	}

	h.renderer.Draw(h.surface, st, h.geo)

	if h.cb.OnScore != nil {
		h.cb.OnScore(st.Score)
	}
	if st.Over {
		h.notifyGameOver()
		return false
	}
	return true
}

// end marks the run as over. Safe to call more than once per tick.
func (h *Handle) end(reason string) {
	if h.state.Over {
		return
	}
	h.state.Over = true
	h.logger.Info("game over", "reason", reason, "score", h.state.Score, "ticks", h.state.Ticks)
}

func (h *Handle) notifyGameOver() {
	if h.notified {
		return
	}
	h.notified = true
	if h.cb.OnGameOver != nil {
		h.cb.OnGameOver(h.state.Score)
	}
}

// Stop tears the loop down. Later Ticks do nothing and no callback fires
// again. Calling Stop more than once is harmless.
func (h *Handle) Stop() {
	if h == nil || h.stopped {
		return
	}
	h.stopped = true
	h.logger.Debug("run stopped", "score", h.state.Score, "ticks", h.state.Ticks)
}

// Stopped reports whether Stop has been called.
func (h *Handle) Stopped() bool {
	return h.stopped
}

// State returns the live run state. Callers must not retain it across a restart.
func (h *Handle) State() *RunState {
	return h.state
}

// Surface returns the surface the loop renders into.
func (h *Handle) Surface() *core.Surface {
	return h.surface
}

// Geometry returns the surface-derived measurements of this run.
func (h *Handle) Geometry() Geometry {
	return h.geo
}
