package rocket

import (
	"testing"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

// startTestHandle starts a loop with default config on a w x h surface.
func startTestHandle(t *testing.T, w, h int, seed int64) *Handle {
	t.Helper()
	return startTestHandleWith(t, w, h, seed, core.Callbacks{})
}

func startTestHandleWith(t *testing.T, w, h int, seed int64, cb core.Callbacks) *Handle {
	t.Helper()
	handle, err := Start(core.NewSurface(w, h), Options{
		Config:    config.DefaultRocketConfig(),
		Seed:      seed,
		Callbacks: cb,
	})
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return handle
}

// callbackCounter records callback invocations.
type callbackCounter struct {
	scores    int
	gameOvers int
	lastScore float64
}

func (c *callbackCounter) callbacks() core.Callbacks {
	return core.Callbacks{
		OnScore: func(score float64) {
			c.scores++
			c.lastScore = score
		},
		OnGameOver: func(score float64) {
			c.gameOvers++
			c.lastScore = score
		},
	}
}
