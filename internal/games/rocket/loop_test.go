package rocket

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/retro-rocket/internal/config"
	"github.com/vovakirdan/retro-rocket/internal/core"
)

func TestStartWithoutSurface(t *testing.T) {
	tests := []struct {
		name    string
		surface *core.Surface
	}{
		{"nil surface", nil},
		{"zero-size surface", core.NewSurface(0, 800)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, err := Start(tc.surface, Options{Config: config.DefaultRocketConfig()})
			if !errors.Is(err, ErrNoSurface) {
				t.Errorf("Start() error = %v, expected ErrNoSurface", err)
			}
			if h != nil {
				t.Error("Start() should not return a handle without a surface")
			}
		})
	}
}

func TestStartInitialState(t *testing.T) {
	h := startTestHandle(t, 600, 800, 1)
	st := h.State()

	if st.Craft.Y != 400 || st.Craft.Velocity != 0 {
		t.Errorf("Craft = %+v, expected at rest at y=400", st.Craft)
	}
	if len(st.Stars) != 50 {
		t.Errorf("len(Stars) = %d, expected 50", len(st.Stars))
	}
	if len(st.Obstacles) != 0 || st.Score != 0 || st.SpawnTimer != 0 || st.Over {
		t.Errorf("Fresh run should be empty and running, got %+v", st)
	}
}

func TestTickScoreAccumulatesElapsedTime(t *testing.T) {
	var counter callbackCounter
	h := startTestHandleWith(t, 600, 800, 1, counter.callbacks())
	now := time.Unix(50, 0)

	h.Tick(core.NewInputFrame(now, false))
	if h.State().Score != 0 {
		t.Errorf("First tick should have dt=0, score = %v", h.State().Score)
	}

	h.Tick(core.NewInputFrame(now.Add(250*time.Millisecond), false))
	h.Tick(core.NewInputFrame(now.Add(500*time.Millisecond), false))

	if !approx(h.State().Score, 0.5) {
		t.Errorf("Score = %v, expected 0.5", h.State().Score)
	}
	if counter.scores != 3 {
		t.Errorf("OnScore called %d times, expected 3", counter.scores)
	}
	if !approx(counter.lastScore, 0.5) {
		t.Errorf("Reported score = %v, expected 0.5", counter.lastScore)
	}
}

func TestTickIgnoresBackwardsClock(t *testing.T) {
	h := startTestHandle(t, 600, 800, 1)
	now := time.Unix(50, 0)

	h.Tick(core.NewInputFrame(now, false))
	h.Tick(core.NewInputFrame(now.Add(-time.Second), false))

	if h.State().Score != 0 {
		t.Errorf("Negative frame time should count as zero, score = %v", h.State().Score)
	}
}

func TestTickSpawnCadence(t *testing.T) {
	h := startTestHandle(t, 600, 800, 1)
	now := time.Unix(0, 0)

	h.Tick(core.NewInputFrame(now, false))
	h.Tick(core.NewInputFrame(now.Add(1500*time.Millisecond), false))
	if n := len(h.State().Obstacles); n != 0 {
		t.Fatalf("Timer at exactly the interval should not spawn, got %d obstacles", n)
	}

	h.Tick(core.NewInputFrame(now.Add(1600*time.Millisecond), false))
	if n := len(h.State().Obstacles); n != 1 {
		t.Fatalf("Expected 1 obstacle after the interval elapsed, got %d", n)
	}
	if h.State().SpawnTimer != 0 {
		t.Errorf("Spawn timer should reset to 0, got %v", h.State().SpawnTimer)
	}
}

func TestTickGroundEndsRunOnSameTick(t *testing.T) {
	var counter callbackCounter
	h := startTestHandleWith(t, 600, 800, 1, counter.callbacks())

	// After one tick the craft sits exactly at 800 - 4 - 20
	h.State().Craft = Craft{Y: 776, Velocity: -0.05}
	now := time.Unix(0, 0)

	if cont := h.Tick(core.NewInputFrame(now, false)); cont {
		t.Error("Tick should not request another frame after game over")
	}
	if !h.State().Over {
		t.Fatal("Reaching the ground should end the run")
	}
	if counter.gameOvers != 1 {
		t.Errorf("OnGameOver called %d times, expected 1", counter.gameOvers)
	}

	// Further ticks are no-ops
	for i := 1; i <= 5; i++ {
		if h.Tick(core.NewInputFrame(now.Add(time.Duration(i)*time.Second), false)) {
			t.Error("Tick after game over should return false")
		}
	}
	if counter.gameOvers != 1 || counter.scores != 1 {
		t.Errorf("Callbacks fired after game over: scores=%d gameOvers=%d", counter.scores, counter.gameOvers)
	}
}

func TestTickCeilingEndsRun(t *testing.T) {
	var counter callbackCounter
	h := startTestHandleWith(t, 600, 800, 1, counter.callbacks())
	h.State().Craft = Craft{Y: 0.5, Velocity: -1}

	h.Tick(core.NewInputFrame(time.Unix(0, 0), true))

	if !h.State().Over || counter.gameOvers != 1 {
		t.Errorf("Leaving the top should end the run once, over=%v calls=%d", h.State().Over, counter.gameOvers)
	}
}

func TestTickSeveralEndConditionsNotifyOnce(t *testing.T) {
	var counter callbackCounter
	h := startTestHandleWith(t, 600, 800, 1, counter.callbacks())
	st := h.State()
	st.Craft = Craft{Y: 790}
	st.Obstacles = []Obstacle{
		{Kind: KindEnemy, X: 280, Y: 780, Width: 40, Height: 40},
		{Kind: KindAsteroid, X: 298, Y: 795, Width: 10, Height: 10},
	}

	h.Tick(core.NewInputFrame(time.Unix(0, 0), false))

	if counter.gameOvers != 1 {
		t.Errorf("OnGameOver called %d times, expected exactly 1", counter.gameOvers)
	}
}

func TestTickCollisionUsesUpdatedPositions(t *testing.T) {
	h := startTestHandle(t, 600, 800, 1)
	st := h.State()
	// Right edge at 294 before moving, 296 after; the craft starts at x=295
	st.Obstacles = []Obstacle{{Kind: KindAsteroid, X: 284, Y: 405, Width: 10, Height: 10, Speed: 2}}

	h.Tick(core.NewInputFrame(time.Unix(0, 0), false))

	if !h.State().Over {
		t.Error("Obstacle moving into the craft should end the run on this tick")
	}
}

func TestTickMissingObstacleKeepsRunning(t *testing.T) {
	h := startTestHandle(t, 600, 800, 1)
	st := h.State()
	st.Obstacles = []Obstacle{{Kind: KindLaser, X: 100, Y: 100, Width: 60, Height: 2, Speed: 1}}

	if !h.Tick(core.NewInputFrame(time.Unix(0, 0), false)) {
		t.Error("Run should continue when nothing is hit")
	}
}

func TestStopSilencesLoop(t *testing.T) {
	var counter callbackCounter
	h := startTestHandleWith(t, 600, 800, 1, counter.callbacks())
	h.State().Craft = Craft{Y: 790}

	h.Stop()
	h.Stop()

	if h.Tick(core.NewInputFrame(time.Unix(0, 0), false)) {
		t.Error("Stopped loop should not request frames")
	}
	if counter.scores != 0 || counter.gameOvers != 0 {
		t.Errorf("Stopped loop fired callbacks: scores=%d gameOvers=%d", counter.scores, counter.gameOvers)
	}
	if !h.Stopped() {
		t.Error("Stopped() should report true")
	}

	var nilHandle *Handle
	nilHandle.Stop() // Should not panic
}

func TestLoopDeterministicWithSeed(t *testing.T) {
	run := func() *Handle {
		h := startTestHandle(t, 600, 800, 2024)
		now := time.Unix(0, 0)
		for i := 0; i < 600; i++ {
			thrust := (i/20)%2 == 0
			if !h.Tick(core.NewInputFrame(now, thrust)) {
				break
			}
			now = now.Add(time.Second / 60)
		}
		return h
	}

	a, b := run(), run()
	sa, sb := a.State(), b.State()

	if sa.Ticks != sb.Ticks || sa.Score != sb.Score || sa.Craft != sb.Craft || sa.Over != sb.Over {
		t.Errorf("Runs diverged: %+v vs %+v", sa.Craft, sb.Craft)
	}
	if len(sa.Obstacles) != len(sb.Obstacles) {
		t.Fatalf("Obstacle counts differ: %d vs %d", len(sa.Obstacles), len(sb.Obstacles))
	}
	for i := range sa.Obstacles {
		if sa.Obstacles[i] != sb.Obstacles[i] {
			t.Errorf("Obstacle %d differs: %+v vs %+v", i, sa.Obstacles[i], sb.Obstacles[i])
		}
	}
	for i := range sa.Stars {
		if sa.Stars[i] != sb.Stars[i] {
			t.Errorf("Star %d differs", i)
		}
	}
	if !bytes.Equal(a.Surface().Pix(), b.Surface().Pix()) {
		t.Error("Rendered frames differ for the same seed")
	}
}

func TestStarCountInvariantAcrossTicks(t *testing.T) {
	h := startTestHandle(t, 600, 800, 8)
	now := time.Unix(0, 0)

	for i := 0; i < 1000; i++ {
		h.State().Over = false
		h.State().Craft = Craft{Y: 400}
		h.State().Obstacles = h.State().Obstacles[:0]
		h.Tick(core.NewInputFrame(now, i%2 == 0))
		now = now.Add(time.Second / 60)

		if n := len(h.State().Stars); n != 50 {
			t.Fatalf("Tick %d: star count = %d", i, n)
		}
	}
}
