package rocket

import (
	"time"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

// ThrustPattern decides whether thrust is held on tick i.
type ThrustPattern func(i int) bool

// Pulse holds thrust for the first on ticks of every on+off ticks.
// With on <= 0 it never thrusts.
func Pulse(on, off int) ThrustPattern {
	if on <= 0 {
		return func(int) bool { return false }
	}
	period := on + max(off, 0)
	return func(i int) bool {
		return i%period < on
	}
}

// RunHeadless drives h for up to ticks frames on a synthetic clock that starts
// at start and advances by step, without a display. It stops early when the
// run ends and returns the number of ticks executed.
func RunHeadless(h *Handle, start time.Time, step time.Duration, ticks int, thrust ThrustPattern) int {
	if thrust == nil {
		thrust = Pulse(0, 0)
	}
	now := start
	for i := 0; i < ticks; i++ {
		if !h.Tick(core.NewInputFrame(now, thrust(i))) {
			return i + 1
		}
		now = now.Add(step)
	}
	return ticks
}
