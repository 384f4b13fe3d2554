package core

import (
	"sync/atomic"
	"time"
)

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw events.
type Action int

const (
	ActionNone    Action = iota
	ActionThrust         // Space, Up, pointer press - fire the engine
	ActionRestart        // R key, restart button - new run after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ThrustSignal is a last-write-wins boolean fed by asynchronous input events
// (press sets it, release clears it). Safe for use from multiple goroutines.
type ThrustSignal struct {
	active atomic.Bool
}

// Press marks thrust as active.
func (t *ThrustSignal) Press() {
	t.active.Store(true)
}

// Release marks thrust as inactive.
func (t *ThrustSignal) Release() {
	t.active.Store(false)
}

// Set stores the given state.
func (t *ThrustSignal) Set(on bool) {
	t.active.Store(on)
}

// Active returns the latest written state.
func (t *ThrustSignal) Active() bool {
	return t.active.Load()
}

// InputFrame is the input snapshot a game consumes for one tick.
// Hosts build it at the start of the tick from their live input state.
type InputFrame struct {
	Now    time.Time // Host frame timestamp
	Thrust bool      // Whether thrust is held during this tick
}

// NewInputFrame creates an input frame for the given timestamp.
func NewInputFrame(now time.Time, thrust bool) InputFrame {
	return InputFrame{Now: now, Thrust: thrust}
}
