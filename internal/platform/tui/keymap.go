package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

// KeyMap defines key bindings for the rocket screen.
type KeyMap struct {
	Thrust  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Restart, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/click", "boost"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Thrust):
		return core.ActionThrust
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// thrustLatch merges pointer and keyboard thrust.
//
// Terminals report mouse press and release, so the pointer side is an exact
// held state. Keys only arrive as repeated presses, so each key press holds
// thrust for a short window that the next auto-repeat extends.
type thrustLatch struct {
	pointer  core.ThrustSignal
	hold     time.Duration
	keyUntil time.Time
}

func newThrustLatch(hold time.Duration) *thrustLatch {
	return &thrustLatch{hold: hold}
}

// Key records a thrust key press at now.
func (l *thrustLatch) Key(now time.Time) {
	l.keyUntil = now.Add(l.hold)
}

// Press and Release track the pointer button.
func (l *thrustLatch) Press()   { l.pointer.Press() }
func (l *thrustLatch) Release() { l.pointer.Release() }

// Active reports whether thrust is held at now.
func (l *thrustLatch) Active(now time.Time) bool {
	return l.pointer.Active() || now.Before(l.keyUntil)
}

// Reset drops any held input.
func (l *thrustLatch) Reset() {
	l.pointer.Release()
	l.keyUntil = time.Time{}
}
