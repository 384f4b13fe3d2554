package core

import (
	"sync"
	"testing"
)

func TestThrustSignalLastWriteWins(t *testing.T) {
	var s ThrustSignal

	if s.Active() {
		t.Error("Zero-value signal should be inactive")
	}

	s.Press()
	s.Press()
	if !s.Active() {
		t.Error("Signal should be active after Press")
	}

	s.Release()
	if s.Active() {
		t.Error("Signal should be inactive after Release")
	}

	s.Set(true)
	s.Set(false)
	if s.Active() {
		t.Error("Last write should win")
	}
}

func TestThrustSignalConcurrentWriters(t *testing.T) {
	var s ThrustSignal
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(on bool) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(on)
				_ = s.Active()
			}
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionThrust, "Thrust"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}
