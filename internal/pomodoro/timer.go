// Package pomodoro implements the phase state machine of a pomodoro timer:
// work phases alternating with short breaks, and a long break after a
// configurable number of completed work cycles.
package pomodoro

import (
	"fmt"
	"time"
)

// Phase identifies what the timer is currently counting down.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// String returns a display name for the phase
func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Unknown"
	}
}

// Settings hold the configurable durations of a timer.
type Settings struct {
	WorkMinutes           int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

// DefaultSettings returns the classic 25/5/15 configuration with a long
// break every fourth cycle.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:           25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate reports whether the settings describe a runnable timer.
func (s Settings) Validate() error {
	if s.WorkMinutes < 1 {
		return fmt.Errorf("work duration must be at least 1 minute, got %d", s.WorkMinutes)
	}
	if s.ShortBreakMinutes < 1 {
		return fmt.Errorf("short break must be at least 1 minute, got %d", s.ShortBreakMinutes)
	}
	if s.LongBreakMinutes < 1 {
		return fmt.Errorf("long break must be at least 1 minute, got %d", s.LongBreakMinutes)
	}
	if s.CyclesBeforeLongBreak < 1 {
		return fmt.Errorf("cycles before long break must be at least 1, got %d", s.CyclesBeforeLongBreak)
	}
	return nil
}

// Timer tracks the current phase and completed work cycles. It is a pure
// state machine: callers drive the clock and call Advance when a phase ends.
type Timer struct {
	settings        Settings
	phase           Phase
	cycleInRound    int // work phases completed since the last long break
	completedCycles int // work phases completed overall
}

// New creates a timer starting in the work phase.
func New(settings Settings) *Timer {
	return &Timer{settings: settings, phase: PhaseWork}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase {
	return t.phase
}

// PhaseDuration returns how long the current phase lasts.
func (t *Timer) PhaseDuration() time.Duration {
	switch t.phase {
	case PhaseShortBreak:
		return time.Duration(t.settings.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(t.settings.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(t.settings.WorkMinutes) * time.Minute
	}
}

// Advance marks the current phase as finished and switches to the next one.
// Finishing a work phase counts a cycle; every CyclesBeforeLongBreak-th
// cycle is followed by a long break instead of a short one.
func (t *Timer) Advance() Phase {
	switch t.phase {
	case PhaseWork:
		t.completedCycles++
		t.cycleInRound++
		if t.cycleInRound >= t.settings.CyclesBeforeLongBreak {
			t.cycleInRound = 0
			t.phase = PhaseLongBreak
		} else {
			t.phase = PhaseShortBreak
		}
	default:
		t.phase = PhaseWork
	}
	return t.phase
}

// CompletedCycles returns the number of finished work phases.
func (t *Timer) CompletedCycles() int {
	return t.completedCycles
}

// TotalWorkMinutes returns the accumulated work time in minutes.
func (t *Timer) TotalWorkMinutes() int {
	return t.completedCycles * t.settings.WorkMinutes
}

// Settings returns the timer configuration.
func (t *Timer) Settings() Settings {
	return t.settings
}
