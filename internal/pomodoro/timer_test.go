package pomodoro

import (
	"testing"
	"time"
)

func TestTimerPhaseSequence(t *testing.T) {
	timer := New(DefaultSettings())

	if timer.Phase() != PhaseWork {
		t.Fatalf("new timer phase = %v, want %v", timer.Phase(), PhaseWork)
	}

	// Three work phases each followed by a short break, the fourth by a
	// long break.
	want := []Phase{
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseShortBreak, PhaseWork,
		PhaseLongBreak, PhaseWork,
	}
	for i, phase := range want {
		if got := timer.Advance(); got != phase {
			t.Fatalf("advance %d = %v, want %v", i, got, phase)
		}
	}

	if timer.CompletedCycles() != 4 {
		t.Errorf("completed cycles = %d, want 4", timer.CompletedCycles())
	}
}

func TestTimerLongBreakRepeats(t *testing.T) {
	settings := DefaultSettings()
	settings.CyclesBeforeLongBreak = 2
	timer := New(settings)

	var longBreaks int
	for i := 0; i < 12; i++ {
		if timer.Advance() == PhaseLongBreak {
			longBreaks++
		}
	}
	// 12 advances = 6 finished work phases = a long break after every 2nd.
	if longBreaks != 3 {
		t.Errorf("long breaks = %d, want 3", longBreaks)
	}
}

func TestTimerPhaseDuration(t *testing.T) {
	settings := Settings{
		WorkMinutes:           20,
		ShortBreakMinutes:     3,
		LongBreakMinutes:      10,
		CyclesBeforeLongBreak: 1,
	}
	timer := New(settings)

	if got := timer.PhaseDuration(); got != 20*time.Minute {
		t.Errorf("work duration = %v, want 20m", got)
	}
	timer.Advance() // first cycle complete, straight to long break
	if got := timer.PhaseDuration(); got != 10*time.Minute {
		t.Errorf("long break duration = %v, want 10m", got)
	}
}

func TestTimerTotalWorkMinutes(t *testing.T) {
	timer := New(DefaultSettings())
	timer.Advance() // work -> break
	timer.Advance() // break -> work
	timer.Advance() // work -> break

	if got := timer.TotalWorkMinutes(); got != 50 {
		t.Errorf("total work minutes = %d, want 50", got)
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}

	bad := DefaultSettings()
	bad.WorkMinutes = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero work duration")
	}

	bad = DefaultSettings()
	bad.CyclesBeforeLongBreak = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero cycle count")
	}
}
