package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssibiryakova/termtoys/internal/guess"
	"github.com/ssibiryakova/termtoys/internal/hangman"
	"github.com/ssibiryakova/termtoys/internal/pomodoro"
	"github.com/ssibiryakova/termtoys/internal/rps"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

func typeString(t *testing.T, model tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func pressEnter(model tea.Model) tea.Model {
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model
}

func TestCalcModelEvaluates(t *testing.T) {
	var model tea.Model = NewCalc(nil)
	model = typeString(t, model, "2+3*4")
	model = pressEnter(model)

	calc := model.(*CalcModel)
	if len(calc.history) != 1 {
		t.Fatalf("expected 1 history line, got %d", len(calc.history))
	}
	if calc.history[0].result != "14" {
		t.Errorf("expected result 14, got %q", calc.history[0].result)
	}
	if calc.history[0].failed {
		t.Error("expected a successful evaluation")
	}
	if !strings.Contains(model.View(), "14") {
		t.Error("expected the result in the rendered view")
	}
}

func TestCalcModelShowsErrors(t *testing.T) {
	var model tea.Model = NewCalc(nil)
	model = typeString(t, model, "1.2.3")
	model = pressEnter(model)

	calc := model.(*CalcModel)
	if len(calc.history) != 1 {
		t.Fatalf("expected 1 history line, got %d", len(calc.history))
	}
	if !calc.history[0].failed {
		t.Error("expected a failed evaluation")
	}
}

func TestCalcModelHistoryIsBounded(t *testing.T) {
	var model tea.Model = NewCalc(nil)
	for i := 0; i < calcHistorySize+5; i++ {
		model = typeString(t, model, "1+1")
		model = pressEnter(model)
	}

	calc := model.(*CalcModel)
	if len(calc.history) != calcHistorySize {
		t.Errorf("expected history capped at %d, got %d", calcHistorySize, len(calc.history))
	}
}

func TestGuessModelRejectsNonNumbers(t *testing.T) {
	gm, err := NewGuess(guess.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	var model tea.Model = gm
	model = typeString(t, model, "abc")
	model = pressEnter(model)

	if !strings.Contains(model.(*GuessModel).status, "not a number") {
		t.Errorf("expected a rejection message, got %q", model.(*GuessModel).status)
	}
}

func TestHangmanModelIgnoresNonLetters(t *testing.T) {
	var model tea.Model = NewHangman(hangman.DifficultyEasy, nil)
	before := model.(*HangmanModel).game.Misses()
	model = typeString(t, model, "7!")
	after := model.(*HangmanModel).game.Misses()

	if before != after {
		t.Errorf("non-letter input changed miss count from %d to %d", before, after)
	}
}

func TestPomodoroModelCountsDown(t *testing.T) {
	model := NewPomodoro(pomodoro.DefaultSettings(), nil, true)
	start := model.remaining

	updated, _ := model.Update(pomodoroTickMsg{})
	pm := updated.(*PomodoroModel)
	if pm.remaining != start-time.Second {
		t.Errorf("expected remaining to drop by one second, got %v -> %v", start, pm.remaining)
	}
}

func TestPomodoroModelPause(t *testing.T) {
	model := NewPomodoro(pomodoro.DefaultSettings(), nil, true)
	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	pm := updated.(*PomodoroModel)
	if !pm.paused {
		t.Fatal("expected the timer to pause")
	}

	before := pm.remaining
	updated, _ = pm.Update(pomodoroTickMsg{})
	pm = updated.(*PomodoroModel)
	if pm.remaining != before {
		t.Error("expected a paused timer to keep its remaining time")
	}
}

func TestRPSViewShowsWinRateAsPercent(t *testing.T) {
	model := NewRPS(nil, true)
	model.game = &rps.Game{PlayerScore: 1, ComputerScore: 1, Rounds: 2}

	view := model.View()
	if !strings.Contains(view, "50% win rate") {
		t.Errorf("expected a 50%% win rate in the view, got %q", view)
	}
}

func TestRenderStatsShowsWinRateAsPercent(t *testing.T) {
	store, err := stats.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if err := store.RecordGame("rps", true, 3); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordGame("rps", false, 1); err != nil {
		t.Fatal(err)
	}

	out, err := RenderStats(store)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "50%") {
		t.Errorf("expected a 50%% win rate, got %q", out)
	}
	if strings.Contains(out, "5000%") {
		t.Errorf("win rate rendered as a double percentage: %q", out)
	}
}

func TestPomodoroModelPhaseChange(t *testing.T) {
	model := NewPomodoro(pomodoro.DefaultSettings(), nil, true)
	model.remaining = time.Second

	updated, cmd := model.Update(pomodoroTickMsg{})
	pm := updated.(*PomodoroModel)
	if pm.banner == "" {
		t.Fatal("expected a banner after the phase ended")
	}
	if cmd == nil {
		t.Fatal("expected a command carrying the bell and the next tick")
	}
	if pm.timer.Phase() != pomodoro.PhaseShortBreak {
		t.Errorf("expected the short break phase, got %v", pm.timer.Phase())
	}

	first := pm.View()
	if strings.Contains(first, "\a") {
		t.Error("the view must not carry the terminal bell")
	}
	if second := pm.View(); second != first {
		t.Error("expected repeated renders to be identical")
	}
}

func TestRenderHelp(t *testing.T) {
	out, err := RenderHelp(80)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "termtoys") {
		t.Error("expected the help text to mention the binary name")
	}
}
