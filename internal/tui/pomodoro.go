package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/pomodoro"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// pomodoroTickMsg advances the countdown once per second.
type pomodoroTickMsg time.Time

// PomodoroModel runs the pomodoro timer with a per-phase progress bar.
type PomodoroModel struct {
	timer     *pomodoro.Timer
	bar       progress.Model
	remaining time.Duration
	total     time.Duration
	paused    bool
	banner    string
	store     *stats.Store
	quitting  bool
}

// NewPomodoro creates the timer screen. The first work phase starts
// immediately. store may be nil.
func NewPomodoro(settings pomodoro.Settings, store *stats.Store, disableAnimations bool) *PomodoroModel {
	timer := pomodoro.New(settings)

	var bar progress.Model
	if disableAnimations {
		bar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	} else {
		bar = progress.New(progress.WithDefaultGradient())
	}

	total := timer.PhaseDuration()
	return &PomodoroModel{
		timer:     timer,
		bar:       bar,
		remaining: total,
		total:     total,
		store:     store,
	}
}

func (m *PomodoroModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return pomodoroTickMsg(t)
	})
}

// Init implements tea.Model
func (m *PomodoroModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m *PomodoroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.recordSession()
			m.quitting = true
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width < 20 {
			width = 20
		}
		if width > 60 {
			width = 60
		}
		m.bar.Width = width
		return m, nil

	case pomodoroTickMsg:
		if !m.paused {
			m.remaining -= time.Second
			if m.remaining <= 0 {
				m.banner = fmt.Sprintf("%s finished!", m.timer.Phase())
				m.timer.Advance()
				m.total = m.timer.PhaseDuration()
				m.remaining = m.total
				// Ring the terminal bell once per phase change.
				return m, tea.Batch(tea.Printf("\a"), m.tick())
			}
		}
		return m, m.tick()
	}

	return m, nil
}

// recordSession persists completed work cycles when the screen closes.
func (m *PomodoroModel) recordSession() {
	if m.store == nil || m.timer.CompletedCycles() == 0 {
		return
	}
	if err := m.store.RecordPomodoro(m.timer.TotalWorkMinutes(), m.timer.CompletedCycles()); err != nil {
		logger.Warn("failed to record pomodoro session: %v", err)
	}
}

// View renders the timer
func (m *PomodoroModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pomodoro"))
	b.WriteString("\n")

	phase := m.timer.Phase().String()
	if m.paused {
		phase += " (paused)"
	}
	b.WriteString(accentStyle.Render(phase))
	b.WriteString("\n\n")

	mins := int(m.remaining.Minutes())
	secs := int(m.remaining.Seconds()) % 60
	b.WriteString(resultStyle.Render(fmt.Sprintf("%02d:%02d", mins, secs)))
	b.WriteString("\n")

	elapsed := float64(m.total-m.remaining) / float64(m.total)
	b.WriteString(m.bar.ViewAs(elapsed))
	b.WriteString("\n\n")

	if m.banner != "" {
		b.WriteString(bannerStyle.Render(m.banner))
		b.WriteString("\n\n")
	}

	b.WriteString(faintStyle.Render(fmt.Sprintf("Completed cycles: %d (%d minutes of work)",
		m.timer.CompletedCycles(), m.timer.TotalWorkMinutes())))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("p: Pause/Resume • q: Quit"))
	return b.String()
}
