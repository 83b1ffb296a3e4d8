package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/rps"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// rpsCountdownMsg drives the "rock... paper... scissors..." reveal.
type rpsCountdownMsg struct{}

var countdownWords = []string{"Rock...", "Paper...", "Scissors..."}

// RPSModel runs rock paper scissors against the computer.
type RPSModel struct {
	game      *rps.Game
	pending   rps.Move
	countdown int
	animate   bool
	lastLine  string
	lastArt   string
	store     *stats.Store
	quitting  bool
}

// NewRPS creates the rock paper scissors screen. store may be nil.
func NewRPS(store *stats.Store, disableAnimations bool) *RPSModel {
	return &RPSModel{
		game:      &rps.Game{},
		countdown: -1,
		animate:   !disableAnimations,
		store:     store,
	}
}

// Init implements tea.Model
func (m *RPSModel) Init() tea.Cmd {
	return nil
}

func countdownTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return rpsCountdownMsg{}
	})
}

// Update handles messages
func (m *RPSModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.countdown >= 0 {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.recordResult()
			m.quitting = true
			return m, tea.Quit
		default:
			move, ok := rps.ParseMove(msg.String())
			if !ok {
				return m, nil
			}
			m.pending = move
			if m.animate {
				m.countdown = 0
				return m, countdownTick()
			}
			m.reveal()
			return m, nil
		}

	case rpsCountdownMsg:
		m.countdown++
		if m.countdown >= len(countdownWords) {
			m.countdown = -1
			m.reveal()
			return m, nil
		}
		return m, countdownTick()
	}

	return m, nil
}

func (m *RPSModel) reveal() {
	res := m.game.Play(m.pending)

	var verdict string
	switch res.Outcome {
	case rps.OutcomeWin:
		verdict = resultStyle.Render("You win!")
	case rps.OutcomeLose:
		verdict = errorStyle.Render("You lose!")
	default:
		verdict = faintStyle.Render("Draw.")
	}

	m.lastLine = fmt.Sprintf("You played %s, the computer played %s. %s",
		res.Player, res.Computer, verdict)
	m.lastArt = lipgloss.JoinHorizontal(lipgloss.Top,
		rps.Art(res.Player), "   vs   ", rps.Art(res.Computer))
}

// recordResult stores the session as won when the player leads on rounds.
func (m *RPSModel) recordResult() {
	if m.store == nil || m.game.Rounds == 0 {
		return
	}
	won := m.game.PlayerScore > m.game.ComputerScore
	if err := m.store.RecordGame("rps", won, m.game.PlayerScore); err != nil {
		logger.Warn("failed to record rps result: %v", err)
	}
}

// View renders the game
func (m *RPSModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Rock Paper Scissors"))
	b.WriteString("\n\n")

	if m.countdown >= 0 && m.countdown < len(countdownWords) {
		b.WriteString(accentStyle.Render(countdownWords[m.countdown]))
		b.WriteString("\n")
	} else if m.lastLine != "" {
		b.WriteString(m.lastArt)
		b.WriteString("\n")
		b.WriteString(m.lastLine)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("You %d : %d Computer (%d draws, %d rounds, %.0f%% win rate)",
		m.game.PlayerScore, m.game.ComputerScore, m.game.Draws, m.game.Rounds, m.game.WinRate()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r: Rock • p: Paper • s: Scissors • q: Quit"))
	return b.String()
}
