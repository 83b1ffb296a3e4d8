package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssibiryakova/termtoys/internal/guess"
	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// GuessModel runs the number guessing game.
type GuessModel struct {
	cfg      guess.Config
	game     *guess.Game
	input    textinput.Model
	lines    []string
	status   string
	gameOver bool
	store    *stats.Store
	quitting bool
}

// NewGuess creates the guessing game screen. store may be nil.
func NewGuess(cfg guess.Config, store *stats.Store) (*GuessModel, error) {
	game, err := guess.New(cfg)
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "enter a number, or \"hint\""
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Focus()

	return &GuessModel{
		cfg:    cfg,
		game:   game,
		input:  ti,
		status: fmt.Sprintf("I picked a number between %d and %d. You have %d tries.", cfg.Min, cfg.Max, cfg.MaxTries),
		store:  store,
	}, nil
}

// Init implements tea.Model
func (m *GuessModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *GuessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.gameOver {
				m.restart()
				return m, nil
			}
			m.submit()
			return m, nil
		case "q":
			if m.gameOver || m.input.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GuessModel) submit() {
	raw := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if raw == "" {
		return
	}

	if strings.EqualFold(raw, "hint") {
		hint, err := m.game.Hint()
		if err != nil {
			m.status = err.Error()
			return
		}
		m.lines = append(m.lines, faintStyle.Render("Hint: "+hint))
		m.status = fmt.Sprintf("That hint cost you 5 points. Score: %d", m.game.Score())
		return
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		m.status = fmt.Sprintf("%q is not a number.", raw)
		return
	}

	res, err := m.game.Guess(n)
	if err != nil {
		m.status = err.Error()
		return
	}

	switch {
	case res.Correct:
		m.lines = append(m.lines, resultStyle.Render(
			fmt.Sprintf("%d is correct! You won with %d points after %d tries.", n, res.Score, m.game.Tries())))
		m.finish(true)
	case res.GameOver:
		m.lines = append(m.lines, errorStyle.Render(
			fmt.Sprintf("Out of tries. The number was %d.", m.game.Secret())))
		m.finish(false)
	default:
		m.lines = append(m.lines, fmt.Sprintf("%d: %s", n, res.Hint))
		m.status = fmt.Sprintf("Try %d/%d, score %d", m.game.Tries(), m.game.MaxTries(), res.Score)
	}
}

func (m *GuessModel) finish(won bool) {
	m.gameOver = true
	m.status = "Press enter to play again, q to quit."

	steps := m.game.OptimalStrategy()
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = strconv.Itoa(s)
	}
	m.lines = append(m.lines, faintStyle.Render(fmt.Sprintf(
		"Binary search would have found it in %d tries: %s", len(steps), strings.Join(parts, ", "))))

	if m.store == nil {
		return
	}
	if err := m.store.RecordGame("guess", won, m.game.Score()); err != nil {
		logger.Warn("failed to record guess result: %v", err)
	}
}

func (m *GuessModel) restart() {
	game, err := guess.New(m.cfg)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.game = game
	m.lines = nil
	m.gameOver = false
	m.input.SetValue("")
	m.status = fmt.Sprintf("New game. I picked a number between %d and %d.", m.cfg.Min, m.cfg.Max)
}

// View renders the game
func (m *GuessModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Guess the Number"))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.status)
	b.WriteString("\n")
	if !m.gameOver {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: Guess • \"hint\": Extra hint (-5) • esc: Quit"))
	return b.String()
}
