package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssibiryakova/termtoys/internal/hangman"
	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// HangmanModel runs the hangman word game.
type HangmanModel struct {
	difficulty hangman.Difficulty
	game       *hangman.Game
	status     string
	recorded   bool
	store      *stats.Store
	quitting   bool
}

// NewHangman creates the hangman screen. store may be nil.
func NewHangman(d hangman.Difficulty, store *stats.Store) *HangmanModel {
	game := hangman.New(d)
	return &HangmanModel{
		difficulty: d,
		game:       game,
		status:     fmt.Sprintf("Difficulty %s, %d wrong guesses allowed.", d, game.MaxMisses()),
		store:      store,
	}
}

// Init implements tea.Model
func (m *HangmanModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *HangmanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if m.game.Over() {
			m.restart()
		}
		return m, nil
	case "?":
		m.hint()
		return m, nil
	}

	if m.game.Over() {
		if key.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	runes := key.Runes
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return m, nil
	}
	m.guess(runes[0])
	return m, nil
}

func (m *HangmanModel) guess(letter rune) {
	res, err := m.game.Guess(letter)
	if err != nil {
		m.status = err.Error()
		return
	}

	switch {
	case res.Won:
		m.status = resultStyle.Render(fmt.Sprintf("You won! The word was %q.", m.game.Word()))
		m.finish(true)
	case res.Lost:
		m.status = errorStyle.Render(fmt.Sprintf("You lost. The word was %q.", m.game.Word()))
		m.finish(false)
	case res.Correct:
		m.status = fmt.Sprintf("%q is in the word.", letter)
	default:
		m.status = fmt.Sprintf("%q is not in the word. %d misses left.", letter, m.game.Remaining())
	}
}

func (m *HangmanModel) hint() {
	letter, err := m.game.Hint()
	if err != nil {
		if errors.Is(err, hangman.ErrHintUnavailable) {
			m.status = "No hint available right now."
		} else {
			m.status = err.Error()
		}
		return
	}
	m.status = fmt.Sprintf("Hint: the word contains %q.", letter)
	if m.game.Won() {
		m.status = resultStyle.Render(fmt.Sprintf("You won! The word was %q.", m.game.Word()))
		m.finish(true)
	}
}

func (m *HangmanModel) finish(won bool) {
	if m.recorded || m.store == nil {
		return
	}
	m.recorded = true
	score := m.game.Remaining()
	if err := m.store.RecordGame("hangman", won, score); err != nil {
		logger.Warn("failed to record hangman result: %v", err)
	}
}

func (m *HangmanModel) restart() {
	m.game = hangman.New(m.difficulty)
	m.recorded = false
	m.status = "New word picked. Good luck!"
}

// View renders the game
func (m *HangmanModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Hangman"))
	b.WriteString("\n\n")

	b.WriteString(m.game.GallowsArt())
	b.WriteString("\n\n")

	b.WriteString(resultStyle.Render(m.game.Masked()))
	b.WriteString("\n\n")

	guessed := m.game.GuessedLetters()
	if len(guessed) > 0 {
		parts := make([]string, len(guessed))
		for i, r := range guessed {
			parts[i] = string(r)
		}
		b.WriteString(faintStyle.Render("Guessed: " + strings.Join(parts, " ")))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Misses: %d/%d", m.game.Misses(), m.game.MaxMisses()))
	b.WriteString("\n\n")

	b.WriteString(m.status)
	b.WriteString("\n")
	if m.game.Over() {
		b.WriteString(helpStyle.Render("enter: Play again • q: Quit"))
	} else {
		b.WriteString(helpStyle.Render("a-z: Guess a letter • ?: Hint • esc: Quit"))
	}
	return b.String()
}
