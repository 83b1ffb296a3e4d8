package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ssibiryakova/termtoys/internal/calc"
	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// historyLine is one evaluated expression shown above the input.
type historyLine struct {
	expr   string
	result string
	failed bool
}

const calcHistorySize = 12

// CalcModel is the interactive calculator screen.
type CalcModel struct {
	input    textinput.Model
	history  []historyLine
	store    *stats.Store
	quitting bool
}

// NewCalc creates the calculator screen. store may be nil when the stats
// database is unavailable.
func NewCalc(store *stats.Store) *CalcModel {
	ti := textinput.New()
	ti.Placeholder = "3 + 4 * (2 - 1)"
	ti.Prompt = "= "
	ti.Focus()
	ti.CharLimit = 256

	return &CalcModel{input: ti, store: store}
}

// Init implements tea.Model
func (m *CalcModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.evaluate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CalcModel) evaluate() {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return
	}
	m.input.SetValue("")

	value, err := calc.Evaluate(expr)
	line := historyLine{expr: expr}
	if err != nil {
		line.result = err.Error()
		line.failed = true
	} else {
		line.result = calc.FormatResult(value)
		if m.store != nil {
			if err := m.store.RecordCalc(calc.Normalize(expr), value); err != nil {
				logger.Warn("failed to record expression: %v", err)
			}
		}
	}

	m.history = append(m.history, line)
	if len(m.history) > calcHistorySize {
		m.history = m.history[len(m.history)-calcHistorySize:]
	}
}

// View renders the calculator
func (m *CalcModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Calculator"))
	b.WriteString("\n")

	for _, line := range m.history {
		if line.failed {
			b.WriteString(fmt.Sprintf("  %s\n  %s\n", faintStyle.Render(line.expr), errorStyle.Render(line.result)))
		} else {
			b.WriteString(fmt.Sprintf("  %s = %s\n", faintStyle.Render(line.expr), resultStyle.Render(line.result)))
		}
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Enter: Evaluate • Esc: Quit"))
	return b.String()
}
