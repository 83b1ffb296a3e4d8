package tui

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"

	"github.com/ssibiryakova/termtoys/internal/password"
)

var (
	clipboardInit sync.Once
	clipboardErr  error
)

// PasswordModel shows a generated password with regenerate and copy actions.
type PasswordModel struct {
	opts     password.Options
	current  string
	status   string
	err      error
	quitting bool
}

// NewPassword creates the password screen and generates a first password.
func NewPassword(opts password.Options) *PasswordModel {
	m := &PasswordModel{opts: opts}
	m.regenerate()
	return m
}

func (m *PasswordModel) regenerate() {
	pw, err := password.Generate(m.opts)
	m.current = pw
	m.err = err
	m.status = ""
}

// copyToClipboard writes the password to the system clipboard.
func (m *PasswordModel) copyToClipboard() {
	clipboardInit.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		m.status = fmt.Sprintf("Clipboard unavailable: %v", clipboardErr)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(m.current))
	m.status = "Copied to clipboard"
}

// Init implements tea.Model
func (m *PasswordModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *PasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "r", "n", "enter":
			m.regenerate()
		case "y", "c":
			m.copyToClipboard()
		}
	}
	return m, nil
}

// View renders the password screen
func (m *PasswordModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Password generator"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
	} else {
		b.WriteString(boxStyle.Render(resultStyle.Render(m.current)))
	}
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(accentStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("r: New password • y: Copy • q: Quit"))
	return b.String()
}
