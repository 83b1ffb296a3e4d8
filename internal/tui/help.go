package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# termtoys

A small collection of terminal toys. Run ` + "`termtoys`" + ` without
arguments to open the launcher, or jump straight into one of the
subcommands below.

## Subcommands

| Command    | What it does                                        |
|------------|-----------------------------------------------------|
| ` + "`calc`" + `     | Calculator with +, -, *, / and parentheses          |
| ` + "`password`" + ` | Generates grouped random passwords                  |
| ` + "`pomodoro`" + ` | Work timer with short and long breaks               |
| ` + "`guess`" + `    | Guess a number between 1 and 100                    |
| ` + "`rps`" + `      | Rock paper scissors against the computer            |
| ` + "`hangman`" + `  | Classic word guessing game                          |
| ` + "`stats`" + `    | Shows game results and pomodoro totals              |

## Calculator

Type an expression and press enter. Supported: decimal numbers,
` + "`+ - * /`" + `, unary signs and nested parentheses. Multiplication and
division bind tighter than addition and subtraction.

    = 3 + 4 * (2 - 1)
    7

## Password flags

    termtoys password [-groups N] [-length N] [-separator S]

## Configuration

Settings live in a JSON file, see ` + "`termtoys config-path`" + `. Timer
lengths, guessing range, password shape, hangman difficulty and the
log level can all be changed there.
`

// RenderHelp renders the help text as markdown for the current terminal.
func RenderHelp(width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return "", fmt.Errorf("rendering help text: %w", err)
	}
	return out, nil
}
