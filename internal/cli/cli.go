package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ssibiryakova/termtoys/internal/calc"
	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// CLI runs the calculator as a plain line-based loop. It is used when
// stdin or stdout is not a terminal, for example in pipes and scripts.
type CLI struct {
	in    io.Reader
	out   io.Writer
	store *stats.Store
}

// New creates a plain calculator loop. store may be nil.
func New(in io.Reader, out io.Writer, store *stats.Store) *CLI {
	return &CLI{in: in, out: out, store: store}
}

// Run reads expressions line by line until EOF or an exit command.
// Evaluation errors are printed and do not stop the loop.
func (c *CLI) Run() error {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			return nil
		case "help":
			fmt.Fprintln(c.out, "Enter an expression with +, -, *, / and parentheses. Type exit to quit.")
			continue
		}

		value, err := calc.Evaluate(line)
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			continue
		}

		fmt.Fprintln(c.out, calc.FormatResult(value))
		if c.store != nil {
			if err := c.store.RecordCalc(calc.Normalize(line), value); err != nil {
				logger.Warn("failed to record expression: %v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// EvaluateOnce evaluates a single expression given as arguments, for
// invocations like "termtoys calc 2 + 3".
func EvaluateOnce(out io.Writer, args []string, store *stats.Store) error {
	expr := strings.Join(args, " ")
	value, err := calc.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, calc.FormatResult(value))
	if store != nil {
		if err := store.RecordCalc(calc.Normalize(expr), value); err != nil {
			logger.Warn("failed to record expression: %v", err)
		}
	}
	return nil
}
