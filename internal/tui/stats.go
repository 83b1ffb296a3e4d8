package tui

import (
	"fmt"
	"strings"

	"github.com/ssibiryakova/termtoys/internal/calc"
	"github.com/ssibiryakova/termtoys/internal/stats"
)

// RenderStats formats the stored game and pomodoro statistics as plain
// styled text for the stats subcommand.
func RenderStats(store *stats.Store) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n\n")

	games, err := store.GameSummaries()
	if err != nil {
		return "", fmt.Errorf("loading game summaries: %w", err)
	}
	if len(games) == 0 {
		b.WriteString(faintStyle.Render("No games played yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(accentStyle.Render(fmt.Sprintf("%-10s %7s %7s %9s", "Game", "Played", "Won", "Win rate")))
		b.WriteString("\n")
		for _, g := range games {
			b.WriteString(fmt.Sprintf("%-10s %7d %7d %8.0f%%", g.App, g.Played, g.Won, g.WinRate()))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	pom, err := store.PomodoroTotals()
	if err != nil {
		return "", fmt.Errorf("loading pomodoro totals: %w", err)
	}
	if pom.Sessions == 0 {
		b.WriteString(faintStyle.Render("No pomodoro sessions yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Pomodoro: %d sessions, %d cycles, %d minutes of focused work",
			pom.Sessions, pom.TotalCycles, pom.TotalWorkMinutes))
		b.WriteString("\n")
	}

	calcs, err := store.RecentCalcs(5)
	if err != nil {
		return "", fmt.Errorf("loading calculator history: %w", err)
	}
	if len(calcs) > 0 {
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("Recent calculations"))
		b.WriteString("\n")
		for _, c := range calcs {
			b.WriteString(fmt.Sprintf("  %s = %s", c.Expression, calc.FormatResult(c.Result)))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
