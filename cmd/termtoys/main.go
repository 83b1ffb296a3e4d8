package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ssibiryakova/termtoys/internal/cli"
	"github.com/ssibiryakova/termtoys/internal/config"
	"github.com/ssibiryakova/termtoys/internal/guess"
	"github.com/ssibiryakova/termtoys/internal/hangman"
	"github.com/ssibiryakova/termtoys/internal/logger"
	"github.com/ssibiryakova/termtoys/internal/password"
	"github.com/ssibiryakova/termtoys/internal/pomodoro"
	"github.com/ssibiryakova/termtoys/internal/stats"
	"github.com/ssibiryakova/termtoys/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	var loggerInitialized bool
	defer func() {
		if !loggerInitialized {
			return
		}
		if err != nil {
			logger.Error("Fatal error: %v", err)
		}
		if closeErr := logger.Global().Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", closeErr)
		}
	}()

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Environment variables override the config file for logging.
	if envLevel := strings.TrimSpace(os.Getenv("TERMTOYS_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("TERMTOYS_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}

	if initErr := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); initErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", initErr)
	}
	loggerInitialized = true
	logger.Info("termtoys starting")

	// The statistics database is optional. Everything keeps working
	// without it, results are just not persisted.
	var store *stats.Store
	if cfg.StatsDBPath != "" {
		store, err = stats.Open(cfg.StatsDBPath)
		if err != nil {
			logger.Warn("stats database unavailable: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: stats database unavailable: %v\n", err)
			store = nil
			err = nil
		} else {
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					logger.Warn("failed to close stats database: %v", closeErr)
				}
			}()
		}
	}

	args := os.Args[1:]
	if len(args) == 0 {
		if !isInteractive() {
			return errors.New("no command given and stdin is not a terminal, try \"termtoys help\"")
		}
		return runLauncher(cfg, store)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "calc":
		return runCalc(store, rest)
	case "password":
		return runPassword(cfg, rest)
	case "pomodoro":
		return runPomodoro(cfg, store, rest)
	case "guess":
		return runGuess(cfg, store)
	case "rps":
		return runRPS(cfg, store)
	case "hangman":
		return runHangman(cfg, store, rest)
	case "stats":
		return runStats(store)
	case "config-path":
		fmt.Println(config.GetConfigPath())
		return nil
	case "help", "-h", "--help":
		return runHelp()
	default:
		return fmt.Errorf("unknown command %q, try \"termtoys help\"", cmd)
	}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runModel(model tea.Model) error {
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

// runLauncher shows the menu and opens the selected toy until the user
// quits from the menu itself.
func runLauncher(cfg *config.Config, store *stats.Store) error {
	items := []tui.AppItem{
		{Name: "calc", Desc: "Calculator with the four basic operations and parentheses"},
		{Name: "password", Desc: "Generate grouped random passwords"},
		{Name: "pomodoro", Desc: "Work timer with short and long breaks"},
		{Name: "guess", Desc: "Guess a number, with hints and a score"},
		{Name: "rps", Desc: "Rock paper scissors against the computer"},
		{Name: "hangman", Desc: "Classic word guessing game"},
	}

	for {
		menu := tui.NewMenu(items)
		if _, err := tea.NewProgram(menu, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		selected := menu.Selected()
		if selected == "" {
			return nil
		}
		logger.Debug("launcher selected %q", selected)

		var err error
		switch selected {
		case "calc":
			err = runModel(tui.NewCalc(store))
		case "password":
			err = runModel(tui.NewPassword(passwordOptions(cfg)))
		case "pomodoro":
			err = runModel(tui.NewPomodoro(pomodoroSettings(cfg), store, cfg.DisableAnimations))
		case "guess":
			var model *tui.GuessModel
			model, err = tui.NewGuess(guessConfig(cfg), store)
			if err == nil {
				err = runModel(model)
			}
		case "rps":
			err = runModel(tui.NewRPS(store, cfg.DisableAnimations))
		case "hangman":
			err = runModel(tui.NewHangman(hangmanDifficulty(cfg), store))
		}
		if err != nil {
			return err
		}
	}
}

func runCalc(store *stats.Store, args []string) error {
	if len(args) > 0 {
		return cli.EvaluateOnce(os.Stdout, args, store)
	}
	if !isInteractive() {
		return cli.New(os.Stdin, os.Stdout, store).Run()
	}
	return runModel(tui.NewCalc(store))
}

func runPassword(cfg *config.Config, args []string) error {
	opts := passwordOptions(cfg)

	fs := flag.NewFlagSet("password", flag.ContinueOnError)
	fs.IntVar(&opts.Groups, "groups", opts.Groups, "number of character groups")
	fs.IntVar(&opts.GroupLength, "length", opts.GroupLength, "characters per group")
	fs.StringVar(&opts.Separator, "separator", opts.Separator, "string between groups")
	fs.IntVar(&opts.MaxUpper, "upper", opts.MaxUpper, "maximum uppercase letters per group")
	fs.IntVar(&opts.MaxDigits, "digits", opts.MaxDigits, "maximum digits per group")
	count := fs.Int("n", 1, "number of passwords to print in plain mode")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	if !isInteractive() || *count > 1 {
		for i := 0; i < *count; i++ {
			pw, err := password.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Println(pw)
		}
		return nil
	}
	return runModel(tui.NewPassword(opts))
}

func runPomodoro(cfg *config.Config, store *stats.Store, args []string) error {
	settings := pomodoroSettings(cfg)

	fs := flag.NewFlagSet("pomodoro", flag.ContinueOnError)
	fs.IntVar(&settings.WorkMinutes, "work", settings.WorkMinutes, "work phase length in minutes")
	fs.IntVar(&settings.ShortBreakMinutes, "short", settings.ShortBreakMinutes, "short break length in minutes")
	fs.IntVar(&settings.LongBreakMinutes, "long", settings.LongBreakMinutes, "long break length in minutes")
	fs.IntVar(&settings.CyclesBeforeLongBreak, "cycles", settings.CyclesBeforeLongBreak, "work cycles before a long break")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if !isInteractive() {
		return errors.New("the pomodoro timer needs a terminal")
	}
	return runModel(tui.NewPomodoro(settings, store, cfg.DisableAnimations))
}

func runGuess(cfg *config.Config, store *stats.Store) error {
	if !isInteractive() {
		return errors.New("the guessing game needs a terminal")
	}
	model, err := tui.NewGuess(guessConfig(cfg), store)
	if err != nil {
		return err
	}
	return runModel(model)
}

func runRPS(cfg *config.Config, store *stats.Store) error {
	if !isInteractive() {
		return errors.New("rock paper scissors needs a terminal")
	}
	return runModel(tui.NewRPS(store, cfg.DisableAnimations))
}

func runHangman(cfg *config.Config, store *stats.Store, args []string) error {
	difficulty := hangmanDifficulty(cfg)

	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	level := fs.String("difficulty", "", "easy, medium, hard or expert")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *level != "" {
		d, ok := hangman.ParseDifficulty(*level)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", *level)
		}
		difficulty = d
	}

	if !isInteractive() {
		return errors.New("hangman needs a terminal")
	}
	return runModel(tui.NewHangman(difficulty, store))
}

func runStats(store *stats.Store) error {
	if store == nil {
		return errors.New("the stats database is unavailable")
	}
	out, err := tui.RenderStats(store)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runHelp() error {
	width := 80
	if isInteractive() {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	out, err := tui.RenderHelp(width)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func passwordOptions(cfg *config.Config) password.Options {
	return password.Options{
		Groups:      cfg.Password.Groups,
		GroupLength: cfg.Password.GroupLength,
		Separator:   cfg.Password.Separator,
		MaxUpper:    cfg.Password.MaxUpper,
		MaxDigits:   cfg.Password.MaxDigits,
	}
}

func pomodoroSettings(cfg *config.Config) pomodoro.Settings {
	return pomodoro.Settings{
		WorkMinutes:           cfg.Pomodoro.WorkMinutes,
		ShortBreakMinutes:     cfg.Pomodoro.ShortBreakMinutes,
		LongBreakMinutes:      cfg.Pomodoro.LongBreakMinutes,
		CyclesBeforeLongBreak: cfg.Pomodoro.CyclesBeforeLongBreak,
	}
}

func guessConfig(cfg *config.Config) guess.Config {
	return guess.Config{
		Min:      cfg.Guess.Min,
		Max:      cfg.Guess.Max,
		MaxTries: cfg.Guess.MaxTries,
	}
}

func hangmanDifficulty(cfg *config.Config) hangman.Difficulty {
	if d, ok := hangman.ParseDifficulty(cfg.HangmanDifficulty); ok {
		return d
	}
	return hangman.DifficultyMedium
}
