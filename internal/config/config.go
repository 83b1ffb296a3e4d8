package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PomodoroConfig holds the timer durations in minutes.
type PomodoroConfig struct {
	WorkMinutes           int `json:"work_minutes"`
	ShortBreakMinutes     int `json:"short_break_minutes"`
	LongBreakMinutes      int `json:"long_break_minutes"`
	CyclesBeforeLongBreak int `json:"cycles_before_long_break"`
}

// GuessConfig holds the number-guessing game parameters.
type GuessConfig struct {
	Min      int `json:"min"`
	Max      int `json:"max"`
	MaxTries int `json:"max_tries"`
}

// PasswordConfig holds the password shape.
type PasswordConfig struct {
	Groups      int    `json:"groups"`
	GroupLength int    `json:"group_length"`
	Separator   string `json:"separator"`
	MaxUpper    int    `json:"max_uppercase"`
	MaxDigits   int    `json:"max_digits"`
}

// Config represents application configuration
type Config struct {
	LogLevel          string         `json:"log_level"` // debug, info, warn, error, none
	LogPath           string         `json:"-"`
	StatsDBPath       string         `json:"stats_db_path,omitempty"`
	DisableAnimations bool           `json:"disable_animations"`
	HangmanDifficulty string         `json:"hangman_difficulty"`
	Pomodoro          PomodoroConfig `json:"pomodoro"`
	Guess             GuessConfig    `json:"guess"`
	Password          PasswordConfig `json:"password"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, "termtoys")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", "termtoys")
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, "termtoys")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", "termtoys")
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, "termtoys")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", "termtoys")
	default:
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, "termtoys")
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", "termtoys")
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	stateDir := defaultStateDir()

	return &Config{
		LogLevel:          "info",
		LogPath:           filepath.Join(stateDir, "termtoys.log"),
		StatsDBPath:       filepath.Join(stateDir, "stats.db"),
		DisableAnimations: false,
		HangmanDifficulty: "medium",
		Pomodoro: PomodoroConfig{
			WorkMinutes:           25,
			ShortBreakMinutes:     5,
			LongBreakMinutes:      15,
			CyclesBeforeLongBreak: 4,
		},
		Guess: GuessConfig{
			Min:      1,
			Max:      100,
			MaxTries: 10,
		},
		Password: PasswordConfig{
			Groups:      3,
			GroupLength: 6,
			Separator:   "-",
			MaxUpper:    2,
			MaxDigits:   1,
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return config, nil
		}
		return nil, err
	}

	// Unmarshal into default config (overrides only provided fields)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// Ensure critical fields have defaults if still empty
	stateDir := defaultStateDir()
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(stateDir, "termtoys.log")
	}
	if config.StatsDBPath == "" {
		config.StatsDBPath = filepath.Join(stateDir, "stats.db")
	}
	if config.HangmanDifficulty == "" {
		config.HangmanDifficulty = "medium"
	}

	return config, nil
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
