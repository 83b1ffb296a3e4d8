// Package guess implements the number-guessing game: the computer picks a
// secret number, the player narrows it down with escalating hints, and a
// score rewards fast guesses.
package guess

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

// Config holds the game parameters.
type Config struct {
	Min      int
	Max      int
	MaxTries int
}

// DefaultConfig returns the standard 1..100 game with ten tries.
func DefaultConfig() Config {
	return Config{Min: 1, Max: 100, MaxTries: 10}
}

// Validate reports whether the configuration describes a playable game.
func (c Config) Validate() error {
	// The digit-based hints assume a non-negative secret.
	if c.Min < 0 {
		return fmt.Errorf("minimum must not be negative, got %d", c.Min)
	}
	if c.Min >= c.Max {
		return fmt.Errorf("minimum (%d) must be less than maximum (%d)", c.Min, c.Max)
	}
	if c.MaxTries < 1 {
		return fmt.Errorf("tries must be at least 1, got %d", c.MaxTries)
	}
	return nil
}

// ErrNoGuessYet is returned by Hint before the first guess.
var ErrNoGuessYet = errors.New("guess a number before requesting a hint")

const (
	startScore    = 100
	extraHintCost = 5
)

// Game is one round of number guessing.
type Game struct {
	cfg     Config
	secret  int
	tries   int
	score   int
	guesses []int
	won     bool
	lost    bool
}

// New starts a game with a random secret.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	secret := cfg.Min + rand.Intn(cfg.Max-cfg.Min+1)
	return newWithSecret(cfg, secret), nil
}

func newWithSecret(cfg Config, secret int) *Game {
	return &Game{cfg: cfg, secret: secret, score: startScore}
}

// Result describes the outcome of a single guess.
type Result struct {
	Correct  bool
	GameOver bool
	Hint     string
	Score    int
}

// Guess processes one attempt. Every attempt costs points based on how far
// off it was and how many tries have been used.
func (g *Game) Guess(n int) (Result, error) {
	if g.won || g.lost {
		return Result{}, errors.New("game is over, start a new one")
	}
	if n < g.cfg.Min || n > g.cfg.Max {
		return Result{}, fmt.Errorf("guess must be between %d and %d", g.cfg.Min, g.cfg.Max)
	}

	g.guesses = append(g.guesses, n)
	g.tries++

	diff := abs(n - g.secret)
	deduction := min(10, max(1, diff/5)) + min(5, g.tries)
	g.score = max(0, g.score-deduction)

	if n == g.secret {
		g.won = true
		return Result{
			Correct:  true,
			GameOver: true,
			Hint:     fmt.Sprintf("Correct! You found %d in %d tries.", g.secret, g.tries),
			Score:    g.score,
		}, nil
	}

	if g.tries >= g.cfg.MaxTries {
		g.lost = true
		g.score = 0
		return Result{
			GameOver: true,
			Hint:     fmt.Sprintf("Out of tries! The number was %d.", g.secret),
		}, nil
	}

	return Result{Hint: g.hintFor(n), Score: g.score}, nil
}

// hintFor builds the higher/lower hint plus up to two extra clues that get
// more revealing the more tries have been used.
func (g *Game) hintFor(n int) string {
	base := "The number is higher."
	if n > g.secret {
		base = "The number is lower."
	}

	var extras []string

	if g.tries >= 2 {
		for _, d := range []int{2, 3, 5} {
			if g.secret%d == 0 {
				extras = append(extras, fmt.Sprintf("It is divisible by %d.", d))
				break
			}
		}
	}

	if g.tries >= 3 {
		if g.secret%2 == 0 {
			extras = append(extras, "It is even.")
		} else {
			extras = append(extras, "It is odd.")
		}
	}

	if g.tries >= 4 {
		switch diff := abs(n - g.secret); {
		case diff <= 5:
			extras = append(extras, "You are very close!")
		case diff <= 10:
			extras = append(extras, "You are getting closer.")
		case diff <= 20:
			extras = append(extras, "You are some way off.")
		default:
			extras = append(extras, "You are far away.")
		}
	}

	if g.tries >= 5 {
		extras = append(extras, fmt.Sprintf("The digit sum is %d.", digitSum(g.secret)))
	}

	if g.tries >= 6 {
		decade := (g.secret / 10) * 10
		extras = append(extras, fmt.Sprintf("It lies between %d and %d.", decade, decade+9))
	}

	if len(extras) > 2 {
		extras = extras[:2]
	}
	for _, extra := range extras {
		base += " " + extra
	}
	return base
}

// Hint gives an explicit extra clue for 5 points.
func (g *Game) Hint() (string, error) {
	if g.tries == 0 {
		return "", ErrNoGuessYet
	}

	g.score = max(0, g.score-extraHintCost)

	parity := "odd"
	if g.secret%2 == 0 {
		parity = "even"
	}
	hint := fmt.Sprintf("The number is %s and lies between %d and %d.", parity, g.cfg.Min, g.cfg.Max)
	if g.tries >= 3 {
		hint += fmt.Sprintf(" The digit sum is %d.", digitSum(g.secret))
	}
	if g.tries >= 5 {
		hint += fmt.Sprintf(" The first digit is %c.", strconv.Itoa(g.secret)[0])
	}
	return hint, nil
}

// OptimalStrategy replays the binary-search guess sequence that would have
// found the secret. Shown after the game as a teaching aid.
func (g *Game) OptimalStrategy() []int {
	low, high := g.cfg.Min, g.cfg.Max
	var strategy []int
	for low <= high {
		mid := (low + high) / 2
		strategy = append(strategy, mid)
		switch {
		case mid == g.secret:
			return strategy
		case mid < g.secret:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return strategy
}

// Accessors for the UI layer.

func (g *Game) Tries() int    { return g.tries }
func (g *Game) MaxTries() int { return g.cfg.MaxTries }
func (g *Game) Score() int    { return g.score }
func (g *Game) Secret() int   { return g.secret }
func (g *Game) Won() bool     { return g.won }
func (g *Game) Lost() bool    { return g.lost }
func (g *Game) Min() int      { return g.cfg.Min }
func (g *Game) Max() int      { return g.cfg.Max }

func (g *Game) Guesses() []int {
	return append([]int(nil), g.guesses...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
