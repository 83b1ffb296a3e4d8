// Package hangman implements the classic letter-guessing game with
// difficulty levels, hints and the seven-stage gallows drawing.
package hangman

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Difficulty selects the word pool and the number of allowed misses.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

// String returns the display name of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	case DifficultyExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a name to a difficulty.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	case "expert":
		return DifficultyExpert, true
	default:
		return 0, false
	}
}

// maxMisses returns the number of wrong guesses the difficulty allows.
func (d Difficulty) maxMisses() int {
	switch d {
	case DifficultyEasy:
		return 8
	case DifficultyExpert:
		return 5
	default:
		return 6
	}
}

// wordsFor returns the word pool for a difficulty. DifficultyHard words are long or
// contain a rare letter; expert words are long and contain a rare letter.
// Falls back to the full list if the filter comes up empty.
func wordsFor(d Difficulty) []string {
	switch d {
	case DifficultyHard:
		var words []string
		for _, w := range wordlist {
			if len(w) >= 7 || strings.ContainsAny(w, rareHard) {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			return words
		}
	case DifficultyExpert:
		var words []string
		for _, w := range wordlist {
			if len(w) >= 8 && strings.ContainsAny(w, rareExpert) {
				words = append(words, w)
			}
		}
		if len(words) > 0 {
			return words
		}
	}
	return wordlist
}

// Input errors, recoverable by re-prompting.
var (
	ErrNotALetter      = errors.New("input must be a single letter")
	ErrAlreadyGuessed  = errors.New("letter was already guessed")
	ErrGameOver        = errors.New("game is over")
	ErrHintUnavailable = errors.New("no hint available")
)

// Game is one round of hangman.
type Game struct {
	word       string
	difficulty Difficulty
	guessed    map[rune]bool
	misses     int
	maxMisses  int
	hintsUsed  int
	won        bool
	lost       bool
}

// New starts a game with a random word from the difficulty's pool.
func New(d Difficulty) *Game {
	pool := wordsFor(d)
	return newWithWord(d, pool[rand.Intn(len(pool))])
}

func newWithWord(d Difficulty, word string) *Game {
	return &Game{
		word:       word,
		difficulty: d,
		guessed:    make(map[rune]bool),
		maxMisses:  d.maxMisses(),
	}
}

// Result describes the effect of a guess.
type Result struct {
	Correct bool
	Won     bool
	Lost    bool
}

// Guess processes a single guessed letter.
func (g *Game) Guess(letter rune) (Result, error) {
	if g.won || g.lost {
		return Result{}, ErrGameOver
	}
	letter = lower(letter)
	if letter < 'a' || letter > 'z' {
		return Result{}, ErrNotALetter
	}
	if g.guessed[letter] {
		return Result{}, ErrAlreadyGuessed
	}

	g.guessed[letter] = true

	if strings.ContainsRune(g.word, letter) {
		if g.revealed() {
			g.won = true
		}
		return Result{Correct: true, Won: g.won}, nil
	}

	g.misses++
	if g.misses >= g.maxMisses {
		g.lost = true
	}
	return Result{Lost: g.lost}, nil
}

// Hint reveals a random unguessed letter of the word. Hints unlock once
// half the allowed misses are used up, and a word longer than seven
// letters grants a second one.
func (g *Game) Hint() (rune, error) {
	if g.won || g.lost {
		return 0, ErrGameOver
	}
	if g.misses < g.maxMisses/2 {
		return 0, fmt.Errorf("%w: hints unlock after %d wrong guesses", ErrHintUnavailable, g.maxMisses/2)
	}
	maxHints := 1
	if len(g.word) > 7 {
		maxHints = 2
	}
	if g.hintsUsed >= maxHints {
		return 0, fmt.Errorf("%w: all %d hints used", ErrHintUnavailable, maxHints)
	}

	var unrevealed []rune
	for _, r := range g.word {
		if !g.guessed[r] {
			unrevealed = append(unrevealed, r)
		}
	}
	if len(unrevealed) == 0 {
		return 0, ErrHintUnavailable
	}

	letter := unrevealed[rand.Intn(len(unrevealed))]
	g.hintsUsed++
	g.guessed[letter] = true
	if g.revealed() {
		g.won = true
	}
	return letter, nil
}

// revealed reports whether every letter of the word has been guessed.
func (g *Game) revealed() bool {
	for _, r := range g.word {
		if !g.guessed[r] {
			return false
		}
	}
	return true
}

// Masked returns the word with unguessed letters as underscores, spaced
// for readability: "_ a _ _".
func (g *Game) Masked() string {
	parts := make([]string, 0, len(g.word))
	for _, r := range g.word {
		if g.guessed[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// GuessedLetters returns the guessed letters in alphabetical order.
func (g *Game) GuessedLetters() []rune {
	letters := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Accessors for the UI layer.

func (g *Game) Word() string           { return g.word }
func (g *Game) Difficulty() Difficulty { return g.difficulty }
func (g *Game) Misses() int            { return g.misses }
func (g *Game) MaxMisses() int         { return g.maxMisses }
func (g *Game) Remaining() int         { return g.maxMisses - g.misses }
func (g *Game) Won() bool              { return g.won }
func (g *Game) Lost() bool             { return g.lost }
func (g *Game) Over() bool             { return g.won || g.lost }

// GallowsArt returns the drawing matching the current number of misses.
func (g *Game) GallowsArt() string {
	stage := g.misses
	if stage >= len(gallows) {
		stage = len(gallows) - 1
	}
	return gallows[stage]
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// gallows holds the drawing stages from zero to six misses.
var gallows = []string{
	`
 -----
 |   |
     |
     |
     |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
     |
     |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
 |   |
     |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
/|   |
     |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
/|\  |
     |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
/|\  |
/    |
     |
-----+-----`,
	`
 -----
 |   |
 O   |
/|\  |
/ \  |
     |
-----+-----`,
}
