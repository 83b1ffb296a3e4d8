package hangman

import (
	"errors"
	"strings"
	"testing"
)

func TestGuessRevealsLetters(t *testing.T) {
	g := newWithWord(DifficultyMedium, "apple")

	res, err := g.Guess('p')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Error("expected correct guess for 'p'")
	}
	if got := g.Masked(); got != "_ p p _ _" {
		t.Errorf("masked = %q, want %q", got, "_ p p _ _")
	}
	if g.Misses() != 0 {
		t.Errorf("misses = %d, want 0", g.Misses())
	}
}

func TestGuessWrongLetterCountsMiss(t *testing.T) {
	g := newWithWord(DifficultyMedium, "apple")

	res, err := g.Guess('z')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct {
		t.Error("'z' should not be correct")
	}
	if g.Misses() != 1 {
		t.Errorf("misses = %d, want 1", g.Misses())
	}
	if g.Remaining() != 5 {
		t.Errorf("remaining = %d, want 5", g.Remaining())
	}
}

func TestGuessWholeWordWins(t *testing.T) {
	g := newWithWord(DifficultyMedium, "cab")

	for _, r := range "ca" {
		if _, err := g.Guess(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	res, err := g.Guess('b')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Won || !g.Won() {
		t.Error("expected game to be won")
	}
	if _, err := g.Guess('x'); !errors.Is(err, ErrGameOver) {
		t.Errorf("error = %v, want ErrGameOver", err)
	}
}

func TestGameIsLostAfterMaxMisses(t *testing.T) {
	g := newWithWord(DifficultyExpert, "cab") // 5 allowed misses

	for _, r := range "defgh" {
		if _, err := g.Guess(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !g.Lost() {
		t.Fatal("expected game to be lost after 5 misses")
	}
}

func TestGuessRejectsInvalidInput(t *testing.T) {
	g := newWithWord(DifficultyMedium, "apple")

	if _, err := g.Guess('1'); !errors.Is(err, ErrNotALetter) {
		t.Errorf("error = %v, want ErrNotALetter", err)
	}
	if _, err := g.Guess('!'); !errors.Is(err, ErrNotALetter) {
		t.Errorf("error = %v, want ErrNotALetter", err)
	}

	g.Guess('a')
	if _, err := g.Guess('a'); !errors.Is(err, ErrAlreadyGuessed) {
		t.Errorf("error = %v, want ErrAlreadyGuessed", err)
	}
	// An uppercase repeat is the same letter.
	if _, err := g.Guess('A'); !errors.Is(err, ErrAlreadyGuessed) {
		t.Errorf("error = %v, want ErrAlreadyGuessed", err)
	}
	if g.Misses() != 0 {
		t.Errorf("invalid input consumed %d misses", g.Misses())
	}
}

func TestHintGating(t *testing.T) {
	g := newWithWord(DifficultyMedium, "apple") // 6 misses, hints unlock at 3

	if _, err := g.Hint(); !errors.Is(err, ErrHintUnavailable) {
		t.Fatalf("error = %v, want ErrHintUnavailable before enough misses", err)
	}

	for _, r := range "xyz" {
		g.Guess(r)
	}

	letter, err := g.Hint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.ContainsRune("aple", letter) {
		t.Errorf("hint letter %q not in word", letter)
	}

	// "apple" is five letters, so only one hint is granted.
	if _, err := g.Hint(); !errors.Is(err, ErrHintUnavailable) {
		t.Errorf("error = %v, want ErrHintUnavailable after hint budget", err)
	}
}

func TestHintBudgetForLongWords(t *testing.T) {
	g := newWithWord(DifficultyMedium, "elephants") // longer than 7: two hints

	for _, r := range "xyz" {
		g.Guess(r)
	}
	if _, err := g.Hint(); err != nil {
		t.Fatalf("first hint failed: %v", err)
	}
	if _, err := g.Hint(); err != nil {
		t.Fatalf("second hint failed: %v", err)
	}
	if _, err := g.Hint(); !errors.Is(err, ErrHintUnavailable) {
		t.Errorf("error = %v, want ErrHintUnavailable after two hints", err)
	}
}

func TestDifficultyPools(t *testing.T) {
	for _, w := range wordsFor(DifficultyHard) {
		if len(w) < 7 && !strings.ContainsAny(w, rareHard) {
			t.Errorf("hard pool contains %q: too short and no rare letter", w)
		}
	}
	for _, w := range wordsFor(DifficultyExpert) {
		if len(w) < 8 || !strings.ContainsAny(w, rareExpert) {
			t.Errorf("expert pool contains %q: filter violated", w)
		}
	}
	if len(wordsFor(DifficultyExpert)) == 0 {
		t.Fatal("expert pool is empty")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"easy", DifficultyEasy, true},
		{"MEDIUM", DifficultyMedium, true},
		{" hard ", DifficultyHard, true},
		{"expert", DifficultyExpert, true},
		{"nightmare", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseDifficulty(tc.input)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseDifficulty(%q) = %v, %v", tc.input, got, ok)
		}
	}
}

func TestGallowsArtProgresses(t *testing.T) {
	g := newWithWord(DifficultyEasy, "apple") // 8 misses allowed, 7 drawing stages

	seen := map[string]bool{g.GallowsArt(): true}
	for _, r := range "bcdfghjk" {
		g.Guess(r)
		seen[g.GallowsArt()] = true
	}
	// Stage art caps at the final drawing even with extra allowed misses.
	if len(seen) != 7 {
		t.Errorf("distinct stages = %d, want 7", len(seen))
	}
}
