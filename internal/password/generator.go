// Package password generates grouped passwords in the form
// xxxxxx-xxxxxx-xxxxxx: lowercase groups with a bounded number of uppercase
// letters and digits mixed in.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
)

// Options control the shape of generated passwords.
type Options struct {
	Groups      int    // number of character groups
	GroupLength int    // characters per group
	Separator   string // string between groups
	MaxUpper    int    // maximum uppercase letters per group
	MaxDigits   int    // maximum digits per group
}

// DefaultOptions returns the standard xxxxxx-xxxxxx-xxxxxx shape.
func DefaultOptions() Options {
	return Options{
		Groups:      3,
		GroupLength: 6,
		Separator:   "-",
		MaxUpper:    2,
		MaxDigits:   1,
	}
}

// Validate reports whether the options describe a generatable password.
func (o Options) Validate() error {
	if o.Groups < 1 {
		return fmt.Errorf("groups must be at least 1, got %d", o.Groups)
	}
	if o.GroupLength < 1 {
		return fmt.Errorf("group length must be at least 1, got %d", o.GroupLength)
	}
	if o.MaxUpper < 0 || o.MaxDigits < 0 {
		return fmt.Errorf("uppercase and digit limits must not be negative")
	}
	if o.MaxUpper+o.MaxDigits > o.GroupLength {
		return fmt.Errorf("uppercase limit (%d) plus digit limit (%d) exceeds group length (%d)",
			o.MaxUpper, o.MaxDigits, o.GroupLength)
	}
	return nil
}

// Generate produces a new password. Randomness comes from crypto/rand.
func Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	groups := make([]string, opts.Groups)
	for i := range groups {
		group, err := generateGroup(opts.GroupLength, opts.MaxUpper, opts.MaxDigits)
		if err != nil {
			return "", err
		}
		groups[i] = group
	}

	return strings.Join(groups, opts.Separator), nil
}

// generateGroup builds one group: a random count of uppercase letters and
// digits up to their limits, lowercase letters for the remainder, shuffled.
func generateGroup(length, maxUpper, maxDigits int) (string, error) {
	numUpper, err := randInt(maxUpper + 1)
	if err != nil {
		return "", err
	}
	numDigits, err := randInt(maxDigits + 1)
	if err != nil {
		return "", err
	}
	numLower := length - numUpper - numDigits

	chars := make([]byte, 0, length)
	for i := 0; i < numUpper; i++ {
		c, err := randByte(uppercase)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := 0; i < numDigits; i++ {
		c, err := randByte(digits)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := 0; i < numLower; i++ {
		c, err := randByte(lowercase)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates so the uppercase letters and digits are not clustered
	// at the front of the group.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randByte(alphabet string) (byte, error) {
	i, err := randInt(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value: %w", err)
	}
	return int(v.Int64()), nil
}
