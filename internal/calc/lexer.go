package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Tokenize scans an arithmetic expression left to right and produces its
// token stream. Runs of digits and decimal points become number tokens,
// the six punctuation characters become operator and parenthesis tokens,
// whitespace is skipped, and anything else fails with ErrSyntax.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token

	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || c == '.':
			start := i
			dots := 0
			for i < len(input) && (isDigit(input[i]) || input[i] == '.') {
				if input[i] == '.' {
					dots++
				}
				i++
			}
			literal := input[start:i]
			// "1.2.3" is rejected rather than guessing a numeric reading.
			if dots > 1 {
				return nil, fmt.Errorf("%w: invalid number literal %q at position %d", ErrSyntax, literal, start)
			}
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid number literal %q at position %d", ErrSyntax, literal, start)
			}
			tokens = append(tokens, Token{Type: TokenNumber, Literal: literal, Value: value, Offset: start})

		default:
			typ, ok := punctType(c)
			if !ok {
				r, _ := utf8.DecodeRuneInString(input[i:])
				return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrSyntax, r, i)
			}
			tokens = append(tokens, Token{Type: typ, Literal: string(c), Offset: i})
			i++
		}
	}

	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func punctType(c byte) (TokenType, bool) {
	switch c {
	case '+':
		return TokenPlus, true
	case '-':
		return TokenMinus, true
	case '*':
		return TokenStar, true
	case '/':
		return TokenSlash, true
	case '(':
		return TokenLParen, true
	case ')':
		return TokenRParen, true
	default:
		return 0, false
	}
}

// Normalize strips all whitespace from an expression. Used as the canonical
// form when deduplicating history entries.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteByte(input[i])
		}
	}
	return b.String()
}
