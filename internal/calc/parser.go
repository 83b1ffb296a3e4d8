package calc

import (
	"fmt"
	"math"
	"strconv"
)

// Evaluate computes the value of an arithmetic expression. It supports the
// four basic operators with standard precedence, unary plus and minus,
// parentheses, and decimal literals. Evaluation is purely functional: the
// same input always yields the same result.
func Evaluate(input string) (float64, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	p := &parser{tokens: tokens}
	value, err := p.parseExpression()
	if err != nil {
		return 0, err
	}

	// The grammar must consume the whole stream; a trailing ")" means a
	// parenthesis was never opened.
	if tok, ok := p.peek(); ok {
		if tok.Type == TokenRParen {
			return 0, fmt.Errorf("%w: unmatched \")\" at position %d", ErrUnbalancedParens, tok.Offset)
		}
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, tok.Literal, tok.Offset)
	}

	return value, nil
}

// parser holds the explicit cursor over the token stream, making evaluation
// re-entrant: no package-level state is touched.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) match(typ TokenType) bool {
	tok, ok := p.peek()
	if !ok || tok.Type != typ {
		return false
	}
	p.pos++
	return true
}

// parseExpression evaluates: term { ("+" | "-") term }. Left-associative.
func (p *parser) parseExpression() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch {
		case p.match(TokenPlus):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case p.match(TokenMinus):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

// parseTerm evaluates: factor { ("*" | "/") factor }. Left-associative.
func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for {
		switch {
		case p.match(TokenStar):
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case p.match(TokenSlash):
			opTok := p.tokens[p.pos-1]
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("%w: divisor at position %d evaluates to zero", ErrDivisionByZero, opTok.Offset)
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

// parseFactor evaluates a number, a parenthesized expression, or a unary
// sign applied to a factor.
func (p *parser) parseFactor() (float64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}

	switch tok.Type {
	case TokenNumber:
		return tok.Value, nil

	case TokenPlus:
		return p.parseFactor()

	case TokenMinus:
		value, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -value, nil

	case TokenLParen:
		value, err := p.parseExpression()
		if err != nil {
			return 0, err
		}
		if !p.match(TokenRParen) {
			return 0, fmt.Errorf("%w: missing closing parenthesis for \"(\" at position %d", ErrUnbalancedParens, tok.Offset)
		}
		return value, nil

	default:
		return 0, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, tok.Literal, tok.Offset)
	}
}

// FormatResult renders a result the way the calculator prints it: integral
// values without a decimal part, everything else with the shortest exact
// representation.
func FormatResult(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
