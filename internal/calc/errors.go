package calc

import "errors"

// The three failure kinds an evaluation can produce. Returned errors wrap
// one of these sentinels, so callers can classify them with errors.Is.
var (
	ErrSyntax           = errors.New("syntax error")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
)
