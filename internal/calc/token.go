package calc

// TokenType classifies a lexical unit of an arithmetic expression.
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

// String returns a readable name for the token type
func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "unknown"
	}
}

// Token is an immutable lexical unit produced by Tokenize.
type Token struct {
	Type    TokenType
	Literal string
	Value   float64 // set only for TokenNumber
	Offset  int     // byte offset of the token in the input
}
