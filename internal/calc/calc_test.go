package calc

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateRespectsPrecedence(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"2 + 3 * 4", 14},
		{"10 + 5 * 2", 20},
		{"8 - 2 * 3", 2},
		{"18 / 3 + 2", 8},
		{"1 + 2 * 3 - 4 / 2", 5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(tc.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) returned unexpected error: %v", tc.expr, err)
			}
			if diff := math.Abs(got - tc.expected); diff > 1e-9 {
				t.Fatalf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.expected)
			}
		})
	}
}

func TestEvaluateHandlesParentheses(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"(2 + 3) * 4", 20},
		{"3 + 4 * (2 - 1)", 7},
		{"(8 - 2) * (5 - 3)", 12},
		{"((1 + 1))", 2},
		{"(10 + 5) / (3 + 2)", 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(tc.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) returned unexpected error: %v", tc.expr, err)
			}
			if diff := math.Abs(got - tc.expected); diff > 1e-9 {
				t.Fatalf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.expected)
			}
		})
	}
}

func TestEvaluateIsLeftAssociative(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"10 - 2 - 3", 5},
		{"100 / 10 / 2", 5},
		{"1 - 2 + 3", 2},
	}

	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Fatalf("Evaluate(%q) returned unexpected error: %v", tc.expr, err)
		}
		if diff := math.Abs(got - tc.expected); diff > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.expected)
		}
	}
}

func TestEvaluateUnarySigns(t *testing.T) {
	cases := []struct {
		expr     string
		expected float64
	}{
		{"-3 + 5", 2},
		{"-(2 + 3)", -5},
		{"2 * -3", -6},
		{"--4", 4},
		{"+7", 7},
	}

	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Fatalf("Evaluate(%q) returned unexpected error: %v", tc.expr, err)
		}
		if diff := math.Abs(got - tc.expected); diff > 1e-9 {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.expected)
		}
	}
}

func TestEvaluateErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		expr string
		kind error
	}{
		{"division by zero", "5 / 0", ErrDivisionByZero},
		{"division by zero expression", "1 / (2 - 2)", ErrDivisionByZero},
		{"missing closing paren", "(1 + 2", ErrUnbalancedParens},
		{"stray closing paren", "1 + 2)", ErrUnbalancedParens},
		{"invalid character", "2 + a", ErrSyntax},
		{"double decimal point", "1.2.3", ErrSyntax},
		{"empty input", "", ErrSyntax},
		{"whitespace only", "   ", ErrSyntax},
		{"dangling operator", "4 +", ErrSyntax},
		{"adjacent numbers", "1 2", ErrSyntax},
		{"lone dot", ".", ErrSyntax},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(tc.expr)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded, want error kind %v", tc.expr, tc.kind)
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("Evaluate(%q) error = %v, want kind %v", tc.expr, err, tc.kind)
			}
		})
	}
}

func TestEvaluateDecimals(t *testing.T) {
	got, err := Evaluate("1.5 * 2")
	if err != nil {
		t.Fatalf("Evaluate returned unexpected error: %v", err)
	}
	if diff := math.Abs(got - 3); diff > 1e-9 {
		t.Fatalf("Evaluate(\"1.5 * 2\") = %v, want 3", got)
	}
}

// Re-evaluating the same input must always yield the same value: the parser
// keeps its cursor in an explicit state struct with no hidden globals.
func TestEvaluateIsIdempotent(t *testing.T) {
	const expr = "3 + 4 * (2 - 1) / 2"

	first, err := Evaluate(expr)
	if err != nil {
		t.Fatalf("Evaluate(%q) returned unexpected error: %v", expr, err)
	}
	for i := 0; i < 10; i++ {
		got, err := Evaluate(expr)
		if err != nil {
			t.Fatalf("Evaluate(%q) run %d returned unexpected error: %v", expr, i, err)
		}
		if got != first {
			t.Fatalf("Evaluate(%q) run %d = %v, want %v", expr, i, got, first)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("3 + 4.25 * (2 - 1)")
	if err != nil {
		t.Fatalf("Tokenize returned unexpected error: %v", err)
	}

	want := []TokenType{
		TokenNumber, TokenPlus, TokenNumber, TokenStar,
		TokenLParen, TokenNumber, TokenMinus, TokenNumber, TokenRParen,
	}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize produced %d tokens, want %d", len(tokens), len(want))
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("token %d type = %v, want %v", i, tokens[i].Type, typ)
		}
	}
	if tokens[2].Value != 4.25 {
		t.Errorf("token 2 value = %v, want 4.25", tokens[2].Value)
	}
	if tokens[4].Offset != 11 {
		t.Errorf("token 4 offset = %d, want 11", tokens[4].Offset)
	}
}

func TestTokenizeRejectsUnknownCharacters(t *testing.T) {
	for _, expr := range []string{"2 + a", "1 % 2", "3 ^ 2", "1 & 1"} {
		if _, err := Tokenize(expr); !errors.Is(err, ErrSyntax) {
			t.Errorf("Tokenize(%q) error = %v, want ErrSyntax", expr, err)
		}
	}
}

func TestFormatResult(t *testing.T) {
	cases := []struct {
		value    float64
		expected string
	}{
		{14, "14"},
		{-5, "-5"},
		{2.5, "2.5"},
		{1.0 / 3.0, "0.3333333333333333"},
	}

	for _, tc := range cases {
		if got := FormatResult(tc.value); got != tc.expected {
			t.Errorf("FormatResult(%v) = %q, want %q", tc.value, got, tc.expected)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(" 1 +\t2 \n"); got != "1+2" {
		t.Errorf("Normalize = %q, want %q", got, "1+2")
	}
}
