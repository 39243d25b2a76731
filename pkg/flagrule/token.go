package flagrule

import (
	"strings"
	"unicode"
)

// TokenKind discriminates the Token variants.
type TokenKind int

const (
	// TokenOperand is a run of non-operator text: a condition name or a
	// literal.
	TokenOperand TokenKind = iota
	// TokenOperator is a relational or logical operator.
	TokenOperator
	// TokenLeftParen opens a group. Never present in postfix output.
	TokenLeftParen
	// TokenRightParen closes a group. Never present in postfix output.
	TokenRightParen
)

// Token is one element of a tokenized expression.
// Text is set for operands; Op is set for operators.
type Token struct {
	Kind TokenKind
	Text string
	Op   Operator
}

// String returns the token's source spelling, for logs and test output.
func (t Token) String() string {
	switch t.Kind {
	case TokenOperand:
		return t.Text
	case TokenOperator:
		return t.Op.Symbol()
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	}
	return "?"
}

func operand(text string) Token { return Token{Kind: TokenOperand, Text: text} }

func operator(op Operator) Token { return Token{Kind: TokenOperator, Op: op} }

// normalizer rewrites two-character operator spellings to the internal
// single-rune forms. Lone '<', '>', '(' and ')' are already single runes.
var normalizer = strings.NewReplacer(
	"&&", string(symAnd),
	"||", string(symOr),
	"==", string(symEqual),
	"!=", string(symNotEqual),
	">=", string(symGreaterEqual),
	"<=", string(symLessEqual),
)

// Tokenize splits a raw expression into tokens. Whitespace is stripped
// and two-character operators are normalized first, so the scan itself
// is a single left-to-right pass over runes.
//
// There is no syntax error path: text the scanner does not recognize as
// an operator or parenthesis accumulates into operand tokens, and the
// evaluator's fail-closed rules absorb the result. "foo >< bar" becomes
// four tokens, not an error.
func Tokenize(expr string) []Token {
	normalized := normalizer.Replace(stripSpace(expr))

	tokens := make([]Token, 0, 8)
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, operand(buf.String()))
			buf.Reset()
		}
	}

	for _, r := range normalized {
		if op, ok := operatorForRune(r); ok {
			flush()
			tokens = append(tokens, operator(op))
			continue
		}
		switch r {
		case '(':
			flush()
			tokens = append(tokens, Token{Kind: TokenLeftParen})
		case ')':
			flush()
			tokens = append(tokens, Token{Kind: TokenRightParen})
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// stripSpace removes all whitespace runes from s.
func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
