package flagrule

// Operator is a closed set of comparison and logical operators.
// The zero value is OpNotEqual; use ParseOperator to go from a symbol
// to an Operator.
type Operator int

// Relational operators compare a condition against a literal.
// Logical operators combine boolean results.
const (
	OpNotEqual Operator = iota
	OpLess
	OpLessEqual
	OpEqual
	OpGreater
	OpGreaterEqual
	OpAnd
	OpOr
)

// Internal single-rune spellings. The tokenizer normalizes two-character
// operator spellings to these before scanning, so the scanner only has
// to recognize single runes.
const (
	symNotEqual     = '!'
	symLess         = '<'
	symLessEqual    = '≤'
	symEqual        = '='
	symGreater      = '>'
	symGreaterEqual = '≥'
	symAnd          = '&'
	symOr           = '|'
)

// Symbol returns the canonical source spelling of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpEqual:
		return "=="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	}
	return "?"
}

// String implements fmt.Stringer.
func (op Operator) String() string { return op.Symbol() }

// IsRelational reports whether op compares a condition against a literal.
func (op Operator) IsRelational() bool {
	switch op {
	case OpNotEqual, OpLess, OpLessEqual, OpEqual, OpGreater, OpGreaterEqual:
		return true
	}
	return false
}

// IsLogical reports whether op combines two boolean operands.
func (op Operator) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// precedence returns the operator's precedence class for infix-to-postfix
// conversion. All relational operators share one class above the logical
// operators; there is deliberately no ordering among relational operators
// themselves. Deployed expressions depend on this exact table, so it must
// not be "fixed" into a conventional one.
func (op Operator) precedence() int {
	if op.IsRelational() {
		return 2
	}
	return 1
}

// operatorForRune maps an internal single-rune spelling to its Operator.
func operatorForRune(r rune) (Operator, bool) {
	switch r {
	case symNotEqual:
		return OpNotEqual, true
	case symLess:
		return OpLess, true
	case symLessEqual:
		return OpLessEqual, true
	case symEqual:
		return OpEqual, true
	case symGreater:
		return OpGreater, true
	case symGreaterEqual:
		return OpGreaterEqual, true
	case symAnd:
		return OpAnd, true
	case symOr:
		return OpOr, true
	}
	return 0, false
}
