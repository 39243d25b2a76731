package flagrule

import "strings"

// Facts is one evaluation's snapshot of condition values. A snapshot is
// taken once per Evaluate call, so all lookups within a single
// evaluation observe the same fact set.
type Facts map[Condition]Value

// with returns a copy of f with c set to v. The receiver is not
// modified; snapshots stay immutable once handed to the evaluator.
func (f Facts) with(c Condition, v Value) Facts {
	out := make(Facts, len(f)+1)
	for k, val := range f {
		out[k] = val
	}
	out[c] = v
	return out
}

// literal spellings pushed back onto the value stack by the evaluator.
const (
	literalTrue  = "true"
	literalFalse = "false"
)

// parseBoolLiteral recognizes the accepted boolean spellings,
// case-insensitively.
func parseBoolLiteral(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	}
	return false, false
}

func boolLiteral(b bool) string {
	if b {
		return literalTrue
	}
	return literalFalse
}

// evalPostfix runs a postfix program on a string stack machine against
// a fact snapshot. It is total: every input, however malformed, yields
// a definite boolean. Anything unresolvable — unknown condition, absent
// fact, failed coercion, operand underflow — pushes false instead of
// erroring, so a broken rule reads as "feature off" rather than taking
// the host down.
func evalPostfix(program []Token, facts Facts) bool {
	stack := make([]string, 0, len(program))
	pop := func() (string, bool) {
		if len(stack) == 0 {
			return "", false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, t := range program {
		switch t.Kind {
		case TokenOperand:
			stack = append(stack, t.Text)

		case TokenOperator:
			rhs, okR := pop()
			lhs, okL := pop()
			if !okR || !okL {
				stack = append(stack, literalFalse)
				continue
			}
			stack = append(stack, boolLiteral(applyOperator(t.Op, lhs, rhs, facts)))
		}
	}

	top, ok := pop()
	if !ok {
		return false
	}
	result, ok := parseBoolLiteral(top)
	return ok && result
}

// applyOperator resolves one operator application. Two patterns are
// recognized: logical combination of two boolean literals, and a
// relational comparison of a known condition against a literal.
// Everything else is false.
func applyOperator(op Operator, lhs, rhs string, facts Facts) bool {
	if op.IsLogical() {
		left, okL := parseBoolLiteral(lhs)
		right, okR := parseBoolLiteral(rhs)
		if okL && okR {
			if op == OpAnd {
				return left && right
			}
			return left || right
		}
		return false
	}

	cond, ok := ParseCondition(lhs)
	if !ok {
		return false
	}
	value, ok := facts[cond]
	if !ok {
		return false
	}
	result, ok := value.compare(op, rhs)
	return ok && result
}
