package flagrule

// ToPostfix converts an infix token sequence into reverse Polish order
// using the shunting-yard algorithm with an operator stack and an
// output queue.
//
// The precedence rule is intentionally unconventional and must stay as
// is: every relational operator is higher-or-equal precedence than every
// other operator, including other relational operators, while the
// logical operators sit below them and are equal among themselves.
// Operators of equal precedence resolve purely by stack order, which
// gives left-to-right grouping within a same-class chain.
//
// Guarantees: the output never contains parenthesis tokens and is never
// longer than the input. Unbalanced parentheses are absorbed rather
// than reported; the evaluator resolves whatever remains fail-closed.
func ToPostfix(tokens []Token) []Token {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	for _, t := range tokens {
		switch t.Kind {
		case TokenOperand:
			output = append(output, t)

		case TokenOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || top.Op.precedence() < t.Op.precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)

		case TokenLeftParen:
			stack = append(stack, t)

		case TokenRightParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenLeftParen {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			// Discard the matching paren; a stray ')' just drains the stack.
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Unmatched '(' never reaches the output.
		if top.Kind == TokenOperator {
			output = append(output, top)
		}
	}

	return output
}
