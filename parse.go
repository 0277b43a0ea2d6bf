package calculator

// Expr is a parsed expression. An Expr is immutable, so it is safe to
// evaluate and format concurrently. Evaluating an Expr never fails.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// prog is the postfix program equivalent to n.
	prog []instr
	// src is the text the expression was parsed from.
	src string
}

// Parse parses an expression. The error, if not nil, implements ParseError.
func Parse(text string) (*Expr, error) {
	return Build(ToPostfix(Tokenize(text)), text)
}

// Build builds an expression from tokens in postfix order, as produced by
// ToPostfix. source is the text the tokens came from; it is reported in
// errors. The error, if not nil, implements ParseError.
func Build(postfix []Token, source string) (*Expr, error) {
	var stack []*node
	prog := make([]instr, 0, len(postfix))
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenOperand:
			v, err := parseValue(tok.Text)
			if err != nil {
				return nil, err
			}
			stack = append(stack, &node{kind: nodeLit, val: v})
			prog = append(prog, instr{lit: v})
		case TokenOperator:
			if len(stack) < 2 {
				return nil, &InvalidExpressionError{Text: source}
			}
			op, ok := lookupOp(tok.Text)
			if !ok {
				return nil, &InvalidExpressionError{Text: source}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, &node{kind: nodeBinary, op: op, sym: tok.Text, left: l, right: r})
			prog = append(prog, instr{op: op})
		default:
			// Parentheses that didn't match and separators, which no
			// operator uses.
			return nil, &InvalidExpressionError{Text: source}
		}
	}
	if len(stack) != 1 {
		// Either nothing at all or several terms with nothing joining them.
		return nil, &InvalidExpressionError{Text: source}
	}
	return &Expr{n: stack[0], prog: prog, src: source}, nil
}

// String formats the expression with every operation fully parenthesized,
// e.g. "(6 + (2 * 3))".
func (e *Expr) String() string {
	return e.n.String()
}

// Source returns the text the expression was parsed from.
func (e *Expr) Source() string {
	return e.src
}
