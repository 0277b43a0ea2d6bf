package calculator

// Eval evaluates the expression by walking its tree. Operand types are
// coerced to what each operator reads: a bool used as a number is NaN, and a
// number used as a bool is false. Both operands of && and || are always
// evaluated.
//
// Eval recurses once per level of nesting. For pathologically deep
// expressions, use EvalFlat.
func (e *Expr) Eval() Value {
	return e.n.eval()
}

// EvalFlat evaluates the expression with an explicit value stack over its
// postfix form instead of recursing over the tree. The result is always the
// same as that of Eval.
func (e *Expr) EvalFlat() Value {
	stack := make([]Value, 0, len(e.prog)/2+1)
	for _, in := range e.prog {
		if in.op == opNone {
			stack = append(stack, in.lit)
			continue
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, in.op.apply(l, r))
	}
	if len(stack) != 1 {
		panic("calculator: inconsistent stack (bad program?)")
	}
	return stack[0]
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(text string) (Value, error) {
	e, err := Parse(text)
	if err != nil {
		return Value{}, err
	}
	return e.Eval(), nil
}
