package calculator

import (
	"math"
	"strconv"
)

// OperatorKind identifies the semantics of a binary operator.
type OperatorKind int8

const (
	opNone OperatorKind = iota

	// Numeric operators read float64 operands. Bool operands read as NaN.
	OpAdd       // a + b
	OpSub       // a - b
	OpMul       // a * b
	OpDiv       // a / b
	OpMod       // remainder of a / b, sign of a
	OpPow       // a raised to b
	OpLess      // a < b
	OpLessEq    // a <= b
	OpGreater   // a > b
	OpGreaterEq // a >= b

	// Boolean operators read bool operands. Float operands read as false.
	OpAnd // a && b
	OpOr  // a || b
)

var opsyms = [...]string{
	OpAdd:       "+",
	OpSub:       "-",
	OpMul:       "*",
	OpDiv:       "/",
	OpMod:       "%",
	OpPow:       "^",
	OpLess:      "<",
	OpLessEq:    "<=",
	OpGreater:   ">",
	OpGreaterEq: ">=",
	OpAnd:       "&&",
	OpOr:        "||",
}

// lookupOp gets the operator for a symbol. The second result is false if
// there is no such operator.
func lookupOp(sym string) (OperatorKind, bool) {
	for k, s := range opsyms {
		if s != "" && s == sym {
			return OperatorKind(k), true
		}
	}
	return opNone, false
}

// Symbol returns the operator's text.
func (k OperatorKind) Symbol() string {
	if k <= opNone || int(k) >= len(opsyms) {
		return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opsyms[k]
}

func (k OperatorKind) String() string {
	return k.Symbol()
}

// Numeric returns whether the operator reads float64 operands.
func (k OperatorKind) Numeric() bool {
	return OpAdd <= k && k <= OpGreaterEq
}

// apply applies the operator to two values, coercing each to the operand type
// the operator reads.
func (k OperatorKind) apply(l, r Value) Value {
	if k.Numeric() {
		a, _ := l.AsFloat()
		b, _ := r.AsFloat()
		return k.arith(a, b)
	}
	a, _ := l.AsBool()
	b, _ := r.AsBool()
	switch k {
	case OpAnd:
		return Bool(a && b)
	case OpOr:
		return Bool(a || b)
	default:
		panic("calculator: invalid operator " + k.String())
	}
}

func (k OperatorKind) arith(a, b float64) Value {
	switch k {
	case OpAdd:
		return Float(a + b)
	case OpSub:
		return Float(a - b)
	case OpMul:
		return Float(a * b)
	case OpDiv:
		return Float(a / b)
	case OpMod:
		return Float(math.Mod(a, b))
	case OpPow:
		return Float(math.Pow(a, b))
	case OpLess:
		return Bool(a < b)
	case OpLessEq:
		return Bool(a <= b)
	case OpGreater:
		return Bool(a > b)
	case OpGreaterEq:
		return Bool(a >= b)
	default:
		panic("calculator: invalid operator " + k.String())
	}
}
