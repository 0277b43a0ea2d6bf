package calculator

import (
	"math"

	"github.com/samber/lo"
)

// rankNone is the rank of any token text that is not a known operator. It is
// the loosest binding rank.
const rankNone = math.MaxUint8

// rank gets the precedence rank of an operator's text. Lower is more binding.
func rank(text string) int {
	switch text {
	case "^":
		return 29
	case "*", "/", "%":
		return 30
	case "+", "-":
		return 40
	case "<", "<=", ">", ">=":
		return 60
	case "&&":
		return 110
	case "||":
		return 120
	default:
		return rankNone
	}
}

// ToPostfix reorders infix tokens into postfix (reverse Polish) order using
// the shunting-yard algorithm. Operators of equal rank associate left to
// right. Parentheses are consumed; mismatched parentheses are not reported
// here but leave tokens in the output that Build rejects.
func ToPostfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var ops []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenOpenParen:
			ops = append(ops, tok)
		case TokenCloseParen:
			for len(ops) > 0 {
				op := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if op.Kind == TokenOpenParen {
					break
				}
				out = append(out, op)
			}
		case TokenOperator:
			r := rank(tok.Text)
			if len(ops) == 0 || rank(ops[len(ops)-1].Text) > r {
				ops = append(ops, tok)
				continue
			}
			// The top binds at least as tightly, so it goes first.
			for len(ops) > 0 && rank(ops[len(ops)-1].Text) <= r {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			out = append(out, tok)
		}
	}
	return append(out, lo.Reverse(ops)...)
}
