// Package calculator implements a calculator for one-line expressions over
// float64 numbers and booleans.
//
// Expressions use the usual infix operators. "+ - * / % ^" take numbers to
// numbers, "< <= > >=" compare numbers, and "&& ||" combine booleans. "^" is
// exponentiation and binds tightest; every operator, "^" included, associates
// left to right, so "2^3^2" is "(2^3)^2". Parentheses group as expected.
//
// Evaluation never fails. An operand of the wrong type is coerced instead:
// a boolean used as a number is NaN, and a number used as a boolean is false.
// So "(6>7)+(5>6)" is NaN and "6 && 6" is false.
//
// Parsing runs in three stages, each available on its own: Tokenize splits
// text into tokens, ToPostfix orders them with the shunting-yard algorithm,
// and Build turns the postfix tokens into an Expr.
package calculator
