package calculator

import "strconv"

// UnsupportedValueError is an error indicating an operand that is neither a
// float64 nor exactly "true" or "false". It implements ParseError.
type UnsupportedValueError struct {
	// Text is the operand's text.
	Text string
}

func (err *UnsupportedValueError) Error() string {
	return "value " + strconv.Quote(err.Text) + " is not supported, only float64 and bool are supported"
}

func (err *UnsupportedValueError) Input() string {
	return err.Text
}

// InvalidExpressionError is an error indicating a structural problem with an
// expression: an operator without two operands, an unknown operator, a stray
// parenthesis or separator, or a number of terms other than one. It
// implements ParseError.
type InvalidExpressionError struct {
	// Text is the entire source text of the expression.
	Text string
}

func (err *InvalidExpressionError) Error() string {
	return "the expression " + strconv.Quote(err.Text) + " is invalid"
}

func (err *InvalidExpressionError) Input() string {
	return err.Text
}

// ParseError is an error resulting from invalid input. Every error returned
// from Parse and Build implements ParseError.
type ParseError interface {
	error
	// Input returns the text the error is about: the operand for
	// UnsupportedValueError, or the whole expression for
	// InvalidExpressionError.
	Input() string
}

var (
	_ ParseError = (*UnsupportedValueError)(nil)
	_ ParseError = (*InvalidExpressionError)(nil)
)
