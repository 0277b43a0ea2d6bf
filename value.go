package calculator

import (
	"errors"
	"math"
	"strconv"
)

// Value is the result of evaluating an expression: either a float64 or a
// bool. Values are comparable with ==, which follows float equality, so a NaN
// Value is not equal to itself.
type Value struct {
	f      float64
	b      bool
	isBool bool
}

// Float creates a float64 Value.
func Float(f float64) Value {
	return Value{f: f}
}

// Bool creates a bool Value.
func Bool(b bool) Value {
	return Value{b: b, isBool: true}
}

// IsFloat returns whether v holds a float64.
func (v Value) IsFloat() bool {
	return !v.isBool
}

// IsBool returns whether v holds a bool.
func (v Value) IsBool() bool {
	return v.isBool
}

// AsFloat returns the float64 held by v. If v is a bool, the result is NaN
// and false.
func (v Value) AsFloat() (float64, bool) {
	if v.isBool {
		return math.NaN(), false
	}
	return v.f, true
}

// AsBool returns the bool held by v. If v is a float64, the result is false
// and false.
func (v Value) AsBool() (bool, bool) {
	if !v.isBool {
		return false, false
	}
	return v.b, true
}

// String formats v. Floats use the shortest decimal representation without
// an exponent, e.g. 6, 0.5, NaN, inf.
func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.b)
	}
	switch {
	case math.IsInf(v.f, 1):
		return "inf"
	case math.IsInf(v.f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v.f, 'f', -1, 64)
}

// parseValue interprets operand text as a float64, or failing that as exactly
// "true" or "false".
func parseValue(text string) (Value, error) {
	if f, ok := parseFloat(text); ok {
		return Float(f), nil
	}
	switch text {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	}
	return Value{}, &UnsupportedValueError{Text: text}
}

// parseFloat parses decimal float syntax. Magnitudes too large to represent
// become infinities. Hexadecimal mantissas are not decimal syntax.
func parseFloat(text string) (float64, bool) {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			// f is already ±Inf.
			return f, true
		}
		return 0, false
	}
	return f, true
}

