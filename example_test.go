package calculator_test

import (
	"fmt"

	"github.com/zephyrtronium/calculator"
)

func ExampleParse() {
	a, _ := calculator.Parse("(6+10-4)/(1+1*2)+1")
	b, _ := calculator.Parse("5>6 && 4>6")
	c, _ := calculator.Parse("(6>7)+(5>6)")
	fmt.Println(a, "=", a.Eval())
	fmt.Println(b, "=", b.Eval())
	fmt.Println(c, "=", c.Eval())

	// Output:
	// ((((6 + 10) - 4) / (1 + (1 * 2))) + 1) = 5
	// ((5 > 6) && (4 > 6)) = false
	// ((6 > 7) + (5 > 6)) = NaN
}

func ExampleParse_error() {
	_, err := calculator.Parse("6+")
	fmt.Println(err)
	_, err = calculator.Parse("6as")
	fmt.Println(err)

	// Output:
	// the expression "6+" is invalid
	// value "6as" is not supported, only float64 and bool are supported
}

func ExampleToPostfix() {
	for _, tok := range calculator.ToPostfix(calculator.Tokenize("a+b*c+d")) {
		fmt.Print(tok.Text, " ")
	}
	fmt.Println()

	// Output:
	// a b c * + d +
}
