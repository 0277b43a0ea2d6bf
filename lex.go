package calculator

import (
	"strconv"
	"unicode"

	"github.com/samber/lo"
)

// Token is a single lexical element of an expression.
type Token struct {
	Kind TokenKind
	Text string
	// Pos is the column of the token's first rune, starting at 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind classifies tokens.
type TokenKind int

const (
	tokenNone TokenKind = iota
	// TokenOperand is a number, a boolean, or any other run of letters,
	// digits, and dots.
	TokenOperand
	// TokenOperator is a run of operator characters, e.g. + or &&.
	TokenOperator
	// TokenOpenParen is (.
	TokenOpenParen
	// TokenCloseParen is ).
	TokenCloseParen
	// TokenArgSeparator is ,.
	TokenArgSeparator
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenOperand:
		return "Operand"
	case TokenOperator:
		return "Operator"
	case TokenOpenParen:
		return "OpenParen"
	case TokenCloseParen:
		return "CloseParen"
	case TokenArgSeparator:
		return "ArgSeparator"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are lexed as operator characters.
// Adjacent operator runes form a single token, so e.g. "<=" and "&&" are one
// operator each.
const Operators = "*/%+-<>=!&^|"

var operatorRunes = []rune(Operators)

// Tokenize splits text into tokens. Runes which belong to no token, including
// whitespace, are dropped. Tokenize never fails; malformed input is rejected
// when the tokens are built into an expression.
func Tokenize(text string) []Token {
	var toks []Token
	col := 0
	for _, r := range text {
		col++
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r):
			toks = extend(toks, TokenOperand, r, "", col)
		case r == '.':
			toks = extend(toks, TokenOperand, r, "0", col)
		case r == '(':
			toks = append(toks, Token{Kind: TokenOpenParen, Text: "(", Pos: col})
		case r == ')':
			toks = append(toks, Token{Kind: TokenCloseParen, Text: ")", Pos: col})
		case r == ',':
			toks = append(toks, Token{Kind: TokenArgSeparator, Text: ",", Pos: col})
		case lo.Contains(operatorRunes, r):
			toks = extend(toks, TokenOperator, r, "", col)
		}
	}
	return toks
}

// extend appends r to the last token if it is of the given kind. Otherwise it
// starts a new token with text prefix+r.
func extend(toks []Token, kind TokenKind, r rune, prefix string, col int) []Token {
	if n := len(toks); n > 0 && toks[n-1].Kind == kind {
		toks[n-1].Text += string(r)
		return toks
	}
	return append(toks, Token{Kind: kind, Text: prefix + string(r), Pos: col})
}

