package ast

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/f77sub/f77sub/token"
)

// Value is the value of a numeric literal: Int, BigInt or Float.
type Value interface {
	fmt.Stringer
	numeric()
}

type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Int) numeric() {}

// BigInt holds an integer literal that does not fit in an Int.
type BigInt struct {
	*big.Int
}

func (BigInt) numeric() {}

type Float float64

// String prints the shortest text that reads back as f. Decimal exponents
// below -4 or from 16 up use scientific notation ("1e-07", "1.5e+20"); other
// values always keep a fractional part, so 3.0 prints as "3.0".
func (f Float) String() string {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

func (Float) numeric() {}

type InvalidNumberError struct {
	Text string
	Err  error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number literal %q: %v", e.Text, e.Err)
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}

func (e *InvalidNumberError) Code() string {
	return "syntax.invalid_number"
}

// NewNumber converts a NUMBER token into a literal node.
// A lexeme containing a decimal point becomes a Float, anything else an Int,
// or a BigInt when it does not fit in 64 bits. Floats beyond the float64
// range become ±Inf. Only text that is not a number at all is an error,
// which the lexer never produces.
func NewNumber(tok token.Token) (*Number, error) {
	if strings.Contains(tok.Lexeme, ".") {
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &InvalidNumberError{Text: tok.Lexeme, Err: err}
		}
		return &Number{Token: tok, Value: Float(f)}, nil
	}

	i, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err == nil {
		return &Number{Token: tok, Value: Int(i)}, nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, &InvalidNumberError{Text: tok.Lexeme, Err: err}
	}
	b, ok := new(big.Int).SetString(tok.Lexeme, 10)
	if !ok {
		return nil, &InvalidNumberError{Text: tok.Lexeme, Err: err}
	}
	return &Number{Token: tok, Value: BigInt{b}}, nil
}
