package utils

import (
	"errors"
	"fmt"

	"github.com/f77sub/f77sub/token"
	"gopkg.in/yaml.v3"
)

// ErrorAt attaches the offending token to an error.
type ErrorAt struct {
	Where token.Token
	Err   error
}

func (e ErrorAt) Error() string {
	if e.Where.Kind == token.EOF {
		return fmt.Sprintf("at end (%s): %s", e.Where.Pos(), e.Err.Error())
	}
	return fmt.Sprintf("at %s: `%s`, %s", e.Where.Pos(), e.Where.Lexeme, e.Err.Error())
}

func (e ErrorAt) Unwrap() error {
	return e.Err
}

// Coder is implemented by errors that carry a stable machine-readable code.
type Coder interface {
	Code() string
}

// CodeOf returns the code of the first error in err's chain that has one.
func CodeOf(err error) string {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// PositionOf returns the line and column recorded in err's chain, if any.
func PositionOf(err error) (line, column int, ok bool) {
	var at ErrorAt
	if errors.As(err, &at) {
		return at.Where.Line, at.Where.Column, true
	}
	var p interface{ Position() (int, int) }
	if errors.As(err, &p) {
		line, column = p.Position()
		return line, column, true
	}
	return 0, 0, false
}

type TestData struct {
	Label    string
	Enable   bool
	Input    string
	Expected map[string]string
}

func ReadTestData(s []byte) []TestData {
	var data []TestData
	if err := yaml.Unmarshal(s, &data); err != nil {
		panic(err)
	}

	// Remove disabled test cases.
	i := 0
	for _, d := range data {
		if d.Enable {
			data[i] = d
			i++
		}
	}
	data = data[:i]

	return data
}
