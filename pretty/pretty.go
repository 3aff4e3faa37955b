// Package pretty renders an AST as an indented tree, one node per line.
package pretty

import (
	"fmt"
	"strings"

	"github.com/f77sub/f77sub/ast"
	"github.com/f77sub/f77sub/token"
)

const indent = "  "

// Print renders n and its descendants. The output always ends with a newline.
func Print(n ast.Node) string {
	var b strings.Builder
	for _, line := range ast.Fold[[]string](n, printer{}) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// printer renders each node as a block of lines relative to its own indentation.
type printer struct{}

var _ ast.Repr[[]string] = printer{}

func (printer) Program(stmts [][]string) []string {
	return append([]string{"Program"}, nested(1, stmts...)...)
}

func (printer) Assign(name token.Token, expr []string) []string {
	return append([]string{fmt.Sprintf("Assign(%s)", name.Lexeme)}, nested(1, expr)...)
}

// If labels its parts one space in and indents their contents by two levels.
func (printer) If(_ token.Token, cond []string, then [][]string, els [][]string) []string {
	lines := []string{"If", " Cond:"}
	lines = append(lines, nested(2, cond)...)
	lines = append(lines, " Then:")
	lines = append(lines, nested(2, then...)...)
	if len(els) > 0 {
		lines = append(lines, " Else:")
		lines = append(lines, nested(2, els...)...)
	}
	return lines
}

func (printer) BinOp(left []string, op token.Token, right []string) []string {
	return append([]string{fmt.Sprintf("BinOp(%s)", op.Lexeme)}, nested(1, left, right)...)
}

func (printer) Number(_ token.Token, value ast.Value) []string {
	return []string{fmt.Sprintf("Number(%s)", value)}
}

func (printer) Var(name token.Token) []string {
	return []string{fmt.Sprintf("Var(%s)", name.Lexeme)}
}

func nested(depth int, blocks ...[]string) []string {
	pad := strings.Repeat(indent, depth)
	var lines []string
	for _, block := range blocks {
		for _, line := range block {
			lines = append(lines, pad+line)
		}
	}
	return lines
}
