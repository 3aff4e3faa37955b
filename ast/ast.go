package ast

import (
	"fmt"
	"strings"

	"github.com/f77sub/f77sub/token"
)

// AST

// Node is implemented only by the node types in this package.
// Nodes are built once by the parser and never mutated afterwards.
type Node interface {
	fmt.Stringer
	Base() token.Token
	node()
}

// Statement is *Assign or *If.
type Statement interface {
	Node
	stmt()
}

// Expression is *BinOp, *Number or *Var.
type Expression interface {
	Node
	expr()
}

type Program struct {
	Stmts []Statement
}

func (p Program) String() string {
	return parenthesize("program", concat(p.Stmts)).String()
}

func (p *Program) Base() token.Token {
	if len(p.Stmts) == 0 {
		return token.Token{}
	}
	return p.Stmts[0].Base()
}

func (*Program) node() {}

var _ Node = &Program{}

type Assign struct {
	Name token.Token
	Expr Expression
}

func (a Assign) String() string {
	return parenthesize("assign "+a.Name.Lexeme, a.Expr).String()
}

func (a *Assign) Base() token.Token {
	return a.Name
}

func (*Assign) node() {}
func (*Assign) stmt() {}

var _ Statement = &Assign{}

type If struct {
	Token token.Token // the IF keyword
	Cond  *BinOp      // always a relational comparison
	Then  []Statement
	Else  []Statement // empty when there is no ELSE branch
}

func (i If) String() string {
	elems := []fmt.Stringer{i.Cond, parenthesize("then", concat(i.Then))}
	if len(i.Else) > 0 {
		elems = append(elems, parenthesize("else", concat(i.Else)))
	}
	return parenthesize("if", elems...).String()
}

func (i *If) Base() token.Token {
	return i.Token
}

func (*If) node() {}
func (*If) stmt() {}

var _ Statement = &If{}

type BinOp struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (b BinOp) String() string {
	return parenthesize("binop "+b.Op.Lexeme, b.Left, b.Right).String()
}

func (b *BinOp) Base() token.Token {
	return b.Op
}

// IsRelational reports whether the operator is one of the six comparisons.
func (b *BinOp) IsRelational() bool {
	return b.Op.Kind == token.RELOP
}

func (*BinOp) node() {}
func (*BinOp) expr() {}

var _ Expression = &BinOp{}

type Number struct {
	Token token.Token
	Value Value
}

func (n Number) String() string {
	return parenthesize("number "+n.Value.String()).String()
}

func (n *Number) Base() token.Token {
	return n.Token
}

func (*Number) node() {}
func (*Number) expr() {}

var _ Expression = &Number{}

type Var struct {
	Name token.Token
}

func (v Var) String() string {
	return parenthesize("var " + v.Name.Lexeme).String()
}

func (v *Var) Base() token.Token {
	return v.Name
}

func (*Var) node() {}
func (*Var) expr() {}

var _ Expression = &Var{}

// parenthesize takes a head string and a variadic number of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is parenthesized and separated by a space.
// If the head string is not empty, it is added at the beginning of the string.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	elemsStr := concat(elems).String()
	if head != "" {
		b.WriteString(head)
	}
	if elemsStr != "" {
		if head != "" {
			b.WriteString(" ")
		}
		b.WriteString(elemsStr)
	}
	b.WriteString(")")
	return &b
}

// concat takes a slice of nodes that implement the fmt.Stringer interface.
// It returns a fmt.Stringer that represents a string where each node is separated by a space.
func concat[T fmt.Stringer](elems []T) fmt.Stringer {
	var b strings.Builder
	for _, elem := range elems {
		// ignore empty string
		// e.g. concat({}) == ""
		str := elem.String()
		if str == "" {
			continue
		}
		if b.Len() != 0 {
			b.WriteString(" ")
		}
		b.WriteString(str)
	}
	return &b
}

// Children returns the direct children of n in source order.
// For *If the condition comes first, then the THEN statements, then the ELSE statements.
func Children(n Node) []Node {
	var children []Node
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Stmts {
			children = append(children, s)
		}
	case *Assign:
		children = append(children, n.Expr)
	case *If:
		children = append(children, n.Cond)
		for _, s := range n.Then {
			children = append(children, s)
		}
		for _, s := range n.Else {
			children = append(children, s)
		}
	case *BinOp:
		children = append(children, n.Left, n.Right)
	case *Number, *Var:
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}
	return children
}

// Universe returns n and all of its descendants in depth-first pre-order.
func Universe(n Node) []Node {
	nodes := []Node{n}
	for _, child := range Children(n) {
		nodes = append(nodes, Universe(child)...)
	}
	return nodes
}
