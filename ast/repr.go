package ast

import (
	"fmt"

	"github.com/f77sub/f77sub/token"
)

// Repr is a bottom-up interpretation of the AST.
// Every consumer that renders or analyzes a tree implements it, so adding a
// node kind is a compile error until each consumer handles it.
type Repr[T any] interface {
	Program(stmts []T) T
	Assign(name token.Token, expr T) T
	If(where token.Token, cond T, then []T, els []T) T
	BinOp(left T, op token.Token, right T) T
	Number(tok token.Token, value Value) T
	Var(name token.Token) T
}

// Fold interprets n with r, children first.
func Fold[T any](n Node, r Repr[T]) T {
	switch n := n.(type) {
	case *Program:
		return r.Program(foldAll(n.Stmts, r))
	case *Assign:
		return r.Assign(n.Name, Fold[T](n.Expr, r))
	case *If:
		return r.If(n.Token, Fold[T](n.Cond, r), foldAll(n.Then, r), foldAll(n.Else, r))
	case *BinOp:
		return r.BinOp(Fold[T](n.Left, r), n.Op, Fold[T](n.Right, r))
	case *Number:
		return r.Number(n.Token, n.Value)
	case *Var:
		return r.Var(n.Name)
	default:
		panic(fmt.Sprintf("unexpected node %T", n))
	}
}

func foldAll[N Node, T any](nodes []N, r Repr[T]) []T {
	results := make([]T, len(nodes))
	for i, n := range nodes {
		results[i] = Fold[T](n, r)
	}
	return results
}

// Builder rebuilds the tree it folds over, producing a deep copy.
type Builder struct{}

var _ Repr[Node] = Builder{}

func (b Builder) Program(stmts []Node) Node {
	return &Program{Stmts: statements(stmts)}
}

func (b Builder) Assign(name token.Token, expr Node) Node {
	return &Assign{Name: name, Expr: expression(expr)}
}

func (b Builder) If(where token.Token, cond Node, then []Node, els []Node) Node {
	c, ok := cond.(*BinOp)
	if !ok {
		panic(fmt.Sprintf("invalid condition %v", cond))
	}
	return &If{Token: where, Cond: c, Then: statements(then), Else: statements(els)}
}

func (b Builder) BinOp(left Node, op token.Token, right Node) Node {
	return &BinOp{Left: expression(left), Op: op, Right: expression(right)}
}

func (b Builder) Number(tok token.Token, value Value) Node {
	return &Number{Token: tok, Value: value}
}

func (b Builder) Var(name token.Token) Node {
	return &Var{Name: name}
}

func statements(nodes []Node) []Statement {
	stmts := make([]Statement, len(nodes))
	for i, node := range nodes {
		s, ok := node.(Statement)
		if !ok {
			panic(fmt.Sprintf("invalid statement %v", node))
		}
		stmts[i] = s
	}
	return stmts
}

func expression(node Node) Expression {
	e, ok := node.(Expression)
	if !ok {
		panic(fmt.Sprintf("invalid expression %v", node))
	}
	return e
}

// Clone returns a deep copy of n.
func Clone[N Node](n N) N {
	return Fold[Node](n, Builder{}).(N)
}
