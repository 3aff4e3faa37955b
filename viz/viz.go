// Package viz renders an AST as a Graphviz DOT digraph.
package viz

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/f77sub/f77sub/ast"
	"github.com/f77sub/f77sub/token"
)

// Graph builds the DOT graph of n. Each AST node becomes one graph node,
// numbered parent first in source order; the edges of an If are labelled
// cond, then and else.
func Graph(n ast.Node) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("comment", "syntax tree")
	ast.Fold[build](n, &renderer{graph: g})()
	return g
}

// Render returns the DOT source of the graph of n.
func Render(n ast.Node) string {
	return Graph(n).String()
}

// NodeID is the id of the i-th node of a graph built by Graph, counting from 0.
// Ids are zero-padded so that their string order, which dot uses when
// writing the graph, is the numbering order.
func NodeID(i int) string {
	return fmt.Sprintf("n%04d", i)
}

// build adds a subtree to the graph and returns its root.
// The fold runs children first, so nodes are only created when the
// parent's build runs.
type build func() dot.Node

type renderer struct {
	graph *dot.Graph
	next  int
}

var _ ast.Repr[build] = &renderer{}

func (r *renderer) node(label string) dot.Node {
	id := NodeID(r.next)
	r.next++
	return r.graph.Node(id).
		Label(label).
		Attr("shape", "ellipse").
		Attr("style", "filled").
		Attr("fillcolor", "lightblue")
}

func (r *renderer) edges(parent dot.Node, label string, children ...build) {
	for _, child := range children {
		e := r.graph.Edge(parent, child())
		if label != "" {
			e.Label(label)
		}
	}
}

func (r *renderer) leaf(label string) build {
	return func() dot.Node {
		return r.node(label)
	}
}

func (r *renderer) Program(stmts []build) build {
	return func() dot.Node {
		n := r.node("Program")
		r.edges(n, "", stmts...)
		return n
	}
}

func (r *renderer) Assign(name token.Token, expr build) build {
	return func() dot.Node {
		n := r.node(fmt.Sprintf("Assign\n(%s)", name.Lexeme))
		r.edges(n, "", expr)
		return n
	}
}

func (r *renderer) If(_ token.Token, cond build, then []build, els []build) build {
	return func() dot.Node {
		n := r.node("If")
		r.edges(n, "cond", cond)
		r.edges(n, "then", then...)
		r.edges(n, "else", els...)
		return n
	}
}

func (r *renderer) BinOp(left build, op token.Token, right build) build {
	return func() dot.Node {
		n := r.node(fmt.Sprintf("BinOp\n(%s)", op.Lexeme))
		r.edges(n, "", left, right)
		return n
	}
}

func (r *renderer) Number(_ token.Token, value ast.Value) build {
	return r.leaf(fmt.Sprintf("Number\n(%s)", value))
}

func (r *renderer) Var(name token.Token) build {
	return r.leaf(fmt.Sprintf("Var\n(%s)", name.Lexeme))
}
