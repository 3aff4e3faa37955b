// Package parser builds an AST from the token stream produced by the lexer.
package parser

import (
	"fmt"
	"strings"

	"github.com/f77sub/f77sub/ast"
	"github.com/f77sub/f77sub/token"
	"github.com/f77sub/f77sub/utils"
)

type Parser struct {
	tokens  []token.Token
	current int
}

// New returns a parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF})
	}
	return &Parser{tokens, 0}
}

// Parse is shorthand for New(tokens).Parse().
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens).Parse()
}

// Parse parses a whole program. It stops at the first error and returns no tree in that case.
//
// program = stmtList EOF ;
func (p *Parser) Parse() (*ast.Program, error) {
	p.current = 0
	stmts, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	if !p.IsAtEnd() {
		return nil, utils.ErrorAt{Where: p.peek(), Err: &TrailingInputError{Got: p.peek()}}
	}

	return &ast.Program{Stmts: stmts}, nil
}

// stmtList = stmt* ;
func (p *Parser) stmtList() ([]ast.Statement, error) {
	stmts := []ast.Statement{}
	for p.match(token.IDENTIFIER) || p.match(token.IF) {
		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// stmt = assignStmt | ifStmt ;
func (p *Parser) stmt() (ast.Statement, error) {
	switch {
	case p.match(token.IDENTIFIER):
		return p.assignStmt()
	case p.match(token.IF):
		return p.ifStmt()
	default:
		return nil, unexpectedToken(p.peek(), "statement")
	}
}

// assignStmt = IDENTIFIER "=" expr ;
func (p *Parser) assignStmt() (*ast.Assign, error) {
	name, err := p.consume(token.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Name: name, Expr: expr}, nil
}

// ifStmt = "IF" "(" cond ")" "THEN" stmtList ( "ELSE" stmtList )? "ENDIF" ;
func (p *Parser) ifStmt() (*ast.If, error) {
	keyword, err := p.consume(token.IF)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.cond()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.stmtList()
	if err != nil {
		return nil, err
	}
	els := []ast.Statement{}
	if p.match(token.ELSE) {
		p.advance()
		els, err = p.stmtList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.ENDIF); err != nil {
		return nil, err
	}

	return &ast.If{Token: keyword, Cond: cond, Then: then, Else: els}, nil
}

// cond = expr RELOP expr ;
func (p *Parser) cond() (*ast.BinOp, error) {
	left, err := p.expr()
	if err != nil {
		return nil, err
	}
	op, err := p.consume(token.RELOP)
	if err != nil {
		return nil, err
	}
	right, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &ast.BinOp{Left: left, Op: op, Right: right}, nil
}

// expr = term ( ( "+" | "-" ) term )* ;
func (p *Parser) expr() (ast.Expression, error) {
	return p.binary(p.term, token.PLUS, token.MINUS)
}

// term = factor ( ( "*" | "/" ) factor )* ;
func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, token.MUL, token.DIV)
}

// binary parses a left-associative chain of operand separated by any of ops.
func (p *Parser) binary(operand func() (ast.Expression, error), ops ...token.Kind) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.matchAny(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinOp{Left: expr, Op: op, Right: right}
	}

	return expr, nil
}

// factor = "(" expr ")" | NUMBER | IDENTIFIER ;
func (p *Parser) factor() (ast.Expression, error) {
	//exhaustive:ignore
	switch tok := p.peek(); tok.Kind {
	case token.LPAREN:
		p.advance()
		expr, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN); err != nil {
			return nil, err
		}

		return expr, nil
	case token.NUMBER:
		p.advance()
		num, err := ast.NewNumber(tok)
		if err != nil {
			return nil, utils.ErrorAt{Where: tok, Err: err}
		}

		return num, nil
	case token.IDENTIFIER:
		p.advance()

		return &ast.Var{Name: tok}, nil
	default:
		return nil, unexpectedToken(tok, token.LPAREN.String(), token.NUMBER.String(), token.IDENTIFIER.String())
	}
}

func (p Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) advance() token.Token {
	if !p.IsAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p Parser) IsAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p Parser) match(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p Parser) matchAny(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.match(kind) {
			return true
		}
	}

	return false
}

// consume is the expect primitive: it advances past a token of the given kind or fails.
func (p *Parser) consume(kind token.Kind) (token.Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}

	return p.peek(), unexpectedToken(p.peek(), kind.String())
}

type UnexpectedTokenError struct {
	Expected []string
	Got      token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s but got %v", strings.Join(e.Expected, " or "), e.Got.Kind)
}

func (e *UnexpectedTokenError) Code() string {
	return "syntax.unexpected_token"
}

func unexpectedToken(t token.Token, expected ...string) error {
	return utils.ErrorAt{Where: t, Err: &UnexpectedTokenError{Expected: expected, Got: t}}
}

type TrailingInputError struct {
	Got token.Token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("expected %v but got %v after a complete program", token.EOF, e.Got.Kind)
}

func (e *TrailingInputError) Code() string {
	return "syntax.trailing_input"
}
