package driver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/f77sub/f77sub/ast"
	"github.com/f77sub/f77sub/lexer"
	"github.com/f77sub/f77sub/parser"
	"github.com/f77sub/f77sub/token"
)

// Result holds everything produced by one analysis of a source text.
type Result struct {
	Tokens  []token.Token
	Program *ast.Program
}

// Analyze lexes and parses source.
func Analyze(source string) (*Result, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex: %w", err)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &Result{Tokens: tokens, Program: program}, nil
}

// Pass consumes a parsed program, typically by writing a rendering of it.
type Pass interface {
	Name() string
	Run(*Result) error
}

type passFunc struct {
	name string
	run  func(*Result) error
}

func (p passFunc) Name() string {
	return p.name
}

func (p passFunc) Run(res *Result) error {
	return p.run(res)
}

// PassFunc adapts a function to the Pass interface.
func PassFunc(name string, run func(*Result) error) Pass {
	return passFunc{name: name, run: run}
}

type PassRunner struct {
	passes []Pass
	logger *slog.Logger
}

func NewPassRunner() *PassRunner {
	return &PassRunner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SetLogger replaces the logger used for debug output. The default discards everything.
func (r *PassRunner) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution.
func (r *PassRunner) Run(res *Result) error {
	for _, pass := range r.passes {
		r.logger.Debug("running pass", "pass", pass.Name())
		if err := pass.Run(res); err != nil {
			return fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
	}

	return nil
}

// RunSource analyzes the source code and executes passes in order.
func (r *PassRunner) RunSource(source string) (*Result, error) {
	res, err := Analyze(source)
	if err != nil {
		r.logger.Debug("analysis failed", "error", err)
		return nil, err
	}
	r.logger.Debug("analyzed source",
		"tokens", len(res.Tokens),
		"statements", len(res.Program.Stmts),
		"nodes", len(ast.Universe(res.Program)))

	return res, r.Run(res)
}
