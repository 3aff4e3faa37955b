package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/f77sub/f77sub/token"
)

type ruleKind int

const (
	emit ruleKind = iota
	newline
	skip
)

type rule struct {
	kind    ruleKind
	token   token.Kind
	pattern *regexp.Regexp
}

func newRule(kind ruleKind, tok token.Kind, pattern string) rule {
	return rule{kind: kind, token: tok, pattern: regexp.MustCompile(`^(?:` + pattern + `)`)}
}

// rules are tried in order at every offset and the first match wins.
// RELOP must stay ahead of ASSIGN and DIV so that `==` and `/=` are not split.
var rules = []rule{
	newRule(emit, token.NUMBER, `[0-9]+(?:\.[0-9]+)?`),
	newRule(emit, token.IDENTIFIER, `[A-Za-z][A-Za-z0-9_]*`),
	newRule(emit, token.RELOP, `<=|>=|==|/=|<|>`),
	newRule(emit, token.ASSIGN, `=`),
	newRule(emit, token.PLUS, `\+`),
	newRule(emit, token.MINUS, `-`),
	newRule(emit, token.MUL, `\*`),
	newRule(emit, token.DIV, `/`),
	newRule(emit, token.LPAREN, `\(`),
	newRule(emit, token.RPAREN, `\)`),
	newRule(newline, token.EOF, `\n`),
	newRule(skip, token.EOF, `[ \t\r]+`),
	newRule(skip, token.EOF, `![^\n]*`),
}

// Lex scans the whole source and returns its tokens terminated by an EOF token.
// Scanning stops at the first character no rule accepts.
func Lex(source string) ([]token.Token, error) {
	lexer := lexer{
		source: source,
		tokens: []token.Token{},
		line:   1,
		column: 1,
	}

	for !lexer.isAtEnd() {
		if err := lexer.scanToken(); err != nil {
			return nil, err
		}
	}

	lexer.tokens = append(lexer.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: lexer.line, Column: lexer.column})

	return lexer.tokens, nil
}

type lexer struct {
	source string
	tokens []token.Token

	current int // byte offset in source
	line    int // 1-based
	column  int // 1-based, counted in runes
}

func (l lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

type UnexpectedCharacterError struct {
	Line   int
	Column int
	Char   rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at line %d column %d", e.Char, e.Line, e.Column)
}

func (e *UnexpectedCharacterError) Code() string {
	return "lex.unexpected_character"
}

func (e *UnexpectedCharacterError) Position() (int, int) {
	return e.Line, e.Column
}

func (l *lexer) scanToken() error {
	rest := l.source[l.current:]
	for _, r := range rules {
		loc := r.pattern.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		text := rest[:loc[1]]
		switch r.kind {
		case emit:
			l.addToken(r.token, text)
			l.column += utf8.RuneCountInString(text)
		case newline:
			l.line++
			l.column = 1
		case skip:
			l.column += utf8.RuneCountInString(text)
		}
		l.current += loc[1]

		return nil
	}

	char, _ := utf8.DecodeRuneInString(rest)

	return &UnexpectedCharacterError{Line: l.line, Column: l.column, Char: char}
}

func (l *lexer) addToken(kind token.Kind, text string) {
	if kind == token.IDENTIFIER {
		if k, ok := token.Keyword(strings.ToUpper(text)); ok {
			kind = k
		}
	}
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: text, Line: l.line, Column: l.column})
}
