package token

import "fmt"

type Kind int

const (
	EOF Kind = iota

	// Literals and identifiers.
	NUMBER
	IDENTIFIER

	// Keywords.
	IF
	THEN
	ELSE
	ENDIF

	// Operators and punctuation.
	RELOP
	ASSIGN
	PLUS
	MINUS
	MUL
	DIV
	LPAREN
	RPAREN
)

var kindNames = [...]string{
	EOF:        "END_OF_INPUT",
	NUMBER:     "NUMBER",
	IDENTIFIER: "IDENTIFIER",
	IF:         "IF",
	THEN:       "THEN",
	ELSE:       "ELSE",
	ENDIF:      "ENDIF",
	RELOP:      "RELOP",
	ASSIGN:     "ASSIGN",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MUL:        "MUL",
	DIV:        "DIV",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexeme together with its kind and the 1-based position of its first character.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("{%v, %q, %d:%d}", t.Kind, t.Lexeme, t.Line, t.Column)
}

// Pos formats the position as line:column.
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

var keywords = map[string]Kind{
	"IF":    IF,
	"THEN":  THEN,
	"ELSE":  ELSE,
	"ENDIF": ENDIF,
}

// Keyword reports the keyword kind for an upper-cased identifier.
func Keyword(upper string) (Kind, bool) {
	k, ok := keywords[upper]
	return k, ok
}
