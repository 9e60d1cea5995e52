// Package token defines the lexical token vocabulary the lexer produces
// and the parser consumes.
package token

import "fmt"

// Type classifies a Token.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	// IDENT is any identifier that is not a reserved word.
	IDENT
	// INT is an integer literal, already decoded (optionally negative —
	// the tokenizer reads a leading '-' together with its digit run as
	// one token, per spec.md §4.3).
	INT
	// STRING is a double-quoted string literal, already decoded to its
	// raw bytes.
	STRING
	// CHAR is a single-quoted literal; the tokenizer has already
	// verified it decodes to exactly one byte.
	CHAR

	// operators, flat precedence (spec.md §4.4)
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	LESS     // <
	EQEQ     // ==
	ANDAND   // &&
	OROR     // ||
	LBRACKET // [ (prefix: sequence literal; infix: index)

	// punctuation
	RBRACKET  // ]
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;
	ASSIGN    // =

	// keywords
	IF
	WHILE
	PRINT
	PUSH
	LEN
)

var names = map[Type]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", IDENT: "IDENT", INT: "INT",
	STRING: "STRING", CHAR: "CHAR",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", LESS: "<", EQEQ: "==",
	ANDAND: "&&", OROR: "||", LBRACKET: "[", RBRACKET: "]",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	COMMA: ",", SEMICOLON: ";", ASSIGN: "=",
	IF: "if", WHILE: "while", PRINT: "print", PUSH: "push", LEN: "len",
}

func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps reserved-word spellings to their Type. An identifier
// matching one of these is classified as the keyword, not IDENT
// (spec.md §4.4 "Identifier constraints").
var Keywords = map[string]Type{
	"if":    IF,
	"while": WHILE,
	"print": PRINT,
	"push":  PUSH,
	"len":   LEN,
}

// Token is one lexical token: its type, the exact source text it
// matched, any decoded literal value, and the 1-based source line it
// began on.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any // int64 for INT/CHAR, []byte for STRING
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s %q line %d}", t.Type, t.Lexeme, t.Line)
}

// IsInfixOperator reports whether t can start the infix-operator tail
// of an Expr (spec.md §4.4 grammar: InfixOp). The flat-precedence Expr
// loop keeps consuming Term while the next token satisfies this.
func (t Type) IsInfixOperator() bool {
	switch t {
	case PLUS, MINUS, STAR, SLASH, LESS, EQEQ, ANDAND, OROR, LBRACKET:
		return true
	default:
		return false
	}
}
