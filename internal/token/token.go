// Package token defines the lexical tokens produced by internal/lexer and
// consumed by internal/parser — the surface syntax that feeds the AST
// converter. Parsing is an external collaborator of the evaluator, not
// part of its core.
package token

import "github.com/funvibe/weave/internal/diagnostics"

// Kind identifies a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	NAME
	NUMBER
	TEXT
	QUOTE
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	DOT
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case NAME:
		return "NAME"
	case NUMBER:
		return "NUMBER"
	case TEXT:
		return "TEXT"
	case QUOTE:
		return "QUOTE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case DOT:
		return "DOT"
	default:
		return "UNKNOWN"
	}
}

// Token is one lexeme: its kind, literal text (already unescaped for
// TEXT), and source position.
type Token struct {
	Kind     Kind
	Text     string
	Location diagnostics.SourceLocation
}
