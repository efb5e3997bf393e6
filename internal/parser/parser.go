// Package parser builds an internal/ast tree from an internal/token
// stream via straightforward recursive descent.
package parser

import (
	"fmt"

	"github.com/funvibe/weave/internal/ast"
	"github.com/funvibe/weave/internal/lexer"
	"github.com/funvibe/weave/internal/token"
)

// Parser consumes a fixed token stream produced by internal/lexer.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New returns a Parser over an already-lexed token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseModule lexes and parses file's contents as a whole source file,
// rooted at a Module node.
func ParseModule(file, src string) (*ast.Module, error) {
	tokens, err := lexer.Tokenize(file, src)
	if err != nil {
		return nil, err
	}
	return New(tokens).ParseModule()
}

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) atEOF() bool       { return p.cur().Kind == token.EOF }
func (p *Parser) advance() token.Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// ParseModule parses a full statement sequence up to EOF.
func (p *Parser) ParseModule() (*ast.Module, error) {
	loc := p.cur().Location
	statements, err := p.parseStatements(token.EOF)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Statements: statements, Location: loc}, nil
}

// parseStatements reads List statements separated by DOT until a token of
// kind terminator is reached (EOF for a module, RBRACE for a block); the
// terminator itself is left unconsumed for LBRACE-parsing code to check.
func (p *Parser) parseStatements(terminator token.Kind) ([]*ast.List, error) {
	var statements []*ast.List
	for {
		for p.cur().Kind == token.DOT {
			p.advance()
		}
		if p.cur().Kind == terminator || p.atEOF() {
			return statements, nil
		}

		list, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, list)

		if p.cur().Kind == token.DOT {
			continue
		}
		if p.cur().Kind == terminator || p.atEOF() {
			return statements, nil
		}
		return nil, fmt.Errorf("%s: expected '.' or end of statements", p.cur().Location)
	}
}

// parseStatement reads items until a DOT, the enclosing terminator, or
// EOF, producing one flat List node (the raw operand list evaluation later groups).
func (p *Parser) parseStatement() (*ast.List, error) {
	loc := p.cur().Location
	var items []ast.Node
	for {
		switch p.cur().Kind {
		case token.DOT, token.EOF, token.RBRACE, token.RPAREN:
			return &ast.List{Items: items, Location: loc}, nil
		}
		item, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *Parser) parseAtom() (ast.Node, error) {
	t := p.cur()
	switch t.Kind {
	case token.NAME:
		p.advance()
		return &ast.Name{Text: t.Text, Location: t.Location}, nil
	case token.NUMBER:
		p.advance()
		return &ast.Number{Text: t.Text, Location: t.Location}, nil
	case token.TEXT:
		p.advance()
		return &ast.Text{Value: t.Text, Location: t.Location}, nil
	case token.QUOTE:
		p.advance()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &ast.Quoted{Inner: inner, Location: t.Location}, nil
	case token.LPAREN:
		p.advance()
		items, err := p.parseListItems()
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RPAREN {
			return nil, fmt.Errorf("%s: expected ')'", p.cur().Location)
		}
		p.advance()
		return &ast.List{Items: items, Location: t.Location}, nil
	case token.LBRACE:
		p.advance()
		statements, err := p.parseStatements(token.RBRACE)
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RBRACE {
			return nil, fmt.Errorf("%s: expected '}'", p.cur().Location)
		}
		p.advance()
		return &ast.Block{Statements: statements, Location: t.Location}, nil
	default:
		return nil, fmt.Errorf("%s: unexpected token %s", t.Location, t.Kind)
	}
}

// parseListItems reads a juxtaposed item sequence up to the next ')',
// used for `( ... )` explicit grouping — unlike a top-level statement, it
// is not DOT-separated (a parenthesized group is one expression).
func (p *Parser) parseListItems() ([]ast.Node, error) {
	var items []ast.Node
	for p.cur().Kind != token.RPAREN && !p.atEOF() {
		item, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
