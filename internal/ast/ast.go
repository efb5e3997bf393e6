// Package ast defines the surface syntax tree produced by internal/parser
// and consumed by internal/convert: Block, Module, List, Quoted, Name,
// Number, Text.
package ast

import "github.com/funvibe/weave/internal/diagnostics"

// Node is any surface syntax tree node.
type Node interface {
	Loc() diagnostics.SourceLocation
}

// Name is a bare identifier or symbolic operator token (`x`, `:`, `->`).
type Name struct {
	Text     string
	Location diagnostics.SourceLocation
}

func (n *Name) Loc() diagnostics.SourceLocation { return n.Location }

// Number is a decimal numeral literal.
type Number struct {
	Text     string
	Location diagnostics.SourceLocation
}

func (n *Number) Loc() diagnostics.SourceLocation { return n.Location }

// Text is a double-quoted string literal, already unescaped.
type Text struct {
	Value    string
	Location diagnostics.SourceLocation
}

func (n *Text) Loc() diagnostics.SourceLocation { return n.Location }

// List is a juxtaposed sequence of items within one statement, the raw
// material the list-evaluation algorithm operates on. Produced
// both by bare whitespace-separated items and by explicit `( ... )`
// grouping.
type List struct {
	Items    []Node
	Location diagnostics.SourceLocation
}

func (n *List) Loc() diagnostics.SourceLocation { return n.Location }

// Quoted is a `'`-prefixed node whose evaluation returns its inner node
// unevaluated.
type Quoted struct {
	Inner    Node
	Location diagnostics.SourceLocation
}

func (n *Quoted) Loc() diagnostics.SourceLocation { return n.Location }

// Block is a `{ ... }` sequence of statements (each itself a List),
// evaluated in a fresh child scope with the last statement's value as its
// own.
type Block struct {
	Statements []*List
	Location   diagnostics.SourceLocation
}

func (n *Block) Loc() diagnostics.SourceLocation { return n.Location }

// Module is the root of a whole source file: a sequence of statements
// whose evaluation snapshots its scope's bindings into a first-class
// Module value rather than yielding the last statement's value.
type Module struct {
	Statements []*List
	Location   diagnostics.SourceLocation
}

func (n *Module) Loc() diagnostics.SourceLocation { return n.Location }
