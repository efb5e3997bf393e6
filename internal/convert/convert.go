// Package convert turns an internal/ast tree into the core.Value tree the
// evaluator actually runs: each surface node maps onto exactly one
// primitive constructor, recursively.
package convert

import (
	"fmt"
	"math/big"

	"github.com/funvibe/weave/internal/ast"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/parser"
	"github.com/funvibe/weave/internal/primitives"
)

// Node converts a single ast.Node to its core.Value form.
func Node(n ast.Node) (core.Value, error) {
	switch node := n.(type) {
	case *ast.Name:
		loc := node.Location
		return primitives.NameOf(primitives.Name{Text: node.Text, Location: &loc}), nil

	case *ast.Number:
		r, ok := new(big.Rat).SetString(node.Text)
		if !ok {
			return core.Value{}, fmt.Errorf("%s: invalid number literal %q", node.Location, node.Text)
		}
		return primitives.NumberOf(r), nil

	case *ast.Text:
		return primitives.TextOf(node.Value), nil

	case *ast.List:
		items, err := nodes(node.Items)
		if err != nil {
			return core.Value{}, err
		}
		loc := node.Location
		return primitives.ListOf(primitives.List{Items: items, Location: &loc}), nil

	case *ast.Quoted:
		inner, err := Node(node.Inner)
		if err != nil {
			return core.Value{}, err
		}
		loc := node.Location
		return primitives.QuotedOf(primitives.Quoted{Inner: inner, Location: &loc}), nil

	case *ast.Block:
		statements, err := statementValues(node.Statements)
		if err != nil {
			return core.Value{}, err
		}
		loc := node.Location
		return primitives.BlockOf(primitives.Block{Statements: statements, Location: &loc}), nil

	case *ast.Module:
		statements, err := statementValues(node.Statements)
		if err != nil {
			return core.Value{}, err
		}
		loc := node.Location
		return primitives.ModuleBlockOf(primitives.ModuleBlock{Statements: statements, Location: &loc}), nil

	default:
		return core.Value{}, fmt.Errorf("convert: unhandled node type %T", n)
	}
}

func nodes(in []ast.Node) ([]core.Value, error) {
	out := make([]core.Value, len(in))
	for i, n := range in {
		v, err := Node(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func statementValues(in []*ast.List) ([]core.Value, error) {
	out := make([]core.Value, len(in))
	for i, list := range in {
		v, err := Node(list)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Module parses and converts file's source text in one step.
func Module(file, src string) (core.Value, *diagnostics.ReturnState) {
	tree, err := parser.ParseModule(file, src)
	if err != nil {
		return core.Value{}, diagnostics.ErrorStatef(diagnostics.NewStack(), "%s", err.Error())
	}
	v, err := Node(tree)
	if err != nil {
		return core.Value{}, diagnostics.ErrorStatef(diagnostics.NewStack(), "%s", err.Error())
	}
	return v, nil
}
