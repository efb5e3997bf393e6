// Package pipeline chains the three stages the driver runs a program
// through: parse, convert, evaluate.
package pipeline

import (
	"github.com/funvibe/weave/internal/ast"
	"github.com/funvibe/weave/internal/convert"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/parser"
)

// Context carries one program through the stages. A stage that fails sets
// Err; later stages pass a failed context through untouched.
type Context struct {
	File   string
	Source string

	// Inline programs (the CLI's -e input) evaluate as a block, yielding
	// the last statement's value, instead of snapshotting into a Module.
	Inline bool

	Tree    *ast.Module
	Program core.Value

	Env   *core.Environment
	Stack diagnostics.Stack

	Result core.Value
	Err    *diagnostics.ReturnState
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}

// Parse lexes and parses ctx.Source into a surface tree.
type Parse struct{}

func (Parse) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}
	tree, err := parser.ParseModule(ctx.File, ctx.Source)
	if err != nil {
		ctx.Err = diagnostics.ErrorStatef(ctx.Stack, "Error parsing: %s", err)
		return ctx
	}
	ctx.Tree = tree
	return ctx
}

// Convert turns the surface tree into the value the evaluator runs.
type Convert struct{}

func (Convert) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}
	var root ast.Node = ctx.Tree
	if ctx.Inline {
		root = &ast.Block{Statements: ctx.Tree.Statements, Location: ctx.Tree.Location}
	}
	program, err := convert.Node(root)
	if err != nil {
		ctx.Err = diagnostics.ErrorStatef(ctx.Stack, "%s", err)
		return ctx
	}
	ctx.Program = program
	return ctx
}

// Evaluate reduces the converted program against ctx.Env.
type Evaluate struct{}

func (Evaluate) Process(ctx *Context) *Context {
	if ctx.Err != nil {
		return ctx
	}
	result, rs := core.Evaluate(ctx.Program, ctx.Env, ctx.Stack)
	if rs != nil {
		ctx.Err = rs
		return ctx
	}
	ctx.Result = result
	return ctx
}
