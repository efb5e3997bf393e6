package pipeline_test

import (
	"math/big"
	"testing"

	"github.com/funvibe/weave/internal/builtins"
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/pipeline"
	"github.com/funvibe/weave/internal/primitives"
)

func runPipeline(t *testing.T, src string, inline bool) *pipeline.Context {
	t.Helper()

	root := core.NewEnvironment()
	builtins.Init(root)

	return pipeline.New(pipeline.Parse{}, pipeline.Convert{}, pipeline.Evaluate{}).Run(&pipeline.Context{
		Source: src,
		Inline: inline,
		Env:    core.ChildOf(root),
		Stack:  diagnostics.NewStack(),
	})
}

func TestInlineProgramYieldsLastStatementValue(t *testing.T) {
	ctx := runPipeline(t, "x : 2 . x * 3", true)
	if ctx.Err != nil {
		t.Fatal(ctx.Err)
	}

	n, rs := core.GetPrimitive[primitives.Number](ctx.Result, ctx.Env, ctx.Stack)
	if rs != nil {
		t.Fatalf("result is not a Number: %v", rs)
	}
	if n.Value.Cmp(big.NewRat(6, 1)) != 0 {
		t.Errorf("result = %s", n.Value.RatString())
	}
}

func TestFileProgramYieldsAModule(t *testing.T) {
	ctx := runPipeline(t, "x : 2", false)
	if ctx.Err != nil {
		t.Fatal(ctx.Err)
	}
	if _, rs := core.GetPrimitive[primitives.Module](ctx.Result, ctx.Env, ctx.Stack); rs != nil {
		t.Errorf("result is not a Module: %v", rs)
	}
}

func TestParseErrorStopsThePipeline(t *testing.T) {
	ctx := runPipeline(t, `"unterminated`, true)
	if ctx.Err == nil {
		t.Fatal("expected a parse error")
	}
	if ctx.Tree != nil {
		t.Error("failed parse still produced a tree")
	}
}

func TestEvaluationErrorSurfaces(t *testing.T) {
	ctx := runPipeline(t, "missing", true)
	if ctx.Err == nil {
		t.Fatal("expected an evaluation error")
	}
	if ctx.Err.Err.Message != "Name does not refer to a variable" {
		t.Errorf("message = %q", ctx.Err.Err.Message)
	}
}
