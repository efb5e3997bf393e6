package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Quoted wraps an inner value that evaluation should return unchanged
// rather than reduce further.
type Quoted struct {
	Inner    core.Value
	Location *diagnostics.SourceLocation
}

// QuotedOf wraps inner in a Quoted value whose Evaluate conformance
// returns inner unevaluated.
func QuotedOf(q Quoted) core.Value {
	v := core.Of(q)
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return q.Inner, nil
		}, nil
	}))
	return v
}

func init() {
	core.RegisterPrimitiveTraitID[Quoted](core.BuiltinTraitID("Quoted"))
}
