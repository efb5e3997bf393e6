package builtins

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
	"github.com/funvibe/weave/internal/primitives"
)

// initMacroOperator wires `=>`: `param => body` produces a
// macro with param as Define-Macro-Parameter and body as the unevaluated
// template to substitute into.
func initMacroOperator(env *core.Environment, functionGroup *operators.Group) {
	macroOp := operators.NewVariadic(functionGroup, func(left, right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		target := primitives.Group(left)

		defineParameter, present, rs := core.GetTraitIfPresent[core.DefineMacroParameterFn](target, core.DefineMacroParameterTraitID, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		if !present {
			return core.Value{}, diagnostics.ErrorStatef(stack, "Macro parameter must have the Define-Macro-Parameter trait")
		}

		body := primitives.Group(right)
		m := core.Macro{DefineParameter: defineParameter, Body: body}
		return core.Empty().AddTrait(core.ConstantTrait(core.MacroTraitID, m)), nil
	})
	core.Define(env, "=>", operatorValue(macroOp))
}
