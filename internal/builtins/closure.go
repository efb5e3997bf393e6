package builtins

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
	"github.com/funvibe/weave/internal/primitives"
)

// initClosureParameterConformance registers "Name ::= Closure-Parameter":
// any value exposing the Name primitive derives a Closure-Parameter
// binder that, when invoked with an argument, defines that name in the
// environment it's handed.
func initClosureParameterConformance(env *core.Environment) {
	core.AddConformance(env, core.ClosureParameterTraitID, func(value core.Value, env *core.Environment, stack diagnostics.Stack) (*core.Value, *diagnostics.ReturnState) {
		name, present, rs := core.GetPrimitiveIfPresent[primitives.Name](value, env, stack)
		if rs != nil {
			return nil, rs
		}
		if !present {
			return nil, nil
		}

		bind := core.AssignFn(func(input core.Value, env *core.Environment, stack diagnostics.Stack) *diagnostics.ReturnState {
			core.Define(env, name.Text, input)
			return nil
		})
		derived := core.Empty().AddTrait(core.ConstantTrait(core.ClosureParameterTraitID, bind))
		return &derived, nil
	})
}

// initClosureOperator wires `->`: captures the current
// environment once, at closure-creation time; each call binds the
// argument into that same captured scope (not a fresh child per call)
// and evaluates the body there.
func initClosureOperator(env *core.Environment, functionGroup *operators.Group) {
	closureOp := operators.NewVariadic(functionGroup, func(left, right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		target := primitives.Group(left)

		defineParameter, present, rs := core.GetTraitIfPresent[core.AssignFn](target, core.ClosureParameterTraitID, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		if !present {
			return core.Value{}, diagnostics.ErrorStatef(stack, "Closure parameter must have the Closure-Parameter trait")
		}

		body := primitives.Group(right)
		closureEnv := core.ChildOf(env)

		fn := core.Function(func(input core.Value, _ *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			if rs := defineParameter(input, closureEnv, stack); rs != nil {
				return core.Value{}, rs
			}
			return core.Evaluate(body, closureEnv, stack)
		})
		return primitives.FunctionOf(fn), nil
	})
	core.Define(env, "->", operatorValue(closureOp))
}
