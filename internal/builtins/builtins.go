// Package builtins installs the standard names (`new`, `do`, `trait`,
// `show`, `:`, `::`, `=>`, `->`, arithmetic) in a fresh global
// environment.
package builtins

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
	"github.com/funvibe/weave/internal/primitives"
)

// Init binds every standard name into env. The CLI driver calls this once
// against core.Global(); tests typically call it against a fresh
// core.NewEnvironment() to avoid cross-test leakage.
func Init(env *core.Environment) {
	initNewAndDo(env)
	initTrait(env)
	initShow(env)

	store := operators.Of(env)
	assignmentGroup := store.VariadicGroup(operators.Right, operators.Highest())
	functionGroup := store.VariadicGroup(operators.Right, operators.LowerThan(assignmentGroup))

	initAssignmentOperators(env, assignmentGroup)
	initMacroOperator(env, functionGroup)
	initClosureParameterConformance(env)
	initClosureOperator(env, functionGroup)
	initArithmetic(env)
}

func initNewAndDo(env *core.Environment) {
	core.Define(env, "new", primitives.FunctionOf(func(input core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		evaluated, rs := core.Evaluate(input, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		tc, rs := core.GetPrimitive[primitives.TraitConstructor](evaluated, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		return primitives.FunctionOf(func(value core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			evaluatedValue, rs := core.Evaluate(value, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			return newValue(tc, evaluatedValue, env, stack)
		}), nil
	}))

	core.Define(env, "do", primitives.FunctionOf(func(input core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		inner := core.ChildOf(env)
		return core.Evaluate(input, inner, stack)
	}))
}

// newValue is shared by `new` and the `::` trait operator:
// validate value through the constructor's validator, then build a value
// whose one direct trait is the constructor's id, producing the validated
// value.
func newValue(tc primitives.TraitConstructor, value core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	validated, ok, rs := tc.Validation(value, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	if !ok {
		return core.Value{}, diagnostics.ErrorStatef(stack, "Cannot use this value to represent this trait")
	}
	return core.Empty().AddTrait(core.ConstantTrait(tc.ID, validated)), nil
}

// initTrait binds `trait`: evaluating it mints a brand-new TraitConstructor
// every time (via the Computed marker), which is what lets
// `Greeting : trait` declare a fresh, never-colliding trait identity on
// every run through that statement rather than sharing one static id.
func initTrait(env *core.Environment) {
	v := core.Empty()
	v = v.AddTrait(core.ConstantTrait(core.ComputedTraitID, struct{}{}))
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return primitives.TraitConstructorOf(primitives.TraitConstructor{
				ID:         core.NewTraitID(),
				Validation: primitives.AnyValidation,
			}), nil
		}, nil
	}))
	core.Define(env, "trait", v)
}
