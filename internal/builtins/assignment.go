package builtins

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
	"github.com/funvibe/weave/internal/primitives"
)

// assign is shared by `:` and `::`: group the raw left span, require it to
// carry Assign, evaluate the right-hand value produced by computeRight,
// then dispatch.
func assign(left []core.Value, computeRight func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState), env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	target := primitives.Group(left)

	assignFn, present, rs := core.GetTraitIfPresent[core.AssignFn](target, core.AssignTraitID, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	if !present {
		return core.Value{}, diagnostics.ErrorStatef(stack, "Cannot assign to this value because it does not have the Assign trait")
	}

	right, rs := computeRight(env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	right, rs = core.Evaluate(right, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}

	if rs := assignFn(right, env, stack); rs != nil {
		return core.Value{}, rs
	}
	return core.Empty(), nil
}

// initAssignmentOperators wires `:` and `::` into env's operator store and
// variables, both in the same right-associative, highest-precedence
// variadic group.
func initAssignmentOperators(env *core.Environment, assignmentGroup *operators.Group) {
	assignOp := operators.NewVariadic(assignmentGroup, func(left, right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		return assign(left, func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return primitives.Group(right), nil
		}, env, stack)
	})
	core.Define(env, ":", operatorValue(assignOp))

	traitOp := operators.NewVariadic(assignmentGroup, func(left, right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		return assign(left, func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return assignTrait(right, env, stack)
		}, env, stack)
	})
	core.Define(env, "::", operatorValue(traitOp))
}

// assignTrait implements `::`'s right-hand side: `TraitName value` must
// evaluate to a TraitConstructor and the value to attach, producing the
// wrapped value.
func assignTrait(right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	if len(right) != 2 {
		return core.Value{}, diagnostics.ErrorStatef(stack, "Expected a trait and a value for the trait")
	}

	traitConstructorValue, rs := core.Evaluate(right[0], env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	tc, rs := core.GetPrimitive[primitives.TraitConstructor](traitConstructorValue, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}

	value, rs := core.Evaluate(right[1], env, stack)
	if rs != nil {
		return core.Value{}, rs
	}

	return newValue(tc, value, env, stack)
}

// operatorValue wraps an Operator in a Value carrying the Operator trait,
// the way every operator name (`:`, `+`, `->`, ...) is bound.
func operatorValue(op operators.Operator) core.Value {
	return core.Empty().AddTrait(core.ConstantTrait(core.OperatorTraitID, op))
}
