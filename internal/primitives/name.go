// Package primitives implements the built-in kinds of the evaluator
// (Name, Number, Text, List, Block, ModuleBlock, Module, Quoted,
// Function, TraitConstructor) together with the list-evaluation protocol,
// which lives on List's own Evaluate conformance.
package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Name is the identifier primitive: {text, optional location}.
type Name struct {
	Text     string
	Location *diagnostics.SourceLocation
}

// NameOf wraps a Name in a Value carrying its full conformance set: Assign,
// Evaluate, Define-Macro-Parameter, Macro-Expand, Text.
func NameOf(name Name) core.Value {
	v := core.Of(name)
	v = v.AddTrait(core.FuncTrait(core.AssignTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.AssignFn, *diagnostics.ReturnState) {
		return func(value core.Value, env *core.Environment, stack diagnostics.Stack) *diagnostics.ReturnState {
			return assignName(name, value, env, stack)
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			return EvaluateName(name, env, stack)
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.DefineMacroParameterTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.DefineMacroParameterFn, *diagnostics.ReturnState) {
		return func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.MacroParameter, core.Value, *diagnostics.ReturnState) {
			replacement, rs := core.Evaluate(argument, env, stack)
			if rs != nil {
				return core.MacroParameter{}, core.Value{}, rs
			}
			return core.MacroParameter{Name: name.Text}, replacement, nil
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.MacroExpandTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.MacroExpandFn, *diagnostics.ReturnState) {
		return func(parameter core.MacroParameter, replacement core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			if parameter.Name == name.Text {
				return replacement, nil
			}
			return NameOf(name), nil
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.TextTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.TextValue, *diagnostics.ReturnState) {
		return core.TextValue{Text: name.Text, Location: name.Location}, nil
	}))
	return v
}

// EvaluateName resolves a name by walking scopes: if the
// bound value carries the Computed marker trait, it is itself evaluated
// before being returned — a lazy slot recomputed on every access rather
// than memoized.
func EvaluateName(name Name, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	bound, rs := core.LookupOrError(env, name.Text, stack)
	if rs != nil {
		return core.Value{}, rs
	}

	computed, rs := bound.HasTrait(core.ComputedTraitID, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	if !computed {
		return bound, nil
	}
	return core.Evaluate(bound, env, stack)
}

// assignName rebinds name.Text to value, unless the currently bound value
// (if any) carries the Computed marker trait: a computed slot
// refuses a plain rebind and instead delegates to its own Assign trait,
// failing if it doesn't expose one.
func assignName(name Name, value core.Value, env *core.Environment, stack diagnostics.Stack) *diagnostics.ReturnState {
	existing, ok := core.Lookup(env, name.Text)
	if ok {
		computed, rs := existing.HasTrait(core.ComputedTraitID, env, stack)
		if rs != nil {
			return rs
		}
		if computed {
			assign, present, rs := core.GetTraitIfPresent[core.AssignFn](existing, core.AssignTraitID, env, stack)
			if rs != nil {
				return rs
			}
			if !present {
				return diagnostics.ErrorStatef(stack, "Cannot assign to this value because it does not have the Assign trait")
			}
			return assign(value, env, stack)
		}
	}

	core.Define(env, name.Text, value)
	return nil
}

func init() {
	core.RegisterPrimitiveTraitID[Name](core.BuiltinTraitID("Name"))
}
