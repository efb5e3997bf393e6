package core

import "github.com/funvibe/weave/internal/diagnostics"

// Well-known built-in trait identities shared by every primitive and by
// list evaluation. Grouping them here (rather than in each primitive's own
// package) is what lets primitives, operators, and list evaluation all
// refer to "the Evaluate trait" etc. without importing one another.
var (
	EvaluateTraitID             = BuiltinTraitID("Evaluate")
	AssignTraitID               = BuiltinTraitID("Assign")
	TextTraitID                 = BuiltinTraitID("Text")
	// TextKindTraitID is the Text primitive's own kind identity — distinct
	// from TextTraitID, the display protocol, because its payload (the Text
	// struct) differs from TextTraitID's (TextValue): without the split, the
	// Text primitive's direct Text-kind trait and its Text-display trait
	// would collide on one TraitID with two incompatible payload types.
	TextKindTraitID             = BuiltinTraitID("Text-Kind")
	FunctionTraitID             = BuiltinTraitID("Function")
	OperatorTraitID             = BuiltinTraitID("Operator")
	MacroTraitID                = BuiltinTraitID("Macro")
	ComputedTraitID             = BuiltinTraitID("Computed")
	DefineMacroParameterTraitID = BuiltinTraitID("Define-Macro-Parameter")
	MacroExpandTraitID          = BuiltinTraitID("Macro-Expand")
	TraitConstructorTraitID     = BuiltinTraitID("Trait-Constructor")
	ClosureParameterTraitID     = BuiltinTraitID("Closure-Parameter")
)

// EvaluateFn is the payload of the Evaluate trait: reduce the value that
// carries it to its evaluated form.
type EvaluateFn func(env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState)

// AssignFn is the payload of the Assign trait: store a (already evaluated)
// value under whatever the carrying value names.
type AssignFn func(value Value, env *Environment, stack diagnostics.Stack) *diagnostics.ReturnState

// MacroParameter identifies a macro's formal parameter by name.
type MacroParameter struct {
	Name string
}

// DefineMacroParameterFn is the payload of the Define-Macro-Parameter
// trait: given the (unevaluated) argument a macro is invoked with, produce
// the parameter identity and the evaluated replacement value to substitute
// for it in the macro's body.
type DefineMacroParameterFn func(argument Value, env *Environment, stack diagnostics.Stack) (MacroParameter, Value, *diagnostics.ReturnState)

// MacroExpandFn is the payload of the Macro-Expand trait: substitute
// parameter with replacement throughout the carrying value, returning
// itself unchanged if the parameter does not occur in it.
type MacroExpandFn func(parameter MacroParameter, replacement Value, env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState)

// Function is the payload of the Function trait: call the carrying value
// with an (unevaluated) argument.
type Function func(argument Value, env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState)

// TextValue is the payload of the Text trait. Name, Number, Text and
// Module values carry it as a direct trait; List, Block, Quoted, Function
// and TraitConstructor values have no Text trait of their own. The Text
// primitive's own payload is a separate struct under TextKindTraitID.
type TextValue struct {
	Text     string
	Location *diagnostics.SourceLocation
}

// Macro is the payload of the Macro trait, produced by the `=>` operator:
// define_parameter converts the invocation's argument into a substitution,
// body is the (unevaluated) template to substitute into.
type Macro struct {
	DefineParameter DefineMacroParameterFn
	Body            Value
}

// Evaluate reduces v to its evaluated form: if v carries the Evaluate
// trait, its producer runs; otherwise v is already in normal form (e.g.
// Number, Text, Module, Function values evaluate to themselves).
func Evaluate(v Value, env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState) {
	fn, present, rs := GetTraitIfPresent[EvaluateFn](v, EvaluateTraitID, env, stack)
	if rs != nil {
		return Value{}, rs
	}
	if !present {
		return v, nil
	}
	return fn(env, stack)
}

// MacroExpandValue substitutes parameter with replacement throughout v; v
// without a Macro-Expand conformance is returned unchanged (a leaf with no
// sub-structure to recurse into).
func MacroExpandValue(v Value, parameter MacroParameter, replacement Value, env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState) {
	fn, present, rs := GetTraitIfPresent[MacroExpandFn](v, MacroExpandTraitID, env, stack)
	if rs != nil {
		return Value{}, rs
	}
	if !present {
		return v, nil
	}
	return fn(parameter, replacement, env, stack)
}

// Call invokes v's Function trait with argument, failing if v isn't
// callable.
func Call(v Value, argument Value, env *Environment, stack diagnostics.Stack) (Value, *diagnostics.ReturnState) {
	fn, rs := GetTrait[Function](v, FunctionTraitID, env, stack)
	if rs != nil {
		return Value{}, rs
	}
	return fn(argument, env, stack)
}

// FormatText renders v via its Text trait, evaluating it first. Used by
// the `show` builtin.
func FormatText(v Value, env *Environment, stack diagnostics.Stack) (string, *diagnostics.ReturnState) {
	evaluated, rs := Evaluate(v, env, stack)
	if rs != nil {
		return "", rs
	}
	text, rs := GetTrait[TextValue](evaluated, TextTraitID, env, stack)
	if rs != nil {
		return "", rs
	}
	return text.Text, nil
}
