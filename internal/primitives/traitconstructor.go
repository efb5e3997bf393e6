package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Validate checks whether value is acceptable for the trait being declared,
// optionally coercing it; ok is false when the value cannot represent
// this trait at all.
type Validate func(value core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, bool, *diagnostics.ReturnState)

// AnyValidation accepts any value unchanged — the validator `new` and `::`
// use for traits declared without an explicit validation clause.
func AnyValidation(value core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, bool, *diagnostics.ReturnState) {
	return value, true, nil
}

// TraitConstructor is the value bound when declaring a new trait: `new`
// and `::` both consult it to attach a value as a direct trait on some
// other value.
type TraitConstructor struct {
	ID         core.TraitID
	Validation Validate
}

// TraitConstructorOf wraps a TraitConstructor in a Value.
func TraitConstructorOf(tc TraitConstructor) core.Value {
	return core.Of(tc)
}

func init() {
	core.RegisterPrimitiveTraitID[TraitConstructor](core.TraitConstructorTraitID)
}
