package core

import "github.com/funvibe/weave/internal/diagnostics"

// Conformance is a rule that extends a value's traits generatively: given a
// value, it either says "does not apply" (nil, nil) or returns the Value
// representing the derived trait (typically built with Of, carrying a
// single direct trait under DerivedTraitID).
type Conformance struct {
	DerivedTraitID TraitID
	Derive         func(value Value, env *Environment, stack diagnostics.Stack) (*Value, *diagnostics.ReturnState)
}

// Conformances is the ordered sequence of conformance rules visible in an
// environment. Order does not change the outcome of a lookup: any two
// applicable candidates raise the same "ambiguous trait" error.
type Conformances []Conformance

// ConformancesKey is the "conformances" environment slot:
// parent-then-child concatenation, inherited by children.
var ConformancesKey = NewEnvironmentKey[Conformances](
	func() Conformances { return nil },
	func(parent, child Conformances) Conformances {
		merged := make(Conformances, 0, len(parent)+len(child))
		merged = append(merged, parent...)
		merged = append(merged, child...)
		return merged
	},
	true,
)

// AddConformance appends a conformance rule to env's conformances slot.
func AddConformance(env *Environment, derivedTraitID TraitID, derive func(value Value, env *Environment, stack diagnostics.Stack) (*Value, *diagnostics.ReturnState)) {
	slot := Get(env, ConformancesKey)
	*slot = append(*slot, Conformance{DerivedTraitID: derivedTraitID, Derive: derive})
}

// AddPrimitiveConformance registers a conformance that triggers whenever a
// value exposes the primitive trait A, deriving B from it with f. The
// downcast from A and the re-erasure into a Value carrying B's own
// primitive trait are handled automatically.
func AddPrimitiveConformance[A, B any](env *Environment, f func(a A) B) {
	id, ok := PrimitiveTraitIDFor[B]()
	if !ok {
		panic("core: AddPrimitiveConformance: no primitive trait registered for result type")
	}

	AddConformance(env, id, func(value Value, env *Environment, stack diagnostics.Stack) (*Value, *diagnostics.ReturnState) {
		a, present, rs := GetPrimitiveIfPresent[A](value, env, stack)
		if rs != nil {
			return nil, rs
		}
		if !present {
			return nil, nil
		}

		b := Of(f(a))
		return &b, nil
	})
}
