package core

import "github.com/funvibe/weave/internal/diagnostics"

// Value is an unordered set of traits attached to an identity. A value has
// no intrinsic type; "being a number" means "having the Number trait". The
// traits map is never mutated in place once a Value is built — AddTrait
// copies — so cloning a Value (plain assignment) is cheap and safe to
// share.
type Value struct {
	traits map[TraitID]Trait
}

// Empty returns the value with no traits.
func Empty() Value {
	return Value{}
}

// AddTrait installs a direct trait, returning a new Value. A direct trait
// with a given TraitID appears at most once on a value; adding again with
// the same ID replaces it.
func (v Value) AddTrait(t Trait) Value {
	traits := make(map[TraitID]Trait, len(v.traits)+1)
	for id, existing := range v.traits {
		traits[id] = existing
	}
	traits[t.ID] = t
	return Value{traits: traits}
}

// Of constructs a value holding one direct trait: the built-in primitive
// trait registered for T via RegisterPrimitiveTraitID.
func Of[T any](payload T) Value {
	id, ok := PrimitiveTraitIDFor[T]()
	if !ok {
		panic("core: no primitive trait registered for this type; call RegisterPrimitiveTraitID in that primitive's init()")
	}
	return Empty().AddTrait(ConstantTrait(id, payload))
}

// HasTrait reports whether id can be resolved on v, either directly or via
// a conformance, without ambiguity.
func (v Value) HasTrait(id TraitID, env *Environment, stack diagnostics.Stack) (bool, *diagnostics.ReturnState) {
	t, rs := v.findTrait(id, env, stack)
	if rs != nil {
		return false, rs
	}
	return t != nil, nil
}

// GetTrait resolves id on v and downcasts the result to T, failing with
// "Cannot find trait" if no direct trait or conformance supplies it.
func GetTrait[T any](v Value, id TraitID, env *Environment, stack diagnostics.Stack) (T, *diagnostics.ReturnState) {
	var zero T
	value, present, rs := GetTraitIfPresent[T](v, id, env, stack)
	if rs != nil {
		return zero, rs
	}
	if !present {
		return zero, diagnostics.ErrorStatef(stack, "Cannot find trait")
	}
	return value, nil
}

// GetTraitIfPresent is GetTrait without the "not found" error: ok is false
// when nothing supplies the trait.
func GetTraitIfPresent[T any](v Value, id TraitID, env *Environment, stack diagnostics.Stack) (T, bool, *diagnostics.ReturnState) {
	var zero T

	t, rs := v.findTrait(id, env, stack)
	if rs != nil {
		return zero, false, rs
	}
	if t == nil {
		return zero, false, nil
	}

	dyn, rs := t.Produce(env, stack)
	if rs != nil {
		return zero, false, rs
	}

	value, ok := Downcast[T](dyn)
	if !ok {
		return zero, false, diagnostics.ErrorStatef(stack, "trait %s did not produce the expected kind", id.DebugLabel())
	}
	return value, true, nil
}

// GetPrimitive is the convenience for the built-in primitive trait of
// kind T.
func GetPrimitive[T any](v Value, env *Environment, stack diagnostics.Stack) (T, *diagnostics.ReturnState) {
	var zero T
	id, ok := PrimitiveTraitIDFor[T]()
	if !ok {
		return zero, diagnostics.ErrorStatef(stack, "no primitive trait registered for this kind")
	}
	return GetTrait[T](v, id, env, stack)
}

// GetPrimitiveIfPresent is GetPrimitive without the "not found" error.
func GetPrimitiveIfPresent[T any](v Value, env *Environment, stack diagnostics.Stack) (T, bool, *diagnostics.ReturnState) {
	var zero T
	id, ok := PrimitiveTraitIDFor[T]()
	if !ok {
		return zero, false, nil
	}
	return GetTraitIfPresent[T](v, id, env, stack)
}

// findTrait implements the trait lookup algorithm:
//  1. a direct trait with this id wins outright;
//  2. otherwise every conformance in env (parent-first order preserved) is
//     consulted; two conformances both applying is ambiguous;
//  3. exactly one applicable conformance derives the trait.
func (v Value) findTrait(id TraitID, env *Environment, stack diagnostics.Stack) (*Trait, *diagnostics.ReturnState) {
	if t, ok := v.traits[id]; ok {
		return &t, nil
	}

	conformances := *Get(env, ConformancesKey)

	var derived *Trait
	for _, conformance := range conformances {
		if !conformance.DerivedTraitID.Equal(id) {
			continue
		}

		candidate, rs := conformance.Derive(v, env, stack)
		if rs != nil {
			return nil, rs
		}
		if candidate == nil {
			continue
		}

		if derived != nil {
			return nil, diagnostics.ErrorStatef(stack, "ambiguous trait")
		}

		captured := *candidate
		trait := Trait{
			ID: id,
			Produce: func(env *Environment, stack diagnostics.Stack) (Dynamic, *diagnostics.ReturnState) {
				direct, ok := captured.traits[id]
				if !ok {
					return Dynamic{}, diagnostics.ErrorStatef(stack, "Cannot find trait")
				}
				return direct.Produce(env, stack)
			},
		}
		derived = &trait
	}

	return derived, nil
}
