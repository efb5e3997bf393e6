package core

import "github.com/funvibe/weave/internal/diagnostics"

// Producer computes a trait's value on demand, given the environment and
// stack the trait is being looked up under.
type Producer func(env *Environment, stack diagnostics.Stack) (Dynamic, *diagnostics.ReturnState)

// Trait is a pair (TraitID, producer): when invoked, the producer yields a
// trait value of the trait's associated kind.
type Trait struct {
	ID      TraitID
	Produce Producer
}

// ConstantTrait builds a Trait whose producer always returns the same
// payload, cloned per call.
func ConstantTrait[T any](id TraitID, payload T) Trait {
	return Trait{
		ID: id,
		Produce: func(_ *Environment, _ diagnostics.Stack) (Dynamic, *diagnostics.ReturnState) {
			return NewDynamic(payload).Clone(), nil
		},
	}
}

// FuncTrait builds a Trait from a typed producer function, erasing T at
// the boundary so it can live alongside traits of other kinds on a Value.
func FuncTrait[T any](id TraitID, produce func(env *Environment, stack diagnostics.Stack) (T, *diagnostics.ReturnState)) Trait {
	return Trait{
		ID: id,
		Produce: func(env *Environment, stack diagnostics.Stack) (Dynamic, *diagnostics.ReturnState) {
			v, rs := produce(env, stack)
			if rs != nil {
				var zero Dynamic
				return zero, rs
			}
			return NewDynamic(v), nil
		},
	}
}
