package core

import "github.com/funvibe/weave/internal/diagnostics"

// Variables is the "variables" environment slot: name -> bound
// value, merge = parent-then-child union with the child winning on
// collision.
type Variables map[string]Value

// VariablesKey declares the variables slot: inherited by children, with
// child bindings shadowing the parent's.
var VariablesKey = NewEnvironmentKey[Variables](
	func() Variables { return make(Variables) },
	func(parent, child Variables) Variables {
		merged := make(Variables, len(parent)+len(child))
		for name, value := range parent {
			merged[name] = value
		}
		for name, value := range child {
			merged[name] = value
		}
		return merged
	},
	true,
)

// Define binds name to value in env's own variables slot.
func Define(env *Environment, name string, value Value) {
	vars := Get(env, VariablesKey)
	(*vars)[name] = value
}

// Lookup resolves name by walking the variables slot: since ChildOf already
// merges a parent's bindings into each child's own slot, a single lookup in
// the current environment's slot is sufficient: chaining to the parent
// is realized at scope-creation time, not at lookup time.
func Lookup(env *Environment, name string) (Value, bool) {
	vars := Get(env, VariablesKey)
	value, ok := (*vars)[name]
	return value, ok
}

// LookupOrError is Lookup with the standard unbound-name message.
func LookupOrError(env *Environment, name string, stack diagnostics.Stack) (Value, *diagnostics.ReturnState) {
	value, ok := Lookup(env, name)
	if !ok {
		return Value{}, diagnostics.ErrorStatef(stack, "Name does not refer to a variable")
	}
	return value, nil
}
