package builtins

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/primitives"
)

// initShow binds `show`: render the argument via its Text trait and hand
// the string to whatever sink the driver installed. With no sink installed
// (e.g. in a bare test environment) the value is formatted but discarded,
// so formatting errors still surface.
func initShow(env *core.Environment) {
	core.Define(env, "show", primitives.FunctionOf(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		text, rs := core.FormatText(argument, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		if sink := *core.Get(env, core.ShowKey); sink != nil {
			sink(text)
		}
		return core.Empty(), nil
	}))
}
