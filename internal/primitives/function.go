package primitives

import "github.com/funvibe/weave/internal/core"

// FunctionOf wraps a raw producer in a Value carrying the Function
// trait. Closures (`->`), macros expanded into callables, and
// builtins like `new`/`do` all construct their result this way.
func FunctionOf(fn core.Function) core.Value {
	return core.Empty().AddTrait(core.ConstantTrait(core.FunctionTraitID, fn))
}

func init() {
	core.RegisterPrimitiveTraitID[core.Function](core.FunctionTraitID)
}
