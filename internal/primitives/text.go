package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Text is the string primitive.
type Text struct {
	Value string
}

// TextOf wraps a string in a Text value whose own Text conformance is
// the identity.
func TextOf(value string) core.Value {
	t := Text{Value: value}
	v := core.Empty().AddTrait(core.ConstantTrait(core.TextKindTraitID, t))
	v = v.AddTrait(core.FuncTrait(core.TextTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.TextValue, *diagnostics.ReturnState) {
		return core.TextValue{Text: t.Value}, nil
	}))
	return v
}

func init() {
	core.RegisterPrimitiveTraitID[Text](core.TextKindTraitID)
}
