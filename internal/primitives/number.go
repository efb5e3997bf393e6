package primitives

import (
	"math/big"

	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Number is the arbitrary-precision decimal primitive, backed by big.Rat
// so arithmetic stays exact.
type Number struct {
	Value *big.Rat
}

// NumberOf wraps a *big.Rat in a Number value carrying the Text
// conformance.
func NumberOf(value *big.Rat) core.Value {
	n := Number{Value: value}
	v := core.Of(n)
	v = v.AddTrait(core.FuncTrait(core.TextTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.TextValue, *diagnostics.ReturnState) {
		return core.TextValue{Text: formatNumber(n.Value)}, nil
	}))
	return v
}

// formatNumber renders a rational as an integer when exact, else as a
// decimal string with ten fractional digits (Rat.String would print "3/1"
// for integral values, which is not how a user-facing number literal
// should look).
func formatNumber(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.FloatString(10)
}

func init() {
	core.RegisterPrimitiveTraitID[Number](core.BuiltinTraitID("Number"))
}
