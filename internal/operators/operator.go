package operators

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// BinaryCollect combines exactly one value from each side of a binary
// operator occurrence. left and right are the unevaluated grouped operands;
// the collector decides whether and in what order to evaluate them.
type BinaryCollect func(left, right core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState)

// VariadicCollect combines every value on each side of a variadic operator
// occurrence.
type VariadicCollect func(left, right []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState)

// Operator is one of Binary (exactly one value each side) or Variadic (all
// values each side). The Group determines precedence and
// associativity.
type Operator struct {
	Group    *Group
	Binary   BinaryCollect
	Variadic VariadicCollect
}

// IsVariadic reports whether this operator consumes every item on each
// side rather than exactly one.
func (o Operator) IsVariadic() bool {
	return o.Group.arity == variadicArity
}

// NewBinary builds a binary operator in the given precedence group.
func NewBinary(group *Group, collect BinaryCollect) Operator {
	return Operator{Group: group, Binary: collect}
}

// NewVariadic builds a variadic operator in the given precedence group.
func NewVariadic(group *Group, collect VariadicCollect) Operator {
	return Operator{Group: group, Variadic: collect}
}
