package builtins

import (
	"math/big"

	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
	"github.com/funvibe/weave/internal/primitives"
)

// mathOperator builds a binary arithmetic operator: evaluate both sides,
// require Number, combine with op.
func mathOperator(group *operators.Group, op func(result, a, b *big.Rat) *big.Rat) operators.Operator {
	return operators.NewBinary(group, func(left, right core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		leftValue, rs := core.Evaluate(left, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		leftNumber, rs := core.GetPrimitive[primitives.Number](leftValue, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		rightValue, rs := core.Evaluate(right, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		rightNumber, rs := core.GetPrimitive[primitives.Number](rightValue, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		result := new(big.Rat)
		op(result, leftNumber.Value, rightNumber.Value)
		return primitives.NumberOf(result), nil
	})
}

// initArithmetic wires `+`, `-` (left-associative, lowest) and `*`, `/`
// (left-associative, higher).
func initArithmetic(env *core.Environment) {
	store := operators.Of(env)

	additionGroup := store.BinaryGroup(operators.Left, operators.Lowest())
	core.Define(env, "+", operatorValue(mathOperator(additionGroup, func(r, a, b *big.Rat) *big.Rat { return r.Add(a, b) })))
	core.Define(env, "-", operatorValue(mathOperator(additionGroup, func(r, a, b *big.Rat) *big.Rat { return r.Sub(a, b) })))

	multiplicationGroup := store.BinaryGroup(operators.Left, operators.HigherThan(additionGroup))
	core.Define(env, "*", operatorValue(mathOperator(multiplicationGroup, func(r, a, b *big.Rat) *big.Rat { return r.Mul(a, b) })))
	core.Define(env, "/", operatorValue(divisionOperator(multiplicationGroup)))
}

func divisionOperator(group *operators.Group) operators.Operator {
	return operators.NewBinary(group, func(left, right core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		leftValue, rs := core.Evaluate(left, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		leftNumber, rs := core.GetPrimitive[primitives.Number](leftValue, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		rightValue, rs := core.Evaluate(right, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		rightNumber, rs := core.GetPrimitive[primitives.Number](rightValue, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		if rightNumber.Value.Sign() == 0 {
			return core.Value{}, diagnostics.ErrorStatef(stack, "Division by zero")
		}

		result := new(big.Rat).Quo(leftNumber.Value, rightNumber.Value)
		return primitives.NumberOf(result), nil
	})
}
