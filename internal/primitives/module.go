package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
)

// Block is a sequence of statement lists evaluated in a fresh child scope;
// the last statement's value is the block's own value.
type Block struct {
	Statements []core.Value // each a List value
	Location   *diagnostics.SourceLocation
}

// BlockOf wraps statements in a Value carrying Evaluate and Macro-Expand.
func BlockOf(b Block) core.Value {
	v := core.Of(b)
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			_, result, rs := EvaluateStatements(b.Statements, env, stack)
			return result, rs
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.MacroExpandTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.MacroExpandFn, *diagnostics.ReturnState) {
		return func(parameter core.MacroParameter, replacement core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			expanded, rs := expandStatements(b.Statements, parameter, replacement, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			return BlockOf(Block{Statements: expanded, Location: b.Location}), nil
		}, nil
	}))
	return v
}

// ModuleBlock is a Block whose evaluation snapshots the child scope's
// variables into a Module instead of returning the last statement's value
// .
type ModuleBlock struct {
	Statements []core.Value
	Location   *diagnostics.SourceLocation
}

// ModuleBlockOf wraps statements in a Value carrying Evaluate (snapshot to
// Module) and Macro-Expand (expands as a block, then rewraps).
func ModuleBlockOf(mb ModuleBlock) core.Value {
	v := core.Of(mb)
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			childEnv, _, rs := EvaluateStatements(mb.Statements, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			return ModuleOf(Module{Values: *core.Get(childEnv, core.VariablesKey)}), nil
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.MacroExpandTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.MacroExpandFn, *diagnostics.ReturnState) {
		return func(parameter core.MacroParameter, replacement core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			expanded, rs := expandStatements(mb.Statements, parameter, replacement, env, stack)
			if rs != nil {
				return core.Value{}, rs
			}
			return ModuleBlockOf(ModuleBlock{Statements: expanded, Location: mb.Location}), nil
		}, nil
	}))
	return v
}

// EvaluateStatements runs each statement list in a fresh child environment
// of env, in source order, returning that child environment (so
// ModuleBlock can snapshot it) and the last statement's value. A
// ReturnFromBlock state reaching this boundary is caught and treated as
// yielding the empty value — this core does not model a value-carrying
// `return`.
func EvaluateStatements(statements []core.Value, env *core.Environment, stack diagnostics.Stack) (*core.Environment, core.Value, *diagnostics.ReturnState) {
	child := core.ChildOf(env)

	result := core.Empty()
	for _, statement := range statements {
		value, rs := core.Evaluate(statement, child, stack)
		if rs != nil {
			if rs.Kind == diagnostics.ReturnKindReturnFromBlock {
				return child, core.Empty(), nil
			}
			return child, core.Value{}, rs
		}
		result = value
	}
	return child, result, nil
}

func expandStatements(statements []core.Value, parameter core.MacroParameter, replacement core.Value, env *core.Environment, stack diagnostics.Stack) ([]core.Value, *diagnostics.ReturnState) {
	expanded := make([]core.Value, len(statements))
	for i, statement := range statements {
		e, rs := core.MacroExpandValue(statement, parameter, replacement, env, stack)
		if rs != nil {
			return nil, rs
		}
		expanded[i] = e
	}
	return expanded, nil
}

// Module is a first-class snapshot of an environment's variables.
type Module struct {
	Values core.Variables
}

// ModuleOf wraps a Module in a Value carrying Text ("<module>") and
// Function (name lookup in the snapshot).
func ModuleOf(m Module) core.Value {
	v := core.Of(m)
	v = v.AddTrait(core.FuncTrait(core.TextTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.TextValue, *diagnostics.ReturnState) {
		return core.TextValue{Text: "<module>"}, nil
	}))
	v = v.AddTrait(core.ConstantTrait(core.FunctionTraitID, core.Function(func(argument core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
		name, rs := core.GetPrimitive[Name](argument, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		value, ok := m.Values[name.Text]
		if !ok {
			return core.Value{}, diagnostics.ErrorStatef(stack, "Name does not refer to a variable")
		}
		return value, nil
	})))
	return v
}

func init() {
	core.RegisterPrimitiveTraitID[Block](core.BuiltinTraitID("Block"))
	core.RegisterPrimitiveTraitID[ModuleBlock](core.BuiltinTraitID("Module-Block"))
	core.RegisterPrimitiveTraitID[Module](core.BuiltinTraitID("Module"))
}
