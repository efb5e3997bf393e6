package primitives

import (
	"github.com/funvibe/weave/internal/core"
	"github.com/funvibe/weave/internal/diagnostics"
	"github.com/funvibe/weave/internal/operators"
)

// List is the heart of the language: macro expansion, operator-precedence
// grouping, and function application all happen inside a list's own
// Evaluate conformance.
type List struct {
	Items    []core.Value
	Location *diagnostics.SourceLocation
}

// ListOf wraps items in a Value carrying Evaluate (the full list
// evaluation protocol) and Macro-Expand (substitutes through every item,
// recursively).
func ListOf(l List) core.Value {
	v := core.Of(l)
	v = v.AddTrait(core.FuncTrait(core.EvaluateTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.EvaluateFn, *diagnostics.ReturnState) {
		return func(env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			loc := l.Location
			listStack := stack
			if loc != nil {
				listStack = stack.QueueLocation(*loc)
			}
			listStack = listStack.Add("Evaluating list")
			return evaluateList(l.Items, env, listStack, *core.Get(env, expansionBudgetKey))
		}, nil
	}))
	v = v.AddTrait(core.FuncTrait(core.MacroExpandTraitID, func(env *core.Environment, stack diagnostics.Stack) (core.MacroExpandFn, *diagnostics.ReturnState) {
		return func(parameter core.MacroParameter, replacement core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
			expanded := make([]core.Value, len(l.Items))
			for i, item := range l.Items {
				e, rs := core.MacroExpandValue(item, parameter, replacement, env, stack)
				if rs != nil {
					return core.Value{}, rs
				}
				expanded[i] = e
			}
			return ListOf(List{Items: expanded, Location: l.Location}), nil
		}, nil
	}))
	return v
}

// Group wraps items the way the `:`/`::`/`=>`/`->` operators group their
// raw operand spans: a single item stands for itself, more than one is
// wrapped in a List value, left unevaluated either way.
func Group(items []core.Value) core.Value {
	if len(items) == 1 {
		return items[0]
	}
	return ListOf(List{Items: items})
}

// expansionBudget bounds total macro expansions so a macro that expands
// into itself raises "Macro expands infinitely" instead of looping
// forever. The budget is one shared counter per environment chain —
// nested lists produced by an expansion draw from the same pool as the
// list that expanded them, which is what catches a macro re-entering
// itself through an inner list.
type expansionBudget struct{ remaining int }

const maxMacroExpansions = 10_000

// expansionBudgetKey shares one budget across an environment and all its
// children; the root allocates it on first use.
var expansionBudgetKey = core.NewEnvironmentKey[*expansionBudget](
	func() *expansionBudget { return &expansionBudget{remaining: maxMacroExpansions} },
	func(parent, child *expansionBudget) *expansionBudget {
		if parent != nil {
			return parent
		}
		return child
	},
	true,
)

// evaluateList reduces the items of one list:
//  1. empty -> empty value.
//  2. macro expansion pass (leftmost occurrence, budgeted).
//  3. operator resolution pass: variadic operators take
//     priority over binary ones — they group everything to a side rather
//     than just an immediate neighbor, which is what lets `x : 1 + 2` split
//     at `:` before `+` ever comes into play. Binary operators are then
//     resolved by repeatedly reducing the tightest-binding occurrence with
//     its immediate neighbors until one value remains.
//  4. no operators at all -> application fold.
func evaluateList(items []core.Value, env *core.Environment, stack diagnostics.Stack, budget *expansionBudget) (core.Value, *diagnostics.ReturnState) {
	if len(items) == 0 {
		return core.Empty(), nil
	}

	expanded, expandedAny, rs := expandLeftmostMacro(items, env, stack, budget)
	if rs != nil {
		return core.Value{}, rs
	}
	if expandedAny {
		return evaluateList(expanded, env, stack, budget)
	}

	variadicOccurrences, binaryOccurrences, rs := findOperatorOccurrences(items, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}

	if len(variadicOccurrences) > 0 {
		idx := pickOccurrence(variadicOccurrences)
		op := variadicOccurrences[idx]
		left := items[:op.index]
		right := items[op.index+1:]
		return op.operator.Variadic(left, right, env, stack)
	}

	if len(binaryOccurrences) > 0 {
		return resolveBinary(items, binaryOccurrences, env, stack)
	}

	return applicationFold(items, env, stack)
}

// expandLeftmostMacro finds the first item whose bound value carries the
// Macro trait and substitutes it, consuming that item plus the single item
// following it as the macro's argument (or the empty value, if the macro
// is the list's last item).
func expandLeftmostMacro(items []core.Value, env *core.Environment, stack diagnostics.Stack, budget *expansionBudget) ([]core.Value, bool, *diagnostics.ReturnState) {
	for i, item := range items {
		macro, found, rs := detectMacro(item, env, stack)
		if rs != nil {
			return nil, false, rs
		}
		if !found {
			continue
		}

		budget.remaining--
		if budget.remaining < 0 {
			return nil, false, diagnostics.ErrorStatef(stack, "Macro expands infinitely")
		}

		argument := core.Empty()
		consumed := 1
		if i+1 < len(items) {
			argument = items[i+1]
			consumed = 2
		}

		parameter, replacement, rs := macro.DefineParameter(argument, env, stack)
		if rs != nil {
			return nil, false, rs
		}

		expandedBody, rs := core.MacroExpandValue(macro.Body, parameter, replacement, env, stack)
		if rs != nil {
			return nil, false, rs
		}

		next := make([]core.Value, 0, len(items)-consumed+1)
		next = append(next, items[:i]...)
		next = append(next, expandedBody)
		next = append(next, items[i+consumed:]...)
		return next, true, nil
	}
	return nil, false, nil
}

type occurrence struct {
	index    int
	operator operators.Operator
}

// findOperatorOccurrences scans items for ones whose bound value carries
// the Operator trait, split by arity.
func findOperatorOccurrences(items []core.Value, env *core.Environment, stack diagnostics.Stack) ([]occurrence, []occurrence, *diagnostics.ReturnState) {
	var variadic, binary []occurrence
	for i, item := range items {
		op, found, rs := detectOperator(item, env, stack)
		if rs != nil {
			return nil, nil, rs
		}
		if !found {
			continue
		}
		if op.IsVariadic() {
			variadic = append(variadic, occurrence{index: i, operator: op})
		} else {
			binary = append(binary, occurrence{index: i, operator: op})
		}
	}
	return variadic, binary, nil
}

// pickOccurrence selects the variadic occurrence the list splits at:
// highest Group.Rank() wins; ties broken by the winning group's
// associativity. A variadic split consumes everything on each side, so the
// chosen occurrence is the OUTERMOST one — for a right-associative group
// that is the leftmost occurrence (`a -> b -> c` splits into `a` and
// `b -> c`), for a left-associative group the rightmost. The choice is
// deterministic for a fixed DAG and list.
func pickOccurrence(occurrences []occurrence) int {
	best := 0
	for i := 1; i < len(occurrences); i++ {
		a, b := occurrences[best], occurrences[i]
		switch {
		case b.operator.Group.Rank() > a.operator.Group.Rank():
			best = i
		case b.operator.Group.Rank() == a.operator.Group.Rank():
			if b.operator.Group.Associativity() == operators.Left {
				best = i
			}
		}
	}
	return best
}

// resolveBinary collapses maximal non-operator runs via application,
// then repeatedly reduces the tightest-binding remaining binary occurrence
// with its immediate neighbors until one value remains.
func resolveBinary(items []core.Value, occurrences []occurrence, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	operands := make([]core.Value, 0, len(occurrences)+1)
	ops := make([]operators.Operator, 0, len(occurrences))

	start := 0
	for _, occ := range occurrences {
		run := items[start:occ.index]
		if len(run) == 0 {
			return core.Value{}, diagnostics.ErrorStatef(stack, "Expected a single value on the left of this operator")
		}
		value, rs := applicationFold(run, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
		operands = append(operands, value)
		ops = append(ops, occ.operator)
		start = occ.index + 1
	}
	finalRun := items[start:]
	if len(finalRun) == 0 {
		return core.Value{}, diagnostics.ErrorStatef(stack, "Expected a single value on the right of this operator")
	}
	value, rs := applicationFold(finalRun, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	operands = append(operands, value)

	for len(ops) > 0 {
		idx := pickBinaryRank(ops)
		combined, rs := ops[idx].Binary(operands[idx], operands[idx+1], env, stack)
		if rs != nil {
			return core.Value{}, rs
		}

		nextOperands := make([]core.Value, 0, len(operands)-1)
		nextOperands = append(nextOperands, operands[:idx]...)
		nextOperands = append(nextOperands, combined)
		nextOperands = append(nextOperands, operands[idx+2:]...)
		operands = nextOperands

		nextOps := make([]operators.Operator, 0, len(ops)-1)
		nextOps = append(nextOps, ops[:idx]...)
		nextOps = append(nextOps, ops[idx+1:]...)
		ops = nextOps
	}

	return operands[0], nil
}

func pickBinaryRank(ops []operators.Operator) int {
	best := 0
	for i := 1; i < len(ops); i++ {
		a, b := ops[best], ops[i]
		switch {
		case b.Group.Rank() > a.Group.Rank():
			best = i
		case b.Group.Rank() == a.Group.Rank():
			if b.Group.Associativity() == operators.Right {
				best = i
			}
		}
	}
	return best
}

// applicationFold evaluates items[0], then repeatedly calls the result
// with each subsequent item in turn.
func applicationFold(items []core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	result, rs := core.Evaluate(items[0], env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	for _, arg := range items[1:] {
		result, rs = core.Call(result, arg, env, stack)
		if rs != nil {
			return core.Value{}, rs
		}
	}
	return result, nil
}

// peekBoundValue resolves item to the value whose traits actually govern
// operator/macro detection: a Name item resolves (without evaluating) to
// its current binding; anything else stands for itself. An unbound name is
// not an error here — plain lookup failure just means "not an operator/
// macro", left for ordinary evaluation to raise later.
func peekBoundValue(item core.Value, env *core.Environment, stack diagnostics.Stack) (core.Value, *diagnostics.ReturnState) {
	name, ok, rs := core.GetPrimitiveIfPresent[Name](item, env, stack)
	if rs != nil {
		return core.Value{}, rs
	}
	if !ok {
		return item, nil
	}
	bound, found := core.Lookup(env, name.Text)
	if !found {
		return item, nil
	}
	return bound, nil
}

func detectOperator(item core.Value, env *core.Environment, stack diagnostics.Stack) (operators.Operator, bool, *diagnostics.ReturnState) {
	peeked, rs := peekBoundValue(item, env, stack)
	if rs != nil {
		return operators.Operator{}, false, rs
	}
	return core.GetTraitIfPresent[operators.Operator](peeked, core.OperatorTraitID, env, stack)
}

func detectMacro(item core.Value, env *core.Environment, stack diagnostics.Stack) (core.Macro, bool, *diagnostics.ReturnState) {
	peeked, rs := peekBoundValue(item, env, stack)
	if rs != nil {
		return core.Macro{}, false, rs
	}
	return core.GetTraitIfPresent[core.Macro](peeked, core.MacroTraitID, env, stack)
}

func init() {
	core.RegisterPrimitiveTraitID[List](core.BuiltinTraitID("List"))
}
