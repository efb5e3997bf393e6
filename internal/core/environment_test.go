package core

import (
	"testing"

	"github.com/funvibe/weave/internal/diagnostics"
)

// testPayload is the stand-in primitive kind used across the core tests.
type testPayload struct {
	N int
}

func init() {
	RegisterPrimitiveTraitID[testPayload](BuiltinTraitID("Test-Payload"))
}

func intValue(n int) Value {
	return Of(testPayload{N: n})
}

func mustPayload(t *testing.T, v Value) int {
	t.Helper()
	payload, rs := GetPrimitive[testPayload](v, NewEnvironment(), diagnostics.NewStack())
	if rs != nil {
		t.Fatalf("GetPrimitive failed: %v", rs)
	}
	return payload.N
}

func TestGetCreatesSlotWithDefault(t *testing.T) {
	env := NewEnvironment()

	vars := Get(env, VariablesKey)
	if vars == nil || len(*vars) != 0 {
		t.Fatalf("expected fresh empty variables slot, got %v", vars)
	}
}

func TestChildInheritsVariablesChildWins(t *testing.T) {
	parent := NewEnvironment()
	Define(parent, "x", intValue(1))
	Define(parent, "y", intValue(2))

	child := ChildOf(parent)
	Define(child, "x", intValue(10))

	x, ok := Lookup(child, "x")
	if !ok {
		t.Fatal("x not visible in child")
	}
	if got := mustPayload(t, x); got != 10 {
		t.Errorf("child x = %d, want 10", got)
	}

	y, ok := Lookup(child, "y")
	if !ok {
		t.Fatal("parent y not inherited")
	}
	if got := mustPayload(t, y); got != 2 {
		t.Errorf("child y = %d, want 2", got)
	}
}

func TestChildSlotIsIsolatedFromParent(t *testing.T) {
	parent := NewEnvironment()
	Define(parent, "x", intValue(1))

	child := ChildOf(parent)
	Define(child, "x", intValue(99))
	Define(child, "fresh", intValue(3))

	x, _ := Lookup(parent, "x")
	if got := mustPayload(t, x); got != 1 {
		t.Errorf("parent x mutated to %d", got)
	}
	if _, ok := Lookup(parent, "fresh"); ok {
		t.Error("child binding leaked into parent")
	}
}

func TestConformancesConcatenateParentFirst(t *testing.T) {
	id := BuiltinTraitID("Probe")
	never := func(Value, *Environment, diagnostics.Stack) (*Value, *diagnostics.ReturnState) {
		return nil, nil
	}

	parent := NewEnvironment()
	AddConformance(parent, id, never)

	child := ChildOf(parent)
	AddConformance(child, id, never)

	if got := len(*Get(child, ConformancesKey)); got != 2 {
		t.Fatalf("child sees %d conformances, want 2", got)
	}
	if got := len(*Get(parent, ConformancesKey)); got != 1 {
		t.Fatalf("parent grew to %d conformances, want 1", got)
	}
}

func TestTakeNewSlotStartsFreshInChild(t *testing.T) {
	key := NewEnvironmentKey[string](
		func() string { return "" },
		TakeNew[string],
		true,
	)

	parent := NewEnvironment()
	*Get(parent, key) = "parent-value"

	child := ChildOf(parent)
	if got := *Get(child, key); got != "" {
		t.Errorf("take-new slot inherited %q", got)
	}
}

func TestGlobalIsASingleton(t *testing.T) {
	ResetGlobalForTest()
	defer ResetGlobalForTest()

	if Global() != Global() {
		t.Error("Global returned two different environments")
	}
}
