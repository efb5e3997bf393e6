package core

import (
	"testing"

	"github.com/funvibe/weave/internal/diagnostics"
)

func TestDirectTraitWinsOverConformance(t *testing.T) {
	env := NewEnvironment()
	stack := diagnostics.NewStack()

	// A conformance that fails the test if consulted.
	id := BuiltinTraitID("Test-Payload")
	AddConformance(env, id, func(Value, *Environment, diagnostics.Stack) (*Value, *diagnostics.ReturnState) {
		t.Fatal("conformance consulted despite a direct trait")
		return nil, nil
	})

	v := intValue(7)
	got, rs := GetPrimitive[testPayload](v, env, stack)
	if rs != nil {
		t.Fatalf("lookup failed: %v", rs)
	}
	if got.N != 7 {
		t.Errorf("payload = %d, want 7", got.N)
	}
}

func TestMissingTraitFails(t *testing.T) {
	env := NewEnvironment()
	stack := diagnostics.NewStack()

	_, rs := GetTrait[testPayload](Empty(), BuiltinTraitID("Test-Payload"), env, stack)
	if rs == nil {
		t.Fatal("expected an error")
	}
	if rs.Err.Message != "Cannot find trait" {
		t.Errorf("message = %q", rs.Err.Message)
	}
}

func TestSingleConformanceDerivesTrait(t *testing.T) {
	env := NewEnvironment()
	stack := diagnostics.NewStack()

	marker := BuiltinTraitID("Marked")
	AddConformance(env, marker, func(v Value, env *Environment, stack diagnostics.Stack) (*Value, *diagnostics.ReturnState) {
		payload, present, rs := GetPrimitiveIfPresent[testPayload](v, env, stack)
		if rs != nil || !present {
			return nil, rs
		}
		derived := Empty().AddTrait(ConstantTrait(marker, payload.N*2))
		return &derived, nil
	})

	got, rs := GetTrait[int](intValue(21), marker, env, stack)
	if rs != nil {
		t.Fatalf("lookup failed: %v", rs)
	}
	if got != 42 {
		t.Errorf("derived = %d, want 42", got)
	}

	has, rs := Empty().HasTrait(marker, env, stack)
	if rs != nil {
		t.Fatalf("HasTrait failed: %v", rs)
	}
	if has {
		t.Error("conformance applied to a value without the source primitive")
	}
}

func TestTwoApplicableConformancesAreAmbiguous(t *testing.T) {
	env := NewEnvironment()
	stack := diagnostics.NewStack()

	marker := BuiltinTraitID("Marked")
	applies := func(v Value, env *Environment, stack diagnostics.Stack) (*Value, *diagnostics.ReturnState) {
		derived := Empty().AddTrait(ConstantTrait(marker, 1))
		return &derived, nil
	}
	AddConformance(env, marker, applies)
	AddConformance(env, marker, applies)

	_, rs := GetTrait[int](Empty(), marker, env, stack)
	if rs == nil {
		t.Fatal("expected ambiguity error")
	}
	if rs.Err.Message != "ambiguous trait" {
		t.Errorf("message = %q", rs.Err.Message)
	}

	// HasTrait propagates the ambiguity rather than answering.
	_, rs = Empty().HasTrait(marker, env, stack)
	if rs == nil {
		t.Fatal("HasTrait swallowed the ambiguity")
	}
}

func TestAddTraitCopies(t *testing.T) {
	env := NewEnvironment()
	stack := diagnostics.NewStack()

	base := intValue(1)
	marker := BuiltinTraitID("Marked")
	extended := base.AddTrait(ConstantTrait(marker, "yes"))

	has, rs := base.HasTrait(marker, env, stack)
	if rs != nil {
		t.Fatalf("HasTrait failed: %v", rs)
	}
	if has {
		t.Error("AddTrait mutated the receiver")
	}

	has, rs = extended.HasTrait(marker, env, stack)
	if rs != nil {
		t.Fatalf("HasTrait failed: %v", rs)
	}
	if !has {
		t.Error("AddTrait did not install the trait")
	}
}

func TestAddPrimitiveConformance(t *testing.T) {
	type doubled struct{ N int }
	RegisterPrimitiveTraitID[doubled](BuiltinTraitID("Doubled"))

	env := NewEnvironment()
	stack := diagnostics.NewStack()

	AddPrimitiveConformance(env, func(p testPayload) doubled {
		return doubled{N: p.N * 2}
	})

	got, rs := GetPrimitive[doubled](intValue(8), env, stack)
	if rs != nil {
		t.Fatalf("lookup failed: %v", rs)
	}
	if got.N != 16 {
		t.Errorf("derived = %d, want 16", got.N)
	}
}
