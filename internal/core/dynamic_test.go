package core

import "testing"

func TestDynamicDowncast(t *testing.T) {
	d := NewDynamic("payload")

	s, ok := Downcast[string](d)
	if !ok || s != "payload" {
		t.Fatalf("Downcast[string] = %q, %v", s, ok)
	}

	if _, ok := Downcast[int](d); ok {
		t.Error("Downcast[int] succeeded on a string payload")
	}
}

func TestDynamicClone(t *testing.T) {
	d := NewDynamic(testPayload{N: 5})
	c := d.Clone()

	p, ok := Downcast[testPayload](c)
	if !ok || p.N != 5 {
		t.Fatalf("clone payload = %v, %v", p, ok)
	}
}

func TestZeroDynamicCloneIsSafe(t *testing.T) {
	var d Dynamic
	if _, ok := Downcast[int](d.Clone()); ok {
		t.Error("zero Dynamic downcast unexpectedly succeeded")
	}
}

func TestTraitIDEquality(t *testing.T) {
	if !BuiltinTraitID("Text").Equal(BuiltinTraitID("Text")) {
		t.Error("builtin ids with the same label should be equal")
	}
	if BuiltinTraitID("Text").Equal(BuiltinTraitID("Number")) {
		t.Error("distinct builtin labels should differ")
	}
	if NewTraitID().Equal(NewTraitID()) {
		t.Error("two runtime ids should never be equal")
	}

	runtime := NewTraitID()
	if !runtime.Equal(runtime) {
		t.Error("a runtime id should equal itself")
	}
	if runtime.Equal(BuiltinTraitID(runtime.DebugLabel())) {
		t.Error("runtime and builtin ids should never mix")
	}
}
