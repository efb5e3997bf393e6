package core

import "reflect"

// Dynamic is a type-erased, clonable holder for an arbitrary payload. It
// remembers the payload's concrete type so a later downcast can fail
// cleanly instead of panicking, and carries its own clone function so the
// holder can be duplicated without knowing the payload's static type.
type Dynamic struct {
	kind  reflect.Type
	value any
	clone func(any) any
}

// NewDynamic wraps a payload of type T. T should be cheap to copy — Dynamic
// makes no attempt to deep-clone arbitrary graphs.
func NewDynamic[T any](payload T) Dynamic {
	return Dynamic{
		kind:  reflect.TypeOf(payload),
		value: payload,
		clone: func(v any) any { return v.(T) },
	}
}

// Clone returns an independent copy of the holder. Because payloads are
// plain Go values (structs, not pointers-to-mutable-state), cloning is a
// shallow value copy.
func (d Dynamic) Clone() Dynamic {
	if d.clone == nil {
		return d
	}
	return Dynamic{kind: d.kind, value: d.clone(d.value), clone: d.clone}
}

// Downcast recovers the concrete payload, or ok=false if the holder does
// not contain a T.
func Downcast[T any](d Dynamic) (T, bool) {
	v, ok := d.value.(T)
	return v, ok
}

// MustDowncast recovers the concrete payload or panics. It is only safe to
// call where the caller constructed the Dynamic itself (e.g. a primitive's
// own conformance setup), never on a value of unknown provenance.
func MustDowncast[T any](d Dynamic) T {
	v, ok := Downcast[T](d)
	if !ok {
		var zero T
		panic("core: Dynamic does not hold a " + reflect.TypeOf(zero).String())
	}
	return v
}
