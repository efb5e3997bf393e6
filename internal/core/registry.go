package core

import "reflect"

// primitiveTraitIDs associates each primitive payload type with the
// built-in TraitID that identifies "being" that primitive. Go has no
// compile-time association between an open set of types and constants,
// so the link is built at init time instead, once per primitive package.
var primitiveTraitIDs = map[reflect.Type]TraitID{}

// RegisterPrimitiveTraitID associates T with id. Each primitive package
// (Name, Number, Text, ...) calls this once in its init().
func RegisterPrimitiveTraitID[T any](id TraitID) {
	var zero T
	primitiveTraitIDs[reflect.TypeOf(zero)] = id
}

// PrimitiveTraitIDFor looks up the TraitID registered for T.
func PrimitiveTraitIDFor[T any]() (TraitID, bool) {
	var zero T
	id, ok := primitiveTraitIDs[reflect.TypeOf(zero)]
	return id, ok
}
