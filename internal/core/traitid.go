package core

import "github.com/google/uuid"

// TraitID is a process-wide identity: either a stable built-in label or a
// freshly generated unique identifier for a user-defined trait. Equality is
// always by identity, never by structure — two TraitIDs with the same
// builtin label are the same identity, but two runtime TraitIDs are never
// equal even if constructed back to back.
type TraitID struct {
	label     string
	runtime   uuid.UUID
	isRuntime bool
}

// BuiltinTraitID returns the stable identity for a built-in trait label.
// Used only for the handful of labels the core itself knows about
// (Evaluate, Assign, Text, Function, Operator, Macro, ...); user code
// declaring `Name : trait` gets a NewTraitID instead.
func BuiltinTraitID(label string) TraitID {
	return TraitID{label: label}
}

// NewTraitID generates a fresh, globally unique trait identity, the way
// evaluating `trait` mints one for every user-declared trait.
func NewTraitID() TraitID {
	return TraitID{runtime: uuid.New(), isRuntime: true}
}

// Equal reports whether two TraitIDs name the same trait.
func (id TraitID) Equal(other TraitID) bool {
	if id.isRuntime != other.isRuntime {
		return false
	}
	if id.isRuntime {
		return id.runtime == other.runtime
	}
	return id.label == other.label
}

// DebugLabel returns a human-readable label for diagnostics; runtime trait
// ids report their generated uuid.
func (id TraitID) DebugLabel() string {
	if id.isRuntime {
		return id.runtime.String()
	}
	return id.label
}
