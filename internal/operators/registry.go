package operators

import "github.com/funvibe/weave/internal/core"

// StoreKey is the "operators" environment slot: the shared
// precedence-group DAGs. Unlike variables (union) or conformances
// (concatenation), the store itself is a single shared, mutable resource —
// a child environment sees the very same *Store its parent does, the way
// `:`/`::`/`=>`/`->` and the arithmetic operators all register against one
// program-wide precedence DAG.
var StoreKey = core.NewEnvironmentKey[*Store](
	NewStore,
	func(parent, child *Store) *Store {
		if parent != nil {
			return parent
		}
		return child
	},
	true,
)

// Of returns the shared precedence store visible from env.
func Of(env *core.Environment) *Store {
	return *core.Get(env, StoreKey)
}
