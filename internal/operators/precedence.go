// Package operators implements the operator model of the evaluator: binary and
// variadic operators arranged in a precedence DAG. The resolution algorithm
// that picks which operator occurrence governs a list lives in
// internal/primitives/list.go.
package operators

// Associativity controls which occurrence wins a precedence tie.
type Associativity int

const (
	Left Associativity = iota
	Right
)

// arity distinguishes the two independent precedence DAGs the store
// maintains. Comparing a binary group against a variadic one is undefined,
// so the arity is fixed at group construction and never exposed to
// callers.
type arity int

const (
	binaryArity arity = iota
	variadicArity
)

// Group is a node in a precedence DAG: an associativity plus a position
// relative to the other groups of the same arity.
type Group struct {
	assoc Associativity
	arity arity
	rank  int // index into the owning dag's order slice; higher = picked first
}

func (g *Group) Associativity() Associativity { return g.assoc }

// Rank reports the group's position in its owning DAG; higher ranks are
// picked first when multiple occurrences compete within the same arity. A
// binary occurrence picked first is reduced with its neighbors first (it
// binds tighter); a variadic occurrence picked first is where the whole
// list splits (it is the outermost).
func (g *Group) Rank() int { return g.rank }

// IsVariadic reports which of the two independent DAGs this group
// belongs to.
func (g *Group) IsVariadic() bool { return g.arity == variadicArity }

// dag is an ordered list of groups, lowest precedence first. Inserting a
// new group shifts the ranks of everything at or past the insertion point.
type dag struct {
	order []*Group
}

func (d *dag) insertAt(index int, g *Group) {
	d.order = append(d.order, nil)
	copy(d.order[index+1:], d.order[index:])
	d.order[index] = g
	for i, node := range d.order {
		node.rank = i
	}
}

func (d *dag) highest(g *Group) { d.insertAt(len(d.order), g) }
func (d *dag) lowest(g *Group)  { d.insertAt(0, g) }

func (d *dag) higherThan(g *Group, relative *Group) {
	d.insertAt(relative.rank+1, g)
}

func (d *dag) lowerThan(g *Group, relative *Group) {
	d.insertAt(relative.rank, g)
}

// Store holds the two independent precedence DAGs: one for
// binary operator groups, one for variadic operator groups.
type Store struct {
	binary   dag
	variadic dag
}

// NewStore returns an empty precedence store.
func NewStore() *Store {
	return &Store{}
}

// Comparison selects where a newly declared group sits relative to the
// groups already registered of the same arity.
type Comparison struct {
	kind     comparisonKind
	relative *Group
}

type comparisonKind int

const (
	cmpHighest comparisonKind = iota
	cmpLowest
	cmpHigherThan
	cmpLowerThan
)

func Highest() Comparison                { return Comparison{kind: cmpHighest} }
func Lowest() Comparison                 { return Comparison{kind: cmpLowest} }
func HigherThan(relative *Group) Comparison { return Comparison{kind: cmpHigherThan, relative: relative} }
func LowerThan(relative *Group) Comparison  { return Comparison{kind: cmpLowerThan, relative: relative} }

// BinaryGroup declares a new binary-operator precedence group.
func (s *Store) BinaryGroup(assoc Associativity, cmp Comparison) *Group {
	g := &Group{assoc: assoc, arity: binaryArity}
	s.place(&s.binary, g, cmp)
	return g
}

// VariadicGroup declares a new variadic-operator precedence group.
func (s *Store) VariadicGroup(assoc Associativity, cmp Comparison) *Group {
	g := &Group{assoc: assoc, arity: variadicArity}
	s.place(&s.variadic, g, cmp)
	return g
}

func (s *Store) place(d *dag, g *Group, cmp Comparison) {
	switch cmp.kind {
	case cmpHighest:
		d.highest(g)
	case cmpLowest:
		d.lowest(g)
	case cmpHigherThan:
		d.higherThan(g, cmp.relative)
	case cmpLowerThan:
		d.lowerThan(g, cmp.relative)
	}
}
