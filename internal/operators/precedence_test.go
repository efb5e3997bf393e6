package operators

import "testing"

func TestHighestAndLowestPlacement(t *testing.T) {
	store := NewStore()

	middle := store.BinaryGroup(Left, Highest())
	top := store.BinaryGroup(Left, Highest())
	bottom := store.BinaryGroup(Left, Lowest())

	if !(bottom.Rank() < middle.Rank() && middle.Rank() < top.Rank()) {
		t.Fatalf("ranks out of order: bottom=%d middle=%d top=%d",
			bottom.Rank(), middle.Rank(), top.Rank())
	}
}

func TestRelativePlacement(t *testing.T) {
	store := NewStore()

	base := store.BinaryGroup(Left, Highest())
	above := store.BinaryGroup(Left, HigherThan(base))
	below := store.BinaryGroup(Left, LowerThan(base))

	if above.Rank() <= base.Rank() {
		t.Errorf("HigherThan placed at %d, base at %d", above.Rank(), base.Rank())
	}
	if below.Rank() >= base.Rank() {
		t.Errorf("LowerThan placed at %d, base at %d", below.Rank(), base.Rank())
	}
}

func TestInsertionShiftsExistingRanks(t *testing.T) {
	store := NewStore()

	low := store.BinaryGroup(Left, Highest())
	high := store.BinaryGroup(Left, Highest())
	mid := store.BinaryGroup(Left, HigherThan(low))

	if !(low.Rank() < mid.Rank() && mid.Rank() < high.Rank()) {
		t.Fatalf("ranks after insertion: low=%d mid=%d high=%d",
			low.Rank(), mid.Rank(), high.Rank())
	}
}

func TestBinaryAndVariadicDAGsAreIndependent(t *testing.T) {
	store := NewStore()

	binary := store.BinaryGroup(Left, Highest())
	variadic := store.VariadicGroup(Right, Highest())

	if binary.Rank() != 0 || variadic.Rank() != 0 {
		t.Errorf("first group of each arity should rank 0, got binary=%d variadic=%d",
			binary.Rank(), variadic.Rank())
	}
	if binary.IsVariadic() {
		t.Error("binary group reports variadic")
	}
	if !variadic.IsVariadic() {
		t.Error("variadic group reports binary")
	}
}

func TestOperatorArity(t *testing.T) {
	store := NewStore()

	binary := NewBinary(store.BinaryGroup(Left, Highest()), nil)
	variadic := NewVariadic(store.VariadicGroup(Right, Highest()), nil)

	if binary.IsVariadic() {
		t.Error("NewBinary produced a variadic operator")
	}
	if !variadic.IsVariadic() {
		t.Error("NewVariadic produced a binary operator")
	}
}

func TestAssociativityIsPreserved(t *testing.T) {
	store := NewStore()

	if g := store.BinaryGroup(Left, Highest()); g.Associativity() != Left {
		t.Error("Left group lost its associativity")
	}
	if g := store.VariadicGroup(Right, Highest()); g.Associativity() != Right {
		t.Error("Right group lost its associativity")
	}
}
