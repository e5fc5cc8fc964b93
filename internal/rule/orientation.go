package rule

import "twee/internal/term"

// Orientation is the directional usage policy of a Rule (spec.md §3).
// Each variant is a distinct Go type; the marker method follows the
// teacher's sum-type-via-interface pattern (internal/ast.Expr).
type Orientation interface {
	isOrientation()
	// String names the variant, for diagnostics and proof printing.
	String() string
}

// Oriented rules are used strictly lhs -> rhs.
type Oriented struct{}

// WeaklyOriented rules are used lhs -> rhs, but only when some
// variable in Watch instantiates to something other than the minimal
// constant Minimal.
type WeaklyOriented struct {
	Minimal term.FuncID
	Watch   []term.Var
}

// Permutative rules are usable in either direction, eligible when the
// lexicographic comparison of sigma-images of Pairs strictly
// decreases.
type Permutative struct {
	Pairs []PermutationPair
}

// PermutationPair is one (u, v) step of a permutative witness: the
// pair is only decisive once sigma(u) != sigma(v).
type PermutationPair struct {
	U, V term.Term
}

// Unoriented rules are usable in either direction, eligible with sigma
// iff sigma(RHS) < sigma(LHS) strictly under KBO (the two sides named
// here are the equation's original LHS/RHS, not a per-use direction).
type Unoriented struct {
	LHS, RHS term.Term
}

func (Oriented) isOrientation()      {}
func (WeaklyOriented) isOrientation() {}
func (Permutative) isOrientation()    {}
func (Unoriented) isOrientation()     {}

func (Oriented) String() string      { return "oriented" }
func (WeaklyOriented) String() string { return "weakly-oriented" }
func (Permutative) String() string    { return "permutative" }
func (Unoriented) String() string     { return "unoriented" }
