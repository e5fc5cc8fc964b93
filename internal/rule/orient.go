package rule

import (
	"errors"
	"fmt"

	"twee/internal/kbo"
	"twee/internal/subst"
	"twee/internal/term"
)

// ErrRejected is returned (wrapped with a reason via fmt.Errorf's %w)
// when orient cannot produce any Orientation for an equation. Callers
// needing a caller-visible fatal input error should wrap this further
// with a code (internal/errors).
var ErrRejected = errors.New("rule: equation cannot be oriented")

// Orient selects an Orientation for s = t, following spec.md §4.C's
// five-branch decision: try lhs->rhs first (oriented or weakly so),
// reject outright if the equation only orients the other way or binds
// an unbound rhs variable, else fall back to a permutative witness,
// else leave the pair unoriented.
func Orient(o *kbo.Ordering, sig *term.Signature, eq Equation) (*Rule, error) {
	s, t := eq.LHS, eq.RHS

	if o.LessEq(t, s) {
		if ws, minimal, ok := weaklyOrientable(o, sig, s, t); ok {
			return &Rule{LHS: s, RHS: t, Orientation: WeaklyOriented{Minimal: minimal, Watch: ws}}, nil
		}
		return &Rule{LHS: s, RHS: t, Orientation: Oriented{}}, nil
	}
	if o.LessEq(s, t) {
		return nil, fmt.Errorf("%w: rhs %v >= lhs %v (swap sides first)", ErrRejected, t, s)
	}
	if !varsSubset(t, s) {
		return nil, fmt.Errorf("%w: unbound variable in rhs %v not in lhs %v", ErrRejected, t, s)
	}
	if pairs, ok := findPermutation(s, t); ok {
		return &Rule{LHS: s, RHS: t, Orientation: Permutative{Pairs: pairs}}, nil
	}
	return &Rule{LHS: s, RHS: t, Orientation: Unoriented{LHS: s, RHS: t}}, nil
}

// weaklyOrientable reports whether s and t unify with an mgu that maps
// every variable to the signature's minimal constant: spec.md §4.C
// step 1's "emit WeaklyOriented" test. The watch set is every variable
// the mgu actually binds (each must diverge from the minimal constant
// at use time for the rule to fire).
func weaklyOrientable(o *kbo.Ordering, sig *term.Signature, s, t term.Term) ([]term.Var, term.FuncID, bool) {
	minimal, ok := sig.Minimal()
	if !ok {
		return nil, 0, false
	}
	mgu, ok := subst.Unify(s, t)
	if !ok {
		return nil, 0, false
	}
	minimalTerm := func() term.Term {
		b := term.NewBuilder(1)
		b.EmitFun(minimal, nil)
		return b.Finish()
	}()
	watch := make([]term.Var, 0, mgu.Len())
	for _, v := range mgu.Domain() {
		bound, _ := mgu.Lookup(v)
		if !bound.Equal(minimalTerm) {
			return nil, 0, false
		}
		watch = append(watch, v)
	}
	if len(watch) == 0 {
		return nil, 0, false
	}
	return watch, minimal, true
}

// findPermutation checks whether t is reachable from s by a bijective
// renaming of variables: the two terms must agree on every non-var
// position (same functor, same arity, same structure) and differ only
// in which variable labels the matching leaves. When such a renaming
// exists it returns the ordered list of variable pairs (s-side,
// t-side) at each position where the renaming is non-trivial: these
// are exactly the pairs spec.md §4.C step 4 compares lexicographically
// to decide, at substitution time, which direction a use of the rule
// runs.
func findPermutation(s, t term.Term) ([]PermutationPair, bool) {
	forward := make(map[term.Var]term.Var)
	backward := make(map[term.Var]term.Var)
	var pairs []PermutationPair
	if !buildPerm(s, t, forward, backward, &pairs) {
		return nil, false
	}
	if len(pairs) == 0 {
		// s and t are syntactically identical: not a useful permutative
		// witness (orient would already have picked Oriented/rejected).
		return nil, false
	}
	return pairs, true
}

func buildPerm(s, t term.Term, forward, backward map[term.Var]term.Var, pairs *[]PermutationPair) bool {
	if s.IsVar() != t.IsVar() {
		return false
	}
	if s.IsVar() {
		sv, tv := s.Var(), t.Var()
		if existing, ok := forward[sv]; ok {
			if existing != tv {
				return false
			}
		} else {
			forward[sv] = tv
		}
		if existing, ok := backward[tv]; ok {
			if existing != sv {
				return false
			}
		} else {
			backward[tv] = sv
		}
		if sv != tv {
			*pairs = append(*pairs, PermutationPair{U: s, V: t})
		}
		return true
	}
	if s.Functor() != t.Functor() {
		return false
	}
	sArgs := s.Args().Terms()
	tArgs := t.Args().Terms()
	if len(sArgs) != len(tArgs) {
		return false
	}
	for i := range sArgs {
		if !buildPerm(sArgs[i], tArgs[i], forward, backward, pairs) {
			return false
		}
	}
	return true
}

// Backwards flips an Unoriented or Permutative rule's default reading
// direction; spec.md §4.E requires this to error on Oriented and
// WeaklyOriented rules, which have no usable reverse direction.
func Backwards(r *Rule) (*Rule, error) {
	switch or := r.Orientation.(type) {
	case Unoriented:
		return &Rule{LHS: r.RHS, RHS: r.LHS, Orientation: Unoriented{LHS: or.RHS, RHS: or.LHS}}, nil
	case Permutative:
		flipped := make([]PermutationPair, len(or.Pairs))
		for i, p := range or.Pairs {
			flipped[i] = PermutationPair{U: p.V, V: p.U}
		}
		return &Rule{LHS: r.RHS, RHS: r.LHS, Orientation: Permutative{Pairs: flipped}}, nil
	default:
		return nil, fmt.Errorf("rule: cannot reverse a %s rule", r.Orientation)
	}
}

// Unorient forgets a rule's orientation, returning the plain equation.
func Unorient(r *Rule) Equation {
	return Equation{LHS: r.LHS, RHS: r.RHS}
}
