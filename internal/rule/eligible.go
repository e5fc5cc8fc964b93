package rule

import (
	"twee/internal/kbo"
	"twee/internal/subst"
	"twee/internal/term"
)

func minimalTermOf(sig *term.Signature, f term.FuncID) term.Term {
	b := term.NewBuilder(1)
	b.EmitFun(f, nil)
	return b.Finish()
}

func varTerm(v term.Var) term.Term {
	b := term.NewBuilder(1)
	b.EmitVar(v)
	return b.Finish()
}

// Eligible decides, per spec.md §4.C's per-orientation runtime tests,
// whether a use of r under substitution sigma may fire. forward=true
// checks the lhs->rhs reading; forward=false checks rhs->lhs, which is
// only ever eligible for Permutative and Unoriented rules (Oriented
// and WeaklyOriented rules only ever run lhs->rhs, so forward=false is
// always ineligible for them).
func Eligible(o *kbo.Ordering, sig *term.Signature, r *Rule, sigma subst.Lookup, forward bool) bool {
	switch or := r.Orientation.(type) {
	case Oriented:
		return forward
	case WeaklyOriented:
		if !forward {
			return false
		}
		minimal := minimalTermOf(sig, or.Minimal)
		for _, w := range or.Watch {
			image := subst.ApplyToTerm(sigma, varTerm(w))
			if !image.Equal(minimal) {
				return true
			}
		}
		return false
	case Permutative:
		pairs := or.Pairs
		if !forward {
			pairs = make([]PermutationPair, len(pairs))
			for i, p := range or.Pairs {
				pairs[i] = PermutationPair{U: p.V, V: p.U}
			}
		}
		for _, p := range pairs {
			su := subst.ApplyToTerm(sigma, p.U)
			sv := subst.ApplyToTerm(sigma, p.V)
			if su.Equal(sv) {
				continue
			}
			return o.Compare(sv, su) == kbo.Less
		}
		return false
	case Unoriented:
		lhs, rhs := or.LHS, or.RHS
		if !forward {
			lhs, rhs = rhs, lhs
		}
		sl := subst.ApplyToTerm(sigma, lhs)
		sr := subst.ApplyToTerm(sigma, rhs)
		return o.Compare(sr, sl) == kbo.Less
	default:
		return false
	}
}
