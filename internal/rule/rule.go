package rule

import "twee/internal/term"

// Rule is a directed (or conditionally-directed) rewrite rule produced
// by Orient. LHS/RHS are the equation's original sides; which side
// actually rewrites which, for a given use, is decided by Orientation
// and (for Permutative/Unoriented) by the caller's choice of direction.
type Rule struct {
	LHS, RHS    term.Term
	Orientation Orientation
}

// varsSubset reports whether every variable of t occurs in s.
func varsSubset(t, s term.Term) bool {
	sVars := s.Vars(nil)
	inS := make(map[term.Var]bool, len(sVars))
	for _, v := range sVars {
		inS[v] = true
	}
	for _, v := range t.Vars(nil) {
		if !inS[v] {
			return false
		}
	}
	return true
}
