// Package subst implements substitution application, matching and
// unification over flatterms (internal/term), following spec.md §4.B.
package subst

import (
	"sort"

	"twee/internal/term"
)

// Lookup is the read interface shared by the append-only Subst builder
// and the frozen Frozen table, so Apply/ApplyIterated work over either.
type Lookup interface {
	Lookup(v term.Var) (term.Term, bool)
}

// Subst is the append-only substitution builder: a mapping from
// variable index to term, built incrementally by Match/Unify and
// consumed by Apply.
type Subst struct {
	bindings map[term.Var]term.Term
}

// New returns an empty substitution.
func New() *Subst {
	return &Subst{bindings: make(map[term.Var]term.Term)}
}

// Lookup returns the term bound to v, if any.
func (s *Subst) Lookup(v term.Var) (term.Term, bool) {
	t, ok := s.bindings[v]
	return t, ok
}

// Bind records v -> t, overwriting any previous binding. Callers that
// need "bind only if absent or consistent" semantics (matching) check
// Lookup first.
func (s *Subst) Bind(v term.Var, t term.Term) {
	s.bindings[v] = t
}

// Domain returns every bound variable, in unspecified order.
func (s *Subst) Domain() []term.Var {
	out := make([]term.Var, 0, len(s.bindings))
	for v := range s.bindings {
		out = append(out, v)
	}
	return out
}

// Len is the number of bindings.
func (s *Subst) Len() int { return len(s.bindings) }

func (s *Subst) clone() *Subst {
	out := New()
	for v, t := range s.bindings {
		out.bindings[v] = t
	}
	return out
}

// Equal compares two substitutions binding-for-binding. Used by tests;
// Close's fixpoint check compares binding images term by term instead.
func (s *Subst) Equal(o *Subst) bool {
	if len(s.bindings) != len(o.bindings) {
		return false
	}
	for v, t := range s.bindings {
		ot, ok := o.bindings[v]
		if !ok || !t.Equal(ot) {
			return false
		}
	}
	return true
}

// Frozen is the indexed lookup table counterpart: a sorted-slice
// representation built once from a Subst and queried by binary search,
// used on the rewriting hot path where a substitution is built once
// and applied many times without further mutation.
type Frozen struct {
	vars  []term.Var
	terms []term.Term
}

// Freeze snapshots s into a Frozen table.
func (s *Subst) Freeze() *Frozen {
	f := &Frozen{vars: make([]term.Var, 0, len(s.bindings)), terms: make([]term.Term, 0, len(s.bindings))}
	for v, t := range s.bindings {
		f.vars = append(f.vars, v)
		f.terms = append(f.terms, t)
	}
	idx := make([]int, len(f.vars))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return f.vars[idx[i]] < f.vars[idx[j]] })
	sortedVars := make([]term.Var, len(idx))
	sortedTerms := make([]term.Term, len(idx))
	for i, j := range idx {
		sortedVars[i] = f.vars[j]
		sortedTerms[i] = f.terms[j]
	}
	f.vars, f.terms = sortedVars, sortedTerms
	return f
}

// Lookup performs a binary search over the frozen table.
func (f *Frozen) Lookup(v term.Var) (term.Term, bool) {
	i := sort.Search(len(f.vars), func(i int) bool { return f.vars[i] >= v })
	if i < len(f.vars) && f.vars[i] == v {
		return f.terms[i], true
	}
	return nil, false
}
