package kbo

import (
	"sort"

	"twee/internal/term"
)

// Model is a total order on a finite set of variables, used to decide
// a comparison for one particular ground-extension witness rather than
// universally. It underlies orientation's Permutative/Unoriented
// eligibility witnesses and the counterexample-shrinking search
// (WeakenModel).
type Model struct {
	order []term.Var
	rank  map[term.Var]int
}

// ModelFromOrder builds the model requiring vs[0] < vs[1] < ... in
// that order. Variables not present in vs are outside the model's
// domain.
func ModelFromOrder(vs []term.Var) *Model {
	m := &Model{order: append([]term.Var(nil), vs...), rank: make(map[term.Var]int, len(vs))}
	for i, v := range vs {
		m.rank[v] = i
	}
	return m
}

// Rank returns v's position in the model's order, if v is covered.
func (m *Model) Rank(v term.Var) (int, bool) {
	r, ok := m.rank[v]
	return r, ok
}

// Vars returns the model's variables, smallest first.
func (m *Model) Vars() []term.Var { return append([]term.Var(nil), m.order...) }

// WeakenModel enumerates every strictly coarser model obtainable by
// dropping a single variable from m's order — a coarser model decides
// strictly fewer comparisons than m, which is what makes it useful for
// shrinking a counterexample model to a minimal one.
func WeakenModel(m *Model) []*Model {
	out := make([]*Model, 0, len(m.order))
	for i := range m.order {
		rest := make([]term.Var, 0, len(m.order)-1)
		rest = append(rest, m.order[:i]...)
		rest = append(rest, m.order[i+1:]...)
		out = append(out, ModelFromOrder(rest))
	}
	return out
}

func (o *Ordering) scoreInModel(m *Model, t term.Term) (weight int64, ranks []int, covered bool) {
	covered = true
	for _, sym := range t {
		if sym.IsVar() {
			weight += VarWeight
			r, ok := m.Rank(sym.VarID())
			if !ok {
				covered = false
				continue
			}
			ranks = append(ranks, r)
		} else {
			weight += int64(o.sig.Info(sym.FunID()).Weight)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return
}

// compareRanks lexicographically compares two descending rank
// sequences, treating a missing position as lower than any present
// rank.
func compareRanks(a, b []int) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		av, bv := -1, -1
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (o *Ordering) compareInModel(m *Model, s, t term.Term) (Order, bool) {
	if s.Equal(t) {
		return Equal, true
	}
	sw, sranks, sok := o.scoreInModel(m, s)
	tw, tranks, tok := o.scoreInModel(m, t)
	if !sok || !tok {
		return Incomparable, false
	}
	if sw != tw {
		if sw < tw {
			return Less, true
		}
		return Greater, true
	}
	if c := compareRanks(sranks, tranks); c != 0 {
		if c < 0 {
			return Less, true
		}
		return Greater, true
	}
	if s.IsVar() || t.IsVar() {
		return Incomparable, false
	}
	if s.Functor() != t.Functor() {
		si := o.sig.Info(s.Functor())
		ti := o.sig.Info(t.Functor())
		if si.Precedence < ti.Precedence {
			return Less, true
		}
		if si.Precedence > ti.Precedence {
			return Greater, true
		}
		return Incomparable, false
	}
	sArgs := s.Args().Terms()
	tArgs := t.Args().Terms()
	for i := range sArgs {
		if sArgs[i].Equal(tArgs[i]) {
			continue
		}
		return o.compareInModel(m, sArgs[i], tArgs[i])
	}
	return Equal, true
}

// LessIn decides whether s <= t under model m: it returns (Less, true)
// when s is strictly below t (the spec's "Just Strict"), (Equal, true)
// when s and t tie under m (the spec's "Just Nonstrict"), and
// (Incomparable, false) when s <= t does not hold under m or m does
// not cover a variable needed to decide it (the spec's "None").
func (o *Ordering) LessIn(m *Model, s, t term.Term) (Order, bool) {
	cmp, ok := o.compareInModel(m, s, t)
	if !ok {
		return Incomparable, false
	}
	switch cmp {
	case Less:
		return Less, true
	case Equal:
		return Equal, true
	default:
		return Incomparable, false
	}
}
