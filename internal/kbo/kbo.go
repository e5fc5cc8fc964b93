// Package kbo implements a Knuth-Bendix Ordering variant over flatterms
// (internal/term): per-symbol integer weights, a total precedence on
// function symbols, and a distinguished minimal constant smaller than
// any other ground term. See spec.md §4.C.
package kbo

import "twee/internal/term"

// VarWeight is the fixed weight every variable occurrence contributes.
// KBO admissibility requires a uniform, positive variable weight.
const VarWeight = 1

// Order is the result of comparing two terms.
type Order int

const (
	Incomparable Order = iota
	Less
	Equal
	Greater
)

// Ordering compares terms against a fixed signature of function
// symbols (their weights and precedence ranks).
type Ordering struct {
	sig *term.Signature
}

// New builds an Ordering over sig's weight/precedence assignment.
func New(sig *term.Signature) *Ordering {
	return &Ordering{sig: sig}
}

// Signature returns the signature this ordering was built against.
func (o *Ordering) Signature() *term.Signature { return o.sig }

// Weight returns the sum of every symbol's weight in t: function
// headers contribute their declared weight, variable occurrences
// contribute VarWeight. Because a flatterm already lists every
// subterm's symbols exactly once, this is a single linear pass.
func (o *Ordering) Weight(t term.Term) int64 {
	var w int64
	for _, sym := range t {
		if sym.IsVar() {
			w += VarWeight
		} else {
			w += int64(o.sig.Info(sym.FunID()).Weight)
		}
	}
	return w
}

func varCounts(t term.Term) map[term.Var]int {
	counts := make(map[term.Var]int)
	for _, sym := range t {
		if sym.IsVar() {
			counts[sym.VarID()]++
		}
	}
	return counts
}

// countsLE reports whether a(x) <= b(x) for every variable x appearing
// in a (variables missing from b count as 0).
func countsLE(a, b map[term.Var]int) bool {
	for v, c := range a {
		if b[v] < c {
			return false
		}
	}
	return true
}

// Compare decides the KBO relation between s and t. Because the
// variable-count side condition is checked at every step, a Less or
// Greater result is stable under substitution: s > t implies σs > σt
// for every σ, which is exactly LessEq's "holds universally" contract.
func (o *Ordering) Compare(s, t term.Term) Order {
	if s.Equal(t) {
		return Equal
	}
	sc, tc := varCounts(s), varCounts(t)
	sDominates := countsLE(tc, sc) // vars(t) <= vars(s): required for s > t
	tDominates := countsLE(sc, tc) // vars(s) <= vars(t): required for t > s

	ws, wt := o.Weight(s), o.Weight(t)
	switch {
	case ws > wt && sDominates:
		return Greater
	case ws < wt && tDominates:
		return Less
	case ws == wt:
		return o.compareEqualWeight(s, t, sDominates, tDominates)
	default:
		return Incomparable
	}
}

func (o *Ordering) compareEqualWeight(s, t term.Term, sDominates, tDominates bool) Order {
	if s.IsVar() || t.IsVar() {
		// Equal weight and not syntactically equal: a variable can only
		// be ordered against a proper superterm containing it, which
		// would have strictly greater weight (VarWeight>0, and any
		// other symbol contributes >=0); with equal weight that case
		// cannot arise, so this is undecided.
		return Incomparable
	}
	if s.Functor() != t.Functor() {
		si := o.sig.Info(s.Functor())
		ti := o.sig.Info(t.Functor())
		switch {
		case si.Precedence > ti.Precedence && sDominates:
			return Greater
		case si.Precedence < ti.Precedence && tDominates:
			return Less
		default:
			return Incomparable
		}
	}
	sArgs := s.Args().Terms()
	tArgs := t.Args().Terms()
	for i := range sArgs {
		if sArgs[i].Equal(tArgs[i]) {
			continue
		}
		switch o.Compare(sArgs[i], tArgs[i]) {
		case Greater:
			if sDominates {
				return Greater
			}
			return Incomparable
		case Less:
			if tDominates {
				return Less
			}
			return Incomparable
		default:
			return Incomparable
		}
	}
	return Equal
}

// LessEq reports whether s <= t holds universally.
func (o *Ordering) LessEq(s, t term.Term) bool {
	c := o.Compare(s, t)
	return c == Less || c == Equal
}

// LessThan reports whether s < t holds universally.
func (o *Ordering) LessThan(s, t term.Term) bool {
	return o.Compare(s, t) == Less
}
