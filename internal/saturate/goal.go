package saturate

import (
	"twee/internal/proof"
	"twee/internal/rewrite"
	"twee/internal/rule"
	"twee/internal/subst"
	"twee/internal/term"
)

// Goal tracks one conjecture's lhs and rhs reachable-term closures
// (spec.md §4.I): it is solved once the two closures share a term, at
// which point the lhs reduction composed with the reverse of the rhs
// reduction proves the original equation.
type Goal struct {
	Name     string
	Number   int
	Original rule.Equation
	Solved   bool

	lhs *goalClosure
	rhs *goalClosure
}

// NewGoal seeds a Goal's two closures at eq's own sides.
func NewGoal(name string, number int, eq rule.Equation) *Goal {
	return &Goal{
		Name:     name,
		Number:   number,
		Original: eq,
		lhs:      newGoalClosure(eq.LHS),
		rhs:      newGoalClosure(eq.RHS),
	}
}

// extend grows both of g's closures under strat, the current
// all-rules rewriting strategy.
func (g *Goal) extend(strat rewrite.Strategy) {
	g.lhs.extend(strat)
	g.rhs.extend(strat)
}

// intersection reports a term common to both closures, along with the
// reduction each closure took to reach it.
func (g *Goal) intersection() (term.Term, rewrite.Reduction, rewrite.Reduction, bool) {
	for _, t := range g.lhs.order {
		if rhsRed, ok := g.rhs.reductionTo(t); ok {
			lhsRed, _ := g.lhs.reductionTo(t)
			return t, lhsRed, rhsRed, true
		}
	}
	return nil, nil, nil, false
}

// termKey encodes a term as a byte string suitable for a map key,
// mirroring internal/rewrite's own unexported termKey (that package's
// worklist helper is not visible here, so goalClosure keeps its own
// copy of the same packing scheme).
func termKey(t term.Term) string {
	buf := make([]byte, len(t)*8)
	for i, sym := range t {
		v := uint64(sym)
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(v >> (8 * b))
		}
	}
	return string(buf)
}

// goalClosure is the set of terms reachable from a single seed term,
// each tagged with the Reduction proving it equal to the seed. Unlike
// rewrite.Successors/NormalForms (which discard the Reduction chain
// and return only terms), a goal needs that chain to build its final
// proof, so extend keeps its own worklist instead of reusing
// those helpers.
type goalClosure struct {
	seen  map[string]rewrite.Reduction
	order []term.Term
}

func newGoalClosure(seed term.Term) *goalClosure {
	gc := &goalClosure{seen: make(map[string]rewrite.Reduction)}
	refl := &rewrite.Refl{T: seed}
	gc.seen[termKey(seed)] = refl
	gc.order = append(gc.order, seed)
	return gc
}

// extend re-walks every term reached so far (including ones from
// earlier calls, since a newly active rule may open fresh successors
// even from an old term) and adds every not-yet-seen successor.
func (gc *goalClosure) extend(strat rewrite.Strategy) {
	any := rewrite.Anywhere(strat)
	worklist := append([]term.Term(nil), gc.order...)
	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		curRed := gc.seen[termKey(cur)]
		for _, step := range any(cur) {
			next := step.Result()
			k := termKey(next)
			if _, ok := gc.seen[k]; ok {
				continue
			}
			gc.seen[k] = rewrite.NewTrans(curRed, step)
			gc.order = append(gc.order, next)
			worklist = append(worklist, next)
		}
	}
}

func (gc *goalClosure) reductionTo(t term.Term) (rewrite.Reduction, bool) {
	r, ok := gc.seen[termKey(t)]
	return r, ok
}

// reductionToProof translates a rewrite.Reduction into the equivalent
// proof.Node, citing each Step by the lemma id the rule's own view was
// registered under. A Step's Sigma-instantiated From/To sometimes
// appears reversed relative to that view's own (LHS, RHS) — rewrite.
// Symm flips a Step's From/To without minting a new view — so the
// view's own lhs is checked against From to decide whether the
// citation needs an extra Symm.
func reductionToProof(st *State, r rewrite.Reduction) proof.Node {
	switch v := r.(type) {
	case *rewrite.Refl:
		return proof.ReflNode{T: v.T}
	case *rewrite.Step:
		return stepToProof(st, v)
	case *rewrite.Trans:
		return proof.NewTrans(reductionToProof(st, v.P), reductionToProof(st, v.Q))
	case *rewrite.Cong:
		children := make([]proof.Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = reductionToProof(st, c)
		}
		return proof.NewCong(v.Functor, children)
	default:
		return proof.ReflNode{T: r.Start()}
	}
}

func stepToProof(st *State, s *rewrite.Step) proof.Node {
	lemma := proof.LemmaNode{LemmaID: s.RuleID, Sigma: s.Sigma}
	view, _, ok := st.View(s.RuleID)
	if !ok {
		return lemma
	}
	if subst.ApplyToTerm(s.Sigma, view.LHS).Equal(s.From) {
		return lemma
	}
	return proof.NewSymm(lemma)
}
