package critical

import (
	"twee/internal/index"
	"twee/internal/proof"
	"twee/internal/rule"
	"twee/internal/subst"
	"twee/internal/term"
)

// CriticalPair is an equation derived from an overlap (spec.md §3).
// Derivation is nil for a CriticalPair built directly from a bare
// Equation (tests, Split's residual) rather than from an overlap.
type CriticalPair struct {
	Equation   rule.Equation
	Depth      int
	Top        term.Term
	Derivation proof.Node
}

// Overlap is the full record of one unification between two active
// rule views (spec.md §4.G): the derived equation, its depth, a top
// term for proof context, the position in r1's lhs the overlap
// occurred at, and the unifying substitution.
type Overlap struct {
	CP         CriticalPair
	Position   int
	Unifier    *subst.Subst
	Rule1ID    int
	Rule2ID    int
}

// overlapAt attempts to unify r1View's lhs at flat position pos with a
// variable-renamed copy of r2View's lhs. On success it builds the
// overlap equation sigma(r1[pos <- rhs(r2)]) = sigma(rhs(r1)).
// OverlapAt is overlapAt's exported form, for callers (internal/queue's
// simplify_passive/dequeue) that need to re-derive a stored passive's
// overlap rather than enumerate fresh ones.
func OverlapAt(r1View, r2View ActiveRuleView, pos int, depth int) (*Overlap, bool) {
	return overlapAt(r1View, r2View, pos, depth)
}

func overlapAt(r1View, r2View ActiveRuleView, pos int, depth int) (*Overlap, bool) {
	sub1 := r1View.LHS.At(pos)

	offset, hasVar := term.MaxVar(r1View.LHS)
	if !hasVar {
		offset = 0
	} else {
		offset++
	}
	lhs2 := term.Rename(r2View.LHS, offset)
	rhs2 := term.Rename(r2View.RHS, offset)

	mgu, ok := subst.UnifyTriangular(sub1, lhs2)
	if !ok {
		return nil, false
	}
	closed := subst.Close(mgu)

	replaced := spliceAt(r1View.LHS, pos, rhs2)
	lhsEq := subst.ApplyToTerm(closed, replaced)
	rhsEq := subst.ApplyToTerm(closed, r1View.RHS)
	top := subst.ApplyToTerm(closed, r1View.LHS)

	derivation := overlapDerivation(r1View, r2View, closed, offset, pos, top)

	return &Overlap{
		CP:       CriticalPair{Equation: rule.Equation{LHS: lhsEq, RHS: rhsEq}, Depth: depth, Top: top, Derivation: derivation},
		Position: pos,
		Unifier:  closed,
	}, true
}

// shiftedLookup adapts a substitution built over a renamed (offset)
// copy of a term back to the original's variable numbering, so a
// Lemma node can cite r2's rule by its own variables rather than the
// temporary ones overlapAt renamed it into.
type shiftedLookup struct {
	base   subst.Lookup
	offset term.Var
}

func (s shiftedLookup) Lookup(v term.Var) (term.Term, bool) {
	return s.base.Lookup(v + s.offset)
}

// liftPath rebuilds leaf's equation in the congruence context of top's
// path-addressed subterm, Refl-filling every sibling with top's own
// (already-substituted) subterm there: this is how overlapDerivation
// embeds r2's instantiated equation at the overlap position inside
// r1's instantiated lhs.
func liftPath(top term.Term, path term.Path, leaf proof.Node) proof.Node {
	if len(path) == 0 {
		return leaf
	}
	i := path[0]
	args := top.Args().Terms()
	children := make([]proof.Node, len(args))
	for j, arg := range args {
		if j == i {
			children[j] = liftPath(arg, path[1:], leaf)
		} else {
			children[j] = proof.ReflNode{T: arg}
		}
	}
	return proof.NewCong(top.Functor(), children)
}

// overlapDerivation builds the proof that lhsEq = rhsEq (spec.md §4.J):
// r1's own equation (Lemma(rule1Id, closed)) gives sigma(lhs r1) =
// sigma(rhs r1) = top = rhsEq; congruence-lifting r2's equation
// (Lemma(rule2Id, ...)) into top's position pos gives sigma(lhs r1) =
// sigma(r1[pos<-rhs2]) = lhsEq. Composing and reversing yields lhsEq =
// rhsEq, the overlap's own equation.
func overlapDerivation(r1View, r2View ActiveRuleView, closed *subst.Subst, offset term.Var, pos int, top term.Term) proof.Node {
	lemma1 := proof.LemmaNode{LemmaID: r1View.RuleID, Sigma: closed}
	lemma2 := proof.LemmaNode{LemmaID: r2View.RuleID, Sigma: shiftedLookup{base: closed, offset: offset}}

	path := term.PositionToPath(r1View.LHS, pos)
	lift := liftPath(top, path, lemma2)

	lhsToRhs := proof.NewTrans(proof.NewSymm(lemma1), lift)
	return proof.NewSymm(lhsToRhs)
}

// spliceAt rebuilds t with the subterm at pos replaced by replacement.
func spliceAt(t term.Term, pos int, replacement term.Term) term.Term {
	b := term.NewBuilder(0)
	spliceInto(b, t, 0, pos, replacement)
	return b.Finish()
}

func spliceInto(b *term.Builder, t term.Term, base, pos int, replacement term.Term) {
	if base == pos {
		b.EmitTermSlice(replacement)
		return
	}
	if t.IsVar() {
		b.EmitTermSlice(t)
		return
	}
	f := t.Functor()
	args := t.Args().Terms()
	b.EmitFun(f, func(b *term.Builder) {
		childBase := base + 1
		for _, arg := range args {
			if pos >= childBase && pos < childBase+arg.Size() {
				spliceInto(b, arg, childBase, pos, replacement)
			} else {
				b.EmitTermSlice(arg)
			}
			childBase += arg.Size()
		}
	})
}

// ActiveLookup resolves an active_id to the views overlaps enumerates
// against.
type ActiveLookup interface {
	Active(activeID int) (*Active, bool)
}

// Overlaps enumerates every overlap between newRule and every rule in
// rules (both directions, within maxDepth), using idx to prune
// partners whose lhs cannot possibly unify with a non-variable
// position of newRule's lhs (spec.md §4.G). idx is expected to already
// carry every active rule's views, newActive's included (the caller
// inserts a freshly added Active's views before calling Overlaps), so
// both directions can be pruned the same way.
func Overlaps(maxDepth int, idx *index.RuleIndex, rules ActiveLookup, activeIDs []int, newActive *Active) []*Overlap {
	var out []*Overlap
	if newActive.Depth+1 > maxDepth {
		return out
	}
	for _, id := range activeIDs {
		other, ok := rules.Active(id)
		if !ok {
			continue
		}
		depth := newActive.Depth
		if other.Depth > depth {
			depth = other.Depth
		}
		if depth+1 > maxDepth {
			continue
		}
		out = append(out, overlapsBetween(idx, newActive, other)...)
		if other.ActiveID != newActive.ActiveID {
			out = append(out, overlapsBetween(idx, other, newActive)...)
		}
	}
	return out
}

// overlapsBetween tries every (position of a, view of b) pair, but
// only after idx.ApproxMatches(a's subterm) confirms b's view is root-
// compatible with it: unification can only succeed when both sides
// share a functor or one side is a variable, exactly what ApproxMatches
// already tests for the rewriter, so a full subst.UnifyTriangular
// attempt is skipped for every partner it rules out.
func overlapsBetween(idx *index.RuleIndex, a, b *Active) []*Overlap {
	depth := a.Depth
	if b.Depth > depth {
		depth = b.Depth
	}
	depth++

	byRuleID := make(map[int]ActiveRuleView, len(b.Views))
	for _, bv := range b.Views {
		byRuleID[bv.RuleID] = bv
	}

	var out []*Overlap
	for _, av := range a.Views {
		for _, pos := range av.NonVarPositions {
			sub1 := av.LHS.At(pos)
			for _, e := range idx.All.ApproxMatches(sub1) {
				dir, ok := e.Value.(index.Direction)
				if !ok {
					continue
				}
				bv, ok := byRuleID[dir.RuleID]
				if !ok {
					continue
				}
				if ov, ok := overlapAt(av, bv, pos, depth); ok {
					ov.Rule1ID = av.RuleID
					ov.Rule2ID = bv.RuleID
					out = append(out, ov)
				}
			}
		}
	}
	return out
}
