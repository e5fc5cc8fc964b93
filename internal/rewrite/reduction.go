// Package rewrite implements term rewriting and normalisation over the
// active rule set (spec.md §4.F): composable rewriting strategies,
// the Reduction proof-carrying algebraic type, and the oriented-only
// fast simplifier.
package rewrite

import (
	"twee/internal/subst"
	"twee/internal/term"
)

// Reduction is the algebraic proof-carrying type of spec.md §4.F:
// Step records one rule application, Refl no step at all, Trans
// composes two reductions end to end, Cong lifts per-child reductions
// into a reduction of the parent term. Every variant caches both ends
// of what it proves equal (the "Resulting" cache spec.md calls out)
// so Start/Result are O(1), never a re-walk.
type Reduction interface {
	isReduction()
	// Start is the term this reduction begins from.
	Start() term.Term
	// Result is the term Start is proved equal to.
	Result() term.Term
}

// Step is a single rule application: From rewrites to To by matching
// Rule's usable lhs against From under Sigma.
type Step struct {
	From, To term.Term
	RuleID   int
	Forward  bool
	Sigma    subst.Lookup
}

func (s *Step) isReduction()      {}
func (s *Step) Start() term.Term  { return s.From }
func (s *Step) Result() term.Term { return s.To }

// Refl is the zero-step reduction: t proves equal to itself.
type Refl struct {
	T term.Term
}

func (r *Refl) isReduction()      {}
func (r *Refl) Start() term.Term  { return r.T }
func (r *Refl) Result() term.Term { return r.T }

// Trans sequences two reductions. Use NewTrans, not a literal, so the
// Refl-collapsing and left-associativity invariants hold.
type Trans struct {
	P, Q  Reduction
	start term.Term
	end   term.Term
}

func (t *Trans) isReduction()      {}
func (t *Trans) Start() term.Term  { return t.start }
func (t *Trans) Result() term.Term { return t.end }

// NewTrans composes p then q, collapsing either side if it is a Refl
// and re-associating left so Result stays O(1) to extract (spec.md
// §4.F: "left-associating for O(1) result extraction").
func NewTrans(p, q Reduction) Reduction {
	if isRefl(p) {
		return q
	}
	if isRefl(q) {
		return p
	}
	if qt, ok := q.(*Trans); ok {
		return NewTrans(NewTrans(p, qt.P), qt.Q)
	}
	return &Trans{P: p, Q: q, start: p.Start(), end: q.Result()}
}

func isRefl(r Reduction) bool {
	_, ok := r.(*Refl)
	return ok
}

// Cong lifts a reduction of each argument of an f-headed term into a
// reduction of the whole term. Use NewCong, not a literal.
type Cong struct {
	Functor  term.FuncID
	Children []Reduction
	start    term.Term
	end      term.Term
}

func (c *Cong) isReduction()      {}
func (c *Cong) Start() term.Term  { return c.start }
func (c *Cong) Result() term.Term { return c.end }

// NewCong builds f(children...)'s reduction, collapsing to a Refl if
// every child reduction is itself a Refl (spec.md §4.F).
func NewCong(f term.FuncID, children []Reduction) Reduction {
	allRefl := true
	for _, c := range children {
		if !isRefl(c) {
			allRefl = false
			break
		}
	}
	start := buildFrom(f, children, Reduction.Start)
	end := buildFrom(f, children, Reduction.Result)
	if allRefl {
		return &Refl{T: end}
	}
	return &Cong{Functor: f, Children: children, start: start, end: end}
}

func buildFrom(f term.FuncID, children []Reduction, side func(Reduction) term.Term) term.Term {
	b := term.NewBuilder(0)
	b.EmitFun(f, func(b *term.Builder) {
		for _, c := range children {
			b.EmitTermSlice(side(c))
		}
	})
	return b.Finish()
}

// Symm reverses a reduction, swapping its Start and Result.
func Symm(r Reduction) Reduction {
	switch v := r.(type) {
	case *Refl:
		return v
	case *Step:
		return &Step{From: v.To, To: v.From, RuleID: v.RuleID, Forward: !v.Forward, Sigma: v.Sigma}
	case *Trans:
		return NewTrans(Symm(v.Q), Symm(v.P))
	case *Cong:
		children := make([]Reduction, len(v.Children))
		for i, c := range v.Children {
			children[i] = Symm(c)
		}
		return NewCong(v.Functor, children)
	default:
		return r
	}
}
