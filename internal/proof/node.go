// Package proof implements the derivation DAG of spec.md §4.J: a small
// algebraic type recording how an equation was established, from a
// leaf reference to an input axiom or a previously-certified lemma,
// through reflexivity, transitivity, congruence and symmetry, plus the
// certify pass that checks a DAG's steps actually compose.
package proof

import (
	"twee/internal/subst"
	"twee/internal/term"
)

// Node is the derivation DAG's algebraic type. Axiom/Refl/Lemma are
// leaves; Trans/Cong/Symm combine sub-derivations. Use the smart
// constructors (NewTrans, NewCong, NewSymm), not struct literals, so
// the Refl-collapsing invariants that keep certify's walk small hold.
type Node interface {
	isNode()
}

// AxiomNode cites one of the input problem's axioms, instantiated by
// Sigma.
type AxiomNode struct {
	AxiomID int
	Sigma   subst.Lookup
}

// ReflNode is the zero-step derivation: t equals itself.
type ReflNode struct {
	T term.Term
}

// LemmaNode cites a previously-certified derivation by id, instantiated
// by Sigma: this is what keeps a rule used in many overlaps from
// duplicating its proof substructure (spec.md §4.J).
type LemmaNode struct {
	LemmaID int
	Sigma   subst.Lookup
}

// TransNode sequences two derivations end to end.
type TransNode struct {
	P, Q Node
}

// CongNode lifts a derivation of each argument of an f-headed term into
// a derivation of the whole term.
type CongNode struct {
	Functor  term.FuncID
	Children []Node
}

// SymmNode reverses a derivation.
type SymmNode struct {
	P Node
}

func (AxiomNode) isNode() {}
func (ReflNode) isNode()  {}
func (LemmaNode) isNode() {}
func (*TransNode) isNode() {}
func (*CongNode) isNode()  {}
func (*SymmNode) isNode()  {}

func isRefl(n Node) bool {
	_, ok := n.(ReflNode)
	return ok
}

// NewTrans composes p then q, collapsing either side if it is a Refl,
// mirroring internal/rewrite's Reduction constructor of the same name.
func NewTrans(p, q Node) Node {
	if isRefl(p) {
		return q
	}
	if isRefl(q) {
		return p
	}
	return &TransNode{P: p, Q: q}
}

// NewCong collapses to a single Refl when every child is itself a
// Refl (building the whole f(...) term directly from the children's
// terms); otherwise it builds a CongNode for certify to walk.
func NewCong(f term.FuncID, children []Node) Node {
	ts := make([]term.Term, len(children))
	allRefl := true
	for i, c := range children {
		rc, ok := c.(ReflNode)
		if !ok {
			allRefl = false
			continue
		}
		ts[i] = rc.T
	}
	if allRefl {
		b := term.NewBuilder(0)
		b.EmitFun(f, func(b *term.Builder) {
			for _, t := range ts {
				b.EmitTermSlice(t)
			}
		})
		return ReflNode{T: b.Finish()}
	}
	return &CongNode{Functor: f, Children: children}
}

// NewSymm reverses p, collapsing Refl and double symmetry.
func NewSymm(p Node) Node {
	switch v := p.(type) {
	case ReflNode:
		return v
	case *SymmNode:
		return v.P
	default:
		return &SymmNode{P: p}
	}
}
