package proof

import (
	"fmt"

	"twee/internal/rule"
	"twee/internal/subst"
	"twee/internal/term"
)

// Proof pairs a certified Node with the equation it proves.
type Proof struct {
	Node     Node
	Equation rule.Equation
}

// NewProof certifies n against reg and, on success, wraps it with its
// endpoint equation.
func NewProof(reg Registry, n Node) (*Proof, error) {
	eq, err := Certify(reg, n)
	if err != nil {
		return nil, err
	}
	return &Proof{Node: n, Equation: eq}, nil
}

// Certify walks n once, checking that every composite step's
// conclusion matches the composition of its premises, and returns the
// equation it proves (spec.md §4.J).
func Certify(reg Registry, n Node) (rule.Equation, error) {
	switch v := n.(type) {
	case AxiomNode:
		eq, ok := reg.Axiom(v.AxiomID)
		if !ok {
			return rule.Equation{}, fmt.Errorf("proof: unknown axiom %d", v.AxiomID)
		}
		return instantiate(eq, v.Sigma), nil

	case LemmaNode:
		eq, ok := reg.Lemma(v.LemmaID)
		if !ok {
			return rule.Equation{}, fmt.Errorf("proof: unknown lemma %d", v.LemmaID)
		}
		return instantiate(eq, v.Sigma), nil

	case ReflNode:
		return rule.Equation{LHS: v.T, RHS: v.T}, nil

	case *TransNode:
		pEq, err := Certify(reg, v.P)
		if err != nil {
			return rule.Equation{}, err
		}
		qEq, err := Certify(reg, v.Q)
		if err != nil {
			return rule.Equation{}, err
		}
		if !pEq.RHS.Equal(qEq.LHS) {
			return rule.Equation{}, fmt.Errorf("proof: trans mismatch: %v != %v", pEq.RHS, qEq.LHS)
		}
		return rule.Equation{LHS: pEq.LHS, RHS: qEq.RHS}, nil

	case *CongNode:
		lhsChildren := make([]term.Term, len(v.Children))
		rhsChildren := make([]term.Term, len(v.Children))
		for i, c := range v.Children {
			eq, err := Certify(reg, c)
			if err != nil {
				return rule.Equation{}, err
			}
			lhsChildren[i] = eq.LHS
			rhsChildren[i] = eq.RHS
		}
		return rule.Equation{
			LHS: buildCong(v.Functor, lhsChildren),
			RHS: buildCong(v.Functor, rhsChildren),
		}, nil

	case *SymmNode:
		eq, err := Certify(reg, v.P)
		if err != nil {
			return rule.Equation{}, err
		}
		return rule.Equation{LHS: eq.RHS, RHS: eq.LHS}, nil

	default:
		return rule.Equation{}, fmt.Errorf("proof: unknown node type %T", n)
	}
}

func instantiate(eq rule.Equation, sigma subst.Lookup) rule.Equation {
	if sigma == nil {
		return eq
	}
	return rule.Equation{
		LHS: subst.ApplyToTerm(sigma, eq.LHS),
		RHS: subst.ApplyToTerm(sigma, eq.RHS),
	}
}

func buildCong(f term.FuncID, children []term.Term) term.Term {
	b := term.NewBuilder(0)
	b.EmitFun(f, func(b *term.Builder) {
		for _, c := range children {
			b.EmitTermSlice(c)
		}
	})
	return b.Finish()
}
