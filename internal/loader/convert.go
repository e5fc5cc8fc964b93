package loader

import (
	"fmt"
	"unicode"

	"twee/internal/errors"
	"twee/internal/rule"
	"twee/internal/term"
)

// Problem is a fully resolved input: a signature, the axiom equations
// (spec.md §6's "sequence of axioms"), and the named goals.
type Problem struct {
	Sig    *term.Signature
	Axioms []rule.Equation
	Goals  []NamedGoal
}

// NamedGoal pairs a goal's declared name with its equation, the shape
// saturate.AddGoal expects (spec.md §3's Goal record is (name, number,
// equation, ...); the number is assigned by the caller in declaration
// order).
type NamedGoal struct {
	Name string
	Eq   rule.Equation
}

const defaultWeight = 1

// Convert resolves a parsed Program into a Problem: it declares every
// SymbolDecl into a fresh Signature, then converts each axiom/goal's
// TermExpr pair against that signature. A bare identifier with no
// arguments is a variable if it starts with an uppercase letter (the
// convention spec.md §8's scenarios use informally: x, y, a, b are
// variables in lowercase there, but TPTP's own convention — and this
// loader's — is uppercase-starts-a-variable) and is otherwise looked
// up as a declared zero-arity
// constant.
func Convert(p *Program) (*Problem, error) {
	sig := term.NewSignature()
	declared := 0
	for _, d := range p.Decls {
		if d.Symbol == nil {
			continue
		}
		declareSymbol(sig, d.Symbol, declared)
		declared++
	}

	prob := &Problem{Sig: sig}
	for _, d := range p.Decls {
		switch {
		case d.Axiom != nil:
			eq, err := convertEquation(sig, d.Axiom.LHS, d.Axiom.RHS)
			if err != nil {
				return nil, fmt.Errorf("axiom %s: %w", d.Axiom.Name, err)
			}
			prob.Axioms = append(prob.Axioms, eq)
		case d.Goal != nil:
			eq, err := convertEquation(sig, d.Goal.LHS, d.Goal.RHS)
			if err != nil {
				return nil, fmt.Errorf("goal %s: %w", d.Goal.Name, err)
			}
			prob.Goals = append(prob.Goals, NamedGoal{Name: d.Goal.Name, Eq: eq})
		}
	}
	return prob, nil
}

// declareSymbol registers d into sig, defaulting its precedence to
// declIndex (its position among symbol declarations in the problem
// file) when the file itself leaves Precedence unset.
func declareSymbol(sig *term.Signature, d *SymbolDecl, declIndex int) {
	weight := defaultWeight
	if d.Weight != nil {
		weight = *d.Weight
	}
	precedence := declIndex
	if d.Precedence != nil {
		precedence = *d.Precedence
	}
	sig.Declare(term.FuncInfo{
		Name:       d.Name,
		Arity:      d.Arity,
		Weight:     uint32(weight),
		Precedence: precedence,
		Minimal:    d.Minimal,
		SkolemOf:   d.Skolem,
	})
}

func convertEquation(sig *term.Signature, lhs, rhs *TermExpr) (rule.Equation, error) {
	vars := make(map[string]term.Var)
	l, err := convertTerm(sig, lhs, vars)
	if err != nil {
		return rule.Equation{}, err
	}
	r, err := convertTerm(sig, rhs, vars)
	if err != nil {
		return rule.Equation{}, err
	}
	return rule.Equation{LHS: l, RHS: r}, nil
}

// convertTerm builds a term.Term from e, resolving variables against
// vars (shared across both sides of one equation, so the same
// identifier names the same variable on either side) and functions
// against sig.
func convertTerm(sig *term.Signature, e *TermExpr, vars map[string]term.Var) (term.Term, error) {
	if len(e.Args) == 0 && isVariableName(e.Name) {
		v, ok := vars[e.Name]
		if !ok {
			v = term.Var(len(vars))
			vars[e.Name] = v
		}
		b := term.NewBuilder(1)
		b.EmitVar(v)
		return b.Finish(), nil
	}

	f, ok := sig.Lookup(e.Name)
	if !ok {
		return nil, errors.New(errors.KindInput, errors.CodeUnknownSymbol,
			fmt.Sprintf("undeclared function symbol %q", e.Name))
	}
	info := sig.Info(f)
	if info.Arity != len(e.Args) {
		return nil, errors.New(errors.KindInput, errors.CodeUnknownSymbol,
			fmt.Sprintf("%s/%d applied to %d argument(s)", e.Name, info.Arity, len(e.Args)))
	}

	args := make([]term.Term, len(e.Args))
	for i, a := range e.Args {
		at, err := convertTerm(sig, a, vars)
		if err != nil {
			return nil, err
		}
		args[i] = at
	}

	b := term.NewBuilder(0)
	b.EmitFun(f, func(b *term.Builder) {
		for _, at := range args {
			b.EmitTermSlice(at)
		}
	})
	return b.Finish(), nil
}

func isVariableName(name string) bool {
	r := []rune(name)
	return len(r) > 0 && unicode.IsUpper(r[0])
}
