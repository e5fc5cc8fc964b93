package rewrite

import (
	"twee/internal/index"
	"twee/internal/kbo"
	"twee/internal/rule"
	"twee/internal/subst"
	"twee/internal/term"
)

// Strategy is a rewriting strategy (spec.md §4.F): given a term, it
// offers zero or more one-step reductions available at that term's
// own root.
type Strategy func(t term.Term) []Reduction

// RuleLookup resolves an ActiveRule id to its rule, so a Strategy
// built over a RuleIndex (which stores only ids) can fetch the rule it
// needs to match and apply.
type RuleLookup interface {
	Rule(ruleID int) (*rule.Rule, bool)
}

func substMatcher(pattern, t term.Term) (index.MatchSubst, bool) {
	s, ok := subst.Match(pattern, t)
	if !ok {
		return nil, false
	}
	return s, true
}

// AtRoot builds the base Strategy of spec.md §4.F: for every rule
// approx-matching t under idx, try an exact match, check it is
// eligible to fire (rule.Eligible), and emit a one-step reduction.
func AtRoot(o *kbo.Ordering, sig *term.Signature, idx *index.Index, lookup RuleLookup) Strategy {
	return func(t term.Term) []Reduction {
		var out []Reduction
		for _, m := range idx.Matches(t, substMatcher) {
			dir := m.Entry.Value.(index.Direction)
			r, ok := lookup.Rule(dir.RuleID)
			if !ok {
				continue
			}
			if !rule.Eligible(o, sig, r, m.Subst, dir.Forward) {
				continue
			}
			rhs := r.RHS
			if !dir.Forward {
				rhs = r.LHS
			}
			to := subst.ApplyToTerm(m.Subst, rhs)
			out = append(out, &Step{From: t, To: to, RuleID: dir.RuleID, Forward: dir.Forward, Sigma: m.Subst})
		}
		return out
	}
}

// Anywhere offers strat's reductions at every position of t, root
// first, each lifted into a Cong over the ancestor chain back to the
// root (spec.md §4.F: "the disjoint union of strat at every subterm
// position").
func Anywhere(strat Strategy) Strategy {
	var rec Strategy
	rec = func(t term.Term) []Reduction {
		out := append([]Reduction(nil), strat(t)...)
		if t.IsVar() {
			return out
		}
		args := t.Args().Terms()
		for i, arg := range args {
			for _, r := range rec(arg) {
				out = append(out, liftChild(t.Functor(), args, i, r))
			}
		}
		return out
	}
	return rec
}

func liftChild(f term.FuncID, args []term.Term, i int, r Reduction) Reduction {
	children := make([]Reduction, len(args))
	for j, a := range args {
		if j == i {
			children[j] = r
		} else {
			children[j] = &Refl{T: a}
		}
	}
	return NewCong(f, children)
}

// Nested restricts strat to proper subterms, never the root itself
// (spec.md §4.F).
func Nested(strat Strategy) Strategy {
	any := Anywhere(strat)
	return func(t term.Term) []Reduction {
		if t.IsVar() {
			return nil
		}
		args := t.Args().Terms()
		var out []Reduction
		for i, arg := range args {
			for _, r := range any(arg) {
				out = append(out, liftChild(t.Functor(), args, i, r))
			}
		}
		return out
	}
}

// Parallel computes the leftmost-innermost parallel step: recursing
// innermost first, every position not already inside a chosen redex
// takes the first reduction strat offers there; everywhere else is
// refl-filled. Returns a single-element slice holding the combined
// step, or nil if no redex exists anywhere in t.
func Parallel(strat Strategy) Strategy {
	var rec func(t term.Term) Reduction
	rec = func(t term.Term) Reduction {
		if t.IsVar() {
			return &Refl{T: t}
		}
		args := t.Args().Terms()
		children := make([]Reduction, len(args))
		innerStep := false
		for i, arg := range args {
			c := rec(arg)
			children[i] = c
			if !isRefl(c) {
				innerStep = true
			}
		}
		if innerStep {
			return NewCong(t.Functor(), children)
		}
		if steps := strat(t); len(steps) > 0 {
			return steps[0]
		}
		return &Refl{T: t}
	}
	return func(t term.Term) []Reduction {
		r := rec(t)
		if isRefl(r) {
			return nil
		}
		return []Reduction{r}
	}
}
