package critical

import (
	"twee/internal/config"
	"twee/internal/index"
	"twee/internal/kbo"
	"twee/internal/rewrite"
	"twee/internal/rule"
)

// Split normalises a critical pair's two sides against the current
// rule set (never the rule the pair itself might become, since the
// caller has not yet inserted it) and reports whether the results
// coincide. Trivial pairs (lhs and rhs already equal) are joinable by
// construction regardless of strategy selection; otherwise, when
// simple is enabled (spec.md §6's `join.simple`), the irreducible
// residual after rewriting becomes the returned sub-CP (spec.md
// §4.G: "split(cp)"). With simple disabled, a non-trivial pair is
// reported unjoinable without attempting any rewriting, since no
// other join strategy is implemented (see DESIGN.md).
func Split(idx *index.RuleIndex, lookup rewrite.RuleLookup, simple bool, cp CriticalPair) (residual CriticalPair, joinable bool) {
	if cp.Equation.LHS.Equal(cp.Equation.RHS) {
		return CriticalPair{}, true
	}
	if !simple {
		return cp, false
	}
	lhsNF := rewrite.Simplify(idx, lookup, cp.Equation.LHS)
	rhsNF := rewrite.Simplify(idx, lookup, cp.Equation.RHS)
	if lhsNF.Equal(rhsNF) {
		return CriticalPair{}, true
	}
	return CriticalPair{
		Equation: rule.Equation{LHS: lhsNF, RHS: rhsNF},
		Depth:    cp.Depth,
		Top:      cp.Top,
	}, false
}

// JoinResult is joinCriticalPair's outcome: either Joinable (spec.md's
// Right(maybe_joined, sub_cps), here just the boolean since the
// simplification that witnesses joinability is discarded, not used
// for a proof until Split is re-run during proof construction) or not
// (spec.md's Left(cp', witness_model)), in which case Residual carries
// the cp to hand to orient and Model the ground-extension witness to
// orient it against.
type JoinResult struct {
	Joinable bool
	Residual CriticalPair
	Model    *kbo.Model
}

// JoinCriticalPair is spec.md §4.G's joinCriticalPair: it splits cp
// against the current rules and, if not joinable, builds a witness
// model from the residual's own variables for orient to use. Which
// join strategies Split may use is read from cfg.Join.
func JoinCriticalPair(cfg config.Config, idx *index.RuleIndex, lookup rewrite.RuleLookup, cp CriticalPair) JoinResult {
	residual, joinable := Split(idx, lookup, cfg.Join.Simple, cp)
	if joinable {
		return JoinResult{Joinable: true}
	}
	vs := residual.Equation.LHS.Vars(nil)
	vs = residual.Equation.RHS.Vars(vs)
	return JoinResult{Joinable: false, Residual: residual, Model: kbo.ModelFromOrder(vs)}
}
