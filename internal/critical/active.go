// Package critical implements overlap computation and joinability
// testing between active rules (spec.md §4.G): the source of new
// critical pairs that drive the completion loop.
package critical

import (
	"twee/internal/rule"
	"twee/internal/term"
)

// ActiveRuleView is one usable direction of an Active rule, carrying
// its own rule id and the non-variable positions of its lhs (spec.md
// §3's "Active" record): oriented and weakly-oriented rules have a
// single forward view; permutative and unoriented rules have two.
type ActiveRuleView struct {
	RuleID          int
	LHS, RHS        term.Term
	Forward         bool
	NonVarPositions []int
}

// Active is a rule as inserted into the engine.
type Active struct {
	ActiveID int
	Depth    int
	Rule     *rule.Rule
	Top      term.Term // originating top term, for multi-step proof context
	Views    []ActiveRuleView
}

// NewActive builds an Active's views from its orientation, handing out
// rule ids via nextRuleID (the engine's next-rule counter).
func NewActive(activeID, depth int, r *rule.Rule, top term.Term, nextRuleID func() int) *Active {
	views := []ActiveRuleView{{
		RuleID:          nextRuleID(),
		LHS:             r.LHS,
		RHS:             r.RHS,
		Forward:         true,
		NonVarPositions: r.LHS.NonVarPositions(),
	}}
	switch r.Orientation.(type) {
	case rule.Permutative, rule.Unoriented:
		views = append(views, ActiveRuleView{
			RuleID:          nextRuleID(),
			LHS:             r.RHS,
			RHS:             r.LHS,
			Forward:         false,
			NonVarPositions: r.RHS.NonVarPositions(),
		})
	}
	return &Active{ActiveID: activeID, Depth: depth, Rule: r, Top: top, Views: views}
}
