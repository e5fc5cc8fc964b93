package index

import "twee/internal/rule"

// Direction names one usable reading of a stored rule: RuleID is the
// owning ActiveRule's id (spec.md §3's "Active" record), Forward
// selects lhs->rhs (true) or rhs->lhs (false).
type Direction struct {
	RuleID  int
	Forward bool
}

// RuleIndex is spec.md §4.D's two-index pair: Oriented holds only
// rules whose orientation is unconditionally sound (used by the fast
// simplifier, which must never need an eligibility check), All holds
// every usable direction of every rule (used by full rewriting, which
// re-checks eligibility per spec.md §4.C before firing).
type RuleIndex struct {
	Oriented *Index
	All      *Index
}

// NewRuleIndex creates an empty pair of indices.
func NewRuleIndex() *RuleIndex {
	return &RuleIndex{Oriented: New(), All: New()}
}

// Insert adds ruleID's usable directions to both indices, per
// orientation: Oriented rules index lhs->rhs in both; WeaklyOriented
// rules index lhs->rhs only in All (the conditional eligibility check
// means the fast simplifier cannot use it unconditionally);
// Permutative and Unoriented rules index both directions in All only.
func (rx *RuleIndex) Insert(ruleID int, r *rule.Rule) {
	switch r.Orientation.(type) {
	case rule.Oriented:
		rx.Oriented.Insert(r.LHS, Direction{RuleID: ruleID, Forward: true})
		rx.All.Insert(r.LHS, Direction{RuleID: ruleID, Forward: true})
	case rule.WeaklyOriented:
		rx.All.Insert(r.LHS, Direction{RuleID: ruleID, Forward: true})
	case rule.Permutative, rule.Unoriented:
		rx.All.Insert(r.LHS, Direction{RuleID: ruleID, Forward: true})
		rx.All.Insert(r.RHS, Direction{RuleID: ruleID, Forward: false})
	}
}

// Delete removes ruleID's entries, mirroring Insert's placement.
func (rx *RuleIndex) Delete(ruleID int, r *rule.Rule) {
	switch r.Orientation.(type) {
	case rule.Oriented:
		rx.Oriented.Delete(r.LHS, Direction{RuleID: ruleID, Forward: true})
		rx.All.Delete(r.LHS, Direction{RuleID: ruleID, Forward: true})
	case rule.WeaklyOriented:
		rx.All.Delete(r.LHS, Direction{RuleID: ruleID, Forward: true})
	case rule.Permutative, rule.Unoriented:
		rx.All.Delete(r.LHS, Direction{RuleID: ruleID, Forward: true})
		rx.All.Delete(r.RHS, Direction{RuleID: ruleID, Forward: false})
	}
}
