package saturate

import (
	"twee/internal/config"
	"twee/internal/critical"
	"twee/internal/kbo"
	"twee/internal/rule"
	"twee/internal/subst"
)

// Interreduce visits every Active in ascending id order and tries to
// join its own equation against all other active rules (spec.md
// §4.I). Each Active ends in one of four outcomes:
//
//   - joinable against the rest of the set: retire it outright.
//   - not joinable, and the simplified residual is no longer an
//     instance of the rule's own equation: retire it and feed the
//     residual back in as a fresh critical pair.
//   - not joinable, same equation up to instance, but its witness
//     model changed: replace the recorded model, keep the rule.
//   - otherwise: unchanged.
func Interreduce(cfg config.Config, st *State) error {
	for _, activeID := range st.activeIDsSorted() {
		a, ok := st.actives[activeID]
		if !ok {
			// defensive: interreduceOne retires only the Active it
			// is visiting, so an id from the snapshot stays live
			continue
		}
		if err := interreduceOne(cfg, st, activeID, a); err != nil {
			return err
		}
	}
	return nil
}

func interreduceOne(cfg config.Config, st *State, activeID int, a *critical.Active) error {
	excluded := make(map[int]bool, len(a.Views))
	for _, v := range a.Views {
		excluded[v.RuleID] = true
	}
	others := excludingLookup{State: st, excluded: excluded}

	cp := critical.CriticalPair{
		Equation: rule.Unorient(a.Rule),
		Depth:    a.Depth,
		Top:      a.Top,
	}
	jr := critical.JoinCriticalPair(cfg, st.RuleIndex, others, cp)

	if jr.Joinable {
		st.removeActive(activeID)
		return nil
	}

	if !isInstanceOfRule(jr.Residual.Equation, a.Rule) {
		st.removeActive(activeID)
		return addActive(cfg, jr.Model, st, jr.Residual)
	}

	if modelChanged(st.models[activeID], jr.Model) {
		st.models[activeID] = jr.Model
	}
	return nil
}

// excludingLookup forwards every RuleLookup/ActiveLookup/RuleViewLookup
// call to the embedded State except for the excluded rule ids, so
// JoinCriticalPair/Split rewrite against "all other rules" without
// needing a second, filtered copy of the rule index (spec.md §4.I:
// "interreduce... against all other rules").
type excludingLookup struct {
	*State
	excluded map[int]bool
}

func (e excludingLookup) Rule(ruleID int) (*rule.Rule, bool) {
	if e.excluded[ruleID] {
		return nil, false
	}
	return e.State.Rule(ruleID)
}

// isInstanceOfRule reports whether eq is just r's own equation viewed
// through some substitution (in either direction), meaning the
// residual interreduction found carries nothing new.
func isInstanceOfRule(eq rule.Equation, r *rule.Rule) bool {
	if sigma, ok := subst.Match(r.LHS, eq.LHS); ok {
		if subst.ApplyToTerm(sigma, r.RHS).Equal(eq.RHS) {
			return true
		}
	}
	if sigma, ok := subst.Match(r.RHS, eq.LHS); ok {
		if subst.ApplyToTerm(sigma, r.LHS).Equal(eq.RHS) {
			return true
		}
	}
	return false
}

func modelChanged(old, neu *kbo.Model) bool {
	if old == nil && neu == nil {
		return false
	}
	if (old == nil) != (neu == nil) {
		return true
	}
	ov, nv := old.Vars(), neu.Vars()
	if len(ov) != len(nv) {
		return true
	}
	for i := range ov {
		if ov[i] != nv[i] {
			return true
		}
	}
	return false
}
