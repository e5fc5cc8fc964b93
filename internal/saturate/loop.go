package saturate

import (
	"twee/internal/config"
	"twee/internal/critical"
	"twee/internal/errors"
	"twee/internal/kbo"
	"twee/internal/proof"
	"twee/internal/queue"
	"twee/internal/rewrite"
	"twee/internal/rule"
)

// Run seeds st with its axiom critical pairs and then drives complete1
// to a halt, returning every message emitted along the way. It is the
// engine's one public entrypoint: an embedder builds a State via New,
// adds goals with AddGoal, then calls Run.
func Run(cfg config.Config, st *State) ([]Message, error) {
	for _, cp := range st.AxiomCriticalPairs() {
		if err := consider(cfg, st, cp); err != nil {
			return st.DrainMessages(), err
		}
	}
	for {
		progressed, err := Complete1(cfg, st)
		if err != nil {
			return st.DrainMessages(), err
		}
		if !progressed {
			break
		}
	}
	return st.DrainMessages(), nil
}

// Complete1 runs one iteration of spec.md §4.I's completion loop:
// halt on the considered-CP budget, halt if a goal is now solved,
// dequeue the next passive (halting if none remain), hand it to
// consider, then run any maintenance tasks due this iteration.
func Complete1(cfg config.Config, st *State) (bool, error) {
	if st.Considered >= cfg.MaxCriticalPairs {
		return false, nil
	}

	solved, err := checkGoals(st)
	if err != nil {
		return false, err
	}
	if solved {
		return false, nil
	}

	ov, ok := queue.Dequeue(st.Queue, st, cfg, &st.Considered)
	if !ok {
		return false, nil
	}

	if err := consider(cfg, st, ov.CP); err != nil {
		return false, err
	}

	st.Ticker.CheckAll(1)
	st.Log.Iteration(st.Considered, len(st.actives), st.Queue.Len())
	return true, nil
}

// checkGoals extends every unsolved goal's closures under the current
// rule set and certifies the first one whose sides now intersect.
func checkGoals(st *State) (bool, error) {
	strat := st.allStrategy()
	for _, g := range st.Goals {
		if g.Solved {
			continue
		}
		g.extend(strat)
		_, lhsRed, rhsRed, ok := g.intersection()
		if !ok {
			continue
		}

		combined := rewrite.NewTrans(lhsRed, rewrite.Symm(rhsRed))
		node := reductionToProof(st, combined)
		pr, err := proof.NewProof(st.Proofs, node)
		if err != nil {
			return false, errors.Wrap(errors.KindInternal, errors.CodeProofCertificationFailed, err,
				"goal proof failed certification")
		}

		g.Solved = true
		st.emit(ProvedGoalMsg{Goal: g, Proof: pr})
		st.Log.ProvedGoal(g.Name, g.Number)
		return true, nil
	}
	return false, nil
}

// consider is spec.md §4.G's consider(cp): split cp against the
// current rule set, recording it as a joinable equation if it reduces
// to nothing, or turning its irreducible residual into a new Active
// otherwise.
func consider(cfg config.Config, st *State, cp critical.CriticalPair) error {
	jr := critical.JoinCriticalPair(cfg, st.RuleIndex, st, cp)
	if jr.Joinable {
		st.Joinable = append(st.Joinable, cp.Equation)
		st.emit(NewEquationMsg{Equation: cp.Equation})
		return nil
	}
	return addActive(cfg, jr.Model, st, jr.Residual)
}

// addActive orients a residual critical pair into a Rule, drops it if
// an equivalent equation is already known joinable or already active
// (spec.md §4.I's subsumption check — implemented here as exact
// equality up to symmetry rather than full instance-subsumption), and
// otherwise
// allocates an Active, indexes every one of its views, registers each
// as a proof lemma, and enqueues the overlaps it forms with the rest
// of the active set.
func addActive(cfg config.Config, model *kbo.Model, st *State, cp critical.CriticalPair) error {
	r, err := rule.Orient(st.Order, st.Sig, cp.Equation)
	if err != nil {
		flipped, ferr := rule.Orient(st.Order, st.Sig, cp.Equation.Flip())
		if ferr != nil {
			return errors.Wrap(errors.KindInput, errors.CodeOrientationRejected, err,
				"critical pair cannot be oriented in either direction")
		}
		r = flipped
	}

	if subsumed(st, rule.Unorient(r)) {
		return nil
	}

	activeID := st.allocActiveID()
	a := critical.NewActive(activeID, cp.Depth, r, cp.Top, st.nextRuleIDFn())
	st.actives[activeID] = a
	if model != nil {
		st.models[activeID] = model
	}

	for _, v := range a.Views {
		st.ruleOwner[v.RuleID] = activeID
		insertView(st.RuleIndex, v, r.Orientation)
		st.Proofs.AddLemma(v.RuleID, rule.Equation{LHS: v.LHS, RHS: v.RHS})
	}

	st.emit(NewActiveMsg{Active: a})
	st.Log.NewActive(activeID, r.Orientation.String())

	passives := queue.MakePassives(cfg, st.RuleIndex, st, st.activeIDs(), a)
	st.Queue.Insert(passives)
	return nil
}

// subsumed reports whether eq (in either orientation) is already
// recorded as joinable or already the equation of some active rule.
func subsumed(st *State, eq rule.Equation) bool {
	for _, je := range st.Joinable {
		if equationEqual(je, eq) {
			return true
		}
	}
	for _, a := range st.actives {
		if equationEqual(rule.Unorient(a.Rule), eq) {
			return true
		}
	}
	return false
}

func equationEqual(a, b rule.Equation) bool {
	return (a.LHS.Equal(b.LHS) && a.RHS.Equal(b.RHS)) ||
		(a.LHS.Equal(b.RHS) && a.RHS.Equal(b.LHS))
}
