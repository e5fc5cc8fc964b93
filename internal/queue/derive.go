package queue

import (
	"twee/internal/config"
	"twee/internal/critical"
	"twee/internal/index"
)

// RuleViewLookup resolves a rule id back to the ActiveRuleView it came
// from and the Active that owns it, the way an engine-wide rule table
// would (spec.md §4.H): simplify_passive and dequeue both need it to
// re-derive a stored Passive's overlap on demand rather than keep the
// overlap itself live in the heap.
type RuleViewLookup interface {
	View(ruleID int) (critical.ActiveRuleView, *critical.Active, bool)
}

// MakePassives turns every overlap a freshly added rule produces into
// a scored Passive (spec.md §4.H's "make_passives").
func MakePassives(cfg config.Config, idx *index.RuleIndex, rules critical.ActiveLookup, activeIDs []int, newActive *critical.Active) []Passive {
	overlaps := critical.Overlaps(cfg.MaxOverlapDepth, idx, rules, activeIDs, newActive)
	passives := make([]Passive, 0, len(overlaps))
	for _, ov := range overlaps {
		passives = append(passives, Passive{
			Score:    critical.Score(cfg.Weights, ov.CP),
			Rule1ID:  ov.Rule1ID,
			Rule2ID:  ov.Rule2ID,
			Position: ov.Position,
		})
	}
	return passives
}

// overlapDepth is the depth a re-derived overlap between two owning
// Actives is assigned, matching critical.overlapsBetween's own rule.
func overlapDepth(a1, a2 *critical.Active) int {
	d := a1.Depth
	if a2.Depth > d {
		d = a2.Depth
	}
	return d + 1
}

// rederive resolves a Passive's two rule ids back to their views and
// recomputes the overlap they name, reporting false if either rule has
// since been retired (an orphan passive, spec.md §4.H).
func rederive(lv RuleViewLookup, p Passive) (*critical.Overlap, bool) {
	v1, a1, ok := lv.View(p.Rule1ID)
	if !ok {
		return nil, false
	}
	v2, a2, ok := lv.View(p.Rule2ID)
	if !ok {
		return nil, false
	}
	ov, ok := critical.OverlapAt(v1, v2, p.Position, overlapDepth(a1, a2))
	if !ok {
		return nil, false
	}
	ov.Rule1ID = p.Rule1ID
	ov.Rule2ID = p.Rule2ID
	return ov, true
}

// SimplifyPassive re-derives p's overlap against the current rule set
// and rescores it, dropping it if either owning rule is gone (spec.md
// §4.H's "simplify_passive").
func SimplifyPassive(lv RuleViewLookup, weights config.CriticalPairWeights, p Passive) (Passive, bool) {
	ov, ok := rederive(lv, p)
	if !ok {
		return Passive{}, false
	}
	return Passive{
		Score:    critical.Score(weights, ov.CP),
		Rule1ID:  p.Rule1ID,
		Rule2ID:  p.Rule2ID,
		Position: p.Position,
	}, true
}

// SimplifyQueue rescores and drops orphans across every queued passive
// (spec.md §4.H's "simplify_queue"), run periodically by the
// completion loop's maintenance scheduler.
func SimplifyQueue(q *Queue, lv RuleViewLookup, weights config.CriticalPairWeights) {
	q.MapMaybe(func(p Passive) (Passive, bool) {
		return SimplifyPassive(lv, weights, p)
	})
}

// Dequeue pops passives until it finds one that still names live rules
// and whose re-derived overlap fits within cfg.MaxTermSize, skipping
// (and counting, via considered) everything in between (spec.md §4.H's
// "dequeue"). It reports false once the queue is exhausted.
func Dequeue(q *Queue, lv RuleViewLookup, cfg config.Config, considered *int) (*critical.Overlap, bool) {
	for {
		p, ok := q.RemoveMin()
		if !ok {
			return nil, false
		}
		*considered++
		ov, ok := rederive(lv, p)
		if !ok {
			continue
		}
		if ov.CP.Equation.LHS.Size() > cfg.MaxTermSize || ov.CP.Equation.RHS.Size() > cfg.MaxTermSize {
			continue
		}
		return ov, true
	}
}
