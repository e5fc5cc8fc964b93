// Package saturate implements the unfailing Knuth-Bendix completion
// loop of spec.md §4.I: State threads every piece of engine state
// through complete1/consider/addCP/interreduce, following the
// teacher's multi-pass analyzer (kanso-lang-kanso's
// internal/semantic/analyzer.go): one struct accumulating facts and
// diagnostics across repeated passes, rather than a pile of loose
// return values threaded by hand.
package saturate

import (
	"sort"

	"twee/internal/config"
	"twee/internal/critical"
	"twee/internal/index"
	"twee/internal/kbo"
	"twee/internal/proof"
	"twee/internal/queue"
	"twee/internal/rewrite"
	"twee/internal/rule"
	"twee/internal/saturatelog"
	"twee/internal/term"
	"twee/internal/ticker"
)

// State is spec.md §3's "State" tuple: rule index, active-by-id map,
// active-rule-by-id map (ruleOwner), joinable-equations store (for
// subsumption), goal list, passive queue, next-active/next-rule/
// considered-CP counters, pending messages.
type State struct {
	Sig   *term.Signature
	Order *kbo.Ordering

	RuleIndex *index.RuleIndex
	actives   map[int]*critical.Active
	ruleOwner map[int]int // rule id -> owning active id

	// models records the ground-extension witness a Permutative or
	// Unoriented Active was oriented under, tracked alongside the
	// Active rather than inside it: interreduce's "witness model
	// changed" outcome replaces just this entry, leaving the Active's
	// rule and views untouched.
	models map[int]*kbo.Model

	Joinable []rule.Equation
	axioms   []rule.Equation

	Goals []*Goal
	Queue *queue.Queue

	Proofs *proof.Store

	nextActiveID int
	nextRuleID   int
	Considered   int

	Messages []Message

	Ticker *ticker.Ticker
	Log    *saturatelog.Logger
}

// New builds an empty State over sig/order, seeding the proof store
// with axioms (each canonicalised once here, so the store's stable
// numbering and every CriticalPair built from an axiom agree) and
// registering the maintenance tasks the design notes call out: queue
// simplification every cfg.RenormalisePercent of the work budget, and
// — unless cfg.Simplify disables periodic interreduction outright
// (spec.md §6's `simplify` option) — interreduction every
// cfg.InterreduceEvery of virtual time.
func New(cfg config.Config, sig *term.Signature, order *kbo.Ordering, axioms []rule.Equation) *State {
	canon := make([]rule.Equation, len(axioms))
	for i, eq := range axioms {
		canon[i] = canonicalizeEquation(eq)
	}

	st := &State{
		Sig:       sig,
		Order:     order,
		RuleIndex: index.NewRuleIndex(),
		actives:   make(map[int]*critical.Active),
		ruleOwner: make(map[int]int),
		models:    make(map[int]*kbo.Model),
		axioms:    canon,
		Proofs:    proof.NewStore(canon),
		Queue:     queue.New(),
		Ticker:    ticker.New(),
		Log:       saturatelog.New(),
	}

	renormalisePeriod := safePeriod(cfg.RenormalisePercent * float64(cfg.MaxCriticalPairs))
	st.Ticker.Register(ticker.NewTask(renormalisePeriod, 1, func() {
		st.emit(SimplifyQueueMsg{})
		queue.SimplifyQueue(st.Queue, st, cfg.Weights)
	}))
	if cfg.Simplify {
		st.Ticker.Register(ticker.NewTask(1, safePeriod(cfg.InterreduceEvery), func() {
			st.emit(InterreduceMsg{})
			Interreduce(cfg, st)
		}))
	}

	return st
}

// safePeriod guards against a zero or negative period, which would
// make ticker.CheckTask loop forever (its "fire once per whole period
// elapsed" rule divides by nothing when period <= 0).
func safePeriod(p float64) float64 {
	if p <= 0 {
		return 1
	}
	return p
}

// AxiomCriticalPairs returns the seed CriticalPairs spec.md §3's
// lifecycle note describes ("axioms become CriticalPairs on load"),
// one per axiom, each carrying an AxiomNode derivation referencing the
// axiom's position in the proof store.
func (s *State) AxiomCriticalPairs() []critical.CriticalPair {
	out := make([]critical.CriticalPair, len(s.axioms))
	for i, eq := range s.axioms {
		out[i] = critical.CriticalPair{
			Equation:   eq,
			Depth:      0,
			Top:        eq.LHS,
			Derivation: proof.AxiomNode{AxiomID: i},
		}
	}
	return out
}

// AddGoal registers a goal to track alongside the completion loop.
func (s *State) AddGoal(name string, number int, eq rule.Equation) {
	s.Goals = append(s.Goals, NewGoal(name, number, eq))
}

// Rule implements rewrite.RuleLookup: resolve a rule id to the Active
// that owns it.
func (s *State) Rule(ruleID int) (*rule.Rule, bool) {
	activeID, ok := s.ruleOwner[ruleID]
	if !ok {
		return nil, false
	}
	return s.actives[activeID].Rule, true
}

// Active implements critical.ActiveLookup.
func (s *State) Active(activeID int) (*critical.Active, bool) {
	a, ok := s.actives[activeID]
	return a, ok
}

// View implements queue.RuleViewLookup.
func (s *State) View(ruleID int) (critical.ActiveRuleView, *critical.Active, bool) {
	activeID, ok := s.ruleOwner[ruleID]
	if !ok {
		return critical.ActiveRuleView{}, nil, false
	}
	a := s.actives[activeID]
	for _, v := range a.Views {
		if v.RuleID == ruleID {
			return v, a, true
		}
	}
	return critical.ActiveRuleView{}, nil, false
}

func (s *State) activeIDs() []int {
	ids := make([]int, 0, len(s.actives))
	for id := range s.actives {
		ids = append(ids, id)
	}
	return ids
}

// activeIDsSorted returns every live active id in ascending order, so
// interreduce visits Actives in a deterministic, reproducible
// sequence rather than Go's randomised map iteration order.
func (s *State) activeIDsSorted() []int {
	ids := s.activeIDs()
	sort.Ints(ids)
	return ids
}

func (s *State) allocActiveID() int {
	s.nextActiveID++
	return s.nextActiveID
}

// nextRuleIDFn hands critical.NewActive its rule-id allocator.
func (s *State) nextRuleIDFn() func() int {
	return func() int {
		s.nextRuleID++
		return s.nextRuleID
	}
}

func (s *State) emit(m Message) {
	s.Messages = append(s.Messages, m)
}

// DrainMessages returns every message emitted since the last call and
// clears the pending list, for an embedder's Output sink.
func (s *State) DrainMessages() []Message {
	msgs := s.Messages
	s.Messages = nil
	return msgs
}

// allStrategy builds the full rewriting strategy (spec.md §4.F)
// goals normalise against: every direction of every Active, gated by
// rule.Eligible.
func (s *State) allStrategy() rewrite.Strategy {
	return rewrite.AtRoot(s.Order, s.Sig, s.RuleIndex.All, s)
}

// removeActive retires an Active: its views leave the rule index and
// the proof store, and a DeleteActive message is emitted carrying the
// pre-removal value (spec.md §5's "capture the before snapshot before
// mutation" ordering guarantee — a's fields are never mutated in
// place, so capturing the pointer before deleting it from the maps is
// sufficient).
func (s *State) removeActive(activeID int) {
	a, ok := s.actives[activeID]
	if !ok {
		return
	}
	for _, v := range a.Views {
		deleteView(s.RuleIndex, v, a.Rule.Orientation)
		delete(s.ruleOwner, v.RuleID)
		s.Proofs.RemoveLemma(v.RuleID)
	}
	delete(s.actives, activeID)
	delete(s.models, activeID)
	s.emit(DeleteActiveMsg{Active: a})
}

// insertView and deleteView place one ActiveRuleView's single
// direction into the right index (index.RuleIndex.Insert/Delete take
// a whole *rule.Rule under one id, which fits Oriented rules' single
// view but not Permutative/Unoriented rules' two independently-ided
// views; these act per-view instead, mirroring RuleIndex's own
// per-orientation placement rule).
func insertView(rx *index.RuleIndex, v critical.ActiveRuleView, orient rule.Orientation) {
	dir := index.Direction{RuleID: v.RuleID, Forward: v.Forward}
	switch orient.(type) {
	case rule.Oriented:
		rx.Oriented.Insert(v.LHS, dir)
		rx.All.Insert(v.LHS, dir)
	default:
		rx.All.Insert(v.LHS, dir)
	}
}

func deleteView(rx *index.RuleIndex, v critical.ActiveRuleView, orient rule.Orientation) {
	dir := index.Direction{RuleID: v.RuleID, Forward: v.Forward}
	switch orient.(type) {
	case rule.Oriented:
		rx.Oriented.Delete(v.LHS, dir)
		rx.All.Delete(v.LHS, dir)
	default:
		rx.All.Delete(v.LHS, dir)
	}
}

// canonicalizeEquation renumbers eq's variables to 0..n-1 in
// first-occurrence order (lhs scanned before rhs), the "canonicalises
// variable indices" step spec.md §4.I's consider describes. It is
// applied once, at a CriticalPair's birth (axiom load here; overlap
// creation already rebases variables through term.MaxVar-based
// renaming in internal/critical), rather than again inside consider,
// so a CriticalPair's attached proof derivation — built against the
// pre-canonicalisation variable numbering — stays internally
// consistent with the equation it proves.
func canonicalizeEquation(eq rule.Equation) rule.Equation {
	mapping := make(map[term.Var]term.Var)
	return rule.Equation{
		LHS: canonicalizeTerm(eq.LHS, mapping),
		RHS: canonicalizeTerm(eq.RHS, mapping),
	}
}

func canonicalizeTerm(t term.Term, mapping map[term.Var]term.Var) term.Term {
	b := term.NewBuilder(len(t))
	canonicalizeInto(b, t, mapping)
	return b.Finish()
}

func canonicalizeInto(b *term.Builder, t term.Term, mapping map[term.Var]term.Var) {
	if t.IsVar() {
		v := t.Var()
		nv, ok := mapping[v]
		if !ok {
			nv = term.Var(len(mapping))
			mapping[v] = nv
		}
		b.EmitVar(nv)
		return
	}
	f := t.Functor()
	args := t.Args().Terms()
	b.EmitFun(f, func(b *term.Builder) {
		for _, a := range args {
			canonicalizeInto(b, a, mapping)
		}
	})
}
