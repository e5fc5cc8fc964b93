package saturate

import (
	"twee/internal/critical"
	"twee/internal/proof"
	"twee/internal/rule"
)

// Message is the saturation loop's Output stream (spec.md §6): a sum
// type via interface, the same pattern the teacher uses for its own
// Expr/Stmt trees, observed here instead of a single struct with a
// discriminating tag field.
type Message interface {
	isMessage()
}

// NewActiveMsg reports a freshly oriented rule entering the active set.
type NewActiveMsg struct {
	Active *critical.Active
}

// NewEquationMsg reports a critical pair found joinable as-is: no rule
// is added, but the equation is recorded for subsumption.
type NewEquationMsg struct {
	Equation rule.Equation
}

// DeleteActiveMsg reports an Active retired by interreduction.
type DeleteActiveMsg struct {
	Active *critical.Active
}

// SimplifyQueueMsg marks a passive-queue renormalisation pass.
type SimplifyQueueMsg struct{}

// InterreduceMsg marks an interreduction pass over the active set.
type InterreduceMsg struct{}

// ProvedGoalMsg reports a goal whose lhs and rhs normal-form sets
// intersected, carrying its certified proof.
type ProvedGoalMsg struct {
	Goal  *Goal
	Proof *proof.Proof
}

func (NewActiveMsg) isMessage()     {}
func (NewEquationMsg) isMessage()   {}
func (DeleteActiveMsg) isMessage()  {}
func (SimplifyQueueMsg) isMessage() {}
func (InterreduceMsg) isMessage()   {}
func (ProvedGoalMsg) isMessage()    {}
