// Package errors implements the prover's coded diagnostics (spec.md
// §7): structured errors with a Kind and a stable code, so an embedder
// can pattern-match on Kind without parsing message text.
//
// Code ranges:
// E1xxx: input errors (rejected axioms/goals, malformed terms)
// E2xxx: loop diagnostics (recoverable, see design notes open question c)
// E3xxx: resource-bound errors (max critical pairs / term size hit)
// E9xxx: internal invariant violations
package errors

const (
	// E1001: orient() rejected an equation (rhs >= lhs, or unbound rhs variable).
	CodeOrientationRejected = "E1001"
	// E1002: an axiom or goal referenced an undeclared function symbol.
	CodeUnknownSymbol = "E1002"
	// E1003: a loaded term failed the builder's size-consistency check.
	CodeMalformedTerm = "E1003"

	// E2001: normaliseWith exceeded MaxRewriteRounds.
	CodeRewriteLoopExceeded = "E2001"

	// E3001: the saturation loop halted on max_critical_pairs without a goal solved.
	CodeCriticalPairBudgetExhausted = "E3001"
	// E3002: a passive's reconstructed overlap exceeded cfg_max_term_size.
	CodeTermSizeBudgetExceeded = "E3002"

	// E9001: a proof failed certify.
	CodeProofCertificationFailed = "E9001"
)
