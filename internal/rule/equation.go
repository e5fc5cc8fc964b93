// Package rule implements the equation-orientation taxonomy of spec.md
// §3/§4.E: turning an unordered equation into a directed (or
// conditionally-directed) Rule, and deciding at substitution time
// whether a given orientation is eligible to fire.
package rule

import "twee/internal/term"

// Equation is an unordered equality between two terms, prior to
// orientation.
type Equation struct {
	LHS, RHS term.Term
}

// Flip swaps the two sides of the equation; orient(t = s) is the
// natural fallback when orient(s = t) rejects.
func (e Equation) Flip() Equation {
	return Equation{LHS: e.RHS, RHS: e.LHS}
}
