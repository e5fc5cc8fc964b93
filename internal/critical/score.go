package critical

import "twee/internal/config"

// Score assigns an integer to a critical pair's overlap where smaller
// is better, per spec.md §4.G: a configurable linear mix of the
// overlap's term size and its derivation depth (design notes, open
// question (b): "implementers should expose the same weight knobs
// rather than hard-coding a formula").
func Score(w config.CriticalPairWeights, cp CriticalPair) int {
	size := cp.Equation.LHS.Size() + cp.Equation.RHS.Size()
	return w.SizeWeight*size + w.DepthWeight*cp.Depth
}
