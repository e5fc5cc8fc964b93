package rewrite

import (
	"fmt"

	"twee/internal/term"
)

// termKey is a dedup key for a term that does not require a Signature
// to compute: it encodes the raw symbol sequence directly, since two
// equal flatterms have byte-identical symbol sequences (term.Equal).
func termKey(t term.Term) string {
	buf := make([]byte, len(t)*8)
	for i, sym := range t {
		v := uint64(sym)
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(v >> (8 * b))
		}
	}
	return string(buf)
}

// NormaliseWith iterates Parallel(strat) from t, composing every step
// into one Reduction via NewTrans, stopping when no step applies.
// Exceeding maxRounds parallel-step rounds is spec.md §4.F's "hard
// limit of 1000 parallel-step rounds triggers a fatal loop
// diagnostic"; per the design notes' open question (c), this is
// surfaced as an ordinary error rather than a panic, so a caller can
// choose (via internal/config's RecoverableLoopDiagnostic) whether to
// treat it as fatal.
func NormaliseWith(strat Strategy, t term.Term, maxRounds int) (Reduction, error) {
	par := Parallel(strat)
	acc := Reduction(&Refl{T: t})
	cur := t
	for round := 0; round < maxRounds; round++ {
		steps := par(cur)
		if len(steps) == 0 {
			return acc, nil
		}
		acc = NewTrans(acc, steps[0])
		cur = steps[0].Result()
	}
	return nil, fmt.Errorf("rewrite: normalisation did not converge within %d rounds", maxRounds)
}

// NormalForms computes the irreducible descendant of each term in ts,
// deduplicated by the resulting term (spec.md §4.F).
func NormalForms(strat Strategy, ts []term.Term, maxRounds int) ([]term.Term, error) {
	seen := make(map[string]term.Term, len(ts))
	out := make([]term.Term, 0, len(ts))
	for _, t := range ts {
		red, err := NormaliseWith(strat, t, maxRounds)
		if err != nil {
			return nil, err
		}
		nf := red.Result()
		k := termKey(nf)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = nf
		out = append(out, nf)
	}
	return out, nil
}

// Successors computes every term reachable from ts by any number of
// single applications of strat, as a worklist closure deduplicated by
// the resulting term (spec.md §4.F).
func Successors(strat Strategy, ts []term.Term) []term.Term {
	seen := make(map[string]term.Term)
	var queue []term.Term
	push := func(t term.Term) {
		k := termKey(t)
		if _, ok := seen[k]; !ok {
			seen[k] = t
			queue = append(queue, t)
		}
	}
	for _, t := range ts {
		push(t)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, r := range Anywhere(strat)(cur) {
			push(r.Result())
		}
	}
	out := make([]term.Term, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	return out
}
