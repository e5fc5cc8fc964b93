package rewrite

import (
	"twee/internal/index"
	"twee/internal/subst"
	"twee/internal/term"
)

// Simplify implements spec.md §4.F's hot-path simplifier: it uses only
// idx.Oriented (every stored direction there is unconditionally
// eligible, so no rule.Eligible check is needed) and repeatedly
// applies a single leftmost rewrite until no rule applies. It produces
// a normal form only, no proof object.
func Simplify(idx *index.RuleIndex, lookup RuleLookup, t term.Term) term.Term {
	for {
		nt, ok := simpleRewrite(idx.Oriented, lookup, t)
		if !ok {
			return t
		}
		t = nt
	}
}

// simpleRewrite performs one oriented rewrite at the leftmost
// applicable position (pre-order: root first, then each argument in
// turn), or reports false if no oriented rule applies anywhere in t.
func simpleRewrite(oriented *index.Index, lookup RuleLookup, t term.Term) (term.Term, bool) {
	if to, ok := simpleRewriteAt(oriented, lookup, t); ok {
		return to, true
	}
	if t.IsVar() {
		return nil, false
	}
	args := t.Args().Terms()
	for i, arg := range args {
		if rewritten, ok := simpleRewrite(oriented, lookup, arg); ok {
			return rebuildWithChild(t.Functor(), args, i, rewritten), true
		}
	}
	return nil, false
}

func simpleRewriteAt(oriented *index.Index, lookup RuleLookup, t term.Term) (term.Term, bool) {
	for _, m := range oriented.Matches(t, substMatcher) {
		dir := m.Entry.Value.(index.Direction)
		r, ok := lookup.Rule(dir.RuleID)
		if !ok {
			continue
		}
		return subst.ApplyToTerm(m.Subst, r.RHS), true
	}
	return nil, false
}

func rebuildWithChild(f term.FuncID, args []term.Term, i int, replacement term.Term) term.Term {
	b := term.NewBuilder(0)
	b.EmitFun(f, func(b *term.Builder) {
		for j, a := range args {
			if j == i {
				b.EmitTermSlice(replacement)
			} else {
				b.EmitTermSlice(a)
			}
		}
	})
	return b.Finish()
}
