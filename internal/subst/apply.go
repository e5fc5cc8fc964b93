package subst

import "twee/internal/term"

// Apply walks t emitting the substituted form into b: each variable
// occurrence bound in look is replaced by its image (spliced in
// verbatim), once, without recursing into the image itself — this is
// the "single" flavour of spec.md §4.B. Variables not in look's domain
// pass through unchanged.
func Apply(b *term.Builder, look Lookup, t term.Term) {
	if t.IsVar() {
		if img, ok := look.Lookup(t.Var()); ok {
			b.EmitTermSlice(img)
			return
		}
		b.EmitVar(t.Var())
		return
	}
	b.EmitFun(t.Functor(), func(b *term.Builder) {
		for _, arg := range t.Args().Terms() {
			Apply(b, look, arg)
		}
	})
}

// ApplyToTerm is Apply with a fresh builder, returning the resulting
// term directly.
func ApplyToTerm(look Lookup, t term.Term) term.Term {
	b := term.NewBuilder(len(t))
	Apply(b, look, t)
	return b.Finish()
}

// maxIterations bounds the fixpoint loops below; a substitution that
// doesn't converge within it indicates a cyclic binding that Unify's
// occurs check should already have rejected, so this is an internal
// assertion, not a recoverable condition.
const maxIterations = 10000

// ApplyIterated reapplies look to t's variable sites until no variable
// in look's domain remains in the result — the "iterated" flavour of
// spec.md §4.B, used to resolve a substitution given in triangular
// form into a single substituted term.
func ApplyIterated(look Lookup, t term.Term) term.Term {
	cur := t
	for i := 0; i < maxIterations; i++ {
		next := ApplyToTerm(look, cur)
		if next.Equal(cur) {
			return next
		}
		cur = next
	}
	panic("subst: ApplyIterated did not converge")
}

// Compose builds sigma ∘ tau: tau is applied to every image of sigma,
// then extended with tau's bindings that sigma doesn't already cover.
// Idempotent when sigma and tau are each idempotent over disjoint
// domains and no image of tau mentions a variable sigma binds.
func Compose(sigma, tau *Subst) *Subst {
	out := New()
	for v, t := range sigma.bindings {
		out.bindings[v] = ApplyToTerm(tau, t)
	}
	for v, t := range tau.bindings {
		if _, ok := sigma.bindings[v]; !ok {
			out.bindings[v] = t
		}
	}
	return out
}

// Close resolves a (possibly triangular) substitution into idempotent
// form by iterated self-composition: repeatedly substitute each
// binding's image using the whole current table until a fixpoint is
// reached.
func Close(sigma *Subst) *Subst {
	cur := sigma.clone()
	for i := 0; i < maxIterations; i++ {
		next := New()
		changed := false
		for v, t := range cur.bindings {
			nt := ApplyToTerm(cur, t)
			next.bindings[v] = nt
			if !nt.Equal(t) {
				changed = true
			}
		}
		if !changed {
			return next
		}
		cur = next
	}
	panic("subst: Close did not converge")
}

// IsIdempotent reports whether applying s to its own images is a
// no-op, i.e. Apply(s, s) == s for every binding.
func IsIdempotent(s *Subst) bool {
	for _, t := range s.bindings {
		if !ApplyToTerm(s, t).Equal(t) {
			return false
		}
	}
	return true
}
