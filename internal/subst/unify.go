package subst

import "twee/internal/term"

// Unify computes a most general unifier of a and b, Robinson-style
// with an occurs check, or reports failure. The substitution built
// during the recursive walk may be triangular (a binding's image can
// itself mention a later-bound variable); Close resolves it to
// idempotent form before it is returned.
func Unify(a, b term.Term) (*Subst, bool) {
	s := New()
	if !unifyInto(s, a, b) {
		return nil, false
	}
	return Close(s), true
}

// UnifyTriangular is Unify without the closing pass, for callers (like
// critical-pair computation) that want to apply the result once and
// close it themselves, or that know their callers will.
func UnifyTriangular(a, b term.Term) (*Subst, bool) {
	s := New()
	if !unifyInto(s, a, b) {
		return nil, false
	}
	return s, true
}

func resolve(s *Subst, t term.Term) term.Term {
	for t.IsVar() {
		bound, ok := s.Lookup(t.Var())
		if !ok {
			break
		}
		t = bound
	}
	return t
}

func occurs(s *Subst, v term.Var, t term.Term) bool {
	t = resolve(s, t)
	if t.IsVar() {
		return t.Var() == v
	}
	for _, arg := range t.Args().Terms() {
		if occurs(s, v, arg) {
			return true
		}
	}
	return false
}

func unifyInto(s *Subst, a, b term.Term) bool {
	a = resolve(s, a)
	b = resolve(s, b)

	if a.IsVar() && b.IsVar() && a.Var() == b.Var() {
		return true
	}
	if a.IsVar() {
		if occurs(s, a.Var(), b) {
			return false
		}
		s.Bind(a.Var(), b)
		return true
	}
	if b.IsVar() {
		if occurs(s, b.Var(), a) {
			return false
		}
		s.Bind(b.Var(), a)
		return true
	}
	if a.Functor() != b.Functor() {
		return false
	}
	aArgs := a.Args().Terms()
	bArgs := b.Args().Terms()
	if len(aArgs) != len(bArgs) {
		return false
	}
	for i := range aArgs {
		if !unifyInto(s, aArgs[i], bArgs[i]) {
			return false
		}
	}
	return true
}
