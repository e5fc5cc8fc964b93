package subst

import "twee/internal/term"

// Match finds the unique substitution sigma with sigma(pattern) = t,
// or reports failure. Fails on a function/variable mismatch or on
// conflicting bindings for the same pattern variable. Total: never
// panics on well-formed input.
func Match(pattern, t term.Term) (*Subst, bool) {
	s := New()
	if !matchInto(s, pattern, t) {
		return nil, false
	}
	return s, true
}

func matchInto(s *Subst, pattern, t term.Term) bool {
	if pattern.IsVar() {
		v := pattern.Var()
		if existing, ok := s.Lookup(v); ok {
			return existing.Equal(t)
		}
		s.Bind(v, t)
		return true
	}
	if t.IsVar() {
		return false
	}
	if pattern.Functor() != t.Functor() {
		return false
	}
	pArgs := pattern.Args().Terms()
	tArgs := t.Args().Terms()
	if len(pArgs) != len(tArgs) {
		return false
	}
	for i := range pArgs {
		if !matchInto(s, pArgs[i], tArgs[i]) {
			return false
		}
	}
	return true
}
