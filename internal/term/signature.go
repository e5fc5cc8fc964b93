package term

import "twee/internal/label"

// FuncInfo describes a function symbol: its arity, the weight and
// precedence rank the ordering compares it by, and the flags spec.md
// §3 calls out (the distinguished minimal constant, and whether this
// constant was introduced by skolemisation).
type FuncInfo struct {
	Name       string
	Arity      int
	Weight     uint32
	Precedence int
	Minimal    bool
	SkolemOf   bool
}

// Signature is the function-symbol table: the registry a builder and
// the KBO ordering both consult to resolve a FuncID to its arity,
// weight and precedence. Modelled on the teacher's TypeRegistry
// (kanso-lang-kanso/internal/types/registry.go): a name-keyed lookup
// table populated once and read many times.
//
// Name-to-id assignment is delegated to internal/label's Labeller
// rather than a hand-rolled map: this is spec.md §5/§9's "process-wide
// label interning" service, scoped per-Signature instead of a single
// global (each Signature is itself already the embedder-owned,
// explicitly-threaded object the design notes ask for in place of a
// hidden global singleton).
type Signature struct {
	byID   []FuncInfo
	names  *label.Labeller[string]
	minID  FuncID
	hasMin bool
}

// NewSignature creates an empty signature.
func NewSignature() *Signature {
	return &Signature{names: label.New[string]()}
}

// Declare registers a new function symbol and returns its id. Declaring
// the same name twice returns the existing id without modifying flags.
func (s *Signature) Declare(info FuncInfo) FuncID {
	id := FuncID(s.names.Label(info.Name))
	if int(id) < len(s.byID) {
		return id // already declared
	}
	s.byID = append(s.byID, info)
	if info.Minimal {
		s.minID = id
		s.hasMin = true
	}
	return id
}

// Lookup resolves a name to its id.
func (s *Signature) Lookup(name string) (FuncID, bool) {
	for id := 0; id < len(s.byID); id++ {
		if s.byID[id].Name == name {
			return FuncID(id), true
		}
	}
	return 0, false
}

// Info returns the FuncInfo for an id. Panics on an id this signature
// never declared: that is a programming error, not recoverable input.
func (s *Signature) Info(f FuncID) FuncInfo {
	if int(f) >= len(s.byID) {
		panic("term: unknown function id")
	}
	return s.byID[f]
}

// Minimal returns the distinguished least constant, if one has been
// declared.
func (s *Signature) Minimal() (FuncID, bool) {
	return s.minID, s.hasMin
}

// IsMinimal reports whether f is the minimal constant.
func (s *Signature) IsMinimal(f FuncID) bool {
	return s.hasMin && f == s.minID
}
