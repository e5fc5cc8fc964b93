package term

import (
	"fmt"
	"strings"
)

// Term is a contiguous pre-order slice of symbols: Term[0] is the root
// symbol and len(Term) == Term[0].Size(). Slicing a Term never copies
// the underlying buffer; every operation here walks index arithmetic
// over the shared array.
type Term []Symbol

// TermList is zero or more consecutive Terms laid out back to back,
// e.g. the argument list of a function application.
type TermList []Symbol

// Root returns the header symbol.
func (t Term) Root() Symbol { return t[0] }

// IsVar reports whether t is a bare variable.
func (t Term) IsVar() bool { return t[0].IsVar() }

// Var returns the variable this term is, if IsVar().
func (t Term) Var() Var { return t[0].VarID() }

// Functor returns the function id this term is headed by. Only valid
// when !IsVar().
func (t Term) Functor() FuncID { return t[0].FunID() }

// Size is the number of symbols this term spans.
func (t Term) Size() int { return len(t) }

// Args returns the argument list following the header symbol.
func (t Term) Args() TermList {
	if t.IsVar() {
		return nil
	}
	return TermList(t[1:])
}

// Equal does a flat memcmp-style structural comparison: two flatterms
// are equal iff their symbol sequences are equal, since size headers
// make the encoding self-delimiting.
func (t Term) Equal(u Term) bool {
	if len(t) != len(u) {
		return false
	}
	for i := range t {
		if t[i] != u[i] {
			return false
		}
	}
	return true
}

// Len returns the number of top-level terms packed into the list.
func (l TermList) Len() int {
	n := 0
	for i := 0; i < len(l); {
		i += int(l[i].Size())
		n++
	}
	return n
}

// At returns the i-th top-level term in the list.
func (l TermList) At(i int) Term {
	pos := 0
	for j := 0; j < i; j++ {
		pos += int(l[pos].Size())
	}
	return Term(l[pos : pos+int(l[pos].Size())])
}

// Terms materialises the list as a slice of Terms for range-style use.
func (l TermList) Terms() []Term {
	var out []Term
	for i := 0; i < len(l); {
		sz := int(l[i].Size())
		out = append(out, Term(l[i:i+sz]))
		i += sz
	}
	return out
}

// Vars appends every distinct variable occurring in t, in first-occurrence
// order, to out and returns the result.
func (t Term) Vars(out []Var) []Var {
	for i := 0; i < len(t); i++ {
		if t[i].IsVar() {
			v := t[i].VarID()
			found := false
			for _, u := range out {
				if u == v {
					found = true
					break
				}
			}
			if !found {
				out = append(out, v)
			}
		}
	}
	return out
}

// Subterms yields every subterm position (by flat offset) and the Term
// rooted there, root first, in pre-order.
func (t Term) Subterms(yield func(pos int, sub Term)) {
	for i := 0; i < len(t); {
		sz := int(t[i].Size())
		yield(i, Term(t[i:i+sz]))
		i++
	}
}

// NonVarPositions returns the flat offsets of every non-variable
// subterm, root included (offset 0).
func (t Term) NonVarPositions() []int {
	var out []int
	t.Subterms(func(pos int, sub Term) {
		if !sub.IsVar() {
			out = append(out, pos)
		}
	})
	return out
}

// At returns the subterm rooted at flat offset pos.
func (t Term) At(pos int) Term {
	return Term(t[pos : pos+int(t[pos].Size())])
}

// Validate checks the builder invariant of spec.md §4.A: every function
// header's size field equals 1 + the sum of its children's sizes. It is
// a debug check, not part of the hot path.
func (t Term) Validate() error {
	_, err := validate(t, 0)
	return err
}

func validate(t Term, pos int) (int, error) {
	if pos >= len(t) {
		return pos, fmt.Errorf("term: truncated buffer at %d", pos)
	}
	hdr := t[pos]
	if hdr.IsVar() {
		if hdr.Size() != 1 {
			return pos, fmt.Errorf("term: variable at %d has size %d, want 1", pos, hdr.Size())
		}
		return pos + 1, nil
	}
	next := pos + 1
	total := 1
	arity := 0
	for ; arity < 1<<20; arity++ {
		if next >= len(t) {
			break
		}
		if total >= int(hdr.Size()) {
			break
		}
		end, err := validate(t, next)
		if err != nil {
			return pos, err
		}
		total += end - next
		next = end
	}
	if total != int(hdr.Size()) {
		return pos, fmt.Errorf("term: header at %d declares size %d, extent is %d", pos, hdr.Size(), total)
	}
	return next, nil
}

// MaxVar returns the greatest variable index occurring in t, or
// (0, false) if t is ground.
func MaxVar(t Term) (Var, bool) {
	var max Var
	found := false
	for _, sym := range t {
		if sym.IsVar() {
			if !found || sym.VarID() > max {
				max = sym.VarID()
			}
			found = true
		}
	}
	return max, found
}

// Rename shifts every variable in t up by offset, leaving function
// structure untouched. Used to move two terms into disjoint variable
// spaces before unifying them (e.g. a critical-pair overlap between
// two rules that otherwise share variable indices).
func Rename(t Term, offset Var) Term {
	b := NewBuilder(len(t))
	renameInto(b, t, offset)
	return b.Finish()
}

func renameInto(b *Builder, t Term, offset Var) {
	if t.IsVar() {
		b.EmitVar(t.Var() + offset)
		return
	}
	f := t.Functor()
	args := t.Args().Terms()
	b.EmitFun(f, func(b *Builder) {
		for _, a := range args {
			renameInto(b, a, offset)
		}
	})
}

// String renders a term for debugging, given the signature to resolve
// function names.
func (t Term) String(sig *Signature) string {
	var b strings.Builder
	writeTerm(&b, t, sig)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term, sig *Signature) {
	if t.IsVar() {
		fmt.Fprintf(b, "X%d", t.Var())
		return
	}
	info := sig.Info(t.Functor())
	b.WriteString(info.Name)
	args := t.Args()
	if args.Len() == 0 {
		return
	}
	b.WriteByte('(')
	for i, sub := range args.Terms() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTerm(b, sub, sig)
	}
	b.WriteByte(')')
}
