package term

// Builder assembles terms into a linear buffer of symbols. The
// source's term-building functions compose through a monadic
// combinator; here that is just a stateful object with scoped
// emit calls — the monad was a convenient cloak over append-and-patch.
type Builder struct {
	buf []Symbol
}

// NewBuilder returns an empty builder, optionally pre-sizing its
// internal buffer.
func NewBuilder(capacityHint int) *Builder {
	return &Builder{buf: make([]Symbol, 0, capacityHint)}
}

// EmitVar appends a variable occurrence.
func (b *Builder) EmitVar(v Var) {
	b.buf = append(b.buf, VarSymbol(v))
}

// EmitFun appends a function application headed by f, running body to
// emit its arguments, then patches the header's size field to
// 1 + size(children). body may itself call EmitFun/EmitVar/EmitTermSlice
// any number of times to build the arguments in order.
func (b *Builder) EmitFun(f FuncID, body func(*Builder)) {
	headerPos := len(b.buf)
	b.buf = append(b.buf, FunSymbol(f, 0)) // placeholder, patched below
	if body != nil {
		body(b)
	}
	size := len(b.buf) - headerPos
	b.buf[headerPos] = b.buf[headerPos].withSize(uint32(size))
}

// EmitTermSlice splices an existing term's symbols into the buffer
// verbatim.
func (b *Builder) EmitTermSlice(t Term) {
	b.buf = append(b.buf, t...)
}

// EmitTermListSlice splices a whole list of terms verbatim.
func (b *Builder) EmitTermListSlice(l TermList) {
	b.buf = append(b.buf, l...)
}

// Len reports how many symbols have been emitted so far.
func (b *Builder) Len() int { return len(b.buf) }

// Finish returns the buffer as a single Term. It panics if the buffer
// does not hold exactly one top-level term: that is a builder misuse,
// an internal assertion violation, not a recoverable input error.
func (b *Builder) Finish() Term {
	if len(b.buf) == 0 {
		panic("term: Finish called on empty builder")
	}
	if int(b.buf[0].Size()) != len(b.buf) {
		panic("term: Finish called with more than one top-level term")
	}
	return Term(b.buf)
}

// FinishList returns the buffer as a TermList, accepting any number of
// top-level terms (including zero).
func (b *Builder) FinishList() TermList {
	return TermList(b.buf)
}

// Reset empties the builder so its buffer can be reused.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}
