// Package term implements the packed flatterm layout: a contiguous
// pre-order array of tagged symbols standing in for a term tree, plus
// the builder that assembles one.
package term

// Symbol is a tagged 64-bit word: one bit says whether this position is
// a function application or a variable, the next 31 bits carry the
// function/variable id, and the low 32 bits carry the subterm size
// (the number of symbols, including this one, spanned by the subterm
// rooted here). Packing it this way lets the term walker treat a
// subterm as a contiguous slice whose length is read straight out of
// its own header.
type Symbol uint64

const (
	varBit  = uint64(1) << 63
	idShift = 32
	idMask  = uint64(1<<31 - 1)
	sizeMax = uint64(1<<32 - 1)
)

// FuncID names a function symbol in a Signature.
type FuncID uint32

// Var is a variable index, always >= 0.
type Var uint32

// Parts is the unpacked form of a Symbol.
type Parts struct {
	IsVar bool
	ID    uint32 // FuncID or Var, masked to 31 bits
	Size  uint32 // subterm extent, including this symbol
}

// Pack builds a Symbol from its parts, masking the id to the 31 bits
// the encoding has room for. This masking is the "valid domain"
// normalisation the round-trip property is stated against.
func Pack(p Parts) Symbol {
	s := uint64(p.Size) & sizeMax
	id := (uint64(p.ID) & idMask) << idShift
	if p.IsVar {
		return Symbol(varBit | id | s)
	}
	return Symbol(id | s)
}

// Unpack decomposes a Symbol into its parts. Unpack(Pack(p)) == p for
// any Parts whose ID already fits in 31 bits; for any Symbol s,
// Pack(Unpack(s)) == s exactly, since Unpack never discards bits that
// Pack itself would have kept.
func Unpack(s Symbol) Parts {
	return Parts{
		IsVar: uint64(s)&varBit != 0,
		ID:    uint32((uint64(s) >> idShift) & idMask),
		Size:  uint32(uint64(s) & sizeMax),
	}
}

// FunSymbol packs a function-application header with the given id and
// size (size must include the header symbol itself).
func FunSymbol(f FuncID, size uint32) Symbol {
	return Pack(Parts{IsVar: false, ID: uint32(f), Size: size})
}

// VarSymbol packs a variable occurrence. A variable always has size 1.
func VarSymbol(v Var) Symbol {
	return Pack(Parts{IsVar: true, ID: uint32(v), Size: 1})
}

func (s Symbol) IsVar() bool { return uint64(s)&varBit != 0 }

// Size returns the number of symbols this subterm spans, itself
// included.
func (s Symbol) Size() uint32 { return uint32(uint64(s) & sizeMax) }

// FunID returns the function id. Only meaningful when !IsVar().
func (s Symbol) FunID() FuncID { return FuncID((uint64(s) >> idShift) & idMask) }

// VarID returns the variable index. Only meaningful when IsVar().
func (s Symbol) VarID() Var { return Var((uint64(s) >> idShift) & idMask) }

// withSize returns a copy of s with a patched size field, used by the
// builder to backfill a function header once its children are known.
func (s Symbol) withSize(size uint32) Symbol {
	return Symbol((uint64(s) &^ sizeMax) | (uint64(size) & sizeMax))
}
