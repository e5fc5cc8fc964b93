package term

// Path is a sequence of argument indices locating a subterm from the
// root: Path{} is the root itself, Path{1, 0} is "argument 1, then its
// argument 0". Positions (flat symbol offsets) and paths are two
// coordinate systems over the same term; PositionToPath/PathToPosition
// convert between them (spec.md §8 property 5).
type Path []int

// PositionToPath converts a flat offset into the root-relative
// sequence of argument indices that reaches it.
func PositionToPath(t Term, pos int) Path {
	if pos == 0 {
		return Path{}
	}
	args := t.Args().Terms()
	off := 1
	for i, arg := range args {
		if pos < off+arg.Size() {
			sub := PositionToPath(arg, pos-off)
			return append(Path{i}, sub...)
		}
		off += arg.Size()
	}
	panic("term: position out of range")
}

// PathToPosition converts a root-relative argument-index sequence back
// to its flat offset.
func PathToPosition(t Term, p Path) int {
	pos := 0
	cur := t
	for _, i := range p {
		args := cur.Args().Terms()
		off := 1
		for j := 0; j < i; j++ {
			off += args[j].Size()
		}
		pos += off
		cur = args[i]
	}
	return pos
}
