package loader

// Program is the top-level parse result: a flat sequence of symbol,
// axiom and goal declarations. Convert declares every symbol before it
// converts any equation, so an axiom or goal may mention a symbol
// declared after it; declaration order only sets a symbol's default
// precedence.
//
// This grammar is deliberately tiny: TPTP problem loading is out of
// scope (spec.md §1/§6 — "a sequence of axioms and goals produced by
// the out-of-scope parser"). It exists only so cmd/twee has a demo
// input format to read, the same role the teacher's own small
// s-expression-like surface syntax plays for its contract language.
type Program struct {
	Decls []*Decl `@@*`
}

// Decl is one top-level declaration; the grammar's sum type, following
// the same "one field per alternative" shape as the teacher's
// SourceElement (kanso-lang-kanso/grammar/grammar.go).
type Decl struct {
	Symbol *SymbolDecl `  @@`
	Axiom  *AxiomDecl  `| @@`
	Goal   *GoalDecl   `| @@`
}

// SymbolDecl declares a function symbol's arity, KBO weight and
// precedence rank, and optionally marks it as the minimal constant or
// a skolem constant (spec.md §3's FuncInfo fields).
type SymbolDecl struct {
	Name       string `"symbol" @Ident "/"`
	Arity      int    `@Int`
	Weight     *int   `("weight" @Int)?`
	Precedence *int   `("precedence" @Int)?`
	Minimal    bool   `@"minimal"?`
	Skolem     bool   `@"skolem"? ";"`
}

// AxiomDecl is one input equation, named for reference in proof
// output.
type AxiomDecl struct {
	Name string    `"axiom" @Ident ":"`
	LHS  *TermExpr `@@ "="`
	RHS  *TermExpr `@@ ";"`
}

// GoalDecl is one conjecture to attempt to prove.
type GoalDecl struct {
	Name string    `"goal" @Ident ":"`
	LHS  *TermExpr `@@ "="`
	RHS  *TermExpr `@@ ";"`
}

// TermExpr is a parsed term, prior to variable/function disambiguation:
// a bare identifier with no arguments is either a variable or a
// zero-arity constant, resolved in convert.go by identifier case (an
// uppercase initial makes a variable); the declared arity of a function
// symbol is checked afterwards.
type TermExpr struct {
	Name string      `@Ident`
	Args []*TermExpr `("(" @@ ("," @@)* ")")?`
}
