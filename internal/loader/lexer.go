package loader

import "github.com/alecthomas/participle/v2/lexer"

// TermLexer tokenises the small problem-file surface syntax this
// package accepts (symbol/axiom/goal declarations and parenthesised
// term applications), mirroring the teacher's own stateful lexer
// (kanso-lang-kanso/grammar/lexer.go): one "Root" state, identifiers
// before keywords get sorted out by the grammar rather than the
// lexer, comments and whitespace elided.
var TermLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `#[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_']*`, nil},
		{"Int", `[0-9]+`, nil},
		{"Punct", `[(),:;=/]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
