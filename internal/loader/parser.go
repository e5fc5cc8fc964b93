// Package loader implements a small, non-TPTP surface syntax for
// axiom/goal problem files, standing in for the out-of-scope TPTP
// parser spec.md §1/§6 names as an external collaborator: symbol
// declarations plus equations, read with participle (the teacher's own
// parser-combinator library, kanso-lang-kanso/grammar) the same way
// the teacher reads its contract-language source.
package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// buildParser constructs the participle parser once; Load and
// LoadString both go through it.
func buildParser() (*participle.Parser[Program], error) {
	return participle.Build[Program](
		participle.Lexer(TermLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
}

// LoadString parses source (problem-file syntax) into a resolved
// Problem.
func LoadString(name, source string) (*Problem, error) {
	parser, err := buildParser()
	if err != nil {
		return nil, fmt.Errorf("loader: building parser: %w", err)
	}
	prog, err := parser.ParseString(name, source)
	if err != nil {
		return nil, reportParseError(name, source, err)
	}
	return Convert(prog)
}

// Load reads and parses the problem file at path.
func Load(path string) (*Problem, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return LoadString(path, string(src))
}

// reportParseError mirrors the teacher's own caret-style parse-error
// rendering (kanso-lang-kanso/grammar/parser.go's reportParseError),
// folded into the returned error rather than printed directly so
// cmd/twee controls how it reaches the terminal.
func reportParseError(name, src string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return fmt.Errorf("loader: %s: %w", name, err)
	}
	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return fmt.Errorf("loader: %s: syntax error at unknown location: %w", name, err)
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"
	return fmt.Errorf("loader: %s:%d:%d: %s\n%s\n%s", name, pos.Line, pos.Column, pe.Message(), line, caret)
}
