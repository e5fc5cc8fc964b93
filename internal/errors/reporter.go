package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ErrorReporter formats ProverErrors for terminal output, in the same
// "level[code]: message" register as kanso-lang-kanso's
// ErrorReporter.FormatError, but without the source-span machinery
// that reporter needed for a text-positioned compiler: the prover's
// inputs are already-parsed equations, not source spans.
type ErrorReporter struct{}

// NewErrorReporter creates a reporter. Stateless today; kept as a
// constructor (rather than free functions) so call sites read the same
// way they would against a reporter carrying source context later.
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// FormatError renders err with a colorized level/code header.
func (er *ErrorReporter) FormatError(err *ProverError) string {
	var b strings.Builder
	levelColor := er.colorFor(err.Kind)
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(err.Kind)), err.Code, bold(err.Message))
	if err.Cause != nil {
		fmt.Fprintf(&b, "  caused by: %v\n", err.Cause)
	}
	return b.String()
}

func (er *ErrorReporter) colorFor(kind Kind) func(a ...interface{}) string {
	switch kind {
	case KindInput:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case KindLoopDiagnostic:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case KindResourceBound:
		return color.New(color.FgMagenta, color.Bold).SprintFunc()
	default:
		return color.New(color.FgHiRed, color.Bold).SprintFunc()
	}
}
