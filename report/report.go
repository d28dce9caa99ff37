// Package report implements the error-reporter sink shared across the
// scanner, parser, and interpreter: a value carrying had-error /
// had-runtime-error flags, passed by reference into every component
// rather than kept as package globals, so a host (CLI or REPL) can decide
// whether to proceed past a given phase and what exit code to use.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RuntimeError is raised during evaluation and carries the line of the
// token that caused it.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Reporter accumulates the had_error / had_runtime_error flags used across
// the scanner, parser, and interpreter to decide whether to proceed past a
// given phase, and formats diagnostics to an output writer.
type Reporter struct {
	HadError        bool
	HadRuntimeError bool

	Out io.Writer
}

// NewReporter creates a Reporter writing diagnostics to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Reset clears had_error, used by the REPL between prompts so a mistake on
// one line doesn't poison the next.
func (r *Reporter) Reset() {
	r.HadError = false
}

// Error reports a scan/parse-time diagnostic: "[line L] Error<where>: message".
func (r *Reporter) Error(line int, where, message string) {
	r.report(line, where, message)
}

// ErrorAtEOF reports a parse error located at end-of-input, which omits the
// "at '<lexeme>'" clause.
func (r *Reporter) ErrorAtEOF(line int, message string) {
	r.report(line, " at end", message)
}

// ErrorAtToken reports a parse error located at a specific token's lexeme.
func (r *Reporter) ErrorAtToken(line int, lexeme, message string) {
	r.report(line, fmt.Sprintf(" at '%s'", lexeme), message)
}

func (r *Reporter) report(line int, where, message string) {
	r.HadError = true
	color.New(color.FgRed).Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeErr reports a runtime diagnostic: "<message>\n[line L]".
func (r *Reporter) RuntimeErr(err *RuntimeError) {
	r.HadRuntimeError = true
	color.New(color.FgRed).Fprintf(r.Out, "%s\n[line %d]\n", err.Message, err.Line)
}
