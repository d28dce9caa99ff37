// Package repl implements golox's interactive shell: a line gets a
// trailing ';' auto-appended if it's missing, is scanned/parsed/evaluated
// immediately, and had-error is reset before the next prompt so a mistake
// on one line doesn't poison the next. The loop exits on empty input,
// ".quit", or EOF.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
)

// Banner is the identity text printed once at startup.
const Banner = `
   _____       _
  / ____|     | |
 | |  __  ___ | |     ___  __  __
 | | |_ |/ _ \| |    / _ \ \ \/ /
 | |__| | (_) | |___| (_) | >  <
  \_____|\___/|______\___/ /_/\_\
`

const (
	Version = "v1.0.0"
	Prompt  = "golox> "
)

// Repl owns the interpreter and reporter shared across every evaluated
// line. Start creates the readline instance driving prompt/history.
type Repl struct {
	out      io.Writer
	reporter *report.Reporter
	interp   *interpreter.Interpreter
}

// New creates a Repl writing all output (banner, echoes, diagnostics) to
// out.
func New(out io.Writer) *Repl {
	reporter := report.NewReporter(out)
	return &Repl{
		out:      out,
		reporter: reporter,
		interp:   interpreter.New(out, reporter),
	}
}

// PrintBanner writes the startup banner and version line.
func (r *Repl) PrintBanner() {
	color.New(color.FgCyan).Fprintln(r.out, Banner)
	color.New(color.FgCyan).Fprintf(r.out, "golox %s\n", Version)
}

// Start runs the read-eval-print loop until empty input, ".quit", or EOF.
func (r *Repl) Start() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryFile:     "/tmp/.golox_history",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	r.PrintBanner()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" || line == ".quit" {
			return nil
		}

		r.runLine(line)
	}
}

// runLine auto-appends a trailing ';' if missing, evaluates the line, and
// resets had_error before returning control to the prompt so one bad line
// never poisons the next.
func (r *Repl) runLine(line string) {
	defer r.reporter.Reset()

	if !strings.HasSuffix(line, ";") {
		line += ";"
	}

	scanner := lexer.NewScanner(line, r.reporter)
	tokens := scanner.ScanTokens()
	if r.reporter.HadError {
		return
	}

	par := parser.New(tokens, r.reporter)
	stmts := par.Parse()
	if r.reporter.HadError {
		return
	}

	r.interp.ReplInterpret(stmts)
}
