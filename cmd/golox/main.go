// Command golox is the CLI entrypoint. With no arguments it starts the
// REPL; given one argument it runs that file, exiting 65 on a parse/scan
// error or 70 on a runtime error; given two or more it prints usage and
// exits 64.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
	"github.com/akashmaji946/golox/report"
)

func main() {
	switch len(os.Args) {
	case 1:
		if err := repl.New(os.Stdout).Start(); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "golox: %v\n", err)
			os.Exit(70)
		}
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(64)
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "golox: could not read file '%s': %v\n", path, err)
		os.Exit(64)
	}

	reporter := report.NewReporter(os.Stdout)

	scanner := lexer.NewScanner(string(source), reporter)
	tokens := scanner.ScanTokens()

	par := parser.New(tokens, reporter)
	stmts := par.Parse()

	if reporter.HadError {
		os.Exit(65)
	}

	interp := interpreter.New(os.Stdout, reporter)
	interp.Interpret(stmts)

	if reporter.HadRuntimeError {
		os.Exit(70)
	}
	os.Exit(0)
}
