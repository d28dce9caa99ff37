package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
)

func parseSource(t *testing.T, src string) ([]ast.Stmt, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := report.NewReporter(&buf)
	tokens := lexer.NewScanner(src, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	return stmts, reporter
}

func TestParseVarDeclaration(t *testing.T) {
	stmts, reporter := parseSource(t, `var a = 1 + 2;`)
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)
	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", v.Name.Lexeme)
	_, ok = v.Initializer.(*ast.Binary)
	assert.True(t, ok)
}

func TestParseForDesugarsToBlockAndWhile(t *testing.T) {
	stmts, reporter := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok)
	require.Len(t, body.Statements, 2)
	_, ok = body.Statements[1].(*ast.ExprStmt)
	assert.True(t, ok)
}

func TestParseTernary(t *testing.T) {
	stmts, reporter := parseSource(t, `print a > b ? a : b;`)
	require.False(t, reporter.HadError)
	printStmt := stmts[0].(*ast.PrintStmt)
	_, ok := printStmt.Expression.(*ast.Ternary)
	assert.True(t, ok)
}

func TestParseInvalidAssignmentTargetDoesNotThrow(t *testing.T) {
	stmts, reporter := parseSource(t, `1 + 2 = 3;`)
	assert.True(t, reporter.HadError)
	// Parser reports the error but keeps going rather than discarding the
	// whole parse: an invalid assignment target is non-throwing.
	assert.NotNil(t, stmts)
}

func TestParseBreakOutsideLoopIsParseError(t *testing.T) {
	_, reporter := parseSource(t, `break;`)
	assert.True(t, reporter.HadError)
}

func TestParseBreakInsideLoopOK(t *testing.T) {
	_, reporter := parseSource(t, `while (true) { break; }`)
	assert.False(t, reporter.HadError)
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts, reporter := parseSource(t, `fun add(a, b) { return a + b; }`)
	require.False(t, reporter.HadError)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
}

func TestParseMissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	// The missing ';' is detected when the parser sees the next
	// declaration's leading keyword; synchronize() discards tokens through
	// the following ';', so the malformed declaration and the one after it
	// are both dropped rather than the parser crashing or hanging.
	stmts, reporter := parseSource(t, "var a = 1\nvar b = 2; print 3;")
	assert.True(t, reporter.HadError)
	var found bool
	for _, s := range stmts {
		if p, ok := s.(*ast.PrintStmt); ok {
			_ = p
			found = true
		}
	}
	assert.True(t, found)
}
