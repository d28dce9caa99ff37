package ast_test

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

// parseExpr parses a single expression statement and returns its
// expression.
func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	var buf bytes.Buffer
	reporter := report.NewReporter(&buf)
	tokens := lexer.NewScanner(src, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError)
	require.Len(t, stmts, 1)
	return stmts[0].(*ast.ExprStmt).Expression
}

func TestPrinterParenthesizesByPrecedence(t *testing.T) {
	p := &ast.Printer{}
	expr := parseExpr(t, `1 + 2 * 3;`)
	assert.Equal(t, "(+ 1 (* 2 3))", p.Print(expr))
}

func TestPrinterGroupingRoundTrips(t *testing.T) {
	p := &ast.Printer{}
	expr := parseExpr(t, `(1 + 2) * 3;`)
	assert.Equal(t, "(* (group (+ 1 2)) 3)", p.Print(expr))
}
