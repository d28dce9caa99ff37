package interpreter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/report"
)

func run(t *testing.T, src string) (string, *report.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := report.NewReporter(&buf)
	tokens := lexer.NewScanner(src, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	require.False(t, reporter.HadError, "unexpected parse/scan error")

	interp := interpreter.New(&buf, reporter)
	interp.Interpret(stmts)
	return buf.String(), reporter
}

func TestPrintAddsTwoNumbers(t *testing.T) {
	out, reporter := run(t, `print 1 + 2;`)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "3\n", out)
}

func TestVariableArithmeticRespectsPrecedence(t *testing.T) {
	out, _ := run(t, `var a = 1; var b = 2; print a + b * 3;`)
	assert.Equal(t, "7\n", out)
}

func TestBlockScopeShadowsOuterVariable(t *testing.T) {
	out, _ := run(t, `var a = "outer"; { var a = "inner"; print a; } print a;`)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestForLoopPrintsEachIteration(t *testing.T) {
	out, _ := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestClosureCapturesVariableByReference(t *testing.T) {
	out, _ := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				print count;
			}
			return increment;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	assert.Equal(t, "1\n2\n", out)
}

func TestNestedFunctionReturnsClosureOverParameter(t *testing.T) {
	out, _ := run(t, `
		fun makeAdder(n) { fun add(x) { print x + n; } return add; }
		var add5 = makeAdder(5);
		add5(3);
	`)
	assert.Equal(t, "8\n", out)
}

func TestPlusConcatenatesStringAndNumber(t *testing.T) {
	out, reporter := run(t, `print "hi" + 5;`)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "hi5\n", out)
}

func TestReadingUndefinedVariableIsRuntimeError(t *testing.T) {
	_, reporter := run(t, `print foo;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestReadingUninitializedVariableIsRuntimeError(t *testing.T) {
	_, reporter := run(t, `var a; print a;`)
	assert.True(t, reporter.HadRuntimeError)
}

func TestTruthinessAndEqualityEndToEnd(t *testing.T) {
	out, _ := run(t, `print nil == nil; print 1 == "1"; print false or "b"; print true and "b";`)
	assert.Equal(t, "true\nfalse\nb\nb\n", out)
}

func TestShortCircuitOrDoesNotEvaluateRight(t *testing.T) {
	out, reporter := run(t, `
		fun boom() { print "boom"; return true; }
		print true or boom();
	`)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}

func TestBreakExitsNearestLoop(t *testing.T) {
	out, _ := run(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) break;
			print i;
		}
	`)
	assert.Equal(t, "0\n1\n", out)
}

func TestTernaryExpression(t *testing.T) {
	out, _ := run(t, `print 1 < 2 ? "yes" : "no";`)
	assert.Equal(t, "yes\n", out)
}

func TestReplEchoesExprStmtValue(t *testing.T) {
	var buf bytes.Buffer
	reporter := report.NewReporter(&buf)
	tokens := lexer.NewScanner(`1 + 2;`, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	interp := interpreter.New(&buf, reporter)
	interp.ReplInterpret(stmts)
	assert.Equal(t, "3\n", buf.String())
}

func TestClockIsCallableWithZeroArity(t *testing.T) {
	out, reporter := run(t, `var t = clock(); print t >= 0;`)
	assert.False(t, reporter.HadRuntimeError)
	assert.Equal(t, "true\n", out)
}
